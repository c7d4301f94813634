// SPDX-License-Identifier: MIT

package scalar

import "math"

// Scalar is a missing-aware single value of element type T: either NA or
// a present value. The zero Scalar is NA.
type Scalar[T any] struct {
	v  T
	ok bool
}

// ValueOf wraps v. When v is the NA sentinel for its kind (NaN for
// float64, math.MinInt32 for int32, math.MinInt64 for int64, nil for
// boxed values) the result is the NA scalar instead of a present value.
func ValueOf[T any](v T) Scalar[T] {
	if Of[T]().IsMissing(v) {
		return Scalar[T]{}
	}
	return Scalar[T]{v: v, ok: true}
}

// Missing returns the NA scalar for T.
func Missing[T any]() Scalar[T] { return Scalar[T]{} }

// IsNA reports whether s holds no value.
func (s Scalar[T]) IsNA() bool { return !s.ok }

// Get returns the held value and true, or the zero value and false when
// s is NA.
func (s Scalar[T]) Get() (T, bool) { return s.v, s.ok }

// Must returns the held value and panics when s is NA. Use with caution;
// prefer Get on untrusted data.
func (s Scalar[T]) Must() T {
	if !s.ok {
		panic("scalar: Must called on NA")
	}
	return s.v
}

// Float64 widens the held value to double precision; NA widens to NaN.
func (s Scalar[T]) Float64() float64 {
	if !s.ok {
		return math.NaN()
	}
	return Of[T]().Float64(s.v)
}

// String implements fmt.Stringer; NA renders as "NA".
func (s Scalar[T]) String() string {
	if !s.ok {
		return naText
	}
	return Of[T]().Format(s.v)
}
