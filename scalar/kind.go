// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// naText is the canonical rendering of a missing value.
const naText = "NA"

// Kind identifies one of the element storage classes natrix supports.
type Kind uint8

const (
	// KindBool marks boolean elements; booleans have no missing sentinel.
	KindBool Kind = iota
	// KindInt32 marks 32-bit integer elements; math.MinInt32 is NA.
	KindInt32
	// KindInt64 marks 64-bit integer elements; math.MinInt64 is NA.
	KindInt64
	// KindFloat64 marks double-precision elements; NaN is NA.
	KindFloat64
	// KindAny marks boxed elements of arbitrary type; untyped nil is NA.
	KindAny
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindAny:
		return "any"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsNumeric reports whether elements of this kind participate in numeric
// operations (matrix multiply, elementwise arithmetic, rounding).
func (k Kind) IsNumeric() bool {
	return k == KindInt32 || k == KindInt64 || k == KindFloat64
}

// Desc describes one element type T: its runtime Kind, which raw value of
// T denotes a missing cell, how T widens to float64 and how it renders as
// text. Descriptors are stateless; obtain one via Of.
type Desc[T any] interface {
	// Kind returns the storage class of T.
	Kind() Kind

	// Missing returns the raw sentinel treated as NA. Kinds without a
	// representable NA (bool, non-nilable boxed types) return the zero
	// value; IsMissing still reports false for it.
	Missing() T

	// IsMissing reports whether v is the NA sentinel for this kind.
	IsMissing(v T) bool

	// Float64 widens v to double precision. Missing values and boxed
	// values with no numeric interpretation widen to NaN.
	Float64(v T) float64

	// Format renders v as text; the NA sentinel renders as "NA".
	Format(v T) string
}

// Of resolves the descriptor for T. The four native kinds map to their
// specialized descriptors; every other type gets boxed-fallback semantics.
// This is the dispatch point the container factories build on.
func Of[T any]() Desc[T] {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(boolDesc{}).(Desc[T])
	case int32:
		return any(int32Desc{}).(Desc[T])
	case int64:
		return any(int64Desc{}).(Desc[T])
	case float64:
		return any(float64Desc{}).(Desc[T])
	default:
		return boxDesc[T]{}
	}
}

// boolDesc: booleans carry no representable NA. Missing returns false and
// IsMissing is constantly false; true widens to 1, false to 0.
type boolDesc struct{}

func (boolDesc) Kind() Kind { return KindBool }

func (boolDesc) Missing() bool { return false }

func (boolDesc) IsMissing(bool) bool { return false }

func (boolDesc) Float64(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func (boolDesc) Format(v bool) string { return strconv.FormatBool(v) }

type int32Desc struct{}

func (int32Desc) Kind() Kind { return KindInt32 }

func (int32Desc) Missing() int32 { return math.MinInt32 }

func (int32Desc) IsMissing(v int32) bool { return v == math.MinInt32 }

func (int32Desc) Float64(v int32) float64 {
	if v == math.MinInt32 {
		return math.NaN()
	}
	return float64(v)
}

func (int32Desc) Format(v int32) string {
	if v == math.MinInt32 {
		return naText
	}
	return strconv.FormatInt(int64(v), 10)
}

type int64Desc struct{}

func (int64Desc) Kind() Kind { return KindInt64 }

func (int64Desc) Missing() int64 { return math.MinInt64 }

func (int64Desc) IsMissing(v int64) bool { return v == math.MinInt64 }

func (int64Desc) Float64(v int64) float64 {
	if v == math.MinInt64 {
		return math.NaN()
	}
	return float64(v)
}

func (int64Desc) Format(v int64) string {
	if v == math.MinInt64 {
		return naText
	}
	return strconv.FormatInt(v, 10)
}

type float64Desc struct{}

func (float64Desc) Kind() Kind { return KindFloat64 }

func (float64Desc) Missing() float64 { return math.NaN() }

func (float64Desc) IsMissing(v float64) bool { return math.IsNaN(v) }

func (float64Desc) Float64(v float64) float64 { return v }

func (float64Desc) Format(v float64) string {
	if math.IsNaN(v) {
		return naText
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// boxDesc is the fallback for arbitrary element types. Only a boxed
// untyped nil is treated as missing; common numeric dynamic types widen
// to float64, everything else widens to NaN.
type boxDesc[T any] struct{}

func (boxDesc[T]) Kind() Kind { return KindAny }

func (boxDesc[T]) Missing() T {
	var zero T
	return zero
}

func (boxDesc[T]) IsMissing(v T) bool { return any(v) == nil }

func (boxDesc[T]) Float64(v T) float64 {
	switch x := any(v).(type) {
	case nil:
		return math.NaN()
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}

func (boxDesc[T]) Format(v T) string {
	if any(v) == nil {
		return naText
	}
	return fmt.Sprintf("%v", any(v))
}

// Compile-time guarantees that every descriptor satisfies Desc.
var (
	_ Desc[bool]    = boolDesc{}
	_ Desc[int32]   = int32Desc{}
	_ Desc[int64]   = int64Desc{}
	_ Desc[float64] = float64Desc{}
	_ Desc[any]     = boxDesc[any]{}
)
