// SPDX-License-Identifier: MIT

package vec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/natrix/scalar"
)

// ErrOutOfRange signals an index outside [0, Len).
var ErrOutOfRange = errors.New("vec: index out of range")

// Dense is an immutable typed 1-D view over a contiguous element slice.
// The zero value is an empty vector; construct non-empty ones via New.
type Dense[E any] struct {
	data []E
	desc scalar.Desc[E]
}

// Compile-time check: vectors of every native kind render as text.
var _ fmt.Stringer = (*Dense[float64])(nil)

// New wraps data without copying and resolves the element descriptor for
// E. The caller must not mutate data afterwards.
func New[E any](data []E) *Dense[E] {
	return &Dense[E]{data: data, desc: scalar.Of[E]()}
}

// Len returns the number of elements.
func (v *Dense[E]) Len() int { return len(v.data) }

// Kind returns the element storage class.
func (v *Dense[E]) Kind() scalar.Kind { return v.kindDesc().Kind() }

// Raw returns the raw element at i, NA sentinels included. It panics when
// i is out of range; use with caution on untrusted indices, or call At.
func (v *Dense[E]) Raw(i int) E {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("vec: Raw(%d) out of range [0,%d)", i, len(v.data)))
	}
	return v.data[i]
}

// At returns the missing-aware element at i.
//
// Errors: ErrOutOfRange when i is outside [0, Len).
func (v *Dense[E]) At(i int) (scalar.Scalar[E], error) {
	if i < 0 || i >= len(v.data) {
		return scalar.Missing[E](), fmt.Errorf("At(%d) with length %d: %w", i, len(v.data), ErrOutOfRange)
	}
	return scalar.ValueOf(v.data[i]), nil
}

// Contents returns a fresh copy of the raw backing slice; mutating the
// result never affects the vector.
func (v *Dense[E]) Contents() []E {
	out := make([]E, len(v.data))
	copy(out, v.data)
	return out
}

// HasNA reports whether any element is the NA sentinel for this kind.
func (v *Dense[E]) HasNA() bool {
	d := v.kindDesc()
	for _, e := range v.data {
		if d.IsMissing(e) {
			return true
		}
	}
	return false
}

// String renders the vector on one line, e.g. "[1 2 NA 4]".
func (v *Dense[E]) String() string {
	d := v.kindDesc()
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Format(e))
	}
	b.WriteByte(']')
	return b.String()
}

// kindDesc tolerates zero-value vectors, whose desc field was never set.
func (v *Dense[E]) kindDesc() scalar.Desc[E] {
	if v.desc == nil {
		return scalar.Of[E]()
	}
	return v.desc
}
