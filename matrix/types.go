// SPDX-License-Identifier: MIT
// Package matrix: public type surface.
// This file defines the Elem constraint (the closed set of natively stored
// element types) and the kind-erased Matrix interface that lets mixed-kind
// matrices flow through multiply, arithmetic, equality and rendering.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/natrix/scalar"
)

// Elem enumerates the element types with specialized dense storage. The
// constraint is exact (no ~): named types based on these primitives route
// through the boxed fallback via NewAny, keeping per-kind NA sentinels
// unambiguous.
type Elem interface {
	bool | int32 | int64 | float64
}

// Matrix is the kind-erased read surface shared by every Dense[E]
// instantiation. Kind-generic consumers (Mul, Equal, Format, frames)
// traverse elements through it without knowing E.
//
// The unexported methods close the implementation set: only Dense
// instantiations produced by this package's factories satisfy Matrix.
// All implementations are immutable and safe for concurrent readers.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// Len returns Rows()*Cols().
	Len() int
	// IsEmpty reports whether the matrix holds no elements.
	IsEmpty() bool
	// IsSquare reports whether Rows() == Cols().
	IsSquare() bool
	// Kind returns the element storage class.
	Kind() scalar.Kind
	// Cell returns the missing-aware boxed element at (r, c).
	// Errors: ErrOutOfRange.
	Cell(r, c int) (scalar.Scalar[any], error)
	// Hash returns the NA-aware content hash; equal matrices hash equally.
	Hash() uint64
	// String renders the matrix with default formatting options.
	String() string

	// missingAt reports whether flat offset i holds the NA sentinel.
	missingAt(i int) bool
	// boxedRaw returns the raw element at flat offset i, boxed.
	boxedRaw(i int) any
	// widenAt returns the element at flat offset i as float64; NA and
	// non-numeric boxed values widen to NaN.
	widenAt(i int) float64
	// cellText renders the element at flat offset i ("NA" for missing).
	cellText(i int) string
}

// Compile-time guarantees: every specialized storage satisfies Matrix and
// renders as text.
var (
	_ Matrix = (*Dense[bool])(nil)
	_ Matrix = (*Dense[int32])(nil)
	_ Matrix = (*Dense[int64])(nil)
	_ Matrix = (*Dense[float64])(nil)
	_ Matrix = (*Dense[any])(nil)

	_ fmt.Stringer = (*Dense[float64])(nil)
)
