// SPDX-License-Identifier: MIT
// Package matrix: construction surface.
//
// Purpose:
//   - Route element types to their storage: New accepts the four native
//     kinds at compile time (Elem), NewAny is the explicit boxed entry, and
//     the slice/vector builders classify E at runtime via scalar.Of.
//   - Canonicalize degenerate shapes: any factory handed a zero dimension
//     returns the one shared empty matrix of that kind.
//
// Contracts:
//   - New takes ownership of its backing slice (no defensive copy, matching
//     the flat-constructor convention of dense numeric libraries); callers
//     must not touch the slice afterwards. Builders that assemble from rows,
//     columns or callbacks always allocate fresh storage.
//   - Validation precedes allocation: invalid shapes never allocate element
//     buffers.
//
// Errors:
//   - ErrBadShape for negative dimensions or mismatched backing length.
//   - ErrDimensionMismatch for ragged rows/columns.
//   - ErrNilVector / ErrNilFunc for nil building blocks.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/natrix/scalar"
	"github.com/katalvlaran/natrix/vec"
)

// Canonical empty matrices, one per native kind. Every operation that
// produces a zero-dimension result converges on these instances, so
// emptiness checks and equality on empties are pointer-cheap.
var (
	emptyBool    = &Dense[bool]{desc: scalar.Of[bool]()}
	emptyInt32   = &Dense[int32]{desc: scalar.Of[int32]()}
	emptyInt64   = &Dense[int64]{desc: scalar.Of[int64]()}
	emptyFloat64 = &Dense[float64]{desc: scalar.Of[float64]()}
	emptyAny     = &Dense[any]{desc: scalar.Of[any]()}
)

// Empty returns the canonical 0x0 matrix for E. The five standard element
// types share one instance per kind; other element types get a fresh empty.
func Empty[E any]() *Dense[E] {
	var zero E
	switch any(zero).(type) {
	case bool:
		return any(emptyBool).(*Dense[E])
	case int32:
		return any(emptyInt32).(*Dense[E])
	case int64:
		return any(emptyInt64).(*Dense[E])
	case float64:
		return any(emptyFloat64).(*Dense[E])
	default:
		if m, ok := any(emptyAny).(*Dense[E]); ok {
			return m
		}

		return &Dense[E]{desc: scalar.Of[E]()}
	}
}

// New builds a rows×cols matrix over data, interpreted in row-major order.
// E is one of the natively stored kinds; use NewAny for boxed elements.
// New takes ownership of data: the caller must not use the slice afterwards.
//
// Errors: ErrBadShape when rows or cols is negative or len(data) != rows*cols.
func New[E Elem](rows, cols int, data []E) (*Dense[E], error) {
	return newDense(opNew, rows, cols, data)
}

// NewAny builds a rows×cols boxed matrix over data, interpreted in
// row-major order. Nil elements are NA. NewAny takes ownership of data.
//
// Errors: ErrBadShape when rows or cols is negative or len(data) != rows*cols.
func NewAny(rows, cols int, data []any) (*Dense[any], error) {
	return newDense(opNewAny, rows, cols, data)
}

// newDense is the shared flat-constructor path behind New and NewAny.
func newDense[E any](tag string, rows, cols int, data []E) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(tag, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadShape))
	}
	if rows == 0 || cols == 0 {
		return Empty[E](), nil
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(tag,
			fmt.Errorf("len(data)=%d, want rows*cols=%d: %w", len(data), rows*cols, ErrBadShape))
	}

	return freeze(rows, cols, data, scalar.Of[E]()), nil
}

// FromRows assembles a matrix whose i-th row is rows[i]. All vectors must
// share one length; their contents are copied into fresh storage.
//
// Errors: ErrNilVector for a nil row, ErrDimensionMismatch for ragged rows.
func FromRows[E any](rows ...*vec.Dense[E]) (*Dense[E], error) {
	if len(rows) == 0 {
		return Empty[E](), nil
	}
	n, err := uniformLen(opFromRows, "row", rows)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return Empty[E](), nil
	}

	data := make([]E, 0, len(rows)*n)
	for _, r := range rows {
		for i := 0; i < n; i++ {
			data = append(data, r.Raw(i))
		}
	}

	return freeze(len(rows), n, data, scalar.Of[E]()), nil
}

// FromCols assembles a matrix whose j-th column is cols[j]. All vectors
// must share one length; the column-oriented input is scattered into
// row-major storage in a single pass.
//
// Errors: ErrNilVector for a nil column, ErrDimensionMismatch for ragged
// columns.
func FromCols[E any](cols ...*vec.Dense[E]) (*Dense[E], error) {
	if len(cols) == 0 {
		return Empty[E](), nil
	}
	n, err := uniformLen(opFromCols, "column", cols)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return Empty[E](), nil
	}

	nc := len(cols)
	data := make([]E, n*nc)
	for j, col := range cols {
		for i := 0; i < n; i++ {
			data[i*nc+j] = col.Raw(i)
		}
	}

	return freeze(n, nc, data, scalar.Of[E]()), nil
}

// uniformLen validates that every vector is non-nil and reports the shared
// length. axis names the direction for error messages ("row", "column").
func uniformLen[E any](tag, axis string, vs []*vec.Dense[E]) (int, error) {
	n := -1
	for i, v := range vs {
		if v == nil {
			return 0, matrixErrorf(tag, fmt.Errorf("%s %d: %w", axis, i, ErrNilVector))
		}
		if n < 0 {
			n = v.Len()
			continue
		}
		if v.Len() != n {
			return 0, matrixErrorf(tag,
				fmt.Errorf("%s %d has length %d, want %d: %w", axis, i, v.Len(), n, ErrDimensionMismatch))
		}
	}

	return n, nil
}

// FromSlices assembles a matrix from per-row slices. All rows must share
// one length; contents are copied into fresh storage.
//
// Errors: ErrDimensionMismatch for ragged rows.
func FromSlices[E any](rows [][]E) (*Dense[E], error) {
	if len(rows) == 0 {
		return Empty[E](), nil
	}
	n := len(rows[0])
	for i, r := range rows {
		if len(r) != n {
			return nil, matrixErrorf(opSlices,
				fmt.Errorf("row %d has length %d, want %d: %w", i, len(r), n, ErrDimensionMismatch))
		}
	}
	if n == 0 {
		return Empty[E](), nil
	}

	data := make([]E, 0, len(rows)*n)
	for _, r := range rows {
		data = append(data, r...)
	}

	return freeze(len(rows), n, data, scalar.Of[E]()), nil
}

// Zeros builds a rows×cols matrix of E's zero value (false, 0, 0.0).
//
// Errors: ErrBadShape for negative dimensions.
func Zeros[E Elem](rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opZeros, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadShape))
	}
	if rows == 0 || cols == 0 {
		return Empty[E](), nil
	}

	return freeze(rows, cols, make([]E, rows*cols), scalar.Of[E]()), nil
}

// Fill builds a rows×cols matrix with every element set to v.
//
// Errors: ErrBadShape for negative dimensions.
func Fill[E any](rows, cols int, v E) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opFill, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadShape))
	}
	if rows == 0 || cols == 0 {
		return Empty[E](), nil
	}

	data := make([]E, rows*cols)
	for i := range data {
		data[i] = v
	}

	return freeze(rows, cols, data, scalar.Of[E]()), nil
}

// Tabulate builds a rows×cols matrix by invoking f(r, c) for every position
// in row-major order.
//
// Errors: ErrNilFunc when f is nil, ErrBadShape for negative dimensions.
func Tabulate[E any](rows, cols int, f func(r, c int) E) (*Dense[E], error) {
	if f == nil {
		return nil, matrixErrorf(opTabulate, ErrNilFunc)
	}
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opTabulate, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadShape))
	}
	if rows == 0 || cols == 0 {
		return Empty[E](), nil
	}

	data := make([]E, rows*cols)
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			data[base+c] = f(r, c)
		}
	}

	return freeze(rows, cols, data, scalar.Of[E]()), nil
}

// Ident builds the n×n float64 identity matrix.
//
// Errors: ErrBadShape when n is negative.
func Ident(n int) (*Dense[float64], error) {
	if n < 0 {
		return nil, matrixErrorf(opIdent, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}
	if n == 0 {
		return Empty[float64](), nil
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return freeze(n, n, data, scalar.Of[float64]()), nil
}

// Diag builds the len(vals)×len(vals) float64 matrix with vals on the main
// diagonal and zeros elsewhere. No vals yields the canonical empty.
func Diag(vals ...float64) *Dense[float64] {
	n := len(vals)
	if n == 0 {
		return Empty[float64]()
	}

	data := make([]float64, n*n)
	for i, v := range vals {
		data[i*n+i] = v
	}

	return freeze(n, n, data, scalar.Of[float64]())
}
