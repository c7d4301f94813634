// SPDX-License-Identifier: MIT
// Package matrix: Dense core — storage layout, accessors, reshape, copy.
//
// Purpose:
//   - Define Dense[E], the single generic implementation behind every element
//     kind (bool, int32, int64, float64, boxed any).
//   - Keep the data contract in one place: flat row-major slice, immutable
//     after freeze, NA sentinels stored raw.
//
// Contracts:
//   - offset(r,c) = r*cols + c; no strides, no views with gaps.
//   - No method mutates the receiver. Derived matrices either share the
//     frozen backing slice (Reshape, Row, Col) or own a fresh one.
//   - Raw/RawAt are the trusted hot path: they panic on bad indices and
//     return NA sentinels unfiltered. At/AtFlat/Cell are the safe path:
//     they return sentinel errors and missing-aware scalars.
//
// Determinism:
//   - All accessors are pure reads; iteration order is row-major everywhere.
//
// Complexity:
//   - Accessors O(1); Copy/Contents O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/natrix/scalar"
)

// Dense is an immutable 2-D matrix of elements E in flat row-major order.
// The zero value is not usable; construct via the package factories (New,
// FromRows, Zeros, ...). Dense values carry an atomic transpose cache and
// therefore must only be handled through *Dense.
type Dense[E any] struct {
	rows, cols int
	data       []E

	// desc supplies the per-kind NA sentinel, widening and text rules.
	desc scalar.Desc[E]

	// trans memoizes the transposed view; back-linked so T().T() == receiver.
	trans lazyCell[Dense[E]]
}

// freeze seals a fully built backing slice into an immutable Dense. Every
// factory and kernel funnels through here; the slice must not be written
// after freeze. Degenerate shapes collapse to the canonical empty of E.
func freeze[E any](rows, cols int, data []E, desc scalar.Desc[E]) *Dense[E] {
	if rows == 0 || cols == 0 {
		return Empty[E]()
	}

	return &Dense[E]{rows: rows, cols: cols, data: data, desc: desc}
}

// Rows returns the number of rows.
func (m *Dense[E]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[E]) Cols() int { return m.cols }

// Len returns the total element count, Rows()*Cols().
func (m *Dense[E]) Len() int { return m.rows * m.cols }

// IsEmpty reports whether the matrix holds no elements. Empty matrices are
// canonical: both dimensions are zero regardless of how they were produced.
func (m *Dense[E]) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// IsSquare reports whether Rows() == Cols(). The empty matrix is square.
func (m *Dense[E]) IsSquare() bool { return m.rows == m.cols }

// Kind returns the element storage class.
func (m *Dense[E]) Kind() scalar.Kind { return m.desc.Kind() }

// Raw returns the raw element at flat offset i, NA sentinels included.
// It panics when i is out of range; use with caution on untrusted indices,
// or call AtFlat for the error-returning path.
func (m *Dense[E]) Raw(i int) E {
	if i < 0 || i >= len(m.data) {
		panic(fmt.Sprintf("matrix: Raw(%d) out of range [0,%d)", i, len(m.data)))
	}

	return m.data[i]
}

// RawAt returns the raw element at (r, c), NA sentinels included.
// It panics when the position is out of range; use with caution on
// untrusted indices, or call At for the error-returning path.
func (m *Dense[E]) RawAt(r, c int) E {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: RawAt(%d,%d) out of range for %dx%d", r, c, m.rows, m.cols))
	}

	return m.data[r*m.cols+c]
}

// offset maps (r, c) to the flat row-major index, bounds-checked.
func (m *Dense[E]) offset(r, c int) (int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("(%d,%d) outside %dx%d: %w", r, c, m.rows, m.cols, ErrOutOfRange)
	}

	return r*m.cols + c, nil
}

// At returns the missing-aware element at (r, c): NA sentinels arrive as
// missing scalars, everything else as present values.
//
// Errors: ErrOutOfRange.
func (m *Dense[E]) At(r, c int) (scalar.Scalar[E], error) {
	i, err := m.offset(r, c)
	if err != nil {
		return scalar.Missing[E](), matrixErrorf(opAt, err)
	}

	return scalar.ValueOf(m.data[i]), nil
}

// AtFlat returns the missing-aware element at flat row-major offset i.
//
// Errors: ErrOutOfRange.
func (m *Dense[E]) AtFlat(i int) (scalar.Scalar[E], error) {
	if i < 0 || i >= len(m.data) {
		return scalar.Missing[E](), matrixErrorf(opAtFlat,
			fmt.Errorf("offset %d outside [0,%d): %w", i, len(m.data), ErrOutOfRange))
	}

	return scalar.ValueOf(m.data[i]), nil
}

// Cell returns the missing-aware boxed element at (r, c). This is the
// kind-erased accessor behind the Matrix interface; typed callers should
// prefer At.
//
// Errors: ErrOutOfRange.
func (m *Dense[E]) Cell(r, c int) (scalar.Scalar[any], error) {
	i, err := m.offset(r, c)
	if err != nil {
		return scalar.Missing[any](), matrixErrorf(opCell, err)
	}
	if m.desc.IsMissing(m.data[i]) {
		return scalar.Missing[any](), nil
	}

	return scalar.ValueOf[any](m.data[i]), nil
}

// Reshape returns a rows×cols matrix sharing this matrix's backing data in
// row-major order. The element count must match exactly; reshape never
// truncates or pads. The result carries its own transpose cache.
//
// Errors: ErrBadShape when rows or cols is negative or rows*cols != Len().
func (m *Dense[E]) Reshape(rows, cols int) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opReshape,
			fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrBadShape))
	}
	if rows*cols != m.Len() {
		return nil, matrixErrorf(opReshape,
			fmt.Errorf("%d elements cannot fill %dx%d: %w", m.Len(), rows, cols, ErrBadShape))
	}

	return freeze(rows, cols, m.data, m.desc), nil
}

// Copy returns a matrix with a freshly owned backing slice. Canonical
// empties are shared, not cloned.
func (m *Dense[E]) Copy() *Dense[E] {
	if m.IsEmpty() {
		return m
	}
	clone := make([]E, len(m.data))
	copy(clone, m.data)

	return freeze(m.rows, m.cols, clone, m.desc)
}

// Contents returns a fresh copy of the raw backing slice in row-major
// order, NA sentinels included. Mutating the result never affects the
// matrix.
func (m *Dense[E]) Contents() []E {
	out := make([]E, len(m.data))
	copy(out, m.data)

	return out
}

// HasNA reports whether any element is the NA sentinel for this kind.
// Always false for bool matrices.
func (m *Dense[E]) HasNA() bool {
	for i := range m.data {
		if m.desc.IsMissing(m.data[i]) {
			return true
		}
	}

	return false
}

// missingAt implements Matrix.
func (m *Dense[E]) missingAt(i int) bool { return m.desc.IsMissing(m.data[i]) }

// boxedRaw implements Matrix.
func (m *Dense[E]) boxedRaw(i int) any { return m.data[i] }

// widenAt implements Matrix.
func (m *Dense[E]) widenAt(i int) float64 { return m.desc.Float64(m.data[i]) }

// cellText implements Matrix.
func (m *Dense[E]) cellText(i int) string { return m.desc.Format(m.data[i]) }
