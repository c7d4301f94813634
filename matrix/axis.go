// SPDX-License-Identifier: MIT
// Package matrix: row and column surgery.
//
// Purpose:
//   - Select (TakeRows/TakeCols), exclude (WithoutRows/WithoutCols) and
//     NA-scan (RowsWithNA/ColsWithNA, DropRowsWithNA/DropColsWithNA) along
//     both axes, plus zero-copy Row/Col vector views.
//
// Contracts:
//   - Row operations work directly on the row-major backing. Column
//     selection pivots through the memoized transpose and transposes back,
//     so a column gather costs at most one transpose materialization, which
//     is then shared by every later column operation on the same matrix.
//   - Take* validates indices (ErrOutOfRange) and preserves request order,
//     repeats included. Without* is complement semantics: out-of-range and
//     duplicate indices are ignored.
//   - Row and Col return vectors backed by the matrix's frozen storage
//     (no copy); Col slices into the transpose's storage.
//
// Complexity:
//   - TakeRows O(k*c); TakeCols O(k*r) after the one-time transpose;
//     NA scans O(r*c) worst case with early exit per row/column.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/natrix/vec"
)

// TakeRows returns a new matrix made of the listed rows, in the order
// given. Indices may repeat; each occurrence contributes one output row.
// No indices yields the canonical empty matrix.
//
// Errors: ErrOutOfRange naming the first offending index.
func (m *Dense[E]) TakeRows(idx ...int) (*Dense[E], error) {
	if len(idx) == 0 {
		return Empty[E](), nil
	}

	data, err := takeRowsData(m, idx)
	if err != nil {
		return nil, matrixErrorf(opTakeRows, err)
	}

	return freeze(len(idx), m.cols, data, m.desc), nil
}

// TakeCols returns a new matrix made of the listed columns, in the order
// given. Indices may repeat. Implemented as transpose -> TakeRows ->
// transpose, riding the memoized transpose.
//
// Errors: ErrOutOfRange naming the first offending index.
func (m *Dense[E]) TakeCols(idx ...int) (*Dense[E], error) {
	for _, c := range idx {
		if c < 0 || c >= m.cols {
			return nil, matrixErrorf(opTakeCols,
				fmt.Errorf("column %d outside [0,%d): %w", c, m.cols, ErrOutOfRange))
		}
	}
	if len(idx) == 0 {
		return Empty[E](), nil
	}

	picked, err := m.T().TakeRows(idx...)
	if err != nil {
		return nil, matrixErrorf(opTakeCols, err)
	}

	return picked.T(), nil
}

// WithoutRows returns a new matrix with the listed rows removed. Indices
// out of range and duplicates are ignored; removing every row yields the
// canonical empty matrix.
func (m *Dense[E]) WithoutRows(idx ...int) *Dense[E] {
	if m.IsEmpty() {
		return m
	}

	data, kept := withoutRowsData(m, idx)
	return freeze(kept, m.cols, data, m.desc)
}

// WithoutCols returns a new matrix with the listed columns removed.
// Indices out of range and duplicates are ignored.
func (m *Dense[E]) WithoutCols(idx ...int) *Dense[E] {
	if m.IsEmpty() {
		return m
	}

	return m.T().WithoutRows(idx...).T()
}

// RowsWithNA returns the ordered indices of rows containing at least one
// missing element. Always empty for bool matrices.
func (m *Dense[E]) RowsWithNA() []int {
	var out []int
	for r := 0; r < m.rows; r++ {
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			if m.desc.IsMissing(m.data[base+c]) {
				out = append(out, r)
				break
			}
		}
	}

	return out
}

// ColsWithNA returns the ordered indices of columns containing at least one
// missing element. Scans column-major over the row-major backing; no
// transpose is materialized for a pure inspection.
func (m *Dense[E]) ColsWithNA() []int {
	var out []int
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			if m.desc.IsMissing(m.data[r*m.cols+c]) {
				out = append(out, c)
				break
			}
		}
	}

	return out
}

// DropRowsWithNA returns a new matrix without any row that contains a
// missing element. A matrix with NA everywhere collapses to the canonical
// empty.
func (m *Dense[E]) DropRowsWithNA() *Dense[E] {
	return m.WithoutRows(m.RowsWithNA()...)
}

// DropColsWithNA returns a new matrix without any column that contains a
// missing element.
func (m *Dense[E]) DropColsWithNA() *Dense[E] {
	return m.WithoutCols(m.ColsWithNA()...)
}

// Row returns the i-th row as a zero-copy vector view over the frozen
// backing slice.
//
// Errors: ErrOutOfRange.
func (m *Dense[E]) Row(i int) (*vec.Dense[E], error) {
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(opRow,
			fmt.Errorf("row %d outside [0,%d): %w", i, m.rows, ErrOutOfRange))
	}

	// Full slice expression: the view cannot be append-extended into the
	// neighbouring row.
	return vec.New(m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]), nil
}

// Col returns the j-th column as a zero-copy vector view over the memoized
// transpose's backing slice. The first call on a matrix pays the transpose
// cost; subsequent Col calls are O(1).
//
// Errors: ErrOutOfRange.
func (m *Dense[E]) Col(j int) (*vec.Dense[E], error) {
	if j < 0 || j >= m.cols {
		return nil, matrixErrorf(opCol,
			fmt.Errorf("column %d outside [0,%d): %w", j, m.cols, ErrOutOfRange))
	}

	t := m.T()
	return vec.New(t.data[j*t.cols : (j+1)*t.cols : (j+1)*t.cols]), nil
}

// RowVecs returns all rows as zero-copy vector views, top to bottom.
func (m *Dense[E]) RowVecs() []*vec.Dense[E] {
	out := make([]*vec.Dense[E], m.rows)
	for i := range out {
		out[i] = vec.New(m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols])
	}

	return out
}

// ColVecs returns all columns as zero-copy vector views, left to right,
// sharing the memoized transpose's storage.
func (m *Dense[E]) ColVecs() []*vec.Dense[E] {
	return m.T().RowVecs()
}
