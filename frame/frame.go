// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/natrix/matrix"
	"github.com/katalvlaran/natrix/scalar"
)

var (
	// ErrNilMatrix indicates that a nil Matrix was handed to FromMatrix.
	ErrNilMatrix = errors.New("frame: nil matrix")

	// ErrLabelMismatch indicates a label count that disagrees with the
	// matrix shape.
	ErrLabelMismatch = errors.New("frame: label count does not match shape")

	// ErrDuplicateLabel indicates a repeated label on one axis.
	ErrDuplicateLabel = errors.New("frame: duplicate label")

	// ErrUnknownLabel indicates a lookup with a label absent from the axis.
	ErrUnknownLabel = errors.New("frame: unknown label")
)

// Frame is a read-only labeled view over a Matrix. Construct via FromMatrix.
type Frame struct {
	m matrix.Matrix

	rowLabels []string
	colLabels []string
	rowPos    map[string]int
	colPos    map[string]int
}

// Option configures frame construction.
type Option func(*options)

type options struct {
	rowLabels []string
	colLabels []string
}

// WithRowLabels names the rows, top to bottom. The count must equal the
// matrix row count.
func WithRowLabels(labels ...string) Option {
	return func(o *options) { o.rowLabels = labels }
}

// WithColLabels names the columns, left to right. The count must equal the
// matrix column count.
func WithColLabels(labels ...string) Option {
	return func(o *options) { o.colLabels = labels }
}

// FromMatrix promotes m to a labeled frame. Axes without explicit labels
// get positional defaults (r0..rN-1, c0..cN-1).
//
// Errors: ErrNilMatrix, ErrLabelMismatch, ErrDuplicateLabel.
func FromMatrix(m matrix.Matrix, opts ...Option) (*Frame, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}

	var o options
	for _, set := range opts {
		set(&o)
	}

	rowLabels, rowPos, err := buildAxis("row", o.rowLabels, m.Rows(), 'r')
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}
	colLabels, colPos, err := buildAxis("column", o.colLabels, m.Cols(), 'c')
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return &Frame{m: m, rowLabels: rowLabels, colLabels: colLabels, rowPos: rowPos, colPos: colPos}, nil
}

// buildAxis validates (or synthesizes) one axis' labels and builds the
// label→position index.
func buildAxis(axis string, labels []string, n int, prefix byte) ([]string, map[string]int, error) {
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = fmt.Sprintf("%c%d", prefix, i)
		}
	} else if len(labels) != n {
		return nil, nil, fmt.Errorf("%s labels: %d names for %d %ss: %w", axis, len(labels), n, axis, ErrLabelMismatch)
	}

	pos := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := pos[l]; dup {
			return nil, nil, fmt.Errorf("%s label %q: %w", axis, l, ErrDuplicateLabel)
		}
		pos[l] = i
	}

	// Freeze our own copy; callers keep ownership of their slice.
	frozen := make([]string, len(labels))
	copy(frozen, labels)

	return frozen, pos, nil
}

// Rows returns the number of rows.
func (f *Frame) Rows() int { return f.m.Rows() }

// Cols returns the number of columns.
func (f *Frame) Cols() int { return f.m.Cols() }

// Mat returns the underlying matrix (shared, immutable).
func (f *Frame) Mat() matrix.Matrix { return f.m }

// RowLabels returns a copy of the row labels, top to bottom.
func (f *Frame) RowLabels() []string {
	out := make([]string, len(f.rowLabels))
	copy(out, f.rowLabels)

	return out
}

// ColLabels returns a copy of the column labels, left to right.
func (f *Frame) ColLabels() []string {
	out := make([]string, len(f.colLabels))
	copy(out, f.colLabels)

	return out
}

// RowIndex resolves a row label to its position.
//
// Errors: ErrUnknownLabel.
func (f *Frame) RowIndex(label string) (int, error) {
	i, ok := f.rowPos[label]
	if !ok {
		return 0, fmt.Errorf("RowIndex(%q): %w", label, ErrUnknownLabel)
	}

	return i, nil
}

// ColIndex resolves a column label to its position.
//
// Errors: ErrUnknownLabel.
func (f *Frame) ColIndex(label string) (int, error) {
	i, ok := f.colPos[label]
	if !ok {
		return 0, fmt.Errorf("ColIndex(%q): %w", label, ErrUnknownLabel)
	}

	return i, nil
}

// At returns the missing-aware boxed cell addressed by labels.
//
// Errors: ErrUnknownLabel.
func (f *Frame) At(rowLabel, colLabel string) (scalar.Scalar[any], error) {
	r, err := f.RowIndex(rowLabel)
	if err != nil {
		return scalar.Missing[any](), fmt.Errorf("At: %w", err)
	}
	c, err := f.ColIndex(colLabel)
	if err != nil {
		return scalar.Missing[any](), fmt.Errorf("At: %w", err)
	}

	// Positions came from the index maps, so Cell cannot range-fail here.
	return f.m.Cell(r, c)
}

// String renders the frame as a labeled grid: a header row of column
// labels, then one line per row led by its label. Cells are right-justified
// per column; missing cells render as "NA".
func (f *Frame) String() string {
	rows, cols := f.Rows(), f.Cols()

	// Width of the row-label gutter.
	gutter := 0
	for _, l := range f.rowLabels {
		if len(l) > gutter {
			gutter = len(l)
		}
	}

	// Per-column width: label vs widest cell.
	widths := make([]int, cols)
	texts := make([]string, rows*cols)
	for c := 0; c < cols; c++ {
		widths[c] = len(f.colLabels[c])
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell, _ := f.m.Cell(r, c)
			t := cell.String()
			texts[r*cols+c] = t
			if len(t) > widths[c] {
				widths[c] = len(t)
			}
		}
	}

	var b strings.Builder
	pad := func(s string, w int) {
		for i := len(s); i < w; i++ {
			b.WriteByte(' ')
		}
		b.WriteString(s)
	}

	pad("", gutter)
	for c := 0; c < cols; c++ {
		b.WriteByte(' ')
		pad(f.colLabels[c], widths[c])
	}
	for r := 0; r < rows; r++ {
		b.WriteByte('\n')
		pad(f.rowLabels[r], gutter)
		for c := 0; c < cols; c++ {
			b.WriteByte(' ')
			pad(texts[r*cols+c], widths[c])
		}
	}

	return b.String()
}
