// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"

	"gorgonia.org/tensor"

	"github.com/katalvlaran/natrix/matrix"
)

var (
	// ErrNilMatrix indicates a nil matrix handed to ToTensor.
	ErrNilMatrix = errors.New("convert: nil matrix")

	// ErrNilTensor indicates a nil tensor handed to FromTensor.
	ErrNilTensor = errors.New("convert: nil tensor")

	// ErrEmptyMatrix indicates an empty matrix handed to ToTensor; gorgonia
	// rejects zero-size shapes, so the conversion is undefined.
	ErrEmptyMatrix = errors.New("convert: empty matrix")

	// ErrTensorShape indicates a tensor whose shape is not 2-D.
	ErrTensorShape = errors.New("convert: tensor is not 2-D")

	// ErrTensorKind indicates a tensor element type natrix does not store
	// natively.
	ErrTensorKind = errors.New("convert: unsupported tensor element type")
)

// ToTensor copies m into a freshly backed rows×cols *tensor.Dense of the
// matching dtype. NA sentinels travel as raw values (see package doc).
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
func ToTensor[E matrix.Elem](m *matrix.Dense[E]) (*tensor.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToTensor: %w", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("ToTensor: %w", ErrEmptyMatrix)
	}

	// Contents copies, so the tensor owns its backing exclusively.
	return tensor.New(
		tensor.WithShape(m.Rows(), m.Cols()),
		tensor.WithBacking(m.Contents()),
	), nil
}

// FromTensor copies a 2-D dense tensor into the natrix matrix matching its
// dtype. float32 widens to float64 and int converts to int64, so every
// common gorgonia dtype lands on a native kind; values that equal a kind's
// NA sentinel become missing.
//
// Errors: ErrNilTensor, ErrTensorShape, ErrTensorKind.
func FromTensor(t *tensor.Dense) (matrix.Matrix, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTensor: %w", ErrNilTensor)
	}

	shape := t.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("FromTensor: %d-D shape %v: %w", len(shape), shape, ErrTensorShape)
	}
	rows, cols := shape[0], shape[1]

	switch data := t.Data().(type) {
	case []float64:
		return buildDense(rows, cols, data, func(v float64) float64 { return v })
	case []float32:
		return buildDense(rows, cols, data, func(v float32) float64 { return float64(v) })
	case []int32:
		return buildDense(rows, cols, data, func(v int32) int32 { return v })
	case []int64:
		return buildDense(rows, cols, data, func(v int64) int64 { return v })
	case []int:
		return buildDense(rows, cols, data, func(v int) int64 { return int64(v) })
	case []bool:
		return buildDense(rows, cols, data, func(v bool) bool { return v })
	default:
		return nil, fmt.Errorf("FromTensor: backing %T: %w", t.Data(), ErrTensorKind)
	}
}

// buildDense copies src through conv into a fresh natrix matrix.
func buildDense[S any, D matrix.Elem](rows, cols int, src []S, conv func(S) D) (matrix.Matrix, error) {
	out := make([]D, len(src))
	for i, v := range src {
		out[i] = conv(v)
	}

	m, err := matrix.New(rows, cols, out)
	if err != nil {
		return nil, fmt.Errorf("FromTensor: %w", err)
	}

	return m, nil
}
