// SPDX-License-Identifier: MIT
// Package matrix: elementwise arithmetic (matrix⊕matrix and matrix⊕scalar).
//
// Purpose:
//   - Provide the widening elementwise surface: Add, Sub, Hadamard, Div on
//     same-shape numeric operands, plus the scalar broadcasts Scale,
//     AddScalar, SubScalar, DivScalar.
//
// Behavior highlights:
//   - Every result is float64 regardless of input kinds; inputs widen on
//     access, NA widens to NaN and propagates per element (never poisoning
//     neighbours).
//   - Div and DivScalar follow IEEE semantics: x/0 is ±Inf, 0/0 is NaN. No
//     zero-divisor validation is imposed.
//   - All kernels share one pair of drivers (ewBinary, ewScalar); public
//     wrappers only choose the operator and the error tag.
//
// Errors:
//   - ErrNilMatrix, ErrNonNumeric, ErrShapeMismatch (binary forms only).
//
// Determinism:
//   - Row-major element order; results are bit-reproducible.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.

package matrix

import "github.com/katalvlaran/natrix/scalar"

// Add returns a + b elementwise as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrShapeMismatch.
func Add(a, b Matrix) (*Dense[float64], error) {
	return ewBinary(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b elementwise as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrShapeMismatch.
func Sub(a, b Matrix) (*Dense[float64], error) {
	return ewBinary(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Hadamard returns the elementwise product a ∘ b as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrShapeMismatch.
func Hadamard(a, b Matrix) (*Dense[float64], error) {
	return ewBinary(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Div returns the elementwise quotient a / b as a float64 matrix, IEEE
// semantics for zero divisors.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrShapeMismatch.
func Div(a, b Matrix) (*Dense[float64], error) {
	return ewBinary(opDiv, a, b, func(x, y float64) float64 { return x / y })
}

// Scale returns alpha * m elementwise as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
func Scale(m Matrix, alpha float64) (*Dense[float64], error) {
	return ewScalar(opScale, m, func(x float64) float64 { return x * alpha })
}

// AddScalar returns m + s elementwise as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
func AddScalar(m Matrix, s float64) (*Dense[float64], error) {
	return ewScalar(opAddConst, m, func(x float64) float64 { return x + s })
}

// SubScalar returns m - s elementwise as a float64 matrix.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
func SubScalar(m Matrix, s float64) (*Dense[float64], error) {
	return ewScalar(opSubConst, m, func(x float64) float64 { return x - s })
}

// DivScalar returns m / s elementwise as a float64 matrix, IEEE semantics
// when s is zero.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
func DivScalar(m Matrix, s float64) (*Dense[float64], error) {
	return ewScalar(opDivConst, m, func(x float64) float64 { return x / s })
}

// ewBinary drives every two-operand elementwise kernel: validate, widen,
// apply op per element in row-major order.
func ewBinary(tag string, a, b Matrix, op func(x, y float64) float64) (*Dense[float64], error) {
	if err := ValidateBinaryNumeric(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if a.IsEmpty() {
		return Empty[float64](), nil
	}

	out := make([]float64, a.Len())
	for i := range out {
		out[i] = op(a.widenAt(i), b.widenAt(i))
	}

	return freeze(a.Rows(), a.Cols(), out, scalar.Of[float64]()), nil
}

// ewScalar drives every broadcast kernel: validate, widen, apply op per
// element in row-major order.
func ewScalar(tag string, m Matrix, op func(x float64) float64) (*Dense[float64], error) {
	if err := ValidateUnaryNumeric(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if m.IsEmpty() {
		return Empty[float64](), nil
	}

	out := make([]float64, m.Len())
	for i := range out {
		out[i] = op(m.widenAt(i))
	}

	return freeze(m.Rows(), m.Cols(), out, scalar.Of[float64]()), nil
}
