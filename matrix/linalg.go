// SPDX-License-Identifier: MIT
// Package matrix: numeric kernels (multiply, matrix-vector, trace, rounding).
//
// Purpose:
//   - Implement the double-precision numeric surface shared by all numeric
//     element kinds: every input element is widened to float64 on access,
//     every result is a float64 matrix (or vector/scalar).
//
// Behavior highlights:
//   - NA participates as NaN: a missing operand poisons exactly the outputs
//     it feeds (one dot product for Mul, one entry for MatVec, the sum for
//     Trace), mirroring IEEE propagation.
//   - Mul runs i→k→j so the inner loop streams both B and the output row
//     sequentially; no transpose of B is needed.
//   - RoundTo rounds half away from zero upward on the scaled value:
//     floor(x*10^sig + 0.5) / 10^sig. This is deliberate decimal rounding
//     on binary doubles, so 1.005 scales to 100.4999... and rounds DOWN;
//     the function is faithful to scaled half-up, not to printed decimals.
//
// Inputs:
//   - Kind-erased Matrix operands; bool and boxed kinds are rejected with
//     ErrNonNumeric (widen them explicitly via Map when intended).
//
// Errors:
//   - ErrNilMatrix, ErrNonNumeric, ErrDimensionMismatch (Mul/MatVec),
//     ErrNonSquare (Trace).
//
// Determinism:
//   - Fixed loop orders; accumulation order is stable, so results are
//     bit-reproducible across runs.
//
// Complexity:
//   - Mul O(m*k*n); MatVec O(r*c); Trace O(n); RoundTo O(r*c).

package matrix

import (
	"math"

	"github.com/katalvlaran/natrix/scalar"
)

// Mul returns the matrix product a×b as a float64 matrix, widening both
// operands element by element. Inner dimensions must agree (a.Cols ==
// b.Rows). Missing operands propagate as NaN into every dot product they
// touch.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrDimensionMismatch.
func Mul(a, b Matrix) (*Dense[float64], error) {
	if err := ValidateBinaryNumeric(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	if rows == 0 || inner == 0 || cols == 0 {
		return Empty[float64](), nil
	}

	out := make([]float64, rows*cols)

	// Fast path: both operands already float64 — skip the per-element
	// interface dispatch and read the backing slices directly. The loop
	// order matches the generic path, so results are bit-identical.
	if af, aok := a.(*Dense[float64]); aok {
		if bf, bok := b.(*Dense[float64]); bok {
			mulFloat64(out, af.data, bf.data, rows, inner, cols)

			return freeze(rows, cols, out, scalar.Of[float64]()), nil
		}
	}

	// Generic path: i→k→j, hoist a[i,k] once, stream b's k-th row and
	// out's i-th row; widening happens on access.
	for i := 0; i < rows; i++ {
		outBase := i * cols
		for k := 0; k < inner; k++ {
			av := a.widenAt(i*inner + k)
			bBase := k * cols
			for j := 0; j < cols; j++ {
				out[outBase+j] += av * b.widenAt(bBase+j)
			}
		}
	}

	return freeze(rows, cols, out, scalar.Of[float64]()), nil
}

// mulFloat64 is the specialized triple loop for float64×float64 operands.
func mulFloat64(out, a, b []float64, rows, inner, cols int) {
	for i := 0; i < rows; i++ {
		outBase := i * cols
		aBase := i * inner
		for k := 0; k < inner; k++ {
			av := a[aBase+k]
			bBase := k * cols
			for j := 0; j < cols; j++ {
				out[outBase+j] += av * b[bBase+j]
			}
		}
	}
}

// MatVec returns m×x as a fresh float64 vector: out[i] = Σ_k m[i,k]*x[k].
// Missing matrix elements propagate as NaN into the affected entries.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrNilVector, ErrDimensionMismatch.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateUnaryNumeric(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		base := i * cols
		var sum float64
		for k := 0; k < cols; k++ {
			sum += m.widenAt(base+k) * x[k]
		}
		out[i] = sum
	}

	return out, nil
}

// Trace returns the sum of the main diagonal, widened to float64. The
// empty matrix has trace 0; any missing diagonal element yields NaN.
//
// Errors: ErrNilMatrix, ErrNonNumeric, ErrNonSquare.
func Trace(m Matrix) (float64, error) {
	if err := ValidateUnaryNumeric(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	var sum float64
	for i := 0; i < n; i++ {
		sum += m.widenAt(i*n + i)
	}

	return sum, nil
}

// RoundTo returns a float64 matrix with every element rounded to sig
// significant decimal places using half-up on the scaled value:
// floor(v*10^sig + 0.5) / 10^sig. NA stays NaN. Negative sig rounds to
// tens, hundreds, and so on.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
func RoundTo(m Matrix, sig int) (*Dense[float64], error) {
	if err := ValidateUnaryNumeric(m); err != nil {
		return nil, matrixErrorf(opRoundTo, err)
	}
	if m.IsEmpty() {
		return Empty[float64](), nil
	}

	scale := math.Pow(10, float64(sig))
	out := make([]float64, m.Len())
	for i := range out {
		// NaN flows through floor and divide unchanged.
		out[i] = math.Floor(m.widenAt(i)*scale+0.5) / scale
	}

	return freeze(m.Rows(), m.Cols(), out, scalar.Of[float64]()), nil
}
