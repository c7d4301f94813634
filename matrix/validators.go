// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/kind checks here.
//  - Return plain sentinel errors (tagged once) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Numeric → Shape).
//  - Each validator documents what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Errors: ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Errors: wrapped ErrShapeMismatch carrying both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Errors: wrapped ErrNonSquare carrying the shape.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateNumeric ensures m stores a numeric element kind (int32, int64 or
// float64). Bool and boxed matrices are rejected; widen them through Map
// first when arithmetic is intended.
// Assumes m is not nil (caller must ensure).
//
// Errors: wrapped ErrNonNumeric carrying the offending kind.
// Complexity: O(1).
func ValidateNumeric(m Matrix) error {
	if !m.Kind().IsNumeric() {
		return validatorErrorf("ValidateNumeric",
			fmt.Errorf("kind %s: %w", m.Kind(), ErrNonNumeric))
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly length n.
//
// Errors: ErrNilVector, wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Composite: NotNil(a) → NotNil(b) → inner-dimension check.
//
// Errors: ErrNilMatrix, wrapped ErrDimensionMismatch carrying both shapes.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d by %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinaryNumeric composes the full guard sequence for two-operand
// numeric kernels: NotNil(a) → NotNil(b) → Numeric(a) → Numeric(b).
//
// Errors: ErrNilMatrix, ErrNonNumeric.
// Complexity: O(1).
func ValidateBinaryNumeric(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if err := ValidateNumeric(a); err != nil {
		return err
	}
	if err := ValidateNumeric(b); err != nil {
		return err
	}

	return nil
}

// ValidateUnaryNumeric composes the guard sequence for one-operand numeric
// kernels: NotNil → Numeric.
//
// Errors: ErrNilMatrix, ErrNonNumeric.
// Complexity: O(1).
func ValidateUnaryNumeric(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNumeric(m); err != nil {
		return err
	}

	return nil
}
