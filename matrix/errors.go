// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package, plus the operation tags used to label them. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for the
// documented trusted accessors (Raw, RawAt) and programmer errors in options.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid: negative
	// dimensions, a backing slice whose length disagrees with rows*cols, or
	// a Reshape target whose element count differs from the source.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row, column or flat offset) is
	// outside valid bounds. Public indexers (At, AtFlat, Cell, Row, Col,
	// TakeRows, TakeCols) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between inputs
	// of one operation: Mul where a.Cols != b.Rows, column vectors of uneven
	// length handed to FromCols, or a MatVec vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrShapeMismatch indicates two operand matrices whose shapes must be
	// identical but are not (Add/Sub/Hadamard/Div).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Trace).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonNumeric signals a numeric operation (Mul, MatVec, RoundTo,
	// elementwise arithmetic) applied to a bool or boxed element kind.
	ErrNonNumeric = errors.New("matrix: element kind is not numeric")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil vector argument was used (FromCols,
	// FromRows).
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNilFunc indicates that a nil callback was handed to Map, Fold or
	// Tabulate.
	ErrNilFunc = errors.New("matrix: nil function")
)

// Operation tags keep wrapped error prefixes consistent across the package
// ("Mul: ...", "TakeRows: ..."). One constant per public operation that can
// fail; grep for the tag to locate the producer.
const (
	opNew      = "New"
	opNewAny   = "NewAny"
	opFromRows = "FromRows"
	opFromCols = "FromCols"
	opSlices   = "FromSlices"
	opZeros    = "Zeros"
	opFill     = "Fill"
	opTabulate = "Tabulate"
	opIdent    = "Ident"
	opAt       = "At"
	opAtFlat   = "AtFlat"
	opCell     = "Cell"
	opReshape  = "Reshape"
	opRow      = "Row"
	opCol      = "Col"
	opTakeRows = "TakeRows"
	opTakeCols = "TakeCols"
	opMap      = "Map"
	opFold     = "Fold"
	opMul      = "Mul"
	opMatVec   = "MatVec"
	opTrace    = "Trace"
	opRoundTo  = "RoundTo"
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opDiv      = "Div"
	opScale    = "Scale"
	opAddConst = "AddScalar"
	opSubConst = "SubScalar"
	opDivConst = "DivScalar"
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Used by every public operation to maintain consistent labeling.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
