// SPDX-License-Identifier: MIT
// Package matrix: generic element algorithms (map, fold, row gather/drop).
//
// Purpose:
//   - Implement the kind-generic traversals once, over the flat backing
//     slice, instead of once per element kind.
//   - Map and Fold are free functions rather than methods: Go methods
//     cannot introduce fresh type parameters, and both need an output type
//     independent of the receiver's element type.
//
// Contracts:
//   - Traversal order is row-major, left to right, top to bottom; Fold is
//     strictly sequential (left fold), so non-commutative accumulators are
//     well defined.
//   - Callbacks see raw elements, NA sentinels included. Kind-changing maps
//     must translate sentinels themselves when NA should survive the trip
//     (e.g. int32 MinInt32 -> NaN); the scalar package exposes the
//     per-kind descriptors for exactly that.
//
// Determinism:
//   - Pure functions of the input; fixed iteration order; no goroutines.
//
// Complexity:
//   - Time O(r*c) with one callback invocation per element; Map allocates
//     one output slice, Fold allocates nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/natrix/scalar"
)

// Map applies f to every element of m in row-major order and assembles the
// results into a new D-kind matrix of the same shape. The source is never
// modified.
//
// Errors: ErrNilMatrix, ErrNilFunc.
func Map[S, D any](m *Dense[S], f func(S) D) (*Dense[D], error) {
	if m == nil {
		return nil, matrixErrorf(opMap, ErrNilMatrix)
	}
	if f == nil {
		return nil, matrixErrorf(opMap, ErrNilFunc)
	}
	if m.IsEmpty() {
		return Empty[D](), nil
	}

	out := make([]D, len(m.data))
	for i, v := range m.data {
		out[i] = f(v)
	}

	return freeze(m.rows, m.cols, out, scalar.Of[D]()), nil
}

// Fold reduces m to a single accumulator value: acc starts at init and is
// replaced by f(acc, elem) for every element in row-major order. The empty
// matrix folds to init.
//
// Errors: ErrNilMatrix, ErrNilFunc.
func Fold[E, A any](m *Dense[E], init A, f func(acc A, v E) A) (A, error) {
	if m == nil {
		return init, matrixErrorf(opFold, ErrNilMatrix)
	}
	if f == nil {
		return init, matrixErrorf(opFold, ErrNilFunc)
	}

	acc := init
	for _, v := range m.data {
		acc = f(acc, v)
	}

	return acc, nil
}

// takeRowsData gathers the listed rows (repeats allowed, order preserved)
// into fresh row-major storage. Bounds are validated per index so the error
// names the first offending row.
func takeRowsData[E any](m *Dense[E], idx []int) ([]E, error) {
	out := make([]E, len(idx)*m.cols)
	for k, r := range idx {
		if r < 0 || r >= m.rows {
			return nil, fmt.Errorf("row %d outside [0,%d): %w", r, m.rows, ErrOutOfRange)
		}
		copy(out[k*m.cols:(k+1)*m.cols], m.data[r*m.cols:(r+1)*m.cols])
	}

	return out, nil
}

// withoutRowsData copies every row whose index is NOT listed, preserving
// order. Out-of-range and duplicate indices are ignored: the result is the
// complement of the requested set.
func withoutRowsData[E any](m *Dense[E], idx []int) ([]E, int) {
	drop := make(map[int]struct{}, len(idx))
	for _, r := range idx {
		if r >= 0 && r < m.rows {
			drop[r] = struct{}{}
		}
	}

	kept := m.rows - len(drop)
	out := make([]E, 0, kept*m.cols)
	for r := 0; r < m.rows; r++ {
		if _, skip := drop[r]; skip {
			continue
		}
		out = append(out, m.data[r*m.cols:(r+1)*m.cols]...)
	}

	return out, kept
}
