// SPDX-License-Identifier: MIT
// Package matrix: transpose kernels and the memoized T() entry point.
//
// Purpose:
//   - Provide the one derived view every axis-flipping operation rides on:
//     TakeCols, WithoutCols, Col, ColVecs and Mul's column access all reuse
//     the matrix's transpose instead of recomputing strided walks.
//
// Implementation:
//   - Stage 1 (square): clone the backing slice once, then swap symmetric
//     off-diagonal pairs in place on the clone. One pass over the upper
//     triangle, no second buffer.
//   - Stage 2 (rectangular): scatter src into a fresh dst tile by tile
//     (transposeBlock × transposeBlock). Within a tile both the source rows
//     and the destination columns stay cache-resident, which is the whole
//     point: a naive dst[c*rows+r] walk misses on every write for large
//     shapes.
//
// Behavior highlights:
//   - T() memoizes: the first call materializes the transpose, every later
//     call returns the same instance. The fresh transpose is back-linked,
//     so m.T().T() returns m itself, pointer-identical.
//   - The empty matrix is its own transpose.
//   - Concurrent first calls race benignly: one materialization wins the
//     CompareAndSwap, the rest are garbage collected.
//
// Determinism:
//   - Output is a pure function of the input; tiling affects only access
//     order, never values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the materialized view (O(1) extra for
//     the square in-place pass).

package matrix

// transposeBlock is the tile edge for the rectangular kernel. 32×32 tiles
// of 8-byte elements touch 8 KiB per side, comfortably inside L1 while
// leaving room for both the read and the write working set.
const transposeBlock = 32

// T returns the transposed matrix. The result is memoized on first use and
// shared by all callers; transposing the transpose returns the original
// instance. Never returns nil.
func (m *Dense[E]) T() *Dense[E] {
	if m.IsEmpty() {
		return m
	}

	return m.trans.get(func() *Dense[E] {
		t := m.materializeT()
		// Back-link before publishing: the involution must hold for every
		// reader that can ever observe t.
		t.trans.seed(m)

		return t
	})
}

// materializeT builds the transposed twin, choosing the kernel by shape.
func (m *Dense[E]) materializeT() *Dense[E] {
	if m.rows == m.cols {
		clone := make([]E, len(m.data))
		copy(clone, m.data)
		transposeSquare(clone, m.rows)

		return &Dense[E]{rows: m.cols, cols: m.rows, data: clone, desc: m.desc}
	}

	dst := make([]E, len(m.data))
	transposeBlocked(dst, m.data, m.rows, m.cols)

	return &Dense[E]{rows: m.cols, cols: m.rows, data: dst, desc: m.desc}
}

// transposeSquare swaps symmetric off-diagonal pairs of an n×n row-major
// slice in place. The diagonal never moves.
func transposeSquare[E any](data []E, n int) {
	for r := 0; r < n; r++ {
		rowBase := r * n
		for c := r + 1; c < n; c++ {
			i, j := rowBase+c, c*n+r
			data[i], data[j] = data[j], data[i]
		}
	}
}

// transposeBlocked scatters src (rows×cols, row-major) into dst transposed
// (cols×rows, row-major), walking tile by tile. Edge tiles are clamped, so
// any shape works, not only multiples of transposeBlock.
func transposeBlocked[E any](dst, src []E, rows, cols int) {
	for rr := 0; rr < rows; rr += transposeBlock {
		rEnd := rr + transposeBlock
		if rEnd > rows {
			rEnd = rows
		}
		for cc := 0; cc < cols; cc += transposeBlock {
			cEnd := cc + transposeBlock
			if cEnd > cols {
				cEnd = cols
			}
			for r := rr; r < rEnd; r++ {
				base := r * cols
				for c := cc; c < cEnd; c++ {
					dst[c*rows+r] = src[base+c]
				}
			}
		}
	}
}

// transposeNaive is the reference scatter the blocked kernel must agree
// with; kept for tests and benchmarks.
func transposeNaive[E any](dst, src []E, rows, cols int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[c*rows+r] = src[r*cols+c]
		}
	}
}
