// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose UNEXPORTED transpose kernels and the element hasher to
//     matrix_test ONLY: agreement checks (blocked vs naive) and hash
//     canonicalization need direct kernel access without widening the
//     production API.
//
// Notes:
//   - File ends in _test.go, so this bridge never ships in prod builds.
//   - Keep ALL test-only bridges co-located here to avoid clutter.

// TransposeBlocked_TestOnly forwards to the private tiled kernel.
func TransposeBlocked_TestOnly(dst, src []float64, rows, cols int) {
	transposeBlocked(dst, src, rows, cols)
}

// TransposeNaive_TestOnly forwards to the private reference scatter.
func TransposeNaive_TestOnly(dst, src []float64, rows, cols int) {
	transposeNaive(dst, src, rows, cols)
}

// TransposeSquare_TestOnly forwards to the private in-place swapper.
func TransposeSquare_TestOnly(data []float64, n int) {
	transposeSquare(data, n)
}

// ValueHash_TestOnly forwards to the private boxed-element hasher.
func ValueHash_TestOnly(v any) uint64 { return valueHash(v) }

// TransposeBlock_TestOnly exposes the tile edge so shape tests can cross it.
const TransposeBlock_TestOnly = transposeBlock
