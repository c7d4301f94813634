// Package natrix is an immutable, NA-aware, type-specialized 2-D matrix
// core for Go — flat row-major storage with missing-value semantics baked
// into every element kind.
//
// 🧮 What is natrix?
//
//	A small, allocation-conscious library that brings together:
//		• Typed storage: bool, int32, int64, float64 + a boxed fallback
//		• Missing values: per-kind NA sentinels, NA-aware equality & hashing
//		• Generic algorithms: map, fold, row/column extraction & removal
//		• Cache-friendly kernels: in-place square transpose, tiled rectangular transpose
//		• Numerics: double-precision multiply, elementwise arithmetic, half-up rounding
//		• Labeled views: promote any matrix to a row/column-labeled frame
//		• Interop: copy-based bridge to gorgonia.org/tensor
//
// ✨ Why choose natrix?
//
//   - Immutable by contract – every operation returns a fresh matrix, inputs never change
//   - Rock-solid guarantees – sentinel errors, validated shapes, race-free caches
//   - Cheap views – transposes are memoized, rows and columns are zero-copy slices
//   - Honest NA handling – missingness survives map, mult, round and compare
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/  — element-kind descriptors, NA sentinels & missing-aware scalars
//	vec/     — immutable 1-D views produced by row/column extraction
//	matrix/  — the dense 2-D core: factories, algorithms, numeric kernels
//	frame/   — labeled (row × column) views over any matrix
//	convert/ — adapters between natrix matrices and gorgonia tensors
//
// Quick ASCII example:
//
//	    [2 x 3]
//	    1  2 NA
//	    4  5  6
//
//	an int32 matrix whose (0,2) cell holds the NA sentinel.
//
// Dive into the per-package docs for contracts, error taxonomy and
// complexity notes on every operation.
//
//	go get github.com/katalvlaran/natrix/matrix
package natrix
