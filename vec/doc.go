// SPDX-License-Identifier: MIT

// Package vec provides the immutable 1-D views natrix matrices hand out:
// a Dense[E] wraps a typed element slice without copying, so extracting a
// row or column from a matrix stays O(1) where the backing layout allows.
//
// Contracts:
//
//   - Dense[E] never mutates its backing slice and exposes no setters.
//   - New wraps the given slice directly; callers that keep writing to
//     the slice afterwards break the immutability contract. Factories in
//     the matrix package always hand vec a frozen slice.
//   - Raw panics on out-of-range indices (trusted hot path, use with
//     caution); At returns an error instead.
//   - NA semantics follow package scalar: At reports sentinel cells as
//     missing scalars, Contents copies raw sentinels through untouched.
//
// Determinism: all operations are pure reads.
package vec
