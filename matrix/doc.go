// SPDX-License-Identifier: MIT

// Package matrix implements the natrix dense 2-D core: immutable,
// missing-value aware, type-specialized matrices with generic algorithms
// and cache-conscious numeric kernels.
//
// What lives here:
//
//   - Dense[E] — one generic implementation covering all element kinds
//     (bool, int32, int64, float64, boxed any) in flat row-major storage.
//   - Matrix — the kind-erased read interface; mixed-kind operations
//     (Mul, Add, Equal, Format, frame promotion) traverse through it.
//   - Factories — New/NewAny (ownership-taking flat constructors),
//     FromRows/FromCols/FromSlices (copying builders), Zeros, Fill,
//     Tabulate, Ident, Diag, and the canonical Empty per kind.
//   - Algorithms — Map (kind-changing), Fold (sequential left fold),
//     TakeRows/TakeCols, WithoutRows/WithoutCols, RowsWithNA/ColsWithNA,
//     DropRowsWithNA/DropColsWithNA, Row/Col/RowVecs/ColVecs.
//   - Numerics — Mul (widening product), MatVec, Trace, RoundTo (half-up
//     on the scaled value), Add/Sub/Hadamard/Div and scalar broadcasts.
//   - Equality & hashing — NA-aware, kind-transparent for missing cells.
//
// Core contracts:
//
//   - Immutability: no operation writes to an existing matrix. Kernels
//     build on plain mutable buffers, then freeze them; after freeze, a
//     backing slice is never written again.
//   - Missing values: each kind designates a raw NA sentinel (see package
//     scalar). NA survives transposition and extraction, widens to NaN in
//     numerics, matches NA of any kind in equality, and renders as "NA".
//   - Memoized transpose: T() materializes once per instance, atomically,
//     and back-links so m.T().T() returns m itself. Column-oriented
//     operations ride the same memoized view.
//   - Errors: sentinel values matched via errors.Is, wrapped with the
//     operation tag and the offending shape/index. Raw/RawAt are the only
//     panicking accessors, documented as such.
//
// Concurrency: matrices are safe for unlimited concurrent readers after
// construction; the transpose cache publishes via CompareAndSwap, so
// racing first readers converge on one instance.
package matrix
