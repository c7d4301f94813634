// SPDX-License-Identifier: MIT

// Package scalar defines the element-kind layer underneath natrix
// containers: which Go types get specialized dense storage, which raw
// value of each type denotes a missing cell (NA), and how single values
// widen to float64 and render as text.
//
// Contracts:
//
//   - Kind enumerates the closed set of storage classes: KindBool,
//     KindInt32, KindInt64, KindFloat64 and the boxed KindAny fallback.
//   - Desc[T] is the per-type capability bundle. Descriptors are
//     stateless and safe for concurrent use.
//   - Of[T]() resolves the descriptor for T at runtime; the four native
//     kinds dispatch to specialized descriptors, everything else falls
//     back to boxed semantics.
//   - Scalar[T] is a missing-aware single value: either NA or a value.
//     ValueOf collapses the kind's sentinel into NA automatically.
//
// NA sentinels:
//
//	bool    — none; booleans are never missing
//	int32   — math.MinInt32
//	int64   — math.MinInt64
//	float64 — NaN
//	boxed   — untyped nil
//
// Determinism: every function in this package is a pure function of its
// inputs.
package scalar
