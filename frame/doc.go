// SPDX-License-Identifier: MIT

// Package frame promotes natrix matrices to labeled tables: every row and
// column gets a name, and cells become addressable by (rowLabel, colLabel)
// instead of integer positions.
//
// Contracts:
//
//   - Promotion is explicit and total: FromMatrix wires labels to an
//     existing Matrix; there is no implicit table view on the matrix side.
//   - Label sets are frozen at construction. Counts must match the matrix
//     shape exactly (ErrLabelMismatch), duplicates are rejected
//     (ErrDuplicateLabel), and omitted axes default to positional names
//     r0..rN-1 / c0..cN-1.
//   - Frames are read-only views: they never copy or mutate the underlying
//     matrix, and they are safe for concurrent readers.
//
// Lookups resolve labels through O(1) index maps; At returns the
// missing-aware boxed cell, so NA semantics match the matrix package.
package frame
