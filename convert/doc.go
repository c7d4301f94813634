// SPDX-License-Identifier: MIT

// Package convert provides two-way adapters between natrix matrices and
// gorgonia.org/tensor dense tensors:
//   - ToTensor copies a native-kind matrix into a freshly backed 2-D
//     *tensor.Dense.
//   - FromTensor copies a 2-D *tensor.Dense into the natrix matrix whose
//     element kind matches the tensor's dtype.
//
// Both directions copy; a converted value never aliases its source, so
// natrix immutability survives round trips through mutable tensors.
//
// NA caveat: gorgonia has no missing-value notion. Sentinels travel as
// their raw values (NaN, MinInt32, MinInt64) and are re-recognized as NA
// on the way back. Bool matrices round-trip exactly; boxed matrices are
// not convertible.
package convert
