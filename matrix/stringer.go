// SPDX-License-Identifier: MIT
// Package matrix: text rendering.
//
// Purpose:
//   - Render any matrix as a compact aligned grid: a "[R x C]" header line,
//     then up to maxRows×maxCols cells, right-justified per column, with
//     "..." marking elided columns (per row) and elided rows (final line).
//
// Behavior highlights:
//   - Column widths are computed over the visible window only, so huge
//     matrices render without a full scan.
//   - Missing elements render as "NA" and participate in width alignment.
//   - The empty matrix renders as its header alone.
//   - No trailing newline; callers decide the surrounding layout.
//
// Complexity:
//   - Time O(min(r,maxRows) * min(c,maxCols)), Space proportional to the
//     rendered text.

package matrix

import (
	"fmt"
	"strings"
)

// Format renders m with the given options (defaults: DefaultMaxRows,
// DefaultMaxCols). A nil matrix renders as "<nil>".
func Format(m Matrix, opts ...Option) string {
	if m == nil {
		return "<nil>"
	}
	o := gatherOptions(opts...)

	var b strings.Builder
	fmt.Fprintf(&b, "[%d x %d]", m.Rows(), m.Cols())
	if m.IsEmpty() {
		return b.String()
	}

	showR, elideR := visible(m.Rows(), o.maxRows)
	showC, elideC := visible(m.Cols(), o.maxCols)

	// Pass 1: per-column width over the visible window.
	widths := make([]int, showC)
	for r := 0; r < showR; r++ {
		base := r * m.Cols()
		for c := 0; c < showC; c++ {
			if n := len(m.cellText(base + c)); n > widths[c] {
				widths[c] = n
			}
		}
	}

	// Pass 2: emit rows, right-justified cells, single-space gaps.
	for r := 0; r < showR; r++ {
		b.WriteByte('\n')
		base := r * m.Cols()
		for c := 0; c < showC; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			s := m.cellText(base + c)
			for pad := widths[c] - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		if elideC {
			b.WriteString(" ...")
		}
	}
	if elideR {
		b.WriteString("\n...")
	}

	return b.String()
}

// visible caps a dimension at limit and reports whether anything was cut.
func visible(n, limit int) (show int, elided bool) {
	if n > limit {
		return limit, true
	}

	return n, false
}

// String renders the matrix with default options; implements fmt.Stringer.
func (m *Dense[E]) String() string { return Format(m) }
