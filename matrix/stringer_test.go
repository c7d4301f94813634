// Package matrix_test contains unit tests for Format/String: alignment,
// NA rendering, elision and the rendering options.
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/natrix/matrix"
)

// TestFormatAlignedGrid verifies right-justified columns with single-space gaps.
func TestFormatAlignedGrid(t *testing.T) {
	m, err := matrix.New(2, 2, []int32{1, 2, 30, 4})
	require.NoError(t, err)

	require.Equal(t, "[2 x 2]\n 1 2\n30 4", matrix.Format(m)) // "1" pads to the width of "30"
}

// TestFormatNAParticipatesInWidth verifies "NA" cells align like values.
func TestFormatNAParticipatesInWidth(t *testing.T) {
	m, err := matrix.New(1, 2, []int32{1, math.MinInt32})
	require.NoError(t, err)
	require.Equal(t, "[1 x 2]\n1 NA", matrix.Format(m))

	f, err := matrix.New(2, 2, []float64{1.5, math.NaN(), 30, 4})
	require.NoError(t, err)
	require.Equal(t, "[2 x 2]\n1.5 NA\n 30  4", matrix.Format(f))
}

// TestFormatFloatAndBoolRendering verifies per-kind cell text.
func TestFormatFloatAndBoolRendering(t *testing.T) {
	f, err := matrix.New(2, 2, []float64{1.5, 2, 3.25, 4})
	require.NoError(t, err)
	require.Equal(t, "[2 x 2]\n 1.5 2\n3.25 4", matrix.Format(f))

	b, err := matrix.New(2, 1, []bool{true, false})
	require.NoError(t, err)
	require.Equal(t, "[2 x 1]\n true\nfalse", matrix.Format(b)) // "true" right-justifies under "false"

	a, err := matrix.NewAny(1, 3, []any{1, "ab", nil})
	require.NoError(t, err)
	require.Equal(t, "[1 x 3]\n1 ab NA", matrix.Format(a))
}

// TestFormatEmptyAndNil verifies the degenerate renders.
func TestFormatEmptyAndNil(t *testing.T) {
	require.Equal(t, "[0 x 0]", matrix.Format(matrix.Empty[float64]())) // header only, no newline
	require.Equal(t, "<nil>", matrix.Format(nil))
}

// TestFormatElision verifies both axes elide with "..." markers.
func TestFormatElision(t *testing.T) {
	m, err := matrix.New(3, 4, []int32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	require.NoError(t, err)

	got := matrix.Format(m, matrix.WithMaxRows(2), matrix.WithMaxCols(3))
	require.Equal(t, "[3 x 4]\n1 2 3 ...\n5 6 7 ...\n...", got)

	// Only rows capped: all four columns stay.
	got = matrix.Format(m, matrix.WithMaxRows(1))
	require.Equal(t, "[3 x 4]\n1 2 3 4\n...", got)

	// Caps at or above the dimension elide nothing. Note the widths: the
	// two-digit bottom row stretches every column it shares.
	got = matrix.Format(m, matrix.WithMaxRows(3), matrix.WithMaxCols(4))
	require.Equal(t, "[3 x 4]\n1  2  3  4\n5  6  7  8\n9 10 11 12", got)
}

// TestFormatDefaultCaps verifies the ten-by-ten default window.
func TestFormatDefaultCaps(t *testing.T) {
	m, err := matrix.Fill(11, 2, int32(1)) // one row past the default cap
	require.NoError(t, err)

	want := "[11 x 2]" + strings.Repeat("\n1 1", matrix.DefaultMaxRows) + "\n..."
	require.Equal(t, want, matrix.Format(m))

	require.Equal(t, matrix.Format(m), m.String()) // String is Format with defaults
}

// TestFormatOptionPanics verifies the option constructors reject nonsense caps.
func TestFormatOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithMaxRows(0): cap must be >= 1", func() {
		matrix.WithMaxRows(0)
	})
	require.PanicsWithValue(t, "matrix: WithMaxCols(-1): cap must be >= 1", func() {
		matrix.WithMaxCols(-1)
	})
}
