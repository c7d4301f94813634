// Package frame_test contains unit tests for labeled frames: construction,
// label lookup, labeled cell access and the grid rendering.
package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/natrix/frame"
	"github.com/katalvlaran/natrix/matrix"
)

// TestFromMatrixDefaults verifies positional label synthesis.
func TestFromMatrixDefaults(t *testing.T) {
	m, err := matrix.New(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	f, err := frame.FromMatrix(m)
	require.NoError(t, err)

	require.Equal(t, 2, f.Rows())
	require.Equal(t, 3, f.Cols())
	require.Same(t, m, f.Mat()) // the frame is a view, not a copy

	require.Equal(t, []string{"r0", "r1"}, f.RowLabels())
	require.Equal(t, []string{"c0", "c1", "c2"}, f.ColLabels())
}

// TestFromMatrixCustomLabels verifies explicit labels and their isolation.
func TestFromMatrixCustomLabels(t *testing.T) {
	m, err := matrix.New(2, 2, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	rows := []string{"a", "b"}
	f, err := frame.FromMatrix(m,
		frame.WithRowLabels(rows...),
		frame.WithColLabels("x", "y"),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, f.RowLabels())
	require.Equal(t, []string{"x", "y"}, f.ColLabels())

	rows[0] = "mutated" // the caller's slice was frozen at construction
	require.Equal(t, []string{"a", "b"}, f.RowLabels())

	got := f.RowLabels()
	got[1] = "scribbled" // accessor results are copies too
	require.Equal(t, []string{"a", "b"}, f.RowLabels())
}

// TestFromMatrixValidation covers nil input, count mismatch and duplicates.
func TestFromMatrixValidation(t *testing.T) {
	_, err := frame.FromMatrix(nil)
	require.ErrorIs(t, err, frame.ErrNilMatrix)

	m, err := matrix.New(2, 2, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = frame.FromMatrix(m, frame.WithRowLabels("only")) // one name for two rows
	require.ErrorIs(t, err, frame.ErrLabelMismatch)

	_, err = frame.FromMatrix(m, frame.WithColLabels("x", "y", "z")) // three names for two columns
	require.ErrorIs(t, err, frame.ErrLabelMismatch)

	_, err = frame.FromMatrix(m, frame.WithRowLabels("a", "a")) // repeated row label
	require.ErrorIs(t, err, frame.ErrDuplicateLabel)
}

// TestLabelLookup verifies label-to-position resolution on both axes.
func TestLabelLookup(t *testing.T) {
	m, err := matrix.New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	f, err := frame.FromMatrix(m,
		frame.WithRowLabels("top", "bottom"),
		frame.WithColLabels("left", "right"),
	)
	require.NoError(t, err)

	i, err := f.RowIndex("bottom")
	require.NoError(t, err)
	require.Equal(t, 1, i)

	j, err := f.ColIndex("left")
	require.NoError(t, err)
	require.Equal(t, 0, j)

	_, err = f.RowIndex("middle")
	require.ErrorIs(t, err, frame.ErrUnknownLabel)

	_, err = f.ColIndex("top") // a row label is not a column label
	require.ErrorIs(t, err, frame.ErrUnknownLabel)
}

// TestAtByLabels verifies labeled cell access, NA included.
func TestAtByLabels(t *testing.T) {
	m, err := matrix.New(2, 2, []int32{1, math.MinInt32, 3, 4})
	require.NoError(t, err)

	f, err := frame.FromMatrix(m,
		frame.WithRowLabels("a", "b"),
		frame.WithColLabels("x", "y"),
	)
	require.NoError(t, err)

	c, err := f.At("b", "y")
	require.NoError(t, err)
	require.Equal(t, int32(4), c.Must()) // boxed, dynamic type preserved

	c, err = f.At("a", "y")
	require.NoError(t, err)
	require.True(t, c.IsNA()) // the sentinel surfaces as a missing cell

	_, err = f.At("nope", "y")
	require.ErrorIs(t, err, frame.ErrUnknownLabel)

	_, err = f.At("a", "nope")
	require.ErrorIs(t, err, frame.ErrUnknownLabel)
}

// TestFrameString verifies the labeled grid render.
func TestFrameString(t *testing.T) {
	m, err := matrix.New(2, 2, []int64{1, 2, 3, 4})
	require.NoError(t, err)

	f, err := frame.FromMatrix(m,
		frame.WithRowLabels("a", "b"),
		frame.WithColLabels("x", "y"),
	)
	require.NoError(t, err)
	require.Equal(t, "  x y\na 1 2\nb 3 4", f.String())

	na, err := matrix.New(1, 2, []float64{1.5, math.NaN()})
	require.NoError(t, err)

	g, err := frame.FromMatrix(na) // default labels widen the gutter
	require.NoError(t, err)
	require.Equal(t, "    c0 c1\nr0 1.5 NA", g.String())
}

// TestFrameOnEmptyMatrix verifies the degenerate frame.
func TestFrameOnEmptyMatrix(t *testing.T) {
	f, err := frame.FromMatrix(matrix.Empty[float64]())
	require.NoError(t, err)

	require.Equal(t, 0, f.Rows())
	require.Empty(t, f.RowLabels())
	require.Equal(t, "", f.String()) // nothing to render, not even a header

	_, err = f.At("r0", "c0") // no labels exist on an empty frame
	require.ErrorIs(t, err, frame.ErrUnknownLabel)
}
