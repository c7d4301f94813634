// Package matrix_test contains unit tests for the Dense storage core:
// construction, accessors, reshape, copy semantics and NA handling.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/natrix/matrix"
	"github.com/katalvlaran/natrix/scalar"
)

// TestNewRowMajorLayout verifies that New stores data in flat row-major order.
func TestNewRowMajorLayout(t *testing.T) {
	m, err := matrix.New(2, 3, []int32{1, 2, 3, 4, 5, 6}) // build a 2x3 int32 matrix
	require.NoError(t, err)                               // construction must succeed

	require.Equal(t, 2, m.Rows())  // two rows
	require.Equal(t, 3, m.Cols())  // three columns
	require.Equal(t, 6, m.Len())   // six elements total
	require.False(t, m.IsEmpty())  // not empty
	require.False(t, m.IsSquare()) // 2x3 is not square

	require.Equal(t, int32(1), m.RawAt(0, 0)) // first row starts the backing
	require.Equal(t, int32(3), m.RawAt(0, 2)) // end of first row
	require.Equal(t, int32(4), m.RawAt(1, 0)) // second row follows contiguously
	require.Equal(t, int32(6), m.Raw(5))      // flat offset 5 is the last cell

	require.Equal(t, []int32{1, 2, 3, 4, 5, 6}, m.Contents()) // round-trip the backing
}

// TestKindPerStorage verifies that each factory instantiation reports its element kind.
func TestKindPerStorage(t *testing.T) {
	mb, err := matrix.New(1, 1, []bool{true}) // bool storage
	require.NoError(t, err)
	require.Equal(t, scalar.KindBool, mb.Kind())

	mi, err := matrix.New(1, 1, []int32{1}) // int32 storage
	require.NoError(t, err)
	require.Equal(t, scalar.KindInt32, mi.Kind())

	ml, err := matrix.New(1, 1, []int64{1}) // int64 storage
	require.NoError(t, err)
	require.Equal(t, scalar.KindInt64, ml.Kind())

	mf, err := matrix.New(1, 1, []float64{1}) // float64 storage
	require.NoError(t, err)
	require.Equal(t, scalar.KindFloat64, mf.Kind())

	ma, err := matrix.NewAny(1, 1, []any{"x"}) // boxed storage
	require.NoError(t, err)
	require.Equal(t, scalar.KindAny, ma.Kind())
}

// TestAtMissingAware ensures At surfaces NA sentinels as missing scalars.
func TestAtMissingAware(t *testing.T) {
	m, err := matrix.New(2, 2, []int32{7, math.MinInt32, 0, -7}) // NA at (0,1)
	require.NoError(t, err)

	s, err := m.At(0, 0) // present element
	require.NoError(t, err)
	require.False(t, s.IsNA())           // value is present
	require.Equal(t, int32(7), s.Must()) // and carries the stored value

	s, err = m.At(0, 1) // the sentinel position
	require.NoError(t, err)
	require.True(t, s.IsNA()) // sentinel arrives as NA

	_, ok := s.Get()     // Get on NA
	require.False(t, ok) // reports absence

	require.True(t, math.IsNaN(s.Float64())) // NA widens to NaN
}

// TestAtFlatMissingAware ensures AtFlat mirrors At over flat offsets.
func TestAtFlatMissingAware(t *testing.T) {
	m, err := matrix.New(1, 3, []float64{1.5, math.NaN(), 3}) // NaN is the float64 sentinel
	require.NoError(t, err)

	s, err := m.AtFlat(0)
	require.NoError(t, err)
	require.Equal(t, 1.5, s.Must()) // offset 0 holds 1.5

	s, err = m.AtFlat(1)
	require.NoError(t, err)
	require.True(t, s.IsNA()) // offset 1 is missing
}

// TestAtOutOfRange ensures the safe accessors reject bad indices with ErrOutOfRange.
func TestAtOutOfRange(t *testing.T) {
	m, err := matrix.New(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 3) // column past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(2, 0) // row past the edge
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.AtFlat(-1) // negative flat offset
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.AtFlat(6) // flat offset == Len
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Cell(0, -1) // boxed accessor shares the validation
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCellBoxedAccess verifies the kind-erased Cell accessor on typed and boxed storage.
func TestCellBoxedAccess(t *testing.T) {
	m, err := matrix.New(1, 2, []int32{5, math.MinInt32})
	require.NoError(t, err)

	c, err := m.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, int32(5), c.Must()) // boxed value keeps its dynamic type

	c, err = m.Cell(0, 1)
	require.NoError(t, err)
	require.True(t, c.IsNA()) // sentinel boxes to NA, never to MinInt32

	ma, err := matrix.NewAny(1, 2, []any{"tag", nil}) // nil is the boxed sentinel
	require.NoError(t, err)

	c, err = ma.Cell(0, 0)
	require.NoError(t, err)
	require.Equal(t, "tag", c.Must()) // arbitrary boxed value survives

	c, err = ma.Cell(0, 1)
	require.NoError(t, err)
	require.True(t, c.IsNA()) // nil cell is missing
}

// TestRawPanicsOnBadIndex ensures the trusted accessors panic instead of returning errors.
func TestRawPanicsOnBadIndex(t *testing.T) {
	m, err := matrix.New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Panics(t, func() { m.Raw(-1) })      // negative flat offset
	require.Panics(t, func() { m.Raw(4) })       // offset == Len
	require.Panics(t, func() { m.RawAt(2, 0) })  // row past the edge
	require.Panics(t, func() { m.RawAt(0, -1) }) // negative column
}

// TestReshapeSharesContents verifies that Reshape reinterprets the same row-major stream.
func TestReshapeSharesContents(t *testing.T) {
	m, err := matrix.New(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	r, err := m.Reshape(3, 2) // same six elements, new shape
	require.NoError(t, err)
	require.Equal(t, 3, r.Rows())
	require.Equal(t, 2, r.Cols())
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, r.Contents()) // flat stream unchanged
	require.Equal(t, int64(3), r.RawAt(1, 0))                 // (1,0) now maps to offset 2

	col, err := m.Reshape(6, 1) // column vector shape
	require.NoError(t, err)
	require.Equal(t, 6, col.Rows())
	require.Equal(t, int64(6), col.RawAt(5, 0))

	require.Equal(t, 2, m.Rows()) // the source matrix is untouched
	require.Equal(t, 3, m.Cols())
}

// TestReshapeRejectsBadShapes ensures element-count and sign validation on Reshape.
func TestReshapeRejectsBadShapes(t *testing.T) {
	m, err := matrix.New(2, 3, []int64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = m.Reshape(4, 2) // 8 slots for 6 elements
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = m.Reshape(-1, -6) // negative dimensions
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = m.Reshape(0, 5) // zero rows cannot hold 6 elements
	require.ErrorIs(t, err, matrix.ErrBadShape)

	e, err := matrix.Empty[int64]().Reshape(0, 9) // empty to empty is legal
	require.NoError(t, err)
	require.True(t, e.IsEmpty()) // and stays canonical
}

// TestCopySemantics verifies that Copy clones storage while empties stay shared.
func TestCopySemantics(t *testing.T) {
	m, err := matrix.New(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Copy()
	require.NotSame(t, m, c)            // a distinct instance
	require.True(t, matrix.Equal(m, c)) // with equal contents

	e := matrix.Empty[float64]()
	require.Same(t, e, e.Copy()) // canonical empty is never cloned
}

// TestContentsIsACopy ensures mutating the Contents slice never touches the matrix.
func TestContentsIsACopy(t *testing.T) {
	m, err := matrix.New(1, 3, []int32{1, 2, 3})
	require.NoError(t, err)

	raw := m.Contents()
	raw[0] = 99 // scribble over the returned slice

	require.Equal(t, int32(1), m.RawAt(0, 0)) // the matrix still reads 1
}

// TestHasNA verifies NA detection across element kinds.
func TestHasNA(t *testing.T) {
	clean, err := matrix.New(2, 2, []int32{1, 2, 3, 4})
	require.NoError(t, err)
	require.False(t, clean.HasNA()) // no sentinel present

	dirty, err := matrix.New(2, 2, []int32{1, math.MinInt32, 3, 4})
	require.NoError(t, err)
	require.True(t, dirty.HasNA()) // the int32 sentinel is detected

	f, err := matrix.New(1, 2, []float64{0, math.NaN()})
	require.NoError(t, err)
	require.True(t, f.HasNA()) // NaN is the float64 sentinel

	b, err := matrix.New(1, 2, []bool{true, false})
	require.NoError(t, err)
	require.False(t, b.HasNA()) // booleans can never be missing

	boxed, err := matrix.NewAny(1, 2, []any{nil, 1})
	require.NoError(t, err)
	require.True(t, boxed.HasNA()) // nil is the boxed sentinel
}

// TestSquareAndEmptyPredicates checks IsSquare/IsEmpty over representative shapes.
func TestSquareAndEmptyPredicates(t *testing.T) {
	sq, err := matrix.New(2, 2, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, sq.IsSquare())
	require.False(t, sq.IsEmpty())

	rect, err := matrix.New(1, 4, []int64{1, 2, 3, 4})
	require.NoError(t, err)
	require.False(t, rect.IsSquare())

	e := matrix.Empty[int64]()
	require.True(t, e.IsEmpty())  // no elements
	require.True(t, e.IsSquare()) // 0x0 counts as square
	require.Equal(t, 0, e.Len())
}
