// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestSubmatrix_ShapeAndAliasing(t *testing.T) {
	t.Parallel()
	m := Seq(t, 4, 5)

	v := MustSub(t, m, 1, 2, 1, 3)
	require.Equal(t, 2, v.Rows(), "rows == r1-r0+1")
	require.Equal(t, 3, v.Cols(), "cols == c1-c0+1")
	require.False(t, v.IsContinuous())
	require.True(t, v.SharesStore(m))
	assert.Equal(t, [][]float64{{7, 8, 9}, {12, 13, 14}}, ToRows(t, v))

	MustSet(t, v, 1, 2, -14)
	require.Equal(t, -14.0, MustAt(t, m, 2, 3), "write through the view must reach the parent")

	MustSet(t, m, 1, 1, -7)
	require.Equal(t, -7.0, MustAt(t, v, 0, 0), "write through the parent must reach the view")
}

func TestSubmatrix_Errors(t *testing.T) {
	t.Parallel()
	m := Seq(t, 3, 4)

	cases := []struct {
		name                   string
		rFrom, rTo, cFrom, cTo int
		want                   error
	}{
		{"rows_to == rows", 0, 3, 0, 1, matrix.ErrOutOfBounds},
		{"negative row", -1, 1, 0, 1, matrix.ErrOutOfBounds},
		{"cols_to == cols", 0, 1, 0, 4, matrix.ErrOutOfBounds},
		{"negative col", 0, 1, -2, 1, matrix.ErrOutOfBounds},
		{"rows reversed", 2, 1, 0, 1, matrix.ErrInvalidRegion},
		{"cols reversed", 0, 1, 3, 2, matrix.ErrInvalidRegion},
		{"bounds checked first", 2, 5, 3, 2, matrix.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Submatrix(tc.rFrom, tc.rTo, tc.cFrom, tc.cTo)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// Bounds are relative to the current view, not to the root store.
func TestSubmatrix_BoundsRelativeToView(t *testing.T) {
	t.Parallel()
	m := Seq(t, 5, 5)
	v := MustSub(t, m, 2, 4, 2, 4) // 3×3

	_, err := v.Submatrix(0, 3, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfBounds, "row 3 exists in the root but not in the view")
}

func TestSubmatrix_NestedComposition(t *testing.T) {
	t.Parallel()
	m := Seq(t, 6, 7)

	outer := MustSub(t, m, 1, 5, 2, 6)
	nested := MustSub(t, outer, 1, 3, 1, 2)
	single := MustSub(t, m, 2, 4, 3, 4)

	require.Equal(t, matrix.RegionOf_TestOnly(single), matrix.RegionOf_TestOnly(nested))
	for i := 0; i < nested.Rows(); i++ {
		for j := 0; j < nested.Cols(); j++ {
			require.Equal(t,
				matrix.Offset_TestOnly(single, i, j),
				matrix.Offset_TestOnly(nested, i, j),
				"offset mismatch at (%d,%d)", i, j)
		}
	}
	require.True(t, nested.Equal(single))
}

func TestTranspose_IsAliasingView(t *testing.T) {
	t.Parallel()
	m := Seq(t, 2, 3)
	tr := m.Transpose()

	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.True(t, tr.IsTransposed())
	require.True(t, tr.SharesStore(m))
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, ToRows(t, tr))

	MustSet(t, tr, 2, 1, 60)
	require.Equal(t, 60.0, MustAt(t, m, 1, 2))
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()
	for _, shape := range [][2]int{{1, 1}, {1, 4}, {3, 2}, {5, 5}} {
		m := RandomDense(t, shape[0], shape[1], uint64(shape[0]*10+shape[1]))
		tt := m.Transpose().Transpose()
		require.False(t, tt.IsTransposed())
		require.True(t, m.Equal(tt), "shape %v", shape)
		require.Equal(t, matrix.RegionOf_TestOnly(m), matrix.RegionOf_TestOnly(tt))
	}
}

// A submatrix of a transposed view must pick the transposed cells.
func TestSubmatrix_OfTranspose(t *testing.T) {
	t.Parallel()
	// m rows: 1..4, 5..8, 9..12; mᵀ is 4×3.
	m := Seq(t, 3, 4)
	tr := m.Transpose()

	// rows 1..3 of mᵀ are cols 1..3 of m; cols 0..1 of mᵀ are rows 0..1 of m.
	v := MustSub(t, tr, 1, 3, 0, 1)
	require.True(t, v.IsTransposed())
	assert.Equal(t, [][]float64{{2, 6}, {3, 7}, {4, 8}}, ToRows(t, v))

	back := v.Transpose()
	require.True(t, back.Equal(MustSub(t, m, 0, 1, 1, 3)))

	MustSet(t, v, 2, 1, -8)
	require.Equal(t, -8.0, MustAt(t, m, 1, 3))

	snap := matrix.RegionOf_TestOnly(v)
	assert.Equal(t, matrix.RegionSnapshot{RBegin: 0, REnd: 1, CBegin: 1, CEnd: 3, Transposed: true}, snap)
}
