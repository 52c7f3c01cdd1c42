// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

func TestDet_Identity(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		id, err := matrix.Identity[float64](n)
		require.NoError(t, err)
		d, err := id.Det()
		require.NoError(t, err)
		require.Equal(t, 1.0, d, "det(I_%d)", n)
	}
}

func TestDet_SmallCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows [][]int
		want int
	}{
		{"1x1", [][]int{{-7}}, -7},
		{"2x2", [][]int{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]int{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"3x3 singular", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"4x4", [][]int{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Determinant(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestDet_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := Seq(t, 2, 3).Det()
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.IdentityLike(Seq(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// det(Aᵀ) == det(A), and a submatrix view is expanded through its region.
func TestDet_OfViews(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]int{
		{9, 9, 9, 9},
		{9, 2, 0, 1},
		{9, 1, 3, 2},
		{9, 1, 1, 2},
	})
	sub := MustSub(t, m, 1, 3, 1, 3)

	d, err := sub.Det()
	require.NoError(t, err)
	require.Equal(t, 6, d)

	dt, err := sub.Transpose().Det()
	require.NoError(t, err)
	require.Equal(t, d, dt)
}

// Cofactor expansion must agree with gonum's LU-based determinant.
func TestDet_MatchesGonum(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := RandomDense(t, n, n, uint64(100+n))
			got, err := m.Det()
			require.NoError(t, err)
			want := mat.Det(matrix.AsMat(m))
			require.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)))
		})
	}
}
