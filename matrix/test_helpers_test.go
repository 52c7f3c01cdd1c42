// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for views and kernels.
//   • Keep all data finite and well-formed; randomness is seeded explicitly.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// floatTol is the absolute tolerance for float comparisons after arithmetic.
const floatTol = 1e-9

// MustDense ALLOCATES an r×c *Dense[float64] or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDense[float64](r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS an r×c matrix from row-major data.
func NewFilledDense(t testing.TB, r, c int, data []float64) *matrix.Dense[float64] {
	t.Helper()
	require.Len(t, data, r*c, "data length must be r*c")
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, data[i*c+j])
		}
	}

	return m
}

// Seq BUILDS an r×c matrix filled row-major with 1..r*c.
func Seq(t testing.TB, r, c int) *matrix.Dense[float64] {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(i + 1)
	}

	return NewFilledDense(t, r, c, data)
}

// MustRows BUILDS a matrix from literal rows.
func MustRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet[T matrix.Number](t testing.TB, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustSub TAKES a submatrix view or fails the test.
func MustSub[T matrix.Number](t testing.TB, m *matrix.Dense[T], r0, r1, c0, c1 int) *matrix.Dense[T] {
	t.Helper()
	v, err := m.Submatrix(r0, r1, c0, c1)
	require.NoError(t, err, "Submatrix(%d,%d,%d,%d)", r0, r1, c0, c1)

	return v
}

// ToRows FLATTENS a view into [][]T via At, for readable assertions.
func ToRows[T matrix.Number](t testing.TB, m *matrix.Dense[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RandomDense BUILDS an r×c matrix with values in [-1,1) from a seeded PCG.
func RandomDense(t testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m, err := matrix.Rand(r, c, matrix.SamplerFunc[float64](func() float64 {
		return rng.Float64()*2 - 1
	}))
	require.NoError(t, err)

	return m
}

// RequireAllClose ASSERTS equal shapes and |a-b| ≤ tol element-wise.
func RequireAllClose(t testing.TB, want, got *matrix.Dense[float64], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			a, b := MustAt(t, want, i, j), MustAt(t, got, i, j)
			require.LessOrEqual(t, math.Abs(a-b), tol, "[%d,%d]: want %v got %v", i, j, a, b)
		}
	}
}
