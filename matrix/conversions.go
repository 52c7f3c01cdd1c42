// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - AsMat exposes a float64 view to gonum routines without copying; the
//     adapter reads through the view's region, so submatrices and transposes
//     work as-is and later writes to the view are visible to gonum.
//   - FromMat copies any gonum matrix into a fresh, independent Dense.
//
// Notes:
//   - gonum signals index errors by panicking; the adapter follows the gonum
//     contract, while the rest of this package returns errors.
package matrix

import "gonum.org/v1/gonum/mat"

const opFromMat = "FromMat"

// Mat adapts a *Dense[float64] view to gonum's mat.Matrix.
type Mat struct {
	d *Dense[float64]
}

// Compile-time assertions: Mat satisfies gonum and local shape contracts.
var (
	_ mat.Matrix = Mat{}
	_ Shape      = Mat{}
)

// AsMat wraps m without copying.
func AsMat(m *Dense[float64]) Mat { return Mat{d: m} }

// unbacked reports an adapter around a nil or zero-value Dense.
func (a Mat) unbacked() bool { return a.d == nil || a.d.st == nil }

// Dense returns the wrapped view.
func (a Mat) Dense() *Dense[float64] { return a.d }

// Dims returns the logical shape (gonum naming).
func (a Mat) Dims() (r, c int) { return a.d.Shape() }

// Rows returns the logical row count.
func (a Mat) Rows() int { return a.d.Rows() }

// Cols returns the logical column count.
func (a Mat) Cols() int { return a.d.Cols() }

// At returns element (i, j); panics with mat.ErrIndexOutOfRange like gonum types.
func (a Mat) At(i, j int) float64 {
	v, err := a.d.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T returns the aliasing transpose, itself a zero-copy adapter.
func (a Mat) T() mat.Matrix { return Mat{d: a.d.Transpose()} }

// FromMat copies src into a new continuous Dense[float64].
// Errors: ErrNilMatrix, ErrInvalidDimensions (gonum allows 0×0 values).
// Complexity: O(r*c).
func FromMat(src mat.Matrix) (*Dense[float64], error) {
	if src == nil {
		return nil, matrixErrorf(opFromMat, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromMat, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.st.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
