// SPDX-License-Identifier: MIT

package matrix

const (
	opAppendH = "AppendH"
	opAppendV = "AppendV"
)

// AppendH places o to the right of m in a new matrix.
// The result is max(m.Rows, o.Rows) × (m.Cols + o.Cols); cells not covered by
// either operand (below the shorter one) stay zero.
// Errors: ErrNilMatrix.
// Complexity: O(R*C) for the result shape.
func (m *Dense[T]) AppendH(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendH, err)
	}
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opAppendH, err)
	}
	out := newDense[T](max(m.Rows(), o.Rows()), m.Cols()+o.Cols())
	out.place(m, 0, 0)
	out.place(o, 0, m.Cols())

	return out, nil
}

// AppendV places o below m in a new matrix.
// The result is (m.Rows + o.Rows) × max(m.Cols, o.Cols); cells not covered by
// either operand (right of the narrower one) stay zero.
// Errors: ErrNilMatrix.
// Complexity: O(R*C) for the result shape.
func (m *Dense[T]) AppendV(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAppendV, err)
	}
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opAppendV, err)
	}
	out := newDense[T](m.Rows()+o.Rows(), max(m.Cols(), o.Cols()))
	out.place(m, 0, 0)
	out.place(o, m.Rows(), 0)

	return out, nil
}

// place copies src into the continuous root m with its top-left at (r0, c0).
// The zero-filled store provides the padding.
func (m *Dense[T]) place(src *Dense[T], r0, c0 int) {
	rows, cols := src.Shape()
	stride := m.st.cols
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.st.data[(r0+i)*stride+c0+j] = src.at(i, j)
		}
	}
}
