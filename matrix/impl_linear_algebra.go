// SPDX-License-Identifier: MIT
// Package matrix provides element-wise and linear-algebra arithmetic on Dense views.
//
// Purpose:
//   - In-place forms (XxxInPlace) mutate every element of the receiver's view
//     through its region, so the change is visible through aliasing views.
//   - Allocating forms (Add, Sub, ...) Copy the receiver first, then run the
//     in-place form on the copy; operands are never mutated.
//
// Contract:
//   - Every check (nil, shape, divide by zero) runs before the first write:
//     an operation either completes or leaves all operands untouched.

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "DivScalar"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opDivInPlace = "DivScalarInPlace"
)

// combineInPlace applies m[i,j] = f(m[i,j], o[i,j]) over the logical view.
// When o shares m's store it is snapshotted first, so overlapping views read
// the values they had before the operation started.
func (m *Dense[T]) combineInPlace(o *Dense[T], opTag string, f func(a, b T) T) error {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return matrixErrorf(opTag, err)
	}
	if m.st == o.st {
		o = o.Copy()
	}

	// Fast path: both continuous, untransposed and equally sized → one flat loop.
	if m.reg.flat() && o.reg.flat() {
		for idx := range m.st.data {
			m.st.data[idx] = f(m.st.data[idx], o.st.data[idx])
		}
		return nil
	}

	rows, cols := m.Shape()
	var i, j, off int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			off = m.reg.offset(m.st.cols, i, j)
			m.st.data[off] = f(m.st.data[off], o.at(i, j))
		}
	}

	return nil
}

// mapInPlace applies m[i,j] = f(m[i,j]) over the logical view.
func (m *Dense[T]) mapInPlace(f func(a T) T) {
	if m.reg.flat() {
		for idx := range m.st.data {
			m.st.data[idx] = f(m.st.data[idx])
		}
		return
	}
	m.Apply(func(_, _ int, v T) T { return f(v) })
}

// AddInPlace computes m += o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (checked before mutation).
// Complexity: O(r*c).
func (m *Dense[T]) AddInPlace(o *Dense[T]) error {
	return m.combineInPlace(o, opAddInPlace, func(a, b T) T { return a + b })
}

// SubInPlace computes m -= o element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (checked before mutation).
// Complexity: O(r*c).
func (m *Dense[T]) SubInPlace(o *Dense[T]) error {
	return m.combineInPlace(o, opSubInPlace, func(a, b T) T { return a - b })
}

// Add returns a fresh matrix C = m + o.
// Implementation:
//   - Stage 1: validate shapes (so no copy is made for a doomed call).
//   - Stage 2: Copy m, then AddInPlace on the copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.Copy()
	if err := out.AddInPlace(o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a fresh matrix C = m - o.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.Copy()
	if err := out.SubInPlace(o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out, nil
}

// AddScalarInPlace adds v to every element of the view.
func (m *Dense[T]) AddScalarInPlace(v T) { m.mapInPlace(func(a T) T { return a + v }) }

// SubScalarInPlace subtracts v from every element of the view.
func (m *Dense[T]) SubScalarInPlace(v T) { m.mapInPlace(func(a T) T { return a - v }) }

// MulScalarInPlace multiplies every element of the view by v.
func (m *Dense[T]) MulScalarInPlace(v T) { m.mapInPlace(func(a T) T { return a * v }) }

// DivScalarInPlace divides every element of the view by v.
// Errors: ErrDivideByZero when v == 0; nothing is written in that case.
func (m *Dense[T]) DivScalarInPlace(v T) error {
	if v == 0 {
		return matrixErrorf(opDivInPlace, ErrDivideByZero)
	}
	m.mapInPlace(func(a T) T { return a / v })

	return nil
}

// AddScalar returns a fresh matrix with v added to every element.
func (m *Dense[T]) AddScalar(v T) *Dense[T] {
	out := m.Copy()
	out.AddScalarInPlace(v)

	return out
}

// SubScalar returns a fresh matrix with v subtracted from every element.
func (m *Dense[T]) SubScalar(v T) *Dense[T] {
	out := m.Copy()
	out.SubScalarInPlace(v)

	return out
}

// MulScalar returns a fresh matrix with every element multiplied by v.
func (m *Dense[T]) MulScalar(v T) *Dense[T] {
	out := m.Copy()
	out.MulScalarInPlace(v)

	return out
}

// DivScalar returns a fresh matrix with every element divided by v.
// Errors: ErrDivideByZero (no allocation happens in that case).
func (m *Dense[T]) DivScalar(v T) (*Dense[T], error) {
	if v == 0 {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}
	out := m.Copy()
	out.mapInPlace(func(a T) T { return a / v })

	return out, nil
}

// Mul performs standard matrix multiplication C = m × o into a fresh matrix.
// MAIN DESCRIPTION:
//   - Triple loop i→j→k with a per-cell accumulator; C never aliases m or o.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols != o.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense[T]) Mul(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.Rows(), m.Cols(), o.Cols()
	res := newDense[T](rows, cols)
	var (
		i, j, k int
		sum     T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += m.at(i, k) * o.at(k, j)
			}
			res.st.data[i*cols+j] = sum // res is a continuous root
		}
	}

	return res, nil
}

// Equal reports whether m and o have the same shape and equal elements in
// logical row-major order. Storage layout, orientation and aliasing are ignored.
// A nil operand equals only another nil operand.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if ValidateSameShape(m, o) != nil {
		return false
	}
	a, b := m.Begin(), o.Begin()
	for !a.IsEnd() && !b.IsEnd() {
		if a.Value() != b.Value() {
			return false
		}
		a.Advance()
		b.Advance()
	}

	return true
}
