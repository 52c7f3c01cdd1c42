// SPDX-License-Identifier: MIT

package matrix

const opDet = "Det"

// Det returns the determinant by cofactor (Laplace) expansion along row 0.
// MAIN DESCRIPTION:
//   - 1×1 returns the element; 2×2 returns ad − bc.
//   - n×n builds, for every column c, the (n−1)×(n−1) minor without row 0 and
//     column c into a scratch matrix, recurses, and accumulates
//     m[0,c] · (−1)^c · det(minor).
//
// Errors:
//   - ErrNilMatrix for a nil or zero-value receiver.
//   - ErrNonSquare when Rows() != Cols().
//
// Notes:
//   - Time is O(n!): fine for the small matrices this expansion targets, a
//     known scalability limit beyond roughly n = 10.
//   - The sign is applied by adding or subtracting the term, so unsigned
//     element types work (with wrap-around arithmetic).
func (m *Dense[T]) Det() (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel; m is square.
func (m *Dense[T]) det() T {
	n := m.Rows()
	switch n {
	case 1:
		return m.at(0, 0)
	case 2:
		return m.at(0, 0)*m.at(1, 1) - m.at(0, 1)*m.at(1, 0)
	}

	var det T
	minor := newDense[T](n-1, n-1) // reused for every column; each det() call finishes before refill
	var row, col, mc, sc int
	for col = 0; col < n; col++ {
		for mc, sc = 0, 0; mc < n; mc++ {
			if mc == col {
				continue
			}
			for row = 1; row < n; row++ {
				minor.st.data[(row-1)*(n-1)+sc] = m.at(row, mc)
			}
			sc++
		}
		term := m.at(0, col) * minor.det()
		if col%2 == 0 {
			det += term
		} else {
			det -= term
		}
	}

	return det
}
