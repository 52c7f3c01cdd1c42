// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a generic row-major matrix view over a shared backing store.
// This file holds the constructors; accessors and views live in impl_dense.go.
package matrix

// New returns a 1×1 matrix holding the zero value.
// A matrix is never empty: the smallest shape is 1×1.
// Complexity: O(1).
func New[T Number]() *Dense[T] {
	return newDense[T](1, 1)
}

// NewDense creates a rows×cols matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate a fresh backing store.
// Stage 3 (Finalize): return the continuous root view.
// Complexity: O(rows*cols) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}

	return newDense[T](rows, cols), nil
}

// NewSquare creates an n×n matrix initialized to zeros.
// Complexity: O(n*n).
func NewSquare[T Number](n int) (*Dense[T], error) {
	return NewDense[T](n, n)
}

// FromRows builds a matrix from a literal slice of equal-length rows.
// The input is copied; later changes to rows do not affect the matrix.
// Errors: ErrInvalidDimensions for no rows/columns, ErrDimensionMismatch for ragged input.
// Complexity: O(rows*cols).
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDense[T](r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		copy(m.st.data[i*c:(i+1)*c], rows[i]) // continuous root: row i is a contiguous slice
	}

	return m, nil
}

// newDense is the internal constructor for already-validated shapes.
func newDense[T Number](rows, cols int) *Dense[T] {
	return &Dense[T]{
		st:  newStore[T](rows, cols),
		reg: fullRegion(rows, cols),
	}
}
