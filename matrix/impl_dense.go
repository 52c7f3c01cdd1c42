// SPDX-License-Identifier: MIT

// Package matrix - Dense views & safe accessors.
//
// Purpose:
//   - A Dense is a (store, region) pair: a shared row-major buffer plus the
//     window and orientation this particular view exposes.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support no-copy views (Submatrix, Transpose) and copy-based materialization (Copy).
//
// Aliasing:
//   - Assigning a *Dense (b := a) or dereferencing it (b := *a) shares the store.
//   - Submatrix and Transpose share the store; writes through them are visible
//     through every overlapping view. This is intended behavior.
//   - Copy always allocates an independent, continuous store.
//
// Concurrency:
//   - No internal locking. Views sharing a store must not be used from several
//     goroutines when any of them writes.
//
// Complexity quicksheet:
//   - At/Set: O(1); Submatrix/Transpose: O(1); Copy: O(r*c).

package matrix

// ---------- error context tags ----------

const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opSubmatrix = "Submatrix"
)

// Dense is a generic dense matrix view.
//   - st is the shared backing store.
//   - reg selects the rows/cols of st this view exposes and their orientation.
//
// Build values with New, NewDense or FromRows. The zero value Dense[T]{} has
// no store: it reports a 0×0 shape, error-returning methods reject it with
// ErrNilMatrix, and cursors over it start at End().
type Dense[T Number] struct {
	st  *store[T] // shared backing buffer
	reg region    // window + orientation in store coordinates
}

// Compile-time assertion for the Shape contract.
var _ Shape = (*Dense[float64])(nil)

// Rows returns the logical row count (0 for the zero value). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m.st == nil {
		return 0
	}

	return m.reg.rows()
}

// Cols returns the logical column count (0 for the zero value). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m.st == nil {
		return 0
	}

	return m.reg.cols()
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// unbacked reports a zero-value Dense, which has no store to read or write.
func (m *Dense[T]) unbacked() bool { return m.st == nil }

// IsContinuous reports whether the view spans its entire backing store.
func (m *Dense[T]) IsContinuous() bool { return m.reg.continuous }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.Rows() == m.Cols() }

// IsTransposed reports whether logical rows read store columns.
func (m *Dense[T]) IsTransposed() bool { return m.reg.transposed }

// SharesStore reports whether m and o are views over the same backing store.
func (m *Dense[T]) SharesStore(o *Dense[T]) bool {
	return m != nil && o != nil && m.st != nil && m.st == o.st
}

// at is the unchecked element read used by hot loops.
func (m *Dense[T]) at(row, col int) T {
	return m.st.data[m.reg.offset(m.st.cols, row, col)]
}

// set is the unchecked element write used by hot loops.
func (m *Dense[T]) set(row, col int, v T) {
	m.st.data[m.reg.offset(m.st.cols, row, col)] = v
}

// inView reports whether (row, col) lies inside the logical view.
func (m *Dense[T]) inView(row, col int) bool {
	return row >= 0 && row < m.Rows() && col >= 0 && col < m.Cols()
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at view coordinates.
//
// Implementation:
//   - Stage 1: bounds-check against the logical view.
//   - Stage 2: translate through the region and load from the store.
//
// Errors:
//   - ErrNilMatrix for a nil or zero-value receiver.
//   - ErrOutOfRange outside the view.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opAt, err)
	}
	if !m.inView(row, col) {
		var zero T
		return zero, denseErrorf(opAt, row, col, ErrOutOfRange)
	}

	return m.at(row, col), nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// The write lands in the shared store and is visible through every overlapping view.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opSet, err)
	}
	if !m.inView(row, col) {
		return denseErrorf(opSet, row, col, ErrOutOfRange)
	}
	m.set(row, col, v)

	return nil
}

// Submatrix returns a no-copy view of rows [rFrom..rTo] and cols [cFrom..cTo],
// inclusive and relative to the current view.
// MAIN DESCRIPTION:
//   - Narrow the region; keep the store. Writes through the result mutate m.
//
// Implementation:
//   - Stage 1: bounds check (rFrom<0, rTo>=Rows(), cFrom<0, cTo>=Cols()).
//   - Stage 2: order check (from > to on either axis).
//   - Stage 3: compose the window with the current region.
//
// Errors:
//   - ErrNilMatrix for a nil or zero-value receiver.
//   - ErrOutOfBounds when the window leaves the view.
//   - ErrInvalidRegion when from > to.
//
// Notes:
//   - The result is never continuous, even when it happens to span the store.
//   - Nested calls compose: m.Submatrix(a..).Submatrix(b..) maps onto the same
//     cells as one Submatrix with offsets added.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Submatrix(rFrom, rTo, cFrom, cTo int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := validateRegion(m, rFrom, rTo, cFrom, cTo); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return &Dense[T]{st: m.st, reg: m.reg.sub(rFrom, rTo, cFrom, cTo)}, nil
}

// Transpose returns a view with rows and columns swapped.
// No data moves: the result shares the store and flips the orientation flag,
// so writes through either view are visible through the other.
// Use Copy on the result to obtain an independent transposed matrix.
// Complexity: O(1).
func (m *Dense[T]) Transpose() *Dense[T] {
	return &Dense[T]{st: m.st, reg: m.reg.transpose()}
}

// Copy materializes the view into a new, continuous, independent matrix.
// MAIN DESCRIPTION:
//   - Allocate Rows()×Cols() and copy in logical row-major order.
//
// Implementation:
//   - Fast path: an untransposed continuous view is one slice copy.
//   - General path: walk the view row by row through the region mapping.
//
// A zero-value receiver copies to another zero value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	if m.st == nil {
		return &Dense[T]{}
	}
	rows, cols := m.Shape()
	out := newDense[T](rows, cols)
	if m.reg.flat() {
		copy(out.st.data, m.st.data)
		return out
	}

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out.st.data[base+j] = m.at(i, j)
		}
	}

	return out
}

// Raw exposes the backing buffer (row-major over the whole store).
// The slice aliases every view of the store; for a non-continuous or
// transposed view it contains cells outside the view. Nil for the zero value.
func (m *Dense[T]) Raw() []T {
	if m.st == nil {
		return nil
	}

	return m.st.data
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	rows, cols := m.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !f(i, j, m.at(i, j)) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major.
// Writes go through the region, so they are visible through aliasing views.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	rows, cols := m.Shape()
	var i, j, off int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			off = m.reg.offset(m.st.cols, i, j)
			m.st.data[off] = f(i, j, m.st.data[off])
		}
	}
}
