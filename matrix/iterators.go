// SPDX-License-Identifier: MIT

// Package matrix - cursor-style iteration over views.
//
// Purpose:
//   - Four cursor flavors (flat, row, column, element) derive everything from
//     (store, region, position); they hold no other state and are plain values.
//   - Advance past the last valid position yields the canonical end sentinel (-1).
//   - Retreat at the first position is a clamped no-op; Retreat from the end
//     moves to the last valid position. Thus a retreated Begin() still equals
//     Begin(), while an advanced last element equals End().
//
// Equality:
//   - Equal requires the same store, the same region and the same position.
//     Cursors from different views never compare equal, even over equal data.
//
// Range-over-func:
//   - Dense.Values and Dense.All wrap the flat cursor for `for ... range`.
package matrix

import "iter"

// ---------- flat iterator ----------

// Iterator walks every element of a view in logical row-major order.
type Iterator[T Number] struct {
	st  *store[T]
	reg region
	pos Index // logical position; endIndex once exhausted
}

// Begin returns a cursor at logical (0, 0); for the zero value it equals End().
func (m *Dense[T]) Begin() Iterator[T] {
	if m.st == nil {
		return m.End()
	}

	return Iterator[T]{st: m.st, reg: m.reg, pos: Index{}}
}

// End returns the past-the-end cursor of this view.
func (m *Dense[T]) End() Iterator[T] {
	return Iterator[T]{st: m.st, reg: m.reg, pos: endIndex}
}

// Advance moves one element forward: column first, then wrap to the next row.
// Past the last element the cursor becomes End(); advancing End() is a no-op.
func (it *Iterator[T]) Advance() {
	if it.IsEnd() {
		return
	}
	it.pos.Col++
	if it.pos.Col >= it.reg.cols() {
		it.pos.Col = 0
		it.pos.Row++
	}
	if it.pos.Row >= it.reg.rows() {
		it.pos = endIndex
	}
}

// Retreat moves one element backward.
// At the first element it stays put; from End() it moves to the last element.
func (it *Iterator[T]) Retreat() {
	if it.pos.Row == 0 && it.pos.Col == 0 {
		return // clamped, never wraps to End()
	}
	if it.IsEnd() {
		it.pos = Index{Row: it.reg.rows() - 1, Col: it.reg.cols() - 1}
		return
	}
	it.pos.Col--
	if it.pos.Col < 0 {
		it.pos.Col = it.reg.cols() - 1
		it.pos.Row--
	}
}

// IsEnd reports whether the cursor is past the last element.
func (it Iterator[T]) IsEnd() bool { return it.pos.Row == sentinel || it.pos.Col == sentinel }

// Position returns the logical coordinate (endIndex when exhausted).
func (it Iterator[T]) Position() Index { return it.pos }

// Value returns the current element, or the zero value at End().
func (it Iterator[T]) Value() T {
	if it.IsEnd() {
		var zero T
		return zero
	}

	return it.st.data[it.reg.offset(it.st.cols, it.pos.Row, it.pos.Col)]
}

// Set writes v at the current element; at End() it returns ErrOutOfRange.
func (it Iterator[T]) Set(v T) error {
	if it.IsEnd() {
		return denseErrorf("Iterator.Set", it.pos.Row, it.pos.Col, ErrOutOfRange)
	}
	it.st.data[it.reg.offset(it.st.cols, it.pos.Row, it.pos.Col)] = v

	return nil
}

// Equal reports identical store, region and position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.st == o.st && it.reg == o.reg && it.pos == o.pos
}

// Values yields every element in logical row-major order.
func (m *Dense[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := m.Begin(); !it.IsEnd(); it.Advance() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// All yields (position, value) pairs in logical row-major order.
func (m *Dense[T]) All() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for it := m.Begin(); !it.IsEnd(); it.Advance() {
			if !yield(it.pos, it.Value()) {
				return
			}
		}
	}
}

// ---------- row / column iterators ----------

// RowIterator walks the rows of a view; At/Set address a column of the current row.
type RowIterator[T Number] struct {
	st  *store[T]
	reg region
	row int // logical row; sentinel once exhausted
}

// FirstRow returns a cursor at row 0.
func (m *Dense[T]) FirstRow() RowIterator[T] { return m.Row(0) }

// EndRow returns the past-the-end row cursor.
func (m *Dense[T]) EndRow() RowIterator[T] {
	return RowIterator[T]{st: m.st, reg: m.reg, row: sentinel}
}

// Row returns a cursor at row i, or EndRow() when i is outside the view.
func (m *Dense[T]) Row(i int) RowIterator[T] {
	if i < 0 || i >= m.Rows() {
		return m.EndRow()
	}

	return RowIterator[T]{st: m.st, reg: m.reg, row: i}
}

// Advance moves to the next row, or to the end sentinel after the last one.
func (r *RowIterator[T]) Advance() { r.row = stepForward(r.row, r.reg.rows()) }

// Retreat moves to the previous row; clamped at row 0, End() goes to the last row.
func (r *RowIterator[T]) Retreat() { r.row = stepBack(r.row, r.reg.rows()) }

// IsEnd reports whether the cursor is past the last row.
func (r RowIterator[T]) IsEnd() bool { return r.row == sentinel }

// Index returns the logical row (sentinel when exhausted).
func (r RowIterator[T]) Index() int { return r.row }

// At returns element col of the current row.
func (r RowIterator[T]) At(col int) (T, error) {
	if r.IsEnd() || col < 0 || col >= r.reg.cols() {
		var zero T
		return zero, denseErrorf("RowIterator.At", r.row, col, ErrOutOfRange)
	}

	return r.st.data[r.reg.offset(r.st.cols, r.row, col)], nil
}

// Set writes v at column col of the current row.
func (r RowIterator[T]) Set(col int, v T) error {
	if r.IsEnd() || col < 0 || col >= r.reg.cols() {
		return denseErrorf("RowIterator.Set", r.row, col, ErrOutOfRange)
	}
	r.st.data[r.reg.offset(r.st.cols, r.row, col)] = v

	return nil
}

// Elements returns a horizontal element cursor at the first column of this row.
func (r RowIterator[T]) Elements() ElementIterator[T] {
	e := ElementIterator[T]{st: r.st, reg: r.reg, horizontal: true, pos: Index{Row: r.row}}
	if r.IsEnd() {
		e.pos = endIndex
	}

	return e
}

// ElementsEnd returns the past-the-end element cursor of this row.
func (r RowIterator[T]) ElementsEnd() ElementIterator[T] {
	e := ElementIterator[T]{st: r.st, reg: r.reg, horizontal: true, pos: Index{Row: r.row, Col: sentinel}}
	if r.IsEnd() {
		e.pos = endIndex
	}

	return e
}

// Equal reports identical store, region and row.
func (r RowIterator[T]) Equal(o RowIterator[T]) bool {
	return r.st == o.st && r.reg == o.reg && r.row == o.row
}

// ColIterator walks the columns of a view; At/Set address a row of the current column.
type ColIterator[T Number] struct {
	st  *store[T]
	reg region
	col int // logical column; sentinel once exhausted
}

// FirstCol returns a cursor at column 0.
func (m *Dense[T]) FirstCol() ColIterator[T] { return m.Col(0) }

// EndCol returns the past-the-end column cursor.
func (m *Dense[T]) EndCol() ColIterator[T] {
	return ColIterator[T]{st: m.st, reg: m.reg, col: sentinel}
}

// Col returns a cursor at column j, or EndCol() when j is outside the view.
func (m *Dense[T]) Col(j int) ColIterator[T] {
	if j < 0 || j >= m.Cols() {
		return m.EndCol()
	}

	return ColIterator[T]{st: m.st, reg: m.reg, col: j}
}

// Advance moves to the next column, or to the end sentinel after the last one.
func (c *ColIterator[T]) Advance() { c.col = stepForward(c.col, c.reg.cols()) }

// Retreat moves to the previous column; clamped at column 0.
func (c *ColIterator[T]) Retreat() { c.col = stepBack(c.col, c.reg.cols()) }

// IsEnd reports whether the cursor is past the last column.
func (c ColIterator[T]) IsEnd() bool { return c.col == sentinel }

// Index returns the logical column (sentinel when exhausted).
func (c ColIterator[T]) Index() int { return c.col }

// At returns element row of the current column.
func (c ColIterator[T]) At(row int) (T, error) {
	if c.IsEnd() || row < 0 || row >= c.reg.rows() {
		var zero T
		return zero, denseErrorf("ColIterator.At", row, c.col, ErrOutOfRange)
	}

	return c.st.data[c.reg.offset(c.st.cols, row, c.col)], nil
}

// Set writes v at row of the current column.
func (c ColIterator[T]) Set(row int, v T) error {
	if c.IsEnd() || row < 0 || row >= c.reg.rows() {
		return denseErrorf("ColIterator.Set", row, c.col, ErrOutOfRange)
	}
	c.st.data[c.reg.offset(c.st.cols, row, c.col)] = v

	return nil
}

// Elements returns a vertical element cursor at the first row of this column.
func (c ColIterator[T]) Elements() ElementIterator[T] {
	e := ElementIterator[T]{st: c.st, reg: c.reg, pos: Index{Col: c.col}}
	if c.IsEnd() {
		e.pos = endIndex
	}

	return e
}

// ElementsEnd returns the past-the-end element cursor of this column.
func (c ColIterator[T]) ElementsEnd() ElementIterator[T] {
	e := ElementIterator[T]{st: c.st, reg: c.reg, pos: Index{Row: sentinel, Col: c.col}}
	if c.IsEnd() {
		e.pos = endIndex
	}

	return e
}

// Equal reports identical store, region and column.
func (c ColIterator[T]) Equal(o ColIterator[T]) bool {
	return c.st == o.st && c.reg == o.reg && c.col == o.col
}

// ---------- element iterator ----------

// ElementIterator walks a single row (horizontal) or a single column.
// The fixed coordinate is kept at the end; only the moving one becomes the sentinel.
type ElementIterator[T Number] struct {
	st         *store[T]
	reg        region
	horizontal bool  // true: moves along a row
	pos        Index // logical position
}

// moving returns a pointer to the coordinate this cursor advances along.
func (e *ElementIterator[T]) moving() (*int, int) {
	if e.horizontal {
		return &e.pos.Col, e.reg.cols()
	}

	return &e.pos.Row, e.reg.rows()
}

// Advance moves one element along the line, or to the end sentinel.
func (e *ElementIterator[T]) Advance() {
	p, n := e.moving()
	*p = stepForward(*p, n)
}

// Retreat moves one element back; clamped at the first element.
func (e *ElementIterator[T]) Retreat() {
	if e.pos == endIndex {
		return // cursor of an exhausted row/column has no line to return to
	}
	p, n := e.moving()
	*p = stepBack(*p, n)
}

// IsEnd reports whether the cursor is past the last element of its line.
func (e ElementIterator[T]) IsEnd() bool { return e.pos.Row == sentinel || e.pos.Col == sentinel }

// Horizontal reports the walking direction.
func (e ElementIterator[T]) Horizontal() bool { return e.horizontal }

// Position returns the logical coordinate.
func (e ElementIterator[T]) Position() Index { return e.pos }

// Value returns the current element, or the zero value at the end.
func (e ElementIterator[T]) Value() T {
	if e.IsEnd() {
		var zero T
		return zero
	}

	return e.st.data[e.reg.offset(e.st.cols, e.pos.Row, e.pos.Col)]
}

// Set writes v at the current element; at the end it returns ErrOutOfRange.
func (e ElementIterator[T]) Set(v T) error {
	if e.IsEnd() {
		return denseErrorf("ElementIterator.Set", e.pos.Row, e.pos.Col, ErrOutOfRange)
	}
	e.st.data[e.reg.offset(e.st.cols, e.pos.Row, e.pos.Col)] = v

	return nil
}

// Equal reports identical store, region, direction and position.
func (e ElementIterator[T]) Equal(o ElementIterator[T]) bool {
	return e.st == o.st && e.reg == o.reg && e.horizontal == o.horizontal && e.pos == o.pos
}

// ---------- shared stepping rules ----------

// stepForward advances i within [0, n); past n-1 it yields the sentinel.
func stepForward(i, n int) int {
	if i == sentinel {
		return sentinel
	}
	if i+1 >= n {
		return sentinel
	}

	return i + 1
}

// stepBack retreats i within [0, n): clamped at 0, sentinel goes to n-1.
func stepBack(i, n int) int {
	switch {
	case i == sentinel:
		return n - 1
	case i == 0:
		return 0
	default:
		return i - 1
	}
}
