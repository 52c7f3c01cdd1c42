// SPDX-License-Identifier: MIT

// Package matrix - backing store shared by every view of one root matrix.
//
// Purpose:
//   - Own the single contiguous row-major buffer (offset = i*cols + j).
//   - Never resize: operations needing a different size allocate a new store
//     (Copy, arithmetic results, AppendH/AppendV, determinant minors).
//
// Ownership:
//   - Views hold a *store[T]; the buffer lives as long as any view or iterator
//     referencing it is reachable and is reclaimed by the garbage collector
//     after the last one goes away. There is no explicit release step.
//   - A store carries no lock. Sharing one store between goroutines while any
//     of them writes is unsupported and is the caller's responsibility.
package matrix

// store is a heap-allocated row-major buffer of rows*cols elements.
type store[T Number] struct {
	rows int // total rows in the buffer (>0)
	cols int // total columns in the buffer (>0), also the row stride
	data []T // len(data) == rows*cols
}

// newStore allocates a zero-filled rows×cols buffer.
// Callers validate rows>0 && cols>0 beforehand.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func newStore[T Number](rows, cols int) *store[T] {
	return &store[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols), // make() zero-fills deterministically
	}
}
