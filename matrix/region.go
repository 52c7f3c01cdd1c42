// SPDX-License-Identifier: MIT

// Package matrix - region descriptor mapping view coordinates to store offsets.
//
// Purpose:
//   - Describe which store rows/cols a view exposes, in store coordinates.
//   - Keep rows()/cols() derived so one region stays consistent under transposition.
//
// Index formulas (stride = store.cols):
//   - plain:      stride*(row + rBegin) + cBegin + col
//   - transposed: stride*(col + rBegin) + cBegin + row
//
// Complexity quicksheet:
//   - rows/cols/offset: O(1); sub/transpose: O(1), no data movement.
package matrix

// region holds inclusive store-space bounds plus orientation flags.
// Invariant: 0 ≤ rBegin ≤ rEnd < store.rows and 0 ≤ cBegin ≤ cEnd < store.cols.
type region struct {
	rBegin, rEnd int  // store rows covered, inclusive
	cBegin, cEnd int  // store cols covered, inclusive
	continuous   bool // region spans the whole store
	transposed   bool // logical rows read store columns
}

// fullRegion returns the continuous region covering a rows×cols store.
func fullRegion(rows, cols int) region {
	return region{
		rBegin:     0,
		rEnd:       rows - 1,
		cBegin:     0,
		cEnd:       cols - 1,
		continuous: true,
	}
}

// storeRows is the number of store rows covered, ignoring orientation.
func (g region) storeRows() int { return g.rEnd - g.rBegin + 1 }

// storeCols is the number of store columns covered, ignoring orientation.
func (g region) storeCols() int { return g.cEnd - g.cBegin + 1 }

// rows reports logical rows; a transposed region reads the column bound pair.
func (g region) rows() int {
	if g.transposed {
		return g.storeCols()
	}

	return g.storeRows()
}

// cols reports logical columns; a transposed region reads the row bound pair.
func (g region) cols() int {
	if g.transposed {
		return g.storeRows()
	}

	return g.storeCols()
}

// offset translates a logical (row, col) into a flat store offset.
// The caller guarantees 0 ≤ row < rows() and 0 ≤ col < cols().
func (g region) offset(stride, row, col int) int {
	if g.transposed {
		return stride*(col+g.rBegin) + g.cBegin + row
	}

	return stride*(row+g.rBegin) + g.cBegin + col
}

// flat reports whether logical row-major order equals store order for the
// whole buffer, which unlocks slice-level fast paths.
func (g region) flat() bool { return g.continuous && !g.transposed }

// sub composes a view-relative window with this region.
// Bounds are validated by the caller (Dense.Submatrix).
//
// Implementation:
//   - plain:      logical rows → store rows, logical cols → store cols.
//   - transposed: logical rows → store cols, logical cols → store rows;
//     the orientation flag is inherited so the window stays transposed.
func (g region) sub(rFrom, rTo, cFrom, cTo int) region {
	out := region{transposed: g.transposed}
	if g.transposed {
		out.rBegin, out.rEnd = g.rBegin+cFrom, g.rBegin+cTo
		out.cBegin, out.cEnd = g.cBegin+rFrom, g.cBegin+rTo
	} else {
		out.rBegin, out.rEnd = g.rBegin+rFrom, g.rBegin+rTo
		out.cBegin, out.cEnd = g.cBegin+cFrom, g.cBegin+cTo
	}

	return out
}

// transpose flips orientation only; bounds keep their store meaning.
func (g region) transpose() region {
	g.transposed = !g.transposed

	return g
}
