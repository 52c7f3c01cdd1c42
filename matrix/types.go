// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense, its views and iterators.
// This file intentionally contains ONLY domain-facing types (element
// constraint, shape contract, coordinates). Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

import "golang.org/x/exp/constraints"

// Number is the element constraint of Dense.
// Arithmetic needs +, -, *, / and ==; every integer and float kind provides them.
// Integer division truncates and integer overflow wraps, as in plain Go.
type Number interface {
	constraints.Integer | constraints.Float
}

// Shape is the minimal read-only contract used by validators.
// Both *Dense[T] and the gonum adapter Mat satisfy it.
//
// Complexity notes: both methods are expected O(1).
type Shape interface {
	// Rows returns the number of logical rows.
	Rows() int

	// Cols returns the number of logical columns.
	Cols() int
}

// Index is a logical (row, column) coordinate in view space.
// Iterators report positions as Index; the end sentinel is Index{-1, -1}.
type Index struct {
	Row int // logical row in the view
	Col int // logical column in the view
}

// endIndex is the canonical past-the-end position shared by all cursors.
var endIndex = Index{Row: sentinel, Col: sentinel}

// sentinel marks a cursor that advanced past its last valid position.
const sentinel = -1
