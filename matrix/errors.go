// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the typed matrix error.
// This file defines ONLY package-level sentinels and the *Error wrapper used
// across the matrix package. All operations MUST return errors built from these
// sentinels and tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; every check runs before the first write.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Operations wrap sentinels into *Error via matrixErrorf so callers can use
// errors.Is for the condition and errors.As for the failing operation.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> region bounds -> region order -> numeric (divide by zero).

var (
	// ErrOutOfBounds is returned when a requested region falls outside the current view.
	ErrOutOfBounds = errors.New("matrix: region out of bounds")

	// ErrInvalidRegion is returned when a requested region has from > to on either axis.
	ErrInvalidRegion = errors.New("matrix: invalid region")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimensions mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: not square matrix")

	// ErrDivideByZero signals scalar division by the additive identity.
	ErrDivideByZero = errors.New("matrix: divide by zero")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a single element index is outside the view.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilSampler indicates that Rand was called without a sampler.
	ErrNilSampler = errors.New("matrix: nil sampler")
)

// Error is the single "matrix error" kind returned by every operation.
// Op names the failing operation; Err carries the sentinel (possibly wrapped
// with coordinates or an I/O cause).
type Error struct {
	Op  string // operation tag, e.g. "Submatrix", "Det"
	Err error  // underlying sentinel or cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// matrixErrorf wraps err with an operation tag, preserving the original error.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// denseErrorf wraps a sentinel with the method tag and callsite coordinates.
func denseErrorf(op string, row, col int, err error) error {
	return &Error{Op: op, Err: fmt.Errorf("(%d,%d): %w", row, col, err)}
}
