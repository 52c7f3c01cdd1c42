// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep operations minimal by delegating nil/shape/region checks here.
//  - Return plain sentinel errors wrapped with the validator tag; call sites
//    wrap once more with their operation tag via matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the shape reference is non-nil, including typed nil
// pointers stored in the interface (e.g. (*Dense[float64])(nil)).
// A Dense that was never constructed (the zero value, no backing store) is
// reported as nil too.
// Complexity: O(1).
func ValidateNotNil(m Shape) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if u, ok := m.(unbacked); ok && u.unbacked() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// unbacked is implemented by views that can exist without a backing store.
type unbacked interface {
	unbacked() bool
}

// isNil reports an untyped nil or a nil pointer/func held in an interface,
// e.g. (*Dense[float64])(nil) or SamplerFunc[int](nil).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}

	return false
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Shape) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Shape) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Shape) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Shape) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateRegion checks a view-relative inclusive window against m.
// Bounds are checked before order, so a window that is both out of bounds and
// reversed reports ErrOutOfBounds.
func validateRegion(m Shape, rFrom, rTo, cFrom, cTo int) error {
	if rFrom < 0 || rTo >= m.Rows() || cFrom < 0 || cTo >= m.Cols() {
		return fmt.Errorf("rows [%d..%d] cols [%d..%d] of %dx%d: %w",
			rFrom, rTo, cFrom, cTo, m.Rows(), m.Cols(), ErrOutOfBounds)
	}
	if rFrom > rTo || cFrom > cTo {
		return fmt.Errorf("rows [%d..%d] cols [%d..%d]: %w", rFrom, rTo, cFrom, cTo, ErrInvalidRegion)
	}

	return nil
}
