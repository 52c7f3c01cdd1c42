// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin function-style entry points mirroring the Dense methods, for
//     callers that prefer Sum(a, b) over a.Add(b).
//   - Avoid any logic duplication — each facade delegates to the canonical method.
//
// AI-Hints:
//   - Facades never change loop orders or error semantics of the methods.

package matrix

// Sum is an alias for a.Add(b): element-wise a + b into a fresh matrix.
// Complexity: O(rc).
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Diff is an alias for a.Sub(b): element-wise a − b into a fresh matrix.
// Complexity: O(rc).
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Sub(b)
}

// Product is an alias for a.Mul(b): matrix product a × b.
// Complexity: O(r*n*c).
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// T is an alias for m.Transpose(): the aliasing, O(1) transpose view.
// m must be non-nil.
func T[E Number](m *Dense[E]) *Dense[E] { return m.Transpose() }

// Determinant is an alias for m.Det().
// Complexity: O(n!).
func Determinant[T Number](m *Dense[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}

	return m.Det()
}

// CopyOf is an alias for m.Copy(): an independent, continuous deep copy.
// m must be non-nil.
func CopyOf[T Number](m *Dense[T]) *Dense[T] { return m.Copy() }

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers. m must be non-nil; a zero-value m
// yields a zero value.
func ZerosLike[T Number](m *Dense[T]) *Dense[T] {
	if m.st == nil {
		return &Dense[T]{}
	}

	return newDense[T](m.Shape())
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](m.Rows())
}
