// SPDX-License-Identifier: MIT

// Package matrix - generators for common fills.
//
// Purpose:
//   - Zeros/Ones/Identity build neutral-element matrices.
//   - Rand fills from a caller-owned Sampler; there is no package-level
//     random state, so seeding and thread ownership stay with the caller.
//
// AI-Hints:
//   - Any gonum distuv distribution (Normal, Uniform, ...) has Rand() float64
//     and is therefore a Sampler[float64] as-is.
package matrix

// Sampler produces one random element per call.
type Sampler[T Number] interface {
	Rand() T
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc[T Number] func() T

// Rand calls f.
func (f SamplerFunc[T]) Rand() T { return f() }

// Zeros returns a rows×cols matrix of zeros.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func Zeros[T Number](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// ZerosSquare returns an n×n matrix of zeros.
func ZerosSquare[T Number](n int) (*Dense[T], error) { return Zeros[T](n, n) }

// Ones returns a rows×cols matrix with every element equal to 1.
// Complexity: O(rows*cols).
func Ones[T Number](rows, cols int) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.st.data {
		m.st.data[idx] = 1
	}

	return m, nil
}

// OnesSquare returns an n×n matrix of ones.
func OnesSquare[T Number](n int) (*Dense[T], error) { return Ones[T](n, n) }

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order
		m.st.data[i*n+i] = 1
	}

	return m, nil
}

// Rand returns a rows×cols matrix whose elements are drawn from s, one call
// per element in row-major order.
// Errors: ErrInvalidDimensions, ErrNilSampler.
// Complexity: O(rows*cols) sampler calls.
func Rand[T Number](rows, cols int, s Sampler[T]) (*Dense[T], error) {
	if isNil(s) { // also catches SamplerFunc[T](nil) and nil pointer samplers
		return nil, matrixErrorf("Rand", ErrNilSampler)
	}
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.st.data {
		m.st.data[idx] = s.Rand()
	}

	return m, nil
}

// RandSquare returns an n×n matrix drawn from s.
func RandSquare[T Number](n int, s Sampler[T]) (*Dense[T], error) { return Rand(n, n, s) }
