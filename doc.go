// Package densemat is a small toolkit for dense 2-D matrices whose views
// share one backing store.
//
// 🚀 What is densemat?
//
//	A generic, pure-Go dense matrix that keeps data in one row-major buffer
//	and lets many views read and write it:
//		• Views: Submatrix and Transpose in O(1), no copying
//		• Cursors: flat, row, column and per-line element iterators
//		• Arithmetic: +, −, scalar ops, product, equality, determinant
//		• Generators: Zeros, Ones, Identity, Rand over any Sampler
//		• Text IO: Fprint with options, all-or-nothing Fscan
//		• gonum interop: AsMat / FromMat
//
// ✨ Why choose densemat?
//
//   - Beginner-friendly – value semantics are explicit: views alias, Copy copies
//   - Typed – one Dense[T] for every integer and floating-point element type
//   - Checked – every failure is an error value, returned before any write
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   — Dense[T], views, iterators, arithmetic, generators, IO
//	examples/ — runnable scenarios (views tour, power iteration)
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	corner, _ := m.Submatrix(1, 1, 0, 1)
//	corner.MulScalarInPlace(10) // m is now [[1 2] [30 40]]
//	fmt.Print(m.Transpose())
package densemat
