// Package matrix offers a generic dense matrix whose views share storage.
//
// The matrix package provides:
//
//   - Dense[T], a (store, region) pair: one reference-shared row-major buffer
//     plus the rows, columns and orientation a given view exposes.
//   - No-copy views: Submatrix narrows the region, Transpose flips it; writes
//     through any view are visible through every view that overlaps it.
//   - Copy, which always materializes an independent, continuous matrix.
//   - Cursors (Iterator, RowIterator, ColIterator, ElementIterator) and
//     range-over-func adapters (Values, All) derived purely from view metadata.
//   - Element-wise and scalar arithmetic in allocating and in-place forms,
//     matrix product, equality, cofactor determinant, AppendH/AppendV.
//   - Generators (Zeros, Ones, Identity, Rand with a caller-owned Sampler),
//     text IO (Fprint, Fscan) and gonum interop (AsMat, FromMat).
//
// Errors are *Error values wrapping package sentinels; match them with
// errors.Is. Checks always run before the first write.
//
// The package does no locking: views sharing a store must not be used from
// several goroutines while any of them writes.
//
// See the examples in this package for usage patterns.
package matrix
