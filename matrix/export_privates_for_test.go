// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private view metadata.
//
// Purpose:
//   - Expose the region descriptor and store stride to matrix_test ONLY, so
//     black-box tests can assert the composed store-space bounds of views.
//   - File name ends in _test.go: it never ships in production builds.

// RegionSnapshot is a read-only copy of a view's region.
type RegionSnapshot struct {
	RBegin, REnd int
	CBegin, CEnd int
	Continuous   bool
	Transposed   bool
}

// RegionOf_TestOnly returns the store-space region of m.
func RegionOf_TestOnly[T Number](m *Dense[T]) RegionSnapshot {
	g := m.reg
	return RegionSnapshot{
		RBegin: g.rBegin, REnd: g.rEnd,
		CBegin: g.cBegin, CEnd: g.cEnd,
		Continuous: g.continuous, Transposed: g.transposed,
	}
}

// Offset_TestOnly returns the flat store offset of logical (row, col).
func Offset_TestOnly[T Number](m *Dense[T], row, col int) int {
	return m.reg.offset(m.st.cols, row, col)
}
