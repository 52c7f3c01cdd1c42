// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleDense_Submatrix shows that a submatrix is a window onto the parent:
// writes through either one are visible in both.
func ExampleDense_Submatrix() {
	m, _ := matrix.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	corner, _ := m.Submatrix(1, 2, 1, 2)
	corner.MulScalarInPlace(10)

	fmt.Print(m)
	// Output:
	// [
	// 	1	2	3
	// 	4	50	60
	// 	7	80	90
	// ]
}

// ExampleDense_Transpose shows the O(1) aliasing transpose.
func ExampleDense_Transpose() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	_ = tr.Set(2, 0, 30)

	fmt.Println(tr.Rows(), tr.Cols(), tr.SharesStore(m))
	_ = matrix.Fprint(os.Stdout, m, matrix.WithIndent(""), matrix.WithSeparator(" "))
	// Output:
	// 3 2 true
	// [
	// 1 2 30
	// 4 5 6
	// ]
}

// ExampleDense_Begin walks a view with the flat cursor and with range-over-func.
func ExampleDense_Begin() {
	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	var flat []int
	for it := m.Transpose().Begin(); !it.IsEnd(); it.Advance() {
		flat = append(flat, it.Value())
	}
	fmt.Println(flat)

	var diag []int
	for p, v := range m.All() {
		if p.Row == p.Col {
			diag = append(diag, v)
		}
	}
	fmt.Println(diag)
	// Output:
	// [1 3 2 4]
	// [1 4]
}

// ExampleDense_Det computes a cofactor determinant.
func ExampleDense_Det() {
	m, _ := matrix.FromRows([][]float64{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 2},
	})
	d, _ := m.Det()
	fmt.Println(d)
	// Output: 6
}

// ExampleDense_AppendH shows zero padding under the shorter operand.
func ExampleDense_AppendH() {
	a, _ := matrix.FromRows([][]int{{1}, {2}})
	b, _ := matrix.FromRows([][]int{{3, 4}})
	out, _ := a.AppendH(b)
	fmt.Print(out)
	// Output:
	// [
	// 	1	3	4
	// 	2	0	0
	// ]
}

// ExampleFscan fills a pre-sized matrix from whitespace-separated text.
func ExampleFscan() {
	m, _ := matrix.NewDense[float64](2, 2)
	if err := matrix.Fscan(strings.NewReader("1.5 2\n3 4"), m); err != nil {
		fmt.Println(err)
		return
	}
	sum, _ := m.Add(m)
	fmt.Print(sum)
	// Output:
	// [
	// 	3	4
	// 	6	8
	// ]
}
