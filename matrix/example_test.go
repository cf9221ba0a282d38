package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mxlib/matrix"
)

// ExampleMul demonstrates literal construction and a pure product.
func ExampleMul() {
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})

	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)

	// Output:
	//  19  22
	//  43  50
}

// ExampleDense_Transpose shows the in-place transpose of a rectangular matrix.
func ExampleDense_Transpose() {
	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	m.Transpose()
	fmt.Println(m.Rows(), m.Cols())
	fmt.Print(m)

	// Output:
	// 3 2
	//   1   4
	//   2   5
	//   3   6
}

// ExampleDense_AddInPlace shows the compound form and a dimension mismatch.
func ExampleDense_AddInPlace() {
	acc, _ := matrix.NewFilled(2, 2, 1.0)
	inc, _ := matrix.NewFilled(2, 2, 0.25)
	bad, _ := matrix.NewFilled(3, 2, 1.0)

	_, _ = acc.AddInPlace(inc)
	_, _ = acc.AddInPlace(inc)
	fmt.Print(acc)

	_, err := acc.AddInPlace(bad)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// 1.5 1.5
	// 1.5 1.5
	// true
}

// ExampleConvert shows truncating conversion between element types.
func ExampleConvert() {
	f, _ := matrix.FromRows([][]float64{{1.9, -2.7}})
	i, _ := matrix.Convert[int](f)
	fmt.Print(i)

	// Output:
	//   1  -2
}
