// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleMul multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleSolveCramer solves 2x + y = 5, x − y = 1.
func ExampleSolveCramer() {
	aug, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, 5},
		{1, -1, 1},
	})

	x, err := matrix.SolveCramer(aug)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("x = %.2f, y = %.2f\n", x[0], x[1])
	// Output:
	// x = 2.00, y = 1.00
}
