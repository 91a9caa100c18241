// SPDX-License-Identifier: MIT

package matrix

// Determinant computes det(m) by Laplace (cofactor) expansion along row 0.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: base cases 1×1 and 2×2 are closed forms; larger orders expand
//     along the first row with alternating signs, recursing on the minors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for small n
//     (SolveCramer caps n at MaxCramerOrder); use SolveGauss beyond that.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	rows, err := toRows(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplace(rows), nil
}

// laplace expands along row 0. a must be square and non-empty.
func laplace(a [][]float64) float64 {
	n := len(a)
	switch n {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := 0.0
	sign := 1.0
	for col := 0; col < n; col++ {
		if a[0][col] != 0 {
			det += sign * a[0][col] * laplace(minor(a, col))
		}
		sign = -sign
	}

	return det
}

// minor drops row 0 and column col.
func minor(a [][]float64, col int) [][]float64 {
	n := len(a)
	sub := make([][]float64, n-1)
	for i := 1; i < n; i++ {
		row := make([]float64, 0, n-1)
		row = append(row, a[i][:col]...)
		row = append(row, a[i][col+1:]...)
		sub[i-1] = row
	}

	return sub
}
