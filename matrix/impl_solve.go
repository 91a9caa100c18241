// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// SolveCramer solves the augmented system [A | b] (n×(n+1)) with Cramer's rule:
// x_k = det(A_k) / det(A), where A_k is A with column k replaced by b.
// Implementation:
//   - Stage 1: resolve options; ValidateAugmented; n <= MaxCramerOrder; finite entries.
//   - Stage 2: det(A) by Laplace expansion; |det(A)| < epsilon is singular.
//   - Stage 3: one determinant per unknown.
//
// Inputs:
//   - aug: n×(n+1) augmented matrix; it is never mutated.
//   - opts: WithEpsilon overrides DefaultEpsilon (1e-12).
//
// Returns:
//   - []float64 of length n.
//
// Errors:
//   - ErrInvalidOption, ErrNilMatrix, ErrBadShape, ErrOrderTooLarge, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n · n!), Space O(n²).
func SolveCramer(aug Matrix, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	a, b, err := splitAugmented(aug)
	if err != nil {
		return nil, matrixErrorf(opCramer, err)
	}
	n := len(a)
	if n > MaxCramerOrder {
		return nil, matrixErrorf(opCramer, fmt.Errorf("order %d > %d: %w", n, MaxCramerOrder, ErrOrderTooLarge))
	}

	det := laplace(a)
	if math.Abs(det) < o.eps {
		return nil, matrixErrorf(opCramer, fmt.Errorf("det %g: %w", det, ErrSingular))
	}

	x := make([]float64, n)
	work := make([][]float64, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			work[i] = append(work[i][:0], a[i]...)
			work[i][k] = b[i]
		}
		x[k] = laplace(work) / det
	}

	return x, nil
}

// SolveGauss solves [A | b] by Gaussian elimination with partial pivoting
// followed by back substitution.
// Implementation:
//   - Stage 1: same input checks as SolveCramer, without the order cap.
//   - Stage 2: for each column pick the row with the largest |pivot|, swap it up
//     and eliminate below; |pivot| < epsilon is singular.
//   - Stage 3: back substitution from the last row.
//
// Errors:
//   - ErrInvalidOption, ErrNilMatrix, ErrBadShape, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) (a working copy; aug is not mutated).
func SolveGauss(aug Matrix, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if err = ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	if err = ValidateFinite(aug); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	m, err := toRows(aug)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}

	n := len(m)
	var i, j, k, p int
	for i = 0; i < n; i++ {
		p = i
		for j = i + 1; j < n; j++ {
			if math.Abs(m[j][i]) > math.Abs(m[p][i]) {
				p = j
			}
		}
		if math.Abs(m[p][i]) < o.eps {
			return nil, matrixErrorf(opGauss, fmt.Errorf("column %d: %w", i, ErrSingular))
		}
		m[i], m[p] = m[p], m[i]

		for j = i + 1; j < n; j++ {
			factor := m[j][i] / m[i][i]
			for k = i; k <= n; k++ {
				m[j][k] -= factor * m[i][k]
			}
		}
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum := ZeroSum
		for j = i + 1; j < n; j++ {
			sum += m[i][j] * x[j]
		}
		x[i] = (m[i][n] - sum) / m[i][i]
	}

	return x, nil
}

// Residual returns r = A·x − b for the augmented system [A | b].
// A solution is exact when every r_i is 0; solvers are checked against it.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (len(x) != n).
func Residual(aug Matrix, x []float64) ([]float64, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err := ValidateVecLen(x, aug.Rows()); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	rows, err := toRows(aug)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}

	n := len(rows)
	r := make([]float64, n)
	for i, row := range rows {
		acc := ZeroSum
		for j := 0; j < n; j++ {
			acc += row[j] * x[j]
		}
		r[i] = acc - row[n]
	}

	return r, nil
}

// splitAugmented validates aug and returns copies of A (n×n) and b (n).
func splitAugmented(aug Matrix) ([][]float64, []float64, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, nil, err
	}
	if err := ValidateFinite(aug); err != nil {
		return nil, nil, err
	}
	rows, err := toRows(aug)
	if err != nil {
		return nil, nil, err
	}

	n := len(rows)
	a := make([][]float64, n)
	b := make([]float64, n)
	for i, row := range rows {
		a[i] = row[:n:n]
		b[i] = row[n]
	}

	return a, b, nil
}
