// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/edp1096/sparse"
)

// sparseConfig is the real-valued configuration used for every SolveSparse call.
func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// SolveSparse solves [A | b] with the sparse LU factorization of
// github.com/edp1096/sparse. Only non-zero coefficients are loaded, so
// large systems with few entries per row stay cheap.
// Implementation:
//   - Stage 1: same input checks as SolveGauss.
//   - Stage 2: load A into a 1-based sparse matrix and b into a 1-based rhs.
//   - Stage 3: Factor, Solve, and map the 1-based solution back to 0-based.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNaNInf.
//   - ErrSingular when factorization fails or the solution is not finite.
func SolveSparse(aug Matrix) ([]float64, error) {
	a, b, err := splitAugmented(aug)
	if err != nil {
		return nil, matrixErrorf(opSparse, err)
	}
	n := len(a)

	sm, err := sparse.Create(int64(n), sparseConfig())
	if err != nil {
		return nil, matrixErrorf(opSparse, err)
	}
	defer sm.Destroy()

	rhs := make([]float64, n+1) // 1-based
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if a[i][j] != 0 {
				sm.GetElement(int64(i+1), int64(j+1)).Real += a[i][j]
			}
		}
		rhs[i+1] = b[i]
	}

	if err = sm.Factor(); err != nil {
		return nil, matrixErrorf(opSparse, fmt.Errorf("factor: %v: %w", err, ErrSingular))
	}
	sol, err := sm.Solve(rhs)
	if err != nil {
		return nil, matrixErrorf(opSparse, fmt.Errorf("solve: %v: %w", err, ErrSingular))
	}
	if len(sol) < n+1 {
		return nil, matrixErrorf(opSparse, fmt.Errorf("solution length %d: %w", len(sol), ErrDimensionMismatch))
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		v := sol[i+1]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSparse, fmt.Errorf("x[%d] = %v: %w", i, v, ErrSingular))
		}
		x[i] = v
	}

	return x, nil
}
