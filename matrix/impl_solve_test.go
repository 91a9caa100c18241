// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

func TestSolveCramer_3x3(t *testing.T) {
	aug := FromRows(t, system3)
	x, err := matrix.SolveCramer(aug)
	require.NoError(t, err)

	require.Len(t, x, 3)
	assert.InDelta(t, 4.5, x[0], 1e-12)
	assert.InDelta(t, -2.1, x[1], 1e-12)
	assert.InDelta(t, 0.7, x[2], 1e-12)
	RequireResidualZero(t, aug, x, 1e-9)
	CompareExact(t, system3, aug)
}

func TestSolveCramer_Errors(t *testing.T) {
	_, err := matrix.SolveCramer(FromRows(t, singular3))
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.SolveCramer(MustDense(t, 3, 3))
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.SolveCramer(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	n := matrix.MaxCramerOrder + 1
	_, err = matrix.SolveCramer(MustDense(t, n, n+1))
	assert.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	_, err = matrix.SolveCramer(FromRows(t, system3), matrix.WithEpsilon(-1))
	assert.ErrorIs(t, err, matrix.ErrInvalidOption)
}

func TestSolveCramer_Epsilon(t *testing.T) {
	// det = 1e-6: accepted by default, rejected with a coarser epsilon.
	aug := FromRows(t, [][]float64{{1e-3, 0, 1}, {0, 1e-3, 2}})

	x, err := matrix.SolveCramer(aug)
	require.NoError(t, err)
	assert.InDelta(t, 1000, x[0], 1e-6)
	assert.InDelta(t, 2000, x[1], 1e-6)

	_, err = matrix.SolveCramer(aug, matrix.WithEpsilon(1e-3))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveGauss(t *testing.T) {
	aug := FromRows(t, system3)
	x, err := matrix.SolveGauss(hide{aug})
	require.NoError(t, err)

	want, err := matrix.SolveCramer(aug)
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], x[i], 1e-9)
	}
	RequireResidualZero(t, aug, x, 1e-9)

	_, err = matrix.SolveGauss(FromRows(t, singular3))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolveGauss_NeedsPivot(t *testing.T) {
	// a11 = 0 fails without row exchange.
	aug := FromRows(t, [][]float64{{0, 1, 2}, {1, 1, 3}})
	x, err := matrix.SolveGauss(aug)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}

func TestSolveGauss_LargerThanCramer(t *testing.T) {
	const n = 12
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n+1)
		for j := 0; j < n; j++ {
			if i == j {
				rows[i][j] = 4
			} else if j == i-1 || j == i+1 {
				rows[i][j] = -1
			}
		}
		rows[i][n] = float64(i + 1)
	}
	aug := FromRows(t, rows)

	x, err := matrix.SolveGauss(aug)
	require.NoError(t, err)
	RequireResidualZero(t, aug, x, 1e-9)

	_, err = matrix.SolveCramer(aug)
	assert.ErrorIs(t, err, matrix.ErrOrderTooLarge)
}

func TestSolveSparse(t *testing.T) {
	aug := FromRows(t, system3)
	x, err := matrix.SolveSparse(aug)
	require.NoError(t, err)
	require.Len(t, x, 3)
	RequireResidualZero(t, aug, x, 1e-9)

	_, err = matrix.SolveSparse(MustDense(t, 2, 2))
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestResidual(t *testing.T) {
	aug := FromRows(t, system3)
	r, err := matrix.Residual(aug, []float64{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{-9, -8, -10}, r)

	_, err = matrix.Residual(aug, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_Dispatch(t *testing.T) {
	aug := FromRows(t, dominant3)
	for _, s := range matrix.Solvers {
		t.Run(string(s), func(t *testing.T) {
			x, err := matrix.Solve(s, aug, matrix.WithTolerance(1e-9))
			require.NoError(t, err)
			for i, want := range []float64{1, 2, 3} {
				assert.InDelta(t, want, x[i], 1e-6)
			}
		})
	}

	_, err := matrix.Solve(matrix.Solver("qr"), aug)
	assert.ErrorIs(t, err, matrix.ErrInvalidOption)
}

func TestParseSolver(t *testing.T) {
	for in, want := range map[string]matrix.Solver{
		"Cramer":       matrix.SolverCramer,
		" gauss ":      matrix.SolverGauss,
		"Gauss Seidel": matrix.SolverGaussSeidel,
		"gauss_seidel": matrix.SolverGaussSeidel,
		"sparse":       matrix.SolverSparse,
		"JACOBI":       matrix.SolverJacobi,
	} {
		got, err := matrix.ParseSolver(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := matrix.ParseSolver("lu")
	assert.ErrorIs(t, err, matrix.ErrInvalidOption)
}

func TestSolvers_RejectNonFinite(t *testing.T) {
	m := MustDense(t, 2, 3)
	bad := hide{nonFinite{m}}
	_, err := matrix.SolveGauss(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.SolveCramer(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// nonFinite reports NaN at (0,0) regardless of the stored value.
type nonFinite struct{ matrix.Matrix }

func (n nonFinite) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.NaN(), nil
	}

	return n.Matrix.At(i, j)
}
