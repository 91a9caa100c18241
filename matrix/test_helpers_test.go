// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels and solvers.
//   - Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RequireResidualZero substitutes x back into aug and requires |A·x − b| <= atol per row.
func RequireResidualZero(t *testing.T, aug matrix.Matrix, x []float64, atol float64) {
	t.Helper()
	r, err := matrix.Residual(aug, x)
	require.NoError(t, err)
	for i, v := range r {
		require.InDelta(t, 0, v, atol, "residual row %d", i)
	}
}

// Fixtures.
var (
	// 2x + y + 3z = 9, x − y + 2z = 8, 3x + 2y + z = 10 (det = 10).
	system3 = [][]float64{
		{2, 1, 3, 9},
		{1, -1, 2, 8},
		{3, 2, 1, 10},
	}

	// Strictly diagonally dominant once rows are reordered; solution (1, 2, 3).
	dominant3 = [][]float64{
		{1, 8, 1, 20},
		{10, 1, 1, 15},
		{2, 1, 9, 31},
	}

	// Second row is twice the first.
	singular3 = [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{1, 0, 1, 2},
	}
)
