// SPDX-License-Identifier: MIT

package batch_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/batch"
	"github.com/katalvlaran/lvnum/expr"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rootfind"
)

const jobs = `
roots:
  - name: sqrt2
    method: newton
    formula: x^2 - 2
    seeds: [1]
    tolerance: 1e-6
  - name: cubic
    method: regula-falsi
    formula: x^3 - x - 2
    seeds: [1, 2]
    max_iterations: 500
  - name: broken
    method: brent
    formula: x
    seeds: [1]
  - name: no-sign
    method: bisection
    formula: x^2 + 1
    seeds: [0, 1]
systems:
  - name: plane
    solver: cramer
    equations:
      - 2*x + y + 3*z = 9
      - x - y + 2*z = 8
      - 3*x + 2*y + z = 10
  - name: dominant
    solver: gauss-seidel
    tolerance: 1e-9
    matrix:
      - [1, 8, 1, 20]
      - [10, 1, 1, 15]
      - [2, 1, 9, 31]
  - name: singular
    solver: gauss
    matrix:
      - [1, 2, 3]
      - [2, 4, 6]
  - name: nonlinear
    solver: gauss
    equations: [x*y = 1, x + y = 2]
    variables: [x, y]
`

func TestLoad(t *testing.T) {
	f, err := batch.Parse(jobs)
	require.NoError(t, err)

	assert.Len(t, f.Roots, 4)
	assert.Len(t, f.Systems, 4)
	assert.Equal(t, 8, f.Len())
	assert.Equal(t, []float64{1, 2}, f.Roots[1].Seeds)
	require.NotNil(t, f.Roots[0].Tolerance)
	assert.Equal(t, 1e-6, *f.Roots[0].Tolerance)
	require.NotNil(t, f.Roots[1].MaxIterations)
	assert.Equal(t, 500, *f.Roots[1].MaxIterations)
	assert.Nil(t, f.Roots[1].Tolerance, "absent keys stay nil")
	assert.Equal(t, []string{"x", "y"}, f.Systems[3].Variables)
}

func TestLoad_Errors(t *testing.T) {
	_, err := batch.Parse("")
	assert.ErrorIs(t, err, batch.ErrEmpty)

	_, err = batch.Parse("roots: []\n")
	assert.ErrorIs(t, err, batch.ErrEmpty)

	_, err = batch.Parse("roots:\n  - name: a\n    formla: x\n")
	assert.ErrorIs(t, err, batch.ErrDecode, "unknown keys are rejected")

	_, err = batch.Parse("roots: [1, 2")
	assert.ErrorIs(t, err, batch.ErrDecode)
}

func TestRun(t *testing.T) {
	f, err := batch.Parse(jobs)
	require.NoError(t, err)

	out, err := batch.Run(context.Background(), f, 3)
	require.NoError(t, err)
	require.Len(t, out, 8)

	for i, o := range out {
		assert.Equal(t, i, o.Index)
	}

	sqrt2 := out[0]
	assert.True(t, sqrt2.OK())
	assert.Equal(t, rootfind.MethodNewton, sqrt2.Root.Method)
	assert.InDelta(t, 1.4142136, sqrt2.Root.Root, 1e-6)

	cubic := out[1]
	assert.True(t, cubic.OK())
	assert.Equal(t, rootfind.MethodFalsePosition, cubic.Root.Method)
	assert.Equal(t, 500, cubic.Root.MaxIterations)
	assert.InDelta(t, 1.5213797, cubic.Root.Root, 1e-5)

	assert.ErrorIs(t, out[2].Err, rootfind.ErrUnknownMethod)
	assert.Nil(t, out[2].Root)

	noSign := out[3]
	assert.NoError(t, noSign.Err)
	assert.False(t, noSign.OK())
	assert.Equal(t, rootfind.StatusNoSignChange, noSign.Root.Status)

	plane := out[4]
	require.NoError(t, plane.Err)
	assert.Equal(t, batch.KindSystem, plane.Kind)
	assert.InDeltaSlice(t, []float64{4.5, -2.1, 0.7}, plane.Solution, 1e-9)

	dominant := out[5]
	require.NoError(t, dominant.Err)
	require.NotNil(t, dominant.Iterative)
	assert.True(t, dominant.Iterative.Converged)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, dominant.Solution, 1e-6)

	assert.ErrorIs(t, out[6].Err, matrix.ErrSingular)
	assert.ErrorIs(t, out[7].Err, expr.ErrNotLinear)

	failed := batch.Failed(out)
	require.Len(t, failed, 3)
	assert.Equal(t, []string{"broken", "singular", "nonlinear"}, []string{failed[0].Name, failed[1].Name, failed[2].Name})
}

func TestRun_InvalidJobs(t *testing.T) {
	f := &batch.File{Systems: []batch.SystemJob{
		{Name: "empty", Solver: "gauss"},
		{Name: "both", Solver: "gauss", Equations: []string{"x = 1"}, Matrix: [][]float64{{1, 1}}},
		{Name: "solver", Solver: "qr", Matrix: [][]float64{{1, 1}}},
	}}
	out, err := batch.Run(context.Background(), f, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, out[0].Err, batch.ErrInvalidJob)
	assert.ErrorIs(t, out[1].Err, batch.ErrInvalidJob)
	assert.ErrorIs(t, out[2].Err, matrix.ErrInvalidOption)
}

// TestRun_ExplicitZeroOptions: a key written as 0 is validated, not defaulted.
func TestRun_ExplicitZeroOptions(t *testing.T) {
	f, err := batch.Parse(`
roots:
  - name: zero-tol
    method: newton
    formula: x^2 - 2
    seeds: [1]
    tolerance: 0
  - name: zero-cap
    method: bisection
    formula: x^2 - 2
    seeds: [1, 2]
    max_iterations: 0
systems:
  - name: zero-tol
    solver: gauss-seidel
    tolerance: 0
    matrix: [[10, 1, 11], [1, 8, 9]]
  - name: zero-eps
    solver: cramer
    epsilon: 0
    matrix: [[10, 1, 11], [1, 8, 9]]
`)
	require.NoError(t, err)

	out, err := batch.Run(context.Background(), f, 2)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.ErrorIs(t, out[0].Err, rootfind.ErrInvalidTolerance)
	assert.ErrorIs(t, out[1].Err, rootfind.ErrInvalidMaxIterations)
	assert.ErrorIs(t, out[2].Err, matrix.ErrInvalidOption)

	require.NoError(t, out[3].Err, "epsilon 0 is a valid threshold")
	assert.InDeltaSlice(t, []float64{1, 1}, out[3].Solution, 1e-12)
}

func TestRun_Errors(t *testing.T) {
	f, err := batch.Parse(jobs)
	require.NoError(t, err)

	_, err = batch.Run(context.Background(), f, 0)
	assert.ErrorIs(t, err, batch.ErrWorkers)

	_, err = batch.Run(context.Background(), &batch.File{}, 2)
	assert.ErrorIs(t, err, batch.ErrEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = batch.Run(ctx, f, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncode_RoundTrip(t *testing.T) {
	f := &batch.File{Roots: []batch.RootJob{{Name: "r", Method: "secant", Formula: "x - 1", Seeds: []float64{0, 2}}}}

	var buf bytes.Buffer
	require.NoError(t, batch.Encode(&buf, f))
	back, err := batch.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}
