// SPDX-License-Identifier: MIT

package chart_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/chart"
	"github.com/katalvlaran/lvnum/rootfind"
)

func run(t *testing.T, m rootfind.Method, formula string, seeds ...float64) *rootfind.Result {
	t.Helper()
	res, err := rootfind.FindRoot(m, formula, seeds, 1e-6, 100)
	require.NoError(t, err)

	return res
}

func TestConvergence_OpenMethod(t *testing.T) {
	res := run(t, rootfind.MethodNewton, "x^2 - 2", 3)
	p, err := chart.Convergence(res)
	require.NoError(t, err)
	assert.Equal(t, "Newton-Raphson (converged)", p.Title.Text)
	assert.Equal(t, "iteration", p.X.Label.Text)
}

func TestConvergence_Bracketing(t *testing.T) {
	res := run(t, rootfind.MethodBisection, "x^2 - 2", 1, 2)
	p, err := chart.Convergence(res)
	require.NoError(t, err)
	assert.Equal(t, "iterate", p.Y.Label.Text)
}

func TestWrite_SVG(t *testing.T) {
	res := run(t, rootfind.MethodSecant, "cos(x) - x", 0, 1)

	for _, kind := range []chart.Kind{chart.KindTrace, chart.KindError} {
		var buf bytes.Buffer
		err := chart.Write(&buf, res, kind, "svg", chart.DefaultWidth, chart.DefaultHeight)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "<svg")
	}
}

func TestWrite_PNG(t *testing.T) {
	res := run(t, rootfind.MethodFalsePosition, "x^3 - x - 2", 1, 2)

	var buf bytes.Buffer
	require.NoError(t, chart.Write(&buf, res, chart.KindTrace, ".PNG", chart.DefaultWidth, chart.DefaultHeight))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestErrors(t *testing.T) {
	_, err := chart.Convergence(nil)
	assert.ErrorIs(t, err, chart.ErrNilResult)

	noSign := run(t, rootfind.MethodBisection, "x^2 - 4", 5, 10)
	_, err = chart.Errors(noSign)
	assert.ErrorIs(t, err, chart.ErrNoData)
	_, err = chart.Convergence(noSign)
	assert.NoError(t, err, "the seed bracket alone is still plottable")

	res := run(t, rootfind.MethodNewton, "x^2 - 2", 3)
	var buf bytes.Buffer
	err = chart.Write(&buf, res, chart.KindTrace, "bmp", chart.DefaultWidth, chart.DefaultHeight)
	assert.ErrorIs(t, err, chart.ErrFormat)
	err = chart.Write(&buf, res, chart.KindTrace, "svg", 0, chart.DefaultHeight)
	assert.ErrorIs(t, err, chart.ErrSize)
}
