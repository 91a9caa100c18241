// SPDX-License-Identifier: MIT
package tolerance_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/tolerance"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, tolerance.Validate(1e-6))
	require.NoError(t, tolerance.Validate(5))

	for _, bad := range []float64{0, -1e-6, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := tolerance.Validate(bad)
		require.Error(t, err, "tol=%v", bad)
		require.True(t, errors.Is(err, tolerance.ErrInvalidTolerance))
	}
}

func TestRound_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, tol, want float64
	}{
		{2.0000004, 1e-6, 2.0},
		{1.9999996, 1e-6, 2.0},
		{1.2345, 0.001, 1.235},   // tie resolves half-up
		{-1.2345, 0.001, -1.235}, // and away from zero for negatives
		{0.15, 0.1, 0.2},
		{1.23456, 0.0005, 1.2345},
		{7, 5, 5},
		{7.5, 5, 10},
		{3.14159265, 0.01, 3.14},
		{0, 1e-6, 0},
		{-0.0000001, 1e-6, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%v@%v", tc.value, tc.tol), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tolerance.Round(tc.value, tc.tol))
		})
	}
}

func TestRound_NonFinitePassThrough(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(tolerance.Round(math.NaN(), 1e-6)))
	assert.True(t, math.IsInf(tolerance.Round(math.Inf(1), 1e-6), 1))
	assert.True(t, math.IsInf(tolerance.Round(math.Inf(-1), 1e-6), -1))
}

func TestRound_NoNegativeZero(t *testing.T) {
	t.Parallel()

	r := tolerance.Round(-1e-9, 1e-3)
	assert.Equal(t, 0.0, r)
	assert.False(t, math.Signbit(r), "rounded zero must be +0")
}

// TestRound_Idempotent checks Round(Round(v,t),t) == Round(v,t) over a grid of values
// and tolerances, including awkward binary fractions.
func TestRound_Idempotent(t *testing.T) {
	t.Parallel()

	tols := []float64{1e-1, 1e-3, 1e-6, 1e-9, 0.0005, 0.25, 2, 5}
	values := []float64{
		0, 1, -1, 0.1, 0.2, 0.3, 1.0 / 3.0, 2.0 / 3.0, math.Pi, -math.E,
		1.23456789012, -98765.4321, 1e-7, 123456789.987654321, 2.5616, 1.4142135623730951,
	}
	for _, tol := range tols {
		for _, v := range values {
			once := tolerance.Round(v, tol)
			twice := tolerance.Round(once, tol)
			require.Equal(t, once, twice, "v=%v tol=%v", v, tol)
		}
	}
}

func TestRound_Symmetric(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0.15, 1.2345, 2.5, 1.0 / 3.0} {
		assert.Equal(t, -tolerance.Round(v, 0.1), tolerance.Round(-v, 0.1), "v=%v", v)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, tolerance.Scale(1e-6))
	assert.Equal(t, 3, tolerance.Scale(0.001))
	assert.Equal(t, 4, tolerance.Scale(0.0005))
	assert.Equal(t, 1, tolerance.Scale(0.5))
	assert.Equal(t, 0, tolerance.Scale(5))
	assert.Equal(t, 0, tolerance.Scale(100))
}

func TestPrecisionDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, tolerance.PrecisionDigits(1e-6))
	assert.Equal(t, 3, tolerance.PrecisionDigits(1e-3))
	assert.Equal(t, 4, tolerance.PrecisionDigits(0.0005))
	assert.Equal(t, 1, tolerance.PrecisionDigits(0.5))
	assert.Equal(t, 0, tolerance.PrecisionDigits(1))
	assert.Equal(t, 0, tolerance.PrecisionDigits(10))
	assert.Equal(t, 0, tolerance.PrecisionDigits(0))
}

func TestIsZeroAt(t *testing.T) {
	t.Parallel()

	assert.True(t, tolerance.IsZeroAt(0, 4))
	assert.True(t, tolerance.IsZeroAt(0.00004, 4))
	assert.True(t, tolerance.IsZeroAt(-0.00004, 4))
	assert.False(t, tolerance.IsZeroAt(0.00005, 4))
	assert.False(t, tolerance.IsZeroAt(1, 4))
	assert.False(t, tolerance.IsZeroAt(math.NaN(), 4))
}

func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1e-6, tolerance.Distance(2.000001, 2))
	assert.Equal(t, 0.0014, tolerance.Distance(2, 2.0014))
	assert.Equal(t, 0.0, tolerance.Distance(1.5, 1.5))
	assert.True(t, math.IsInf(tolerance.Distance(math.NaN(), 1), 1))
}

// TestWithin_NoGridSlack: a distance between tol and 1.5·tol is outside tol.
func TestWithin_NoGridSlack(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b float64
		tol  float64
		want bool
	}{
		{"exact multiple", 2.000001, 2, 1e-6, true},
		{"one grid step", 1.5, 1, 0.5, true},
		{"off-grid seed", 2, 2.0014, 1e-3, false},
		{"1.4 tol", 1.8e-6, 4e-7, 1e-6, false},
		{"raw fixed-point step", 1.7, 1, 0.5, false},
		{"below tol", 1.4142, 1.4141, 1e-3, true},
		{"NaN", math.NaN(), 1, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tolerance.Within(tc.a, tc.b, tc.tol))
		})
	}
}
