// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
)

// TestOptions_LaterWins checks in-order application and nil skipping.
func TestOptions_LaterWins(t *testing.T) {
	o, err := matrix.NewOptions(
		matrix.WithTolerance(1e-2),
		nil,
		matrix.WithTolerance(1e-8),
		matrix.WithMaxIterations(7),
		matrix.WithEpsilon(0),
	)
	require.NoError(t, err)
	assert.Equal(t, 1e-8, o.Tolerance())
	assert.Equal(t, 7, o.MaxIterations())
	assert.Equal(t, 0.0, o.Epsilon(), "a zero epsilon is allowed")
}

func TestOptions_Invalid(t *testing.T) {
	bad := map[string]matrix.Option{
		"negative epsilon": matrix.WithEpsilon(-1),
		"NaN epsilon":      matrix.WithEpsilon(math.NaN()),
		"zero tolerance":   matrix.WithTolerance(0),
		"Inf tolerance":    matrix.WithTolerance(math.Inf(1)),
		"zero iterations":  matrix.WithMaxIterations(0),
	}
	for name, opt := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.NewOptions(opt)
			assert.ErrorIs(t, err, matrix.ErrInvalidOption)
		})
	}
}
