// SPDX-License-Identifier: MIT

// Sentinel error set.
// Hard errors only: these surface caller misuse (bad options, bad seeds,
// unknown method). Numerical trouble never becomes an error; it becomes a
// Result with Converged=false and a Status explaining why.

package rootfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/tolerance"
)

var (
	// ErrInvalidMaxIterations is returned when the iteration cap is < 1 or > MaxIterationsLimit.
	ErrInvalidMaxIterations = errors.New("rootfind: max iterations out of range")

	// ErrInvalidOption is returned for a nonsensical option value (e.g. h <= 0).
	ErrInvalidOption = errors.New("rootfind: invalid option value")

	// ErrUnknownMethod is returned for a Method outside the five supported ones.
	ErrUnknownMethod = errors.New("rootfind: unknown method")

	// ErrSeedCount is returned when the number of seeds does not match the method.
	ErrSeedCount = errors.New("rootfind: wrong number of seeds")

	// ErrInvalidSeed is returned when a seed is NaN or ±Inf.
	ErrInvalidSeed = errors.New("rootfind: seed must be finite")

	// ErrNilFunc is returned when a finder is given a nil Func.
	ErrNilFunc = errors.New("rootfind: nil function")

	// ErrNonFinite is recorded in Result.Err when f returns NaN or ±Inf without an error.
	ErrNonFinite = errors.New("rootfind: non-finite function value")
)

// ErrInvalidTolerance aliases the tolerance sentinel so callers need a single import.
var ErrInvalidTolerance = tolerance.ErrInvalidTolerance

// Operation tags.
const (
	opNewton        = "Newton"
	opSecant        = "Secant"
	opBisection     = "Bisection"
	opFixedPoint    = "FixedPoint"
	opFalsePosition = "FalsePosition"
	opSolve         = "Solve"
	opRun           = "Run"
)

// rootErrorf wraps err with an operation tag; keep err non-nil.
func rootErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
