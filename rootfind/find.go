// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"

	"github.com/katalvlaran/lvnum/expr"
)

// FindRoot parses formula (free variable x) and runs method from seeds with the given
// tolerance and iteration cap. Newton and Fixed-Point take one seed; Secant,
// Bisection and False Position take two.
//
// Errors (hard, caller misuse):
//   - ErrInvalidTolerance, ErrInvalidMaxIterations, ErrUnknownMethod, ErrSeedCount,
//     ErrInvalidSeed, and expr.ErrEmptyFormula / expr.ErrParse for bad formulas.
//
// Numerical failures are reported through Result.Status with Converged=false.
func FindRoot(method Method, formula string, seeds []float64, tol float64, maxIterations int) (*Result, error) {
	return Solve(method, formula, seeds, WithTolerance(tol), WithMaxIterations(maxIterations))
}

// Solve is FindRoot with functional options. The formula also becomes the History label.
func Solve(method Method, formula string, seeds []float64, opts ...Option) (*Result, error) {
	if _, err := gatherOptions(opts...); err != nil {
		return nil, rootErrorf(opSolve, err)
	}
	if err := checkSeeds(method, seeds); err != nil {
		return nil, rootErrorf(opSolve, err)
	}

	e, err := expr.Build(formula)
	if err != nil {
		return nil, rootErrorf(opSolve, err)
	}
	fn, err := e.Bind(expr.DefaultVariable)
	if err != nil {
		return nil, rootErrorf(opSolve, err)
	}

	withLabel := append([]Option{WithLabel(formula)}, opts...)

	return Run(method, Func(fn), seeds, withLabel...)
}

// Run dispatches an already-bound function to the finder for method.
func Run(method Method, f Func, seeds []float64, opts ...Option) (*Result, error) {
	if err := checkSeeds(method, seeds); err != nil {
		return nil, rootErrorf(opRun, err)
	}

	switch method {
	case MethodNewton:
		return Newton(f, seeds[0], opts...)
	case MethodSecant:
		return Secant(f, seeds[0], seeds[1], opts...)
	case MethodBisection:
		return Bisection(f, seeds[0], seeds[1], opts...)
	case MethodFixedPoint:
		return FixedPoint(f, seeds[0], opts...)
	case MethodFalsePosition:
		return FalsePosition(f, seeds[0], seeds[1], opts...)
	default:
		return nil, rootErrorf(opRun, fmt.Errorf("%w: %v", ErrUnknownMethod, method))
	}
}

func checkSeeds(method Method, seeds []float64) error {
	want := method.Seeds()
	if want == 0 {
		return fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
	if len(seeds) != want {
		return fmt.Errorf("%w: %v needs %d, got %d", ErrSeedCount, method, want, len(seeds))
	}

	return nil
}
