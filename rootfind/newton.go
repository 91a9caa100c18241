// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/lvnum/tolerance"
)

// Newton runs Newton-Raphson from x0 with a central-difference derivative.
// Implementation:
//   - Stage 1: seed the trace with x0 (as given, not rounded).
//   - Stage 2: f'(x) ≈ (f(x+h) - f(x-h)) / 2h; if |f'(x)| rounds to 0 at
//     DerivativePlaces decimals, stop with StatusDerivativeVanished.
//   - Stage 3: next = round(x - f(x)/f'(x)); when both next and the unrounded
//     update are within tol of x it converges with Root = next (next is not
//     appended); otherwise append next and repeat.
//
// Returns:
//   - *Result: always non-nil when err == nil; numerical failures are statuses.
//
// Errors:
//   - ErrInvalidTolerance, ErrInvalidMaxIterations, ErrInvalidOption, ErrNilFunc, ErrInvalidSeed.
//
// Complexity:
//   - Time O(maxIterations) evaluations ×3, Space O(maxIterations).
func Newton(f Func, x0 float64, opts ...Option) (*Result, error) {
	s, err := begin(MethodNewton, opNewton, f, []float64{x0}, opts)
	if err != nil {
		return nil, err
	}

	x := x0
	s.point(x)
	for {
		if s.capped() {
			return s.finish(StatusMaxIterations, x, nil)
		}

		fx, err := s.eval(x)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}
		d, err := s.derivative(x)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}
		if tolerance.IsZeroAt(d, DerivativePlaces) {
			return s.finish(StatusDerivativeVanished, x, nil)
		}

		raw := x - fx/d
		next := s.round(raw)
		st := Step{
			Iteration: s.nextIteration(),
			X:         x,
			FX:        fx,
			Aux:       Aux{Kind: AuxDerivative, Value: d},
			Next:      next,
			Error:     s.stepError(next, raw, x),
		}
		s.countIteration(st)
		if s.accepts(next, raw, x) {
			return s.finish(StatusConverged, next, nil)
		}

		s.point(next)
		x = next
	}
}

// derivative is the central difference (f(x+h) - f(x-h)) / 2h.
func (s *state) derivative(x float64) (float64, error) {
	h := s.opts.h
	fp, err := s.eval(x + h)
	if err != nil {
		return math.NaN(), err
	}
	fm, err := s.eval(x - h)
	if err != nil {
		return math.NaN(), err
	}

	return (fp - fm) / (2 * h), nil
}
