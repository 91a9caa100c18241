// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
)

// Secant runs the secant method from the seeds x0, x1.
// The trace starts with both seeds and Steps[0] is the seed row (Iteration 0).
// Each step computes next = round(x1 - f(x1)·(x1 - x0)/(f(x1) - f(x0)));
// |f(x1) - f(x0)| < FlatSecantEpsilon stops with StatusFlatSecant and
// next and the unrounded update both within tol of x1 converge with Root = next.
func Secant(f Func, x0, x1 float64, opts ...Option) (*Result, error) {
	s, err := begin(MethodSecant, opSecant, f, []float64{x0, x1}, opts)
	if err != nil {
		return nil, err
	}

	s.point(x0)
	s.point(x1)

	f0, err := s.eval(x0)
	if err != nil {
		return s.finish(StatusEvalFailed, math.NaN(), err)
	}
	f1, err := s.eval(x1)
	if err != nil {
		return s.finish(StatusEvalFailed, math.NaN(), err)
	}
	s.step(Step{
		Iteration: 0,
		X:         x0,
		FX:        f0,
		Aux:       Aux{Kind: AuxPrevious, Value: math.NaN()},
		Next:      x1,
		Error:     math.NaN(),
	})

	for {
		if s.capped() {
			return s.finish(StatusMaxIterations, x1, nil)
		}

		denom := f1 - f0
		if math.Abs(denom) < FlatSecantEpsilon {
			return s.finish(StatusFlatSecant, x1, nil)
		}

		raw := x1 - f1*(x1-x0)/denom
		next := s.round(raw)
		st := Step{
			Iteration: s.nextIteration(),
			X:         x1,
			FX:        f1,
			Aux:       Aux{Kind: AuxPrevious, Value: f0},
			Next:      next,
			Error:     s.stepError(next, raw, x1),
		}
		s.countIteration(st)
		if s.accepts(next, raw, x1) {
			return s.finish(StatusConverged, next, nil)
		}

		s.point(next)
		fn, err := s.eval(next)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}
		x0, f0, x1, f1 = x1, f1, next, fn
	}
}
