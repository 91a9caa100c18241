// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
)

// FixedPoint iterates x = g(x) from x0, where g is the supplied function.
// Each step computes next = round(g(x)). |next| > divergence bound stops with
// StatusDiverged (Root keeps the last accepted iterate); next and g(x) both
// within tol of x converge with Root = next, so g(x) = x + 0.7 never converges
// at tol 0.5 even though its snapped steps are exactly 0.5. No |g'(x)| < 1 precondition is enforced: a
// repelling fixed point shows up as divergence or as the iteration cap.
func FixedPoint(g Func, x0 float64, opts ...Option) (*Result, error) {
	s, err := begin(MethodFixedPoint, opFixedPoint, g, []float64{x0}, opts)
	if err != nil {
		return nil, err
	}

	x := x0
	s.point(x)
	for {
		if s.capped() {
			return s.finish(StatusMaxIterations, x, nil)
		}

		gx, err := s.eval(x)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}

		next := s.round(gx)
		st := Step{
			Iteration: s.nextIteration(),
			X:         x,
			FX:        gx,
			Aux:       noAux(),
			Next:      next,
			Error:     s.stepError(next, gx, x),
		}
		s.countIteration(st)

		if math.Abs(next) > s.opts.divergence {
			return s.finish(StatusDiverged, x, nil)
		}
		if s.accepts(next, gx, x) {
			return s.finish(StatusConverged, next, nil)
		}

		s.point(next)
		x = next
	}
}
