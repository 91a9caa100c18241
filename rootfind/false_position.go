// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"
)

// FalsePosition runs regula falsi on the bracket [a, b].
// Implementation:
//   - Stage 1: same bracket preconditions as Bisection.
//   - Stage 2: c = round(a + (b-a)·(-f(a))/(f(b)-f(a))).
//     If c and the unrounded c are within tol of a or of b, or f(c) == 0, append (c, c) and converge
//     with Root = c (the last computed c is reused, not re-derived).
//   - Stage 3: keep (a, c) when f(a)·f(c) < 0, else (c, b); append and repeat.
//
// Notes:
//   - One endpoint may stay fixed for many steps; that is the classic slow side of
//     the method, not a stall. Step.Error is min(|c-a|, |c-b|).
func FalsePosition(f Func, a, b float64, opts ...Option) (*Result, error) {
	s, err := begin(MethodFalsePosition, opFalsePosition, f, []float64{a, b}, opts)
	if err != nil {
		return nil, err
	}

	fa, fb, done, res := s.openBracket(a, b)
	if done {
		return res, nil
	}

	last := math.NaN()
	for {
		if s.capped() {
			return s.finish(StatusMaxIterations, last, nil)
		}

		raw := a + (b-a)*(-fa)/(fb-fa)
		c := s.round(raw)
		fc, err := s.eval(c)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}
		last = c

		st := Step{
			Iteration: s.nextIteration(),
			X:         c,
			FX:        fc,
			Aux:       Aux{Kind: AuxRight, Value: fb},
			Next:      c,
			Error:     math.Min(s.stepError(c, raw, a), s.stepError(c, raw, b)),
			Bracket:   &Bracket{A: a, B: b},
		}
		s.countIteration(st)
		if s.accepts(c, raw, a) || s.accepts(c, raw, b) || fc == 0 {
			s.bracket(c, c)
			return s.finish(StatusConverged, c, nil)
		}

		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
		s.bracket(a, b)
	}
}
