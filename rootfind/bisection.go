// SPDX-License-Identifier: MIT

package rootfind

import (
	"math"

	"github.com/katalvlaran/lvnum/tolerance"
)

// Bisection halves the bracket [a, b] until its width is within tolerance.
// Implementation:
//   - Stage 1: seed the trace with (a, b); require f(a)·f(b) <= 0, otherwise stop
//     with StatusNoSignChange and Root = NaN. An endpoint with f = 0 is the root.
//   - Stage 2: m = round((a+b)/2). If |b-a| <= tol, or f(m) == 0, append (m, m)
//     and converge with Root = m.
//   - Stage 3: keep (a, m) when f(a)·f(m) < 0, else (m, b); append and repeat.
//
// Behavior highlights:
//   - Brackets on the tolerance grid shrink strictly every step.
//   - Step.Error is the width of the bracket the step worked on.
func Bisection(f Func, a, b float64, opts ...Option) (*Result, error) {
	s, err := begin(MethodBisection, opBisection, f, []float64{a, b}, opts)
	if err != nil {
		return nil, err
	}

	fa, fb, done, res := s.openBracket(a, b)
	if done {
		return res, nil
	}

	for {
		if s.capped() {
			return s.finish(StatusMaxIterations, s.round((a+b)/2), nil)
		}

		m := s.round((a + b) / 2)
		fm, err := s.eval(m)
		if err != nil {
			return s.finish(StatusEvalFailed, math.NaN(), err)
		}

		st := Step{
			Iteration: s.nextIteration(),
			X:         m,
			FX:        fm,
			Aux:       Aux{Kind: AuxRight, Value: fb},
			Next:      m,
			Error:     tolerance.Distance(b, a),
			Bracket:   &Bracket{A: a, B: b},
		}
		s.countIteration(st)
		if tolerance.Within(b, a, s.opts.tol) || fm == 0 {
			s.bracket(m, m)
			return s.finish(StatusConverged, m, nil)
		}

		if fa*fm < 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
		s.bracket(a, b)
	}
}

// openBracket seeds the trace with (a, b), evaluates both endpoints and settles the
// cases that need no iteration: evaluation failure, no sign change, or an endpoint root.
// done is true when res is the final Result.
func (s *state) openBracket(a, b float64) (fa, fb float64, done bool, res *Result) {
	s.bracket(a, b)

	var err error
	if fa, err = s.eval(a); err != nil {
		res, _ = s.finish(StatusEvalFailed, math.NaN(), err)
		return fa, fb, true, res
	}
	if fb, err = s.eval(b); err != nil {
		res, _ = s.finish(StatusEvalFailed, math.NaN(), err)
		return fa, fb, true, res
	}

	switch {
	case fa*fb > 0:
		res, _ = s.finish(StatusNoSignChange, math.NaN(), nil)
		return fa, fb, true, res
	case fa == 0:
		s.bracket(a, a)
		res, _ = s.finish(StatusConverged, a, nil)
		return fa, fb, true, res
	case fb == 0:
		s.bracket(b, b)
		res, _ = s.finish(StatusConverged, b, nil)
		return fa, fb, true, res
	}

	return fa, fb, false, nil
}
