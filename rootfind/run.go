// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/tolerance"
)

// state is the per-call scratch of a finder. It is never shared between calls.
type state struct {
	f    Func
	opts Options
	res  *Result
}

// begin validates the common inputs and allocates a fresh Result.
func begin(m Method, tag string, f Func, seeds []float64, opts []Option) (*state, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, rootErrorf(tag, err)
	}
	if f == nil {
		return nil, rootErrorf(tag, ErrNilFunc)
	}
	for i, s := range seeds {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, rootErrorf(tag, fmt.Errorf("%w: seed %d is %v", ErrInvalidSeed, i+1, s))
		}
	}

	return &state{
		f:    f,
		opts: o,
		res: &Result{
			Method:        m,
			Root:          math.NaN(),
			Residual:      math.NaN(),
			Tolerance:     o.tol,
			MaxIterations: o.maxIter,
		},
	}, nil
}

// eval calls f and folds evaluator errors and non-finite values into one failure.
func (s *state) eval(x float64) (float64, error) {
	v, err := s.f(x)
	if err != nil {
		return v, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, fmt.Errorf("%w: f(%v) = %v", ErrNonFinite, x, v)
	}

	return v, nil
}

// round snaps v to the tolerance grid.
func (s *state) round(v float64) float64 { return tolerance.Round(v, s.opts.tol) }

// stepError is the larger of |next - x| and |raw - x|, both exact decimal
// distances. raw is the update before rounding; snapping it to the grid must
// never shorten the step that is tested against the tolerance.
func (s *state) stepError(next, raw, x float64) float64 {
	return math.Max(tolerance.Distance(next, x), tolerance.Distance(raw, x))
}

// accepts reports whether both the snapped and the raw update lie within tol of x.
func (s *state) accepts(next, raw, x float64) bool {
	return tolerance.Within(next, x, s.opts.tol) && tolerance.Within(raw, x, s.opts.tol)
}

// capped reports whether the trace already holds maxIterations+1 entries.
func (s *state) capped() bool { return s.res.Trace.Len() >= s.opts.maxIter+1 }

func (s *state) point(x float64) { s.res.Trace.Points = append(s.res.Trace.Points, x) }
func (s *state) bracket(a, b float64) { s.res.Trace.Brackets = append(s.res.Trace.Brackets, Bracket{A: a, B: b}) }
func (s *state) step(st Step) { s.res.Steps = append(s.res.Steps, st) }
func (s *state) nextIteration() int { return s.res.Iterations + 1 }
func (s *state) countIteration(st Step) { s.step(st); s.res.Iterations++ }

// finish stamps the terminal classification, the residual and the History text.
func (s *state) finish(status Status, root float64, cause error) (*Result, error) {
	r := s.res
	r.Status = status
	r.Converged = status == StatusConverged
	r.Root = root
	r.Err = cause

	if r.Converged && !math.IsNaN(root) {
		if v, err := s.f(root); err == nil {
			if r.Method == MethodFixedPoint {
				r.Residual = v - root
			} else {
				r.Residual = v
			}
		}
	}
	r.History = History(r, s.opts.label)

	return r, nil
}
