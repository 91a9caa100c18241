// SPDX-License-Identifier: MIT

// Functional configuration for the finders.
//
// Design goals:
//   - Deterministic behavior: no global state; every call resolves its own Options.
//   - Documented defaults in one place (constants below).
//   - Validation returns errors, never panics: tolerance and iteration caps come
//     straight from user input (CLI flags, batch files).

package rootfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/tolerance"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence threshold and rounding granularity.
	DefaultTolerance = tolerance.Default

	// DefaultMaxIterations caps the number of computed iterates.
	DefaultMaxIterations = 100

	// MaxIterationsLimit is the largest accepted cap.
	MaxIterationsLimit = 100_000

	// DefaultDerivativeStep is h in Newton's central difference (f(x+h)-f(x-h))/2h.
	DefaultDerivativeStep = 1e-5

	// DefaultDivergenceBound stops Fixed-Point when |x| exceeds it.
	DefaultDivergenceBound = 1e10

	// FlatSecantEpsilon is the smallest usable |f(x_k) - f(x_k-1)| for the secant step.
	FlatSecantEpsilon = 1e-10

	// DerivativePlaces is the number of decimals at which a vanishing derivative is judged.
	DerivativePlaces = 4
)

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// Options holds the effective configuration of a run.
type Options struct {
	tol        float64
	maxIter    int
	h          float64
	divergence float64
	label      string
}

// WithTolerance sets the convergence threshold and rounding granularity (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iteration cap, 1..MaxIterationsLimit.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// WithDerivativeStep sets Newton's central-difference step h (> 0).
func WithDerivativeStep(h float64) Option {
	return func(o *Options) { o.h = h }
}

// WithDivergenceBound sets the Fixed-Point magnitude bound (> 0).
func WithDivergenceBound(bound float64) Option {
	return func(o *Options) { o.divergence = bound }
}

// WithLabel names the function in the History text (usually the formula).
func WithLabel(label string) Option {
	return func(o *Options) { o.label = label }
}

// Tolerance returns the resolved tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations returns the resolved iteration cap.
func (o Options) MaxIterations() int { return o.maxIter }

func defaultOptions() Options {
	return Options{
		tol:        DefaultTolerance,
		maxIter:    DefaultMaxIterations,
		h:          DefaultDerivativeStep,
		divergence: DefaultDivergenceBound,
	}
}

// NewOptions resolves opts over the defaults and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	return gatherOptions(opts...)
}

// gatherOptions applies opts over the defaults and validates invariants.
// Errors: ErrInvalidTolerance, ErrInvalidMaxIterations, ErrInvalidOption.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := tolerance.Validate(o.tol); err != nil {
		return Options{}, err
	}
	if o.maxIter < 1 || o.maxIter > MaxIterationsLimit {
		return Options{}, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidMaxIterations, o.maxIter, MaxIterationsLimit)
	}
	if !positiveFinite(o.h) {
		return Options{}, fmt.Errorf("%w: derivative step %v", ErrInvalidOption, o.h)
	}
	if !positiveFinite(o.divergence) {
		return Options{}, fmt.Errorf("%w: divergence bound %v", ErrInvalidOption, o.divergence)
	}

	return o, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
