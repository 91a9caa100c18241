// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the linear solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Validation returns ErrInvalidOption instead of panicking: option values
//     come from CLI flags and batch files.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the singularity threshold: |det| (Cramer) or |pivot|
	// (Gauss) below it means the system has no unique solution.
	DefaultEpsilon = 1e-12

	// DefaultTolerance stops Jacobi/Gauss-Seidel once every component moved
	// by less than this between sweeps.
	DefaultTolerance = 1e-3

	// DefaultMaxIterations caps Jacobi/Gauss-Seidel sweeps.
	DefaultMaxIterations = 100

	// MaxCramerOrder is the largest n accepted by SolveCramer.
	MaxCramerOrder = 8
)

// Option mutates Options. Options are applied in order; later ones win.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	eps     float64
	tol     float64
	maxIter int
}

// WithEpsilon sets the singularity threshold (>= 0).
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithTolerance sets the iterative convergence threshold (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the iterative sweep cap (>= 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIter = n }
}

// Epsilon returns the resolved singularity threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Tolerance returns the resolved iterative tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxIterations returns the resolved sweep cap.
func (o Options) MaxIterations() int { return o.maxIter }

func defaultOptions() Options {
	return Options{eps: DefaultEpsilon, tol: DefaultTolerance, maxIter: DefaultMaxIterations}
}

// NewOptions resolves opts over the defaults and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	return gatherOptions(opts...)
}

// gatherOptions applies opts over the defaults and validates invariants.
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps < 0 {
		return Options{}, fmt.Errorf("epsilon %v: %w", o.eps, ErrInvalidOption)
	}
	if math.IsNaN(o.tol) || math.IsInf(o.tol, 0) || o.tol <= 0 {
		return Options{}, fmt.Errorf("tolerance %v: %w", o.tol, ErrInvalidOption)
	}
	if o.maxIter < 1 {
		return Options{}, fmt.Errorf("max iterations %d: %w", o.maxIter, ErrInvalidOption)
	}

	return o, nil
}
