// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnum/expr"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rootfind"
)

// Kind tells which list a job came from.
type Kind string

const (
	KindRoot   Kind = "root"
	KindSystem Kind = "system"
)

// Outcome is the result of one job. Outcomes keep file order: roots first,
// then systems.
type Outcome struct {
	Index int  // position in the outcome slice
	Kind  Kind // KindRoot or KindSystem
	Name  string

	Root *rootfind.Result // set for root jobs that ran

	Solution  []float64               // set for system jobs that produced a vector
	Iterative *matrix.IterativeResult // set for jacobi / gauss-seidel
	Augmented [][]float64             // the system actually solved
	Err       error                   // per-job failure; nil on success
}

// OK reports whether the job ran without error and, for root jobs, converged.
func (o Outcome) OK() bool {
	if o.Err != nil {
		return false
	}
	if o.Kind == KindRoot {
		return o.Root != nil && o.Root.Converged
	}

	return true
}

// Run executes every job of f on at most workers goroutines.
// Per-job failures land in Outcome.Err; the returned error is non-nil only for
// a bad worker count or when ctx is cancelled before all jobs ran.
func Run(ctx context.Context, f *File, workers int) ([]Outcome, error) {
	if f == nil || f.Len() == 0 {
		return nil, ErrEmpty
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrWorkers, workers)
	}

	out := make([]Outcome, f.Len())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range f.Roots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = runRoot(i, f.Roots[i])
			return nil
		})
	}
	base := len(f.Roots)
	for i := range f.Systems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[base+i] = runSystem(base+i, f.Systems[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}

func runRoot(idx int, j RootJob) Outcome {
	o := Outcome{Index: idx, Kind: KindRoot, Name: j.Name}

	m, err := rootfind.ParseMethod(j.Method)
	if err != nil {
		o.Err = fmt.Errorf("%s: %w", j.Name, err)
		return o
	}
	o.Root, err = rootfind.Solve(m, j.Formula, j.Seeds, j.options()...)
	if err != nil {
		o.Err = fmt.Errorf("%s: %w", j.Name, err)
	}

	return o
}

func runSystem(idx int, j SystemJob) Outcome {
	o := Outcome{Index: idx, Kind: KindSystem, Name: j.Name}
	fail := func(err error) Outcome {
		o.Err = fmt.Errorf("%s: %w", j.Name, err)
		return o
	}

	solver, err := matrix.ParseSolver(j.Solver)
	if err != nil {
		return fail(err)
	}
	rows, err := j.augmented()
	if err != nil {
		return fail(err)
	}
	o.Augmented = rows
	aug, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return fail(err)
	}

	opts := j.options()
	switch solver {
	case matrix.SolverJacobi, matrix.SolverGaussSeidel:
		run := matrix.Jacobi
		if solver == matrix.SolverGaussSeidel {
			run = matrix.GaussSeidel
		}
		o.Iterative, err = run(aug, opts...)
		if o.Iterative != nil {
			o.Solution = o.Iterative.X
		}
	default:
		o.Solution, err = matrix.Solve(solver, aug, opts...)
	}
	if err != nil {
		return fail(err)
	}

	return o
}

// augmented returns the system as rows of an augmented matrix.
func (j SystemJob) augmented() ([][]float64, error) {
	switch {
	case len(j.Equations) > 0 && len(j.Matrix) > 0:
		return nil, fmt.Errorf("%w: both equations and matrix given", ErrInvalidJob)
	case len(j.Equations) > 0:
		return expr.Augmented(j.Equations, j.Variables...)
	case len(j.Matrix) > 0:
		return j.Matrix, nil
	default:
		return nil, fmt.Errorf("%w: neither equations nor matrix given", ErrInvalidJob)
	}
}

func (j SystemJob) options() []matrix.Option {
	var opts []matrix.Option
	if j.Tolerance != nil {
		opts = append(opts, matrix.WithTolerance(*j.Tolerance))
	}
	if j.MaxIterations != nil {
		opts = append(opts, matrix.WithMaxIterations(*j.MaxIterations))
	}
	if j.Epsilon != nil {
		opts = append(opts, matrix.WithEpsilon(*j.Epsilon))
	}

	return opts
}

// Failed returns the outcomes whose job errored, in order.
func Failed(outcomes []Outcome) []Outcome {
	var bad []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			bad = append(bad, o)
		}
	}

	return bad
}
