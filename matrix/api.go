// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical kernel; no logic duplication.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ---------- Solver selection ----------

// Solver names one of the augmented-system solvers.
type Solver string

const (
	SolverCramer      Solver = "cramer"
	SolverGauss       Solver = "gauss"
	SolverSparse      Solver = "sparse"
	SolverJacobi      Solver = "jacobi"
	SolverGaussSeidel Solver = "gauss-seidel"
)

// Solvers lists every solver in a stable order.
var Solvers = []Solver{SolverCramer, SolverGauss, SolverSparse, SolverJacobi, SolverGaussSeidel}

// ParseSolver resolves a case-insensitive solver name ("Gauss Seidel" and
// "gauss_seidel" are accepted too).
func ParseSolver(s string) (Solver, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	for _, sv := range Solvers {
		if string(sv) == key {
			return sv, nil
		}
	}

	return "", fmt.Errorf("unknown solver %q: %w", s, ErrInvalidOption)
}

// Solve dispatches aug to the chosen solver and returns the solution vector.
// Iterative solvers return their last iterate together with ErrNotConverged
// when they stop at the cap.
func Solve(s Solver, aug Matrix, opts ...Option) ([]float64, error) {
	switch s {
	case SolverCramer:
		return SolveCramer(aug, opts...)
	case SolverGauss:
		return SolveGauss(aug, opts...)
	case SolverSparse:
		if _, err := gatherOptions(opts...); err != nil {
			return nil, matrixErrorf(opSparse, err)
		}
		return SolveSparse(aug)
	case SolverJacobi, SolverGaussSeidel:
		run := Jacobi
		if s == SolverGaussSeidel {
			run = GaussSeidel
		}
		res, err := run(aug, opts...)
		if res == nil {
			return nil, err
		}
		return res.X, err
	default:
		return nil, fmt.Errorf("unknown solver %q: %w", s, ErrInvalidOption)
	}
}
