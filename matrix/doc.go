// SPDX-License-Identifier: MIT

// Package matrix offers dense matrices and solvers for small linear systems.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Mul, Transpose, MatVec and Determinant (Laplace expansion).
//   - Solvers for an n×(n+1) augmented system [A | b]:
//     SolveCramer (Cramer's rule, n <= MaxCramerOrder), SolveGauss (partial
//     pivoting), SolveSparse (sparse LU), Jacobi and GaussSeidel (iterative,
//     with a full trace of sweeps).
//   - Residual, to check a solution by substitution.
//
// Every failure is a sentinel error (see errors.go) wrapped with the operation
// name; match with errors.Is. Inputs are never mutated.
package matrix
