// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered conditions.

package matrix

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> order limit -> NaN/Inf -> singular/convergence.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that row slices passed to a constructor are ragged or empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadShape signals that a linear system is not an n×(n+1) augmented matrix.
	ErrBadShape = errors.New("matrix: augmented matrix must be n×(n+1)")

	// ErrOrderTooLarge signals that Cramer's rule was asked for an order above
	// MaxCramerOrder; Laplace expansion is factorial in n.
	ErrOrderTooLarge = errors.New("matrix: system order too large for Cramer's rule")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when the system has no unique solution
	// (|det| below epsilon, or a zero pivot after partial pivoting).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged indicates that an iterative solver hit its iteration cap
	// or produced non-finite iterates.
	ErrNotConverged = errors.New("matrix: iterative solver did not converge")

	// ErrInvalidOption indicates a nonsensical option value (epsilon < 0, tol <= 0, ...).
	ErrInvalidOption = errors.New("matrix: invalid option value")
)
