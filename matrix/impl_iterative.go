// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// IterativeResult is the outcome of Jacobi or GaussSeidel.
type IterativeResult struct {
	X          []float64   // last iterate (the solution when Converged)
	Converged  bool        // every component moved by less than the tolerance
	Iterations int         // sweeps performed
	Trace      [][]float64 // one entry per sweep, starting with the first computed iterate
	Order      []int       // Order[i] is the original row placed at position i
}

// Jacobi solves [A | b] by Jacobi iteration from the zero vector.
// Implementation:
//   - Stage 1: resolve options; ValidateAugmented; finite entries.
//   - Stage 2: reorder rows so each column's largest |a_ji| lands on the diagonal;
//     a diagonal entry below epsilon afterwards is ErrSingular.
//   - Stage 3: x_i' = (b_i − Σ_{j≠i} a_ij·x_j) / a_ii using only the previous sweep.
//     Stop when max_i |x_i' − x_i| < tolerance.
//
// Returns:
//   - *IterativeResult with the full trace. It is non-nil whenever the sweeps ran,
//     including the ErrNotConverged case (cap reached or non-finite iterate).
//
// Errors:
//   - ErrInvalidOption, ErrNilMatrix, ErrBadShape, ErrNaNInf, ErrSingular, ErrNotConverged.
//
// Notes:
//   - Convergence is guaranteed for strictly diagonally dominant systems only.
func Jacobi(aug Matrix, opts ...Option) (*IterativeResult, error) {
	return iterate(opJacobi, aug, false, opts)
}

// GaussSeidel is Jacobi that reuses components already updated in the current sweep.
// Same contract, errors and trace layout as Jacobi; it typically needs fewer sweeps.
func GaussSeidel(aug Matrix, opts ...Option) (*IterativeResult, error) {
	return iterate(opGaussSeidel, aug, true, opts)
}

func iterate(tag string, aug Matrix, inPlace bool, opts []Option) (*IterativeResult, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateFinite(aug); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	m, err := toRows(aug)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	n := len(m)
	order := dominantOrder(m)
	for i := 0; i < n; i++ {
		if math.Abs(m[i][i]) < o.eps {
			return nil, matrixErrorf(tag, fmt.Errorf("zero diagonal at row %d: %w", i, ErrSingular))
		}
	}

	res := &IterativeResult{Order: order}
	x := make([]float64, n)
	for res.Iterations < o.maxIter {
		next := make([]float64, n)
		src := x
		if inPlace {
			copy(next, x)
			src = next
		}

		delta, finite := 0.0, true
		for i := 0; i < n; i++ {
			sum := m[i][n]
			for j := 0; j < n; j++ {
				if j != i {
					sum -= m[i][j] * src[j]
				}
			}
			next[i] = sum / m[i][i]
			if math.IsNaN(next[i]) || math.IsInf(next[i], 0) {
				finite = false
			}
			delta = math.Max(delta, math.Abs(next[i]-x[i]))
		}

		res.Iterations++
		res.Trace = append(res.Trace, next)
		x = next
		if !finite {
			res.X = x
			return res, matrixErrorf(tag, fmt.Errorf("non-finite iterate at sweep %d: %w", res.Iterations, ErrNotConverged))
		}
		if delta < o.tol {
			res.X = x
			res.Converged = true
			return res, nil
		}
	}

	res.X = x

	return res, matrixErrorf(tag, fmt.Errorf("%d sweeps: %w", o.maxIter, ErrNotConverged))
}

// dominantOrder swaps rows of m in place so that, column by column, the row with
// the largest |m[j][i]| among the remaining rows sits at position i.
// It returns the resulting permutation of original row indices.
func dominantOrder(m [][]float64) []int {
	n := len(m)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if math.Abs(m[j][i]) > math.Abs(m[best][i]) {
				best = j
			}
		}
		if best != i {
			m[i], m[best] = m[best], m[i]
			order[i], order[best] = order[best], order[i]
		}
	}

	return order
}
