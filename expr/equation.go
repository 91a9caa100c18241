// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strings"
)

const opAugmented = "Augmented"

// linearSlack is the relative tolerance for the affinity samples in Augmented.
const linearSlack = 1e-9

// normalize turns "lhs = rhs" into "(lhs) - (rhs)" and returns plain expressions as-is.
// A single '=' that is not part of ==, !=, <= or >= marks an equation; more than one is an error.
func normalize(formula string) (string, error) {
	lhs, rhs, ok, err := splitEquation(formula)
	if err != nil {
		return "", err
	}
	if !ok {
		return strings.TrimSpace(formula), nil
	}

	return "(" + lhs + ") - (" + rhs + ")", nil
}

// splitEquation locates a lone '=' and returns both trimmed sides.
func splitEquation(formula string) (lhs, rhs string, ok bool, err error) {
	at := -1
	for i := 0; i < len(formula); i++ {
		if formula[i] != '=' {
			continue
		}
		prevOp := i > 0 && strings.IndexByte("=!<>", formula[i-1]) >= 0
		nextEq := i+1 < len(formula) && formula[i+1] == '='
		if prevOp || nextEq {
			continue
		}
		if at >= 0 {
			return "", "", false, fmt.Errorf("%w: %q has more than one '='", ErrParse, formula)
		}
		at = i
	}
	if at < 0 {
		return "", "", false, nil
	}

	lhs = strings.TrimSpace(formula[:at])
	rhs = strings.TrimSpace(formula[at+1:])
	if lhs == "" || rhs == "" {
		return "", "", false, fmt.Errorf("%w: %q has an empty side", ErrParse, formula)
	}

	return lhs, rhs, true, nil
}

// Augmented converts linear equations into an n×(len(vars)+1) augmented matrix.
// Implementation:
//   - Stage 1: build each equation as lhs - (rhs) over vars.
//   - Stage 2: sample f(0) and f(e_j); coefficient a_j = f(e_j) - f(0), constant b = -f(0).
//   - Stage 3: confirm affinity with two more samples (f(1,...,1) and f(2·e_j)).
//
// Inputs:
//   - equations: e.g. "2*x + y - z = 3"; an equation without '=' means "= 0".
//   - vars: variable names; defaults to x, y, z.
//
// Errors:
//   - ErrParse/ErrBadVariable from Build, ErrEval/ErrNonFinite from probing,
//     ErrNotLinear when a sample disagrees with the affine model.
func Augmented(equations []string, vars ...string) ([][]float64, error) {
	if len(vars) == 0 {
		vars = []string{"x", "y", "z"}
	}
	if len(equations) == 0 {
		return nil, exprErrorf(opAugmented, ErrEmptyFormula)
	}

	out := make([][]float64, len(equations))
	for i, eq := range equations {
		e, err := Build(eq, vars...)
		if err != nil {
			return nil, exprErrorf(opAugmented, fmt.Errorf("equation %d: %w", i+1, err))
		}
		row, err := affineRow(e, vars)
		if err != nil {
			return nil, exprErrorf(opAugmented, fmt.Errorf("equation %d: %w", i+1, err))
		}
		out[i] = row
	}

	return out, nil
}

// affineRow samples e at the origin and unit vectors and validates the affine fit.
func affineRow(e *Expression, vars []string) ([]float64, error) {
	n := len(vars)
	sample := make(map[string]float64, n)
	reset := func() {
		for _, v := range vars {
			sample[v] = 0
		}
	}

	reset()
	c0, err := e.Evaluate(sample)
	if err != nil {
		return nil, err
	}

	row := make([]float64, n+1)
	sum := c0
	for j, v := range vars {
		reset()
		sample[v] = 1
		fj, err := e.Evaluate(sample)
		if err != nil {
			return nil, err
		}
		row[j] = fj - c0
		sum += row[j]

		// f(2·e_j) must equal c0 + 2·a_j.
		sample[v] = 2
		f2, err := e.Evaluate(sample)
		if err != nil {
			return nil, err
		}
		if !nearlyEqual(f2, c0+2*row[j]) {
			return nil, fmt.Errorf("%w: %q in %s", ErrNotLinear, e.String(), v)
		}
	}
	row[n] = -c0

	// f(1,...,1) must equal c0 + Σ a_j; catches cross terms such as x*y.
	for _, v := range vars {
		sample[v] = 1
	}
	all, err := e.Evaluate(sample)
	if err != nil {
		return nil, err
	}
	if !nearlyEqual(all, sum) {
		return nil, fmt.Errorf("%w: %q", ErrNotLinear, e.String())
	}

	return row, nil
}

func nearlyEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= linearSlack*scale
}
