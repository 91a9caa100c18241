// SPDX-License-Identifier: MIT

// Package expr: sentinel error set.
// Every message is prefixed with "expr: ..." so failures are easy to grep in
// CLI output and batch reports. Callers match with errors.Is; call sites wrap
// with context via exprErrorf.
package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFormula is returned when the formula is empty or whitespace only.
	ErrEmptyFormula = errors.New("expr: empty formula")

	// ErrParse wraps compiler diagnostics for malformed formulas
	// (syntax errors, unknown identifiers, non-numeric results).
	ErrParse = errors.New("expr: cannot parse formula")

	// ErrEval is returned when evaluation fails at run time
	// (e.g. integer modulo by zero, missing binding).
	ErrEval = errors.New("expr: evaluation failed")

	// ErrNonFinite is returned when a formula evaluates to NaN or ±Inf.
	ErrNonFinite = errors.New("expr: non-finite result")

	// ErrUnknownVariable is returned when a binding or sample names a variable the
	// expression was not built with.
	ErrUnknownVariable = errors.New("expr: unknown variable")

	// ErrBadVariable is returned when a variable name is empty, reserved or duplicated.
	ErrBadVariable = errors.New("expr: invalid variable name")

	// ErrNotLinear is returned by Augmented when an equation is not affine in its variables.
	ErrNotLinear = errors.New("expr: equation is not linear")
)

// exprErrorf wraps err with an operation tag; keep err non-nil.
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
