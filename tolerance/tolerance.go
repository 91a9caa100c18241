// SPDX-License-Identifier: MIT

// Package tolerance rounds floating-point iterates to the grid implied by a
// convergence tolerance.
//
// Purpose:
//   - Normalize every freshly computed iterate to a multiple of the tolerance so that
//     binary noise (e.g. 1.9999999999997) never produces spurious non-convergence.
//   - Give deterministic, reproducible iterate sequences for a given tolerance.
//   - Derive display precision from the tolerance as a pure function (no global format state).
//
// Numeric policy:
//   - Rounding runs on a decimal path (shopspring/decimal): value/tol is rounded to an
//     integer with half-up ties (away from zero), multiplied back by tol and re-scaled
//     to the trailing-zero-stripped scale of tol.
//   - Values are read through their shortest decimal form, so Round is idempotent:
//     Round(Round(v, t), t) == Round(v, t).
//   - NaN and ±Inf pass through unchanged; callers classify them.
//
// AI-Hints:
//   - Validate the tolerance once at the API boundary (Validate) and call Round freely afterwards.
//   - Use PrecisionDigits to size %.*f verbs when printing traces.
package tolerance

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidTolerance is returned when a tolerance is not a finite, strictly positive number.
var ErrInvalidTolerance = errors.New("tolerance: must be finite and > 0")

// Default is the tolerance used when callers do not configure one.
const Default = 1e-6

// precisionSlack absorbs log10 noise so that PrecisionDigits(1e-6) == 6, not 7.
const precisionSlack = 1e-9

// Validate reports whether tol can drive rounding and convergence tests.
// Errors: ErrInvalidTolerance (wrapped with the offending value).
// Complexity: O(1).
func Validate(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTolerance, tol)
	}

	return nil
}

// Round snaps value to the nearest multiple of tol (half-up ties) and re-scales the
// result to the decimal scale of tol.
// Implementation:
//   - Stage 1: pass non-finite values through; the caller decides what NaN/Inf means.
//   - Stage 2: q = value / tol rounded to 0 decimal places, half away from zero.
//   - Stage 3: r = q * tol, rounded to Scale(tol) places; convert back to float64.
//
// Behavior highlights:
//   - Idempotent for every finite value and valid tolerance.
//   - Symmetric: Round(-v, t) == -Round(v, t).
//
// Inputs:
//   - value: any float64.
//   - tol: finite, > 0 (not re-validated here; see Validate).
//
// Returns:
//   - float64: the rounded value.
//
// Complexity:
//   - Time O(d) in the number of decimal digits involved, Space O(d).
func Round(value, tol float64) float64 {
	// Non-finite values cannot be represented by the decimal path.
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return value
	}

	v := decimal.NewFromFloat(value)
	t := decimal.NewFromFloat(tol)

	// q = round_half_up(v / t), an integer multiple count.
	q := v.DivRound(t, 0)
	// Multiply back and pin the scale to tol's own scale.
	r := q.Mul(t).Round(int32(Scale(tol)))

	out, _ := r.Float64()
	if out == 0 {
		return 0 // normalize -0 so traces never print "-0.000000"
	}

	return out
}

// Scale returns the number of fractional decimal digits in the shortest form of tol
// with trailing zeros stripped (0.0010 → 3, 0.5 → 1, 5 → 0).
// Complexity: O(d).
func Scale(tol float64) int {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0
	}
	s := decimal.NewFromFloat(tol).String()
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}

	return len(strings.TrimRight(s[dot+1:], "0"))
}

// PrecisionDigits returns the number of decimals worth printing for a tolerance:
// max(0, ceil(-log10(tol))). 1e-6 → 6, 0.0005 → 4, 10 → 0.
// It is a pure function of tol; nothing is cached.
func PrecisionDigits(tol float64) int {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0
	}
	d := int(math.Ceil(-math.Log10(tol) - precisionSlack))
	if d < 0 {
		return 0
	}

	return d
}

// IsZeroAt reports whether |v| rounds to zero at the given number of decimal places
// (half-up). IsZeroAt(0.00004, 4) is true, IsZeroAt(0.00005, 4) is false.
func IsZeroAt(v float64, places int) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}

	return decimal.NewFromFloat(math.Abs(v)).Round(int32(places)).IsZero()
}

// Distance returns |a - b| computed on the decimal path, so on-grid values give
// exact grid multiples (|2.000001 - 2| is 1e-6, not 1.0000000000287557e-06).
// Non-finite inputs give +Inf.
func Distance(a, b float64) float64 {
	if !finite(a) || !finite(b) {
		return math.Inf(1)
	}
	out, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs().Float64()

	return out
}

// Within reports whether |a - b| <= tol, compared exactly in decimal.
// It never rounds the distance first: a gap of 1.4·tol is outside tol even when
// both points sit on different sides of a grid line.
func Within(a, b, tol float64) bool {
	if !finite(a) || !finite(b) || !finite(tol) {
		return false
	}
	d := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()

	return d.LessThanOrEqual(decimal.NewFromFloat(tol))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
