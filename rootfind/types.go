// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
	"strings"
)

// Func is a real function of one variable. An error (or a NaN/Inf value)
// means the function could not be evaluated at x.
type Func func(x float64) (float64, error)

// Plain adapts an infallible function to Func.
func Plain(f func(float64) float64) Func {
	return func(x float64) (float64, error) { return f(x), nil }
}

// ---------- Method ----------

// Method selects one of the five classical iterative algorithms.
type Method uint8

const (
	// MethodNewton is Newton-Raphson with a central-difference derivative.
	MethodNewton Method = iota + 1
	// MethodSecant is the two-point secant method.
	MethodSecant
	// MethodBisection halves a sign-changing bracket.
	MethodBisection
	// MethodFixedPoint iterates x = g(x).
	MethodFixedPoint
	// MethodFalsePosition is regula falsi: bracketed linear interpolation.
	MethodFalsePosition
)

// Methods lists every supported method in declaration order.
var Methods = []Method{MethodNewton, MethodSecant, MethodBisection, MethodFixedPoint, MethodFalsePosition}

var methodNames = map[Method]string{
	MethodNewton:        "Newton-Raphson",
	MethodSecant:        "Secant",
	MethodBisection:     "Bisection",
	MethodFixedPoint:    "Fixed-Point",
	MethodFalsePosition: "False Position",
}

var methodAliases = map[string]Method{
	"newton":         MethodNewton,
	"newton-raphson": MethodNewton,
	"nr":             MethodNewton,
	"secant":         MethodSecant,
	"bisection":      MethodBisection,
	"bisect":         MethodBisection,
	"fixed-point":    MethodFixedPoint,
	"fixedpoint":     MethodFixedPoint,
	"fixed":          MethodFixedPoint,
	"false-position": MethodFalsePosition,
	"falseposition":  MethodFalsePosition,
	"regula-falsi":   MethodFalsePosition,
}

// String returns the display name of the method.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", uint8(m))
}

// Seeds returns how many seed values the method needs (0 for unknown methods).
func (m Method) Seeds() int {
	switch m {
	case MethodNewton, MethodFixedPoint:
		return 1
	case MethodSecant, MethodBisection, MethodFalsePosition:
		return 2
	default:
		return 0
	}
}

// Bracketing reports whether the method keeps a sign-changing bracket.
func (m Method) Bracketing() bool {
	return m == MethodBisection || m == MethodFalsePosition
}

// ParseMethod resolves names like "newton", "regula-falsi" or "Fixed Point".
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ---------- Status ----------

// Status classifies how a run terminated. Exactly one status per Result.
type Status uint8

const (
	// StatusConverged: the stopping criterion was met before the cap.
	StatusConverged Status = iota + 1
	// StatusMaxIterations: the trace reached maxIterations+1 entries.
	StatusMaxIterations
	// StatusDerivativeVanished: Newton's f'(x) rounded to zero at 4 decimals.
	StatusDerivativeVanished
	// StatusFlatSecant: |f(x_k) - f(x_k-1)| fell below FlatSecantEpsilon.
	StatusFlatSecant
	// StatusNoSignChange: f(a)·f(b) > 0 for a bracketing method.
	StatusNoSignChange
	// StatusDiverged: a fixed-point iterate exceeded the divergence bound.
	StatusDiverged
	// StatusEvalFailed: f could not be evaluated (error, NaN or ±Inf).
	StatusEvalFailed
)

var statusNames = map[Status]string{
	StatusConverged:          "converged",
	StatusMaxIterations:      "maximum iterations reached",
	StatusDerivativeVanished: "derivative vanished",
	StatusFlatSecant:         "secant denominator vanished",
	StatusNoSignChange:       "no sign change on bracket",
	StatusDiverged:           "diverged",
	StatusEvalFailed:         "evaluation failed",
}

// String returns a short human-readable description.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Degenerate reports whether the status is a method-specific precondition failure.
func (s Status) Degenerate() bool {
	switch s {
	case StatusDerivativeVanished, StatusFlatSecant, StatusNoSignChange, StatusDiverged:
		return true
	default:
		return false
	}
}

// ---------- Step ----------

// AuxKind tags what Step.Aux carries for a given method.
type AuxKind uint8

const (
	// AuxNone: no auxiliary value (Fixed-Point); Value is NaN.
	AuxNone AuxKind = iota
	// AuxDerivative: Newton's central-difference f'(x).
	AuxDerivative
	// AuxPrevious: Secant's f(x_{k-1}).
	AuxPrevious
	// AuxRight: bracketing methods' f(b) at the right endpoint.
	AuxRight
)

// Aux is the per-method auxiliary value of a Step, tagged by Kind.
type Aux struct {
	Kind  AuxKind
	Value float64
}

// Derivative returns f'(x) when the step came from Newton-Raphson.
func (a Aux) Derivative() (float64, bool) { return a.Value, a.Kind == AuxDerivative }

// Previous returns f(x_{k-1}) when the step came from the secant method.
func (a Aux) Previous() (float64, bool) { return a.Value, a.Kind == AuxPrevious }

// Right returns f(b) when the step came from a bracketing method.
func (a Aux) Right() (float64, bool) { return a.Value, a.Kind == AuxRight }

func noAux() Aux { return Aux{Kind: AuxNone, Value: math.NaN()} }

// Bracket is an interval [A, B]; A == B marks bracketing convergence.
type Bracket struct {
	A, B float64
}

// Width returns |B - A|.
func (b Bracket) Width() float64 { return math.Abs(b.B - b.A) }

// Degenerate reports whether the bracket collapsed to a point.
func (b Bracket) Degenerate() bool { return b.A == b.B }

// Step is one row of a run. Steps are immutable once appended.
//   - Iteration: 1-based; 0 is reserved for the secant seed row.
//   - X, FX: the representative point and f(X) (g(X) for Fixed-Point).
//   - Next: the iterate computed in this step (rounded to the tolerance).
//   - Error: max(|Next - X|, |raw - X|) for open methods, where raw is the update
//     before rounding; the exact bracket width for Bisection; the same measure
//     against the nearest endpoint for False Position; NaN on the seed row.
//   - Bracket: the bracket the step worked on (bracketing methods only).
type Step struct {
	Iteration int
	X         float64
	FX        float64
	Aux       Aux
	Next      float64
	Error     float64
	Bracket   *Bracket
}

// ---------- Trace & Result ----------

// Trace is the append-only sequence of iterates of a run.
// Open methods fill Points; bracketing methods fill Brackets.
type Trace struct {
	Points   []float64
	Brackets []Bracket
}

// Len returns the number of trace entries.
func (t Trace) Len() int { return len(t.Points) + len(t.Brackets) }

// Result is the terminal artifact of a finder invocation.
type Result struct {
	Method        Method
	Root          float64 // accepted root, or NaN when no valid value exists
	Converged     bool
	Status        Status
	Iterations    int     // computed steps, excluding the secant seed row
	Residual      float64 // f(Root), or g(Root)-Root for Fixed-Point; NaN if unavailable
	Tolerance     float64
	MaxIterations int
	Trace         Trace
	Steps         []Step
	History       string // human-readable trace for display
	Err           error  // evaluation failure cause when Status == StatusEvalFailed
}

// LastStep returns the final step, if any.
func (r *Result) LastStep() (Step, bool) {
	if r == nil || len(r.Steps) == 0 {
		return Step{}, false
	}

	return r.Steps[len(r.Steps)-1], true
}
