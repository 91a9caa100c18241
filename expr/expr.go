// SPDX-License-Identifier: MIT

// Package expr is the formula Evaluator consumed by the numeric packages.
//
// Purpose:
//   - Compile a formula string with a declared set of free variables once (Build),
//     then evaluate it many times with different bindings (Evaluate / Bind).
//   - Accept both plain expressions ("x^2 - 4") and equations ("x^2 = 4"); an
//     equation lhs = rhs is evaluated as lhs - (rhs).
//   - Report every failure as an error (parse, run time, non-finite result); never panic.
//
// Syntax:
//   - Arithmetic: + - * / and exponentiation via ^ or **; parentheses; unary minus.
//     The % operator is integer-only and rejects variables; use mod(x, y).
//   - Functions: sqrt cbrt sin cos tan asin acos atan sinh cosh tanh exp ln log
//     log10 log2 pow mod, plus the expr-lang builtins abs floor ceil round min max.
//   - Constants: pi, e. log is the natural logarithm.
//
// Concurrency:
//   - *Expression is immutable after Build; Evaluate allocates its own environment,
//     so one Expression may be shared by concurrent callers.
package expr

import (
	"fmt"
	"math"
	"sort"
	"strings"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultVariable is the free variable used when Build is called without names.
const DefaultVariable = "x"

// Operation tags for error wrapping.
const (
	opBuild    = "Build"
	opEvaluate = "Evaluate"
	opBind     = "Bind"
)

// Evaluator evaluates a compiled formula under a set of variable bindings.
// It returns an error (ErrEval, ErrNonFinite, ErrUnknownVariable) instead of
// panicking; the numeric packages turn such errors into failed results.
type Evaluator interface {
	Evaluate(bindings map[string]float64) (float64, error)
}

// Func is a formula bound to a single variable.
type Func func(x float64) (float64, error)

// functions are the callables and constants visible to every formula.
// The values double as type information for the compiler.
var functions = map[string]any{
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"pow":   math.Pow,
	"mod":   math.Mod,
	"pi":    math.Pi,
	"e":     math.E,
}

// keywords are expr-lang operators and builtins that cannot name a variable.
var keywords = map[string]struct{}{
	"abs": {}, "floor": {}, "ceil": {}, "round": {}, "min": {}, "max": {},
	"int": {}, "float": {}, "len": {}, "and": {}, "or": {}, "not": {}, "in": {},
	"matches": {}, "contains": {}, "let": {}, "true": {}, "false": {}, "nil": {},
}

// Expression is a compiled formula.
type Expression struct {
	source  string      // formula as given by the caller
	body    string      // normalized expression actually compiled
	vars    []string    // declared free variables, in declaration order
	program *vm.Program // compiled program; read-only after Build
}

var _ Evaluator = (*Expression)(nil)

// Build compiles formula with the given free variables (DefaultVariable when none).
// Implementation:
//   - Stage 1: reject empty formulas and invalid/reserved/duplicate variable names.
//   - Stage 2: rewrite "lhs = rhs" into "(lhs) - (rhs)".
//   - Stage 3: compile with a typed environment so unknown identifiers and
//     non-numeric results fail here rather than at evaluation time.
//
// Errors:
//   - ErrEmptyFormula, ErrBadVariable, ErrParse (wrapping the compiler diagnostic).
func Build(formula string, variables ...string) (*Expression, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, exprErrorf(opBuild, ErrEmptyFormula)
	}
	if len(variables) == 0 {
		variables = []string{DefaultVariable}
	}
	seen := make(map[string]struct{}, len(variables))
	for _, v := range variables {
		if err := checkVariable(v); err != nil {
			return nil, exprErrorf(opBuild, err)
		}
		if _, dup := seen[v]; dup {
			return nil, exprErrorf(opBuild, fmt.Errorf("%w: %q declared twice", ErrBadVariable, v))
		}
		seen[v] = struct{}{}
	}

	body, err := normalize(formula)
	if err != nil {
		return nil, exprErrorf(opBuild, err)
	}

	env := environment(variables, nil)
	program, err := exprlang.Compile(body, exprlang.Env(env), exprlang.AsFloat64())
	if err != nil {
		return nil, exprErrorf(opBuild, fmt.Errorf("%w: %q: %v", ErrParse, formula, err))
	}

	return &Expression{
		source:  formula,
		body:    body,
		vars:    append([]string(nil), variables...),
		program: program,
	}, nil
}

// MustBuild is like Build but panics on error. Intended for tests and fixed literals.
func MustBuild(formula string, variables ...string) *Expression {
	e, err := Build(formula, variables...)
	if err != nil {
		panic(err)
	}

	return e
}

// String returns the formula as given to Build.
func (e *Expression) String() string { return e.source }

// Body returns the normalized expression that was compiled.
func (e *Expression) Body() string { return e.body }

// Variables returns a copy of the declared variables.
func (e *Expression) Variables() []string { return append([]string(nil), e.vars...) }

// Evaluate runs the formula with every declared variable bound.
// Errors:
//   - ErrUnknownVariable: a binding names an undeclared variable.
//   - ErrEval: a declared variable is unbound, or the program failed at run time.
//   - ErrNonFinite: the result is NaN or ±Inf; the value is still returned.
func (e *Expression) Evaluate(bindings map[string]float64) (float64, error) {
	for name := range bindings {
		if !e.declares(name) {
			return math.NaN(), exprErrorf(opEvaluate, fmt.Errorf("%w: %q", ErrUnknownVariable, name))
		}
	}
	for _, v := range e.vars {
		if _, ok := bindings[v]; !ok {
			return math.NaN(), exprErrorf(opEvaluate, fmt.Errorf("%w: variable %q is not bound", ErrEval, v))
		}
	}

	return e.run(environment(e.vars, bindings))
}

// Bind returns the formula as a function of one variable. The expression must not
// declare any other variable.
// Errors: ErrUnknownVariable, ErrBadVariable (other free variables present).
func (e *Expression) Bind(variable string) (Func, error) {
	if !e.declares(variable) {
		return nil, exprErrorf(opBind, fmt.Errorf("%w: %q", ErrUnknownVariable, variable))
	}
	if len(e.vars) != 1 {
		return nil, exprErrorf(opBind, fmt.Errorf("%w: %q has %d free variables", ErrBadVariable, e.source, len(e.vars)))
	}

	return func(x float64) (float64, error) {
		env := environment(nil, nil)
		env[variable] = x

		return e.run(env)
	}, nil
}

// run executes the program in env and classifies the result.
func (e *Expression) run(env map[string]any) (float64, error) {
	out, err := exprlang.Run(e.program, env)
	if err != nil {
		return math.NaN(), exprErrorf(opEvaluate, fmt.Errorf("%w: %v", ErrEval, err))
	}

	var v float64
	switch n := out.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return math.NaN(), exprErrorf(opEvaluate, fmt.Errorf("%w: result of type %T", ErrEval, out))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, exprErrorf(opEvaluate, ErrNonFinite)
	}

	return v, nil
}

func (e *Expression) declares(name string) bool {
	for _, v := range e.vars {
		if v == name {
			return true
		}
	}

	return false
}

// environment builds a fresh env with functions, declared variables (zero unless bound).
func environment(vars []string, bindings map[string]float64) map[string]any {
	env := make(map[string]any, len(functions)+len(vars))
	for k, fn := range functions {
		env[k] = fn
	}
	for _, v := range vars {
		env[v] = bindings[v] // float64 zero value when unbound (compile-time typing)
	}

	return env
}

// checkVariable validates a single variable identifier.
func checkVariable(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrBadVariable)
	}
	if _, reserved := functions[name]; reserved {
		return fmt.Errorf("%w: %q is reserved", ErrBadVariable, name)
	}
	if _, reserved := keywords[name]; reserved {
		return fmt.Errorf("%w: %q is reserved", ErrBadVariable, name)
	}
	for i, r := range name {
		letter := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if !letter && !(digit && i > 0) {
			return fmt.Errorf("%w: %q is not an identifier", ErrBadVariable, name)
		}
	}

	return nil
}

// Functions returns the sorted names of the callables and constants formulas may use.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for k := range functions {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}
