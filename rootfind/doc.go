// SPDX-License-Identifier: MIT

// Package rootfind implements five classical iterative root finders for real
// functions of one variable: Newton-Raphson, Secant, Bisection, Fixed-Point and
// False Position (regula falsi).
//
// Every finder returns a *Result that records the accepted root, a terminal
// Status, the full append-only Trace of iterates and a per-step table (Steps)
// rendered by History. Numerical trouble (a vanishing derivative, a flat secant,
// a bracket without a sign change, divergence, an evaluation failure, the
// iteration cap) is never an error: it is a Result with Converged=false.
// Errors are reserved for caller misuse (bad tolerance, bad iteration cap,
// non-finite seeds, wrong seed count, unknown method, unparsable formula).
//
// Rounding:
//
//	Each computed iterate is snapped to the tolerance grid with tolerance.Round
//	(tol = 1e-4 gives four decimals). Convergence compares exact decimal
//	distances against the tolerance: a step is accepted only when both the
//	snapped iterate and the unrounded update lie within tol of the previous
//	point, so rounding never turns a long step into a short one.
//
// Trace bound:
//
//	A run never records more than maxIterations+1 trace entries
//	(the seeds count as entries).
//
// Quick start:
//
//	res, err := rootfind.FindRoot(rootfind.MethodNewton, "x^2 - 4", []float64{3}, 1e-6, 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Root, res.Status)
//	fmt.Print(res.History)
//
// Finders are pure functions of their inputs: no shared state, safe to call
// from many goroutines as long as the supplied Func is.
package rootfind
