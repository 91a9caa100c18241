// Package lvnum is a small numerical-methods toolkit: iterative root finders,
// linear-system solvers and the plumbing to drive them from formulas, YAML job
// files and the command line.
//
// 🚀 What is inside?
//
//	• Root finding: Newton-Raphson, Secant, Bisection, Fixed-Point, False Position
//	• Linear systems: Cramer (Laplace determinant), Gauss, sparse LU, Jacobi, Gauss-Seidel
//	• Matrix basics: Dense storage, multiplication, transpose, residuals
//	• Formulas: "x^2 - 2", "cos(x) = x", "2*x + y = 3" compiled once, evaluated many times
//
// ✨ Guarantees
//
//   - Every iterate is rounded to the decimal grid of the tolerance, so printed
//     histories and returned values agree digit for digit.
//   - Runs are bounded: at most MaxIterations computed steps, trace length ≤ max+1.
//   - Inputs are never mutated; results are plain values safe to share.
//
// Packages:
//
//	tolerance/ tolerance validation and half-up decimal rounding
//	expr/      formula and linear-equation compilation (expr-lang)
//	rootfind/  the five finders, Result/Trace/Step and the history formatter
//	matrix/    Dense, Mul, Determinant, Cramer, Gauss, sparse, Jacobi, Gauss-Seidel
//	chart/     convergence and error plots (gonum/plot)
//	batch/     YAML job files run concurrently (errgroup)
//	cmd/lvnum/ command-line front end
//
// Quick example:
//
//	res, err := rootfind.FindRoot(rootfind.MethodNewton, "x^2 - 2", []float64{1}, 1e-6, 100)
//	// res.Root == 1.414214, res.Status == converged
//
//	go get github.com/katalvlaran/lvnum
package lvnum
