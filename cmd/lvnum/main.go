// SPDX-License-Identifier: MIT

// Command lvnum runs the lvnum solvers from the shell.
//
// Usage:
//
//	lvnum root     -method newton -formula "x^2 - 2" -seeds 1 [-tol 1e-6] [-max 100] [-plot run.svg] [-plot-kind trace|error]
//	lvnum system   -solver cramer -eq "2*x + y = 3" -eq "x - y = 0" [-vars x,y]
//	lvnum system   -solver gauss -matrix "2,1,3; 1,-1,0"
//	lvnum multiply -a "1,2; 3,4" -b "5; 6"
//	lvnum batch    -file jobs.yaml [-workers 4]
//
// Matrices are written row by row: values separated by commas, rows by semicolons.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/batch"
	"github.com/katalvlaran/lvnum/chart"
	"github.com/katalvlaran/lvnum/expr"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rootfind"
	"github.com/katalvlaran/lvnum/tolerance"
)

const usage = `usage: lvnum <command> [flags]

commands:
  root      find a root of f(x) = 0 (or x = g(x))
  system    solve a linear system from equations or an augmented matrix
  multiply  multiply two matrices
  batch     run a YAML job file

run "lvnum <command> -h" for the flags of a command.
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvnum: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "root":
		err = runRoot(args, os.Stdout)
	case "system":
		err = runSystem(args, os.Stdout)
	case "multiply", "mul":
		err = runMultiply(args, os.Stdout)
	case "batch":
		err = runBatch(args, os.Stdout)
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		log.Fatalf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func runRoot(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("root", flag.ExitOnError)
	method := fs.String("method", "newton", "newton | secant | bisection | fixed-point | false-position")
	formula := fs.String("formula", "", "f(x), an equation \"lhs = rhs\", or g(x) for fixed-point")
	seeds := fs.String("seeds", "", "comma-separated seeds: x0 | x0,x1 | a,b")
	tol := fs.Float64("tol", tolerance.Default, "tolerance")
	maxIter := fs.Int("max", rootfind.DefaultMaxIterations, "maximum iterations")
	plotFile := fs.String("plot", "", "write a chart to this file (format from the extension)")
	plotKind := fs.String("plot-kind", "trace", "trace | error")
	_ = fs.Parse(args)

	m, err := rootfind.ParseMethod(*method)
	if err != nil {
		return err
	}
	xs, err := parseFloats(*seeds)
	if err != nil {
		return fmt.Errorf("seeds: %w", err)
	}

	res, err := rootfind.FindRoot(m, *formula, xs, *tol, *maxIter)
	if err != nil {
		return err
	}
	fmt.Fprint(w, res.History)

	if *plotFile != "" {
		kind := chart.KindTrace
		if *plotKind == "error" {
			kind = chart.KindError
		}
		if err = writeChart(*plotFile, res, kind); err != nil {
			return err
		}
		fmt.Fprintf(w, "chart written to %s\n", *plotFile)
	}

	return nil
}

func writeChart(path string, res *rootfind.Result, kind chart.Kind) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return chart.Write(f, res, kind, filepath.Ext(path), chart.DefaultWidth, chart.DefaultHeight)
}

// equations collects repeated -eq flags.
type equations []string

func (e *equations) String() string { return strings.Join(*e, "; ") }

func (e *equations) Set(v string) error {
	*e = append(*e, v)
	return nil
}

func runSystem(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("system", flag.ExitOnError)
	var eqs equations
	fs.Var(&eqs, "eq", "linear equation, repeat once per row")
	vars := fs.String("vars", "", "comma-separated variable names (default x,y,z)")
	rows := fs.String("matrix", "", "augmented matrix instead of -eq")
	solverName := fs.String("solver", string(matrix.SolverCramer), "cramer | gauss | sparse | jacobi | gauss-seidel")
	tol := fs.Float64("tol", matrix.DefaultTolerance, "tolerance of the iterative solvers")
	maxIter := fs.Int("max", matrix.DefaultMaxIterations, "iteration cap of the iterative solvers")
	_ = fs.Parse(args)

	solver, err := matrix.ParseSolver(*solverName)
	if err != nil {
		return err
	}

	var aug [][]float64
	switch {
	case len(eqs) > 0 && *rows != "":
		return errors.New("give either -eq or -matrix, not both")
	case len(eqs) > 0:
		var names []string
		if *vars != "" {
			names = splitList(*vars)
		}
		if aug, err = expr.Augmented(eqs, names...); err != nil {
			return err
		}
	case *rows != "":
		if aug, err = parseMatrix(*rows); err != nil {
			return err
		}
	default:
		return errors.New("no system given: use -eq or -matrix")
	}

	m, err := matrix.NewDenseFromRows(aug)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "augmented matrix:\n%s\n", m)

	opts := []matrix.Option{matrix.WithTolerance(*tol), matrix.WithMaxIterations(*maxIter)}
	x, err := matrix.Solve(solver, m, opts...)
	if err != nil && !(errors.Is(err, matrix.ErrNotConverged) && x != nil) {
		return err
	}
	if err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}

	for i, v := range x {
		fmt.Fprintf(w, "x%d = %s\n", i+1, strconv.FormatFloat(v, 'g', 10, 64))
	}
	r, rerr := matrix.Residual(m, x)
	if rerr != nil {
		return rerr
	}
	fmt.Fprintf(w, "residual: %v\n", r)

	return nil
}

func runMultiply(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("multiply", flag.ExitOnError)
	a := fs.String("a", "", "left matrix")
	b := fs.String("b", "", "right matrix")
	_ = fs.Parse(args)

	left, err := denseFlag("a", *a)
	if err != nil {
		return err
	}
	right, err := denseFlag("b", *b)
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(left, right)
	if err != nil {
		return err
	}
	fmt.Fprint(w, prod)

	return nil
}

func runBatch(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	path := fs.String("file", "", "YAML job file")
	workers := fs.Int("workers", 4, "parallel jobs")
	_ = fs.Parse(args)

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	jobs, err := batch.Load(f)
	if err != nil {
		return err
	}
	out, err := batch.Run(context.Background(), jobs, *workers)
	if err != nil {
		return err
	}

	for _, o := range out {
		fmt.Fprintf(w, "== %s %q ==\n", o.Kind, o.Name)
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "error: %v\n", o.Err)
		case o.Root != nil:
			fmt.Fprint(w, o.Root.History)
		default:
			fmt.Fprintf(w, "solution: %v\n", o.Solution)
		}
		fmt.Fprintln(w)
	}
	if bad := batch.Failed(out); len(bad) > 0 {
		return fmt.Errorf("%d of %d jobs failed", len(bad), len(out))
	}

	return nil
}

func denseFlag(name, s string) (*matrix.Dense, error) {
	rows, err := parseMatrix(s)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}

	return matrix.NewDenseFromRows(rows)
}

// parseMatrix reads "1,2; 3,4" into rows.
func parseMatrix(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("empty matrix")
	}
	var rows [][]float64
	for _, line := range strings.Split(s, ";") {
		row, err := parseFloats(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, errors.New("no values")
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
