// SPDX-License-Identifier: MIT

package rootfind

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvnum/tolerance"
)

// column headers per method; the first column is always the iteration index.
var headers = map[Method][]string{
	MethodNewton:        {"iter", "x_n", "f(x_n)", "f'(x_n)", "x_n+1", "error"},
	MethodSecant:        {"iter", "x_n", "f(x_n)", "f(x_n-1)", "x_n+1", "error"},
	MethodBisection:     {"iter", "a", "b", "c", "f(c)", "f(b)", "width"},
	MethodFixedPoint:    {"iter", "x_n", "g(x_n)", "x_n+1", "error"},
	MethodFalsePosition: {"iter", "a", "b", "c", "f(c)", "f(b)", "error"},
}

// History renders res as a step table followed by a summary; label names the
// function (empty means "f"). Numbers are printed with PrecisionDigits(tolerance)
// decimals; NaN cells print as "-".
func History(res *Result, label string) string {
	var buf bytes.Buffer
	_ = Format(&buf, res, label)

	return buf.String()
}

// Format writes the History text of res to w.
func Format(w io.Writer, res *Result, label string) error {
	if res == nil {
		return nil
	}
	digits := tolerance.PrecisionDigits(res.Tolerance)
	if label == "" {
		label = "f"
	}

	var buf bytes.Buffer
	fn := "f(x)"
	if res.Method == MethodFixedPoint {
		fn = "x = g(x)"
	}
	fmt.Fprintf(&buf, "%s method for %s: %s\n", res.Method, fn, label)
	fmt.Fprintf(&buf, "tolerance %s, max iterations %d\n\n", strconv.FormatFloat(res.Tolerance, 'g', -1, 64), res.MaxIterations)

	if len(res.Steps) > 0 {
		tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		for i, h := range headers[res.Method] {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, h)
		}
		fmt.Fprintln(tw)
		for _, st := range res.Steps {
			writeRow(tw, res.Method, st, digits)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}

	writeSummary(&buf, res, digits)
	_, err := w.Write(buf.Bytes())

	return err
}

func writeRow(w io.Writer, m Method, st Step, digits int) {
	n := func(v float64) string { return num(v, digits) }
	var cells []string
	switch m {
	case MethodBisection, MethodFalsePosition:
		a, b := math.NaN(), math.NaN()
		if st.Bracket != nil {
			a, b = st.Bracket.A, st.Bracket.B
		}
		cells = []string{n(a), n(b), n(st.X), n(st.FX), n(st.Aux.Value), n(st.Error)}
	case MethodFixedPoint:
		cells = []string{n(st.X), n(st.FX), n(st.Next), n(st.Error)}
	default:
		cells = []string{n(st.X), n(st.FX), n(st.Aux.Value), n(st.Next), n(st.Error)}
	}

	fmt.Fprint(w, st.Iteration)
	for _, c := range cells {
		fmt.Fprint(w, "\t", c)
	}
	fmt.Fprintln(w)
}

func writeSummary(w io.Writer, res *Result, digits int) {
	fmt.Fprintf(w, "status: %s\n", res.Status)
	if res.Err != nil {
		fmt.Fprintf(w, "cause: %v\n", res.Err)
	}
	switch {
	case res.Converged && res.Method == MethodFixedPoint:
		fmt.Fprintf(w, "fixed point: x = %s\n", num(res.Root, digits))
		fmt.Fprintf(w, "verification: g(x) - x = %s\n", num(res.Residual, digits))
	case res.Converged:
		fmt.Fprintf(w, "root: x = %s\n", num(res.Root, digits))
		fmt.Fprintf(w, "function value at root: f(x) = %s\n", num(res.Residual, digits))
	case !math.IsNaN(res.Root):
		fmt.Fprintf(w, "last approximation: x = %s\n", num(res.Root, digits))
	}
	fmt.Fprintf(w, "iterations: %d\n", res.Iterations)
}

// num prints v with the given decimals; NaN prints as "-".
func num(v float64, digits int) string {
	if math.IsNaN(v) {
		return "-"
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	return strconv.FormatFloat(v, 'f', digits, 64)
}
