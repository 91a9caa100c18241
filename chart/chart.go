// SPDX-License-Identifier: MIT

// Package chart renders root-finder runs with gonum/plot.
//
// Convergence plots the trace of a run against the iteration index: the
// iterates for open methods, both bracket endpoints for bracketing methods.
// Errors plots the per-step error. Write renders either to any format gonum/plot
// supports (png, svg, pdf, eps, jpg, tif, tex).
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lvnum/rootfind"
)

var (
	// ErrNilResult is returned for a nil *rootfind.Result.
	ErrNilResult = errors.New("chart: nil result")

	// ErrNoData is returned when the run has nothing to plot.
	ErrNoData = errors.New("chart: nothing to plot")

	// ErrFormat is returned for an output format gonum/plot cannot render.
	ErrFormat = errors.New("chart: unsupported format")

	// ErrSize is returned for non-positive canvas dimensions.
	ErrSize = errors.New("chart: width and height must be > 0")
)

// Kind selects which view of a run is drawn.
type Kind uint8

const (
	// KindTrace plots iterates (or bracket endpoints) per iteration.
	KindTrace Kind = iota
	// KindError plots the per-step error per iteration.
	KindError
)

// DefaultWidth and DefaultHeight are used by the CLI when no size is given.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	colorA    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorB    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorRoot = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

func chartErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Convergence builds the trace plot of res.
// Open methods draw one series (x_k); bracketing methods draw a and b.
// A converged run gets a horizontal reference line at the root.
func Convergence(res *rootfind.Result) (*plot.Plot, error) {
	if res == nil {
		return nil, chartErrorf("Convergence", ErrNilResult)
	}
	if res.Trace.Len() == 0 {
		return nil, chartErrorf("Convergence", ErrNoData)
	}

	p := newPlot(res, "iterate")
	if res.Method.Bracketing() {
		a := make(plotter.XYs, len(res.Trace.Brackets))
		b := make(plotter.XYs, len(res.Trace.Brackets))
		for i, br := range res.Trace.Brackets {
			a[i] = plotter.XY{X: float64(i), Y: br.A}
			b[i] = plotter.XY{X: float64(i), Y: br.B}
		}
		if err := addSeries(p, "a", a, colorA); err != nil {
			return nil, chartErrorf("Convergence", err)
		}
		if err := addSeries(p, "b", b, colorB); err != nil {
			return nil, chartErrorf("Convergence", err)
		}
	} else {
		xs := make(plotter.XYs, len(res.Trace.Points))
		for i, x := range res.Trace.Points {
			xs[i] = plotter.XY{X: float64(i), Y: x}
		}
		if err := addSeries(p, "x", xs, colorA); err != nil {
			return nil, chartErrorf("Convergence", err)
		}
	}

	if res.Converged {
		root := plotter.NewFunction(func(float64) float64 { return res.Root })
		root.Color = colorRoot
		root.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(root)
		p.Legend.Add("root", root)
	}

	return p, nil
}

// Errors builds the per-step error plot of res. Rows without an error
// (the secant seed row) are skipped.
func Errors(res *rootfind.Result) (*plot.Plot, error) {
	if res == nil {
		return nil, chartErrorf("Errors", ErrNilResult)
	}

	pts := make(plotter.XYs, 0, len(res.Steps))
	for _, st := range res.Steps {
		if math.IsNaN(st.Error) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(st.Iteration), Y: st.Error})
	}
	if len(pts) == 0 {
		return nil, chartErrorf("Errors", ErrNoData)
	}

	p := newPlot(res, "error")
	if err := addSeries(p, "error", pts, colorB); err != nil {
		return nil, chartErrorf("Errors", err)
	}

	return p, nil
}

// Write renders the chosen view of res to w in format ("png", "svg", ...).
func Write(w io.Writer, res *rootfind.Result, kind Kind, format string, width, height vg.Length) error {
	if width <= 0 || height <= 0 {
		return chartErrorf("Write", ErrSize)
	}
	format = strings.ToLower(strings.TrimPrefix(format, "."))

	var (
		p   *plot.Plot
		err error
	)
	switch kind {
	case KindError:
		p, err = Errors(res)
	default:
		p, err = Convergence(res)
	}
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return chartErrorf("Write", fmt.Errorf("%w %q: %v", ErrFormat, format, err))
	}
	if _, err = wt.WriteTo(w); err != nil {
		return chartErrorf("Write", err)
	}

	return nil
}

func newPlot(res *rootfind.Result, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", res.Method, res.Status)
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	return p
}

func addSeries(p *plot.Plot, name string, xys plotter.XYs, c color.Color) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = c
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	p.Legend.Add(name, line, points)

	return nil
}
