// SPDX-License-Identifier: MIT

// Package batch runs many root-finding and linear-system jobs described in a
// YAML file.
//
// File layout:
//
//	roots:
//	  - name: sqrt2
//	    method: newton
//	    formula: x^2 - 2
//	    seeds: [1]
//	    tolerance: 1e-6
//	    max_iterations: 100
//	systems:
//	  - name: plane
//	    solver: cramer
//	    equations:
//	      - 2*x + y + 3*z = 9
//	      - x - y + 2*z = 8
//	      - 3*x + 2*y + z = 10
//
// A system gives either equations (with optional variables, default x, y, z)
// or an augmented matrix. Jobs are independent: a bad job yields an Outcome
// with Err set and never aborts the others.
package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/rootfind"
)

var (
	// ErrDecode is returned when the YAML document cannot be decoded.
	ErrDecode = errors.New("batch: cannot decode job file")

	// ErrEmpty is returned for a file with no jobs.
	ErrEmpty = errors.New("batch: no jobs")

	// ErrInvalidJob marks a job whose description is incomplete or contradictory.
	ErrInvalidJob = errors.New("batch: invalid job")

	// ErrWorkers is returned for a non-positive worker count.
	ErrWorkers = errors.New("batch: workers must be > 0")
)

// File is a decoded job file.
type File struct {
	Roots   []RootJob   `yaml:"roots,omitempty"`
	Systems []SystemJob `yaml:"systems,omitempty"`
}

// Len returns the total number of jobs.
func (f *File) Len() int { return len(f.Roots) + len(f.Systems) }

// RootJob describes one FindRoot call. A nil Tolerance or MaxIterations means
// the rootfind default; a key present in the file is passed on as written, so
// "tolerance: 0" fails validation instead of falling back.
type RootJob struct {
	Name          string    `yaml:"name"`
	Method        string    `yaml:"method"`
	Formula       string    `yaml:"formula"`
	Seeds         []float64 `yaml:"seeds"`
	Tolerance     *float64  `yaml:"tolerance,omitempty"`
	MaxIterations *int      `yaml:"max_iterations,omitempty"`
}

// SystemJob describes one linear system. Exactly one of Equations or Matrix is set.
// Nil Tolerance, MaxIterations and Epsilon mean the matrix defaults.
type SystemJob struct {
	Name          string      `yaml:"name"`
	Solver        string      `yaml:"solver"`
	Equations     []string    `yaml:"equations,omitempty"`
	Variables     []string    `yaml:"variables,omitempty"`
	Matrix        [][]float64 `yaml:"matrix,omitempty"`
	Tolerance     *float64    `yaml:"tolerance,omitempty"`
	MaxIterations *int        `yaml:"max_iterations,omitempty"`
	Epsilon       *float64    `yaml:"epsilon,omitempty"`
}

// Load decodes a job file. Unknown keys are rejected so that typos surface
// instead of silently falling back to defaults.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if f.Len() == 0 {
		return nil, ErrEmpty
	}

	return &f, nil
}

// Parse is Load over a string.
func Parse(s string) (*File, error) {
	return Load(strings.NewReader(s))
}

// Encode writes f back as YAML (used to produce template files).
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}

	return enc.Close()
}

// options converts the optional numeric fields into rootfind options.
func (j RootJob) options() []rootfind.Option {
	opts := []rootfind.Option{rootfind.WithLabel(j.Formula)}
	if j.Tolerance != nil {
		opts = append(opts, rootfind.WithTolerance(*j.Tolerance))
	}
	if j.MaxIterations != nil {
		opts = append(opts, rootfind.WithMaxIterations(*j.MaxIterations))
	}

	return opts
}
