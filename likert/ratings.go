// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package likert draws summary charts of Likert-scale survey
// ratings.
//
// Ratings are given as a three dimensional slice indexed by
// condition (for example, the technique being rated), question, and
// participant. Each rating is an integer category in [1, K].
//
// Two charts are provided. BarChart draws one stacked horizontal bar
// per question for each condition, optionally shifted so that the
// neutral category lines up across questions. HistGrid draws a grid
// of small histograms, one cell per question, with one histogram per
// condition stacked inside each cell and the median and interquartile
// range overlaid.
//
// Both charts are written to a single SVG or PDF file, chosen by the
// output path's extension.
package likert

import (
	"errors"
	"fmt"
	"log"
)

// Ratings holds raw ratings indexed by [condition][question][participant].
type Ratings [][][]int

// A Category is one point of a Likert scale. Categories are ordered
// from the lowest rating to the highest.
type Category struct {
	Label string
	Color string
}

// A Condition is one of the rated alternatives being compared.
type Condition struct {
	Name string

	// Color is used for this condition's histograms in a
	// HistGrid. BarChart ignores it.
	Color string
}

// ErrShape is wrapped by every error reporting inconsistent chart
// inputs.
var ErrShape = errors.New("inconsistent chart input")

func shapeErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}

// dims checks that r is rectangular and non-empty and returns its
// number of questions and participants.
func (r Ratings) dims() (nq, np int, err error) {
	if len(r) == 0 {
		return 0, 0, shapeErrorf("no conditions")
	}
	nq = len(r[0])
	if nq == 0 {
		return 0, 0, shapeErrorf("no questions")
	}
	np = len(r[0][0])
	if np == 0 {
		return 0, 0, shapeErrorf("no participants")
	}
	for i, cond := range r {
		if len(cond) != nq {
			return 0, 0, shapeErrorf("condition %d has %d questions, condition 0 has %d", i, len(cond), nq)
		}
		for j, q := range cond {
			if len(q) != np {
				return 0, 0, shapeErrorf("condition %d question %d has %d ratings, want %d", i, j, len(q), np)
			}
		}
	}
	return nq, np, nil
}

// check validates r against the given labels.
func (r Ratings) check(questions []string, conds []Condition) (nq, np int, err error) {
	nq, np, err = r.dims()
	if err != nil {
		return 0, 0, err
	}
	if len(conds) != len(r) {
		return 0, 0, shapeErrorf("%d condition names for %d conditions", len(conds), len(r))
	}
	if len(questions) != nq {
		return 0, 0, shapeErrorf("%d question labels for %d questions", len(questions), nq)
	}
	return nq, np, nil
}

func logf(l *log.Logger, format string, args ...interface{}) {
	if l != nil {
		l.Printf(format, args...)
	}
}
