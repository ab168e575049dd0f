// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"fmt"
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
	"github.com/montanaflynn/stats"
)

// A Summary describes the ratings of one question under one
// condition.
type Summary struct {
	// Counts[i] is the number of ratings equal to i+1.
	Counts []int

	// Cum[i] is the sum of Counts[0..i].
	Cum []int

	// Total is the number of ratings, including any outside the
	// scale. InRange counts only those that fell into a bin.
	Total, InRange int

	// Offset is the horizontal shift that centers this question's
	// stacked bar on its neutral category. It is 0 for uncentered
	// bar charts and unused by histogram grids.
	Offset float64

	// Median, P25, and P75 are the median and the 25th and 75th
	// percentiles of the raw ratings. They are only computed for
	// histogram grids.
	Median, P25, P75 float64
}

// binRatings counts xs into k unit-width bins centered on 1..k.
// Ratings outside [1, k] are not counted.
func binRatings(xs []int, k int) []int {
	h := moremath.NewLinearHist(0.5, float64(k)+0.5, k)
	for _, x := range xs {
		if x < 1 || x > k {
			continue
		}
		h.Add(float64(x))
	}
	_, bins, _ := h.Counts()
	counts := make([]int, k)
	for i, n := range bins {
		counts[i] = int(n)
	}
	return counts
}

func summarize(xs []int, k int) Summary {
	s := Summary{Counts: binRatings(xs, k), Total: len(xs)}
	s.Cum = make([]int, k)
	sum := 0
	for i, n := range s.Counts {
		sum += n
		s.Cum[i] = sum
	}
	s.InRange = sum
	return s
}

// neutralCategory returns the 1-based neutral category of a k-point
// scale. If neutral is non-zero it is used as given. Otherwise k must
// be odd and the middle category is used.
func neutralCategory(k, neutral int) (int, error) {
	if neutral != 0 {
		if neutral < 1 || neutral > k {
			return 0, shapeErrorf("neutral category %d outside scale 1..%d", neutral, k)
		}
		return neutral, nil
	}
	if k%2 == 0 {
		return 0, shapeErrorf("%d-point scale has no middle category; set the neutral category explicitly", k)
	}
	return (k + 1) / 2, nil
}

// centerOffset returns the shift that puts the middle of category
// neutral (1-based) at the middle of the bar.
func (s *Summary) centerOffset(neutral int) float64 {
	below := 0
	if neutral >= 2 {
		below = s.Cum[neutral-2]
	}
	return float64(s.Total)/2 - float64(below+s.Cum[neutral-1])/2
}

// BarSummaries bins r into a k-point scale for a stacked bar chart.
// The result is indexed by [condition][question].
//
// If center is true, each summary's Offset centers its bar on the
// neutral category. neutral is the 1-based neutral category, or 0 to
// use the middle of an odd-sized scale.
func BarSummaries(r Ratings, k int, center bool, neutral int) ([][]Summary, error) {
	if k < 1 {
		return nil, shapeErrorf("scale has %d categories", k)
	}
	if _, _, err := r.dims(); err != nil {
		return nil, err
	}
	if center {
		var err error
		if neutral, err = neutralCategory(k, neutral); err != nil {
			return nil, err
		}
	}
	res := make([][]Summary, len(r))
	for i, cond := range r {
		res[i] = make([]Summary, len(cond))
		for j, xs := range cond {
			s := summarize(xs, k)
			if center {
				s.Offset = s.centerOffset(neutral)
			}
			res[i][j] = s
		}
	}
	return res, nil
}

// HistSummaries bins r into a k-point scale and computes the median
// and quartiles of each question under each condition. It also
// returns the shared y extent of the histograms, which is one more
// than the largest bin count.
func HistSummaries(r Ratings, k int) ([][]Summary, int, error) {
	if k < 1 {
		return nil, 0, shapeErrorf("scale has %d categories", k)
	}
	if _, _, err := r.dims(); err != nil {
		return nil, 0, err
	}
	ymax := 0
	res := make([][]Summary, len(r))
	for i, cond := range r {
		res[i] = make([]Summary, len(cond))
		for j, xs := range cond {
			s := summarize(xs, k)
			med, err := stats.Median(stats.LoadRawData(xs))
			if err != nil {
				return nil, 0, fmt.Errorf("condition %d question %d: %w", i, j, err)
			}
			s.Median = med
			sorted := make([]float64, len(xs))
			for n, x := range xs {
				sorted[n] = float64(x)
			}
			sort.Float64s(sorted)
			s.P25 = midpointPercentile(sorted, 25)
			s.P75 = midpointPercentile(sorted, 75)
			for _, n := range s.Counts {
				if n > ymax {
					ymax = n
				}
			}
			res[i][j] = s
		}
	}
	return res, ymax + 1, nil
}

// midpointPercentile returns the p'th percentile of sorted. When the
// percentile falls between two order statistics it returns their
// mean rather than interpolating linearly.
func midpointPercentile(sorted []float64, p float64) float64 {
	pos := p / 100 * float64(len(sorted)-1)
	lo, hi := int(math.Floor(pos)), int(math.Ceil(pos))
	return (sorted[lo] + sorted[hi]) / 2
}

// GridShape is the arrangement of question cells in a HistGrid.
// Questions fill the grid in row-major order.
type GridShape struct {
	Rows, Cols int
}

// Grid returns the shape of a grid holding q questions in cols
// columns.
func Grid(q, cols int) (GridShape, error) {
	if cols < 1 {
		return GridShape{}, shapeErrorf("%d columns", cols)
	}
	if q < 0 {
		return GridShape{}, shapeErrorf("%d questions", q)
	}
	return GridShape{Rows: (q + cols - 1) / cols, Cols: cols}, nil
}

// Cell returns the row and column of question i.
func (g GridShape) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}
