// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/likertviz/likert/internal/canvas"
)

// Style holds the text sizes of a chart, in points.
type Style struct {
	// AxisLabelSize is used for question labels and panel titles.
	AxisLabelSize float64

	// TickLabelSize is used for axis tick labels.
	TickLabelSize float64

	// LegendSize is used for legend entries.
	LegendSize float64

	// CountSize is used for the count annotations on bars.
	CountSize float64
}

// DefaultStyle returns the text sizes used when a chart's Style is
// the zero value.
func DefaultStyle() Style {
	return Style{
		AxisLabelSize: 12,
		TickLabelSize: 8,
		LegendSize:    8,
		CountSize:     10,
	}
}

func (s Style) orDefault() Style {
	if s == (Style{}) {
		return DefaultStyle()
	}
	return s
}

// Categories returns a k-point scale labeled 1..k with the middle
// and extreme points described, colored with the ColorBrewer PuOr
// diverging palette (orange for low ratings, purple for high).
func Categories(k int) ([]Category, error) {
	pal := brewer.PuOr[k]
	if len(pal) == 0 {
		return nil, fmt.Errorf("no default palette for a %d-point scale", k)
	}
	cats := make([]Category, k)
	for i := range cats {
		label := strconv.Itoa(i + 1)
		switch {
		case i == 0:
			label += " - strongly disagree"
		case i == k-1:
			label += " - strongly agree"
		case k%2 == 1 && i == k/2:
			label += " - neutral"
		}
		cats[i] = Category{Label: label, Color: canvas.Hex(pal[i])}
	}
	return cats, nil
}

// Conditions returns conditions with the given names, colored with
// the ColorBrewer Accent qualitative palette.
func Conditions(names ...string) ([]Condition, error) {
	n := len(names)
	if n < 3 {
		// Accent starts at 3 levels. Its prefixes are still
		// distinct colors.
		n = 3
	}
	pal := brewer.Accent[n]
	if len(pal) < len(names) {
		return nil, fmt.Errorf("no default palette for %d conditions", len(names))
	}
	conds := make([]Condition, len(names))
	for i, name := range names {
		conds[i] = Condition{Name: name, Color: canvas.Hex(pal[i])}
	}
	return conds, nil
}

func parseColors(what string, specs []string) ([]color.NRGBA, error) {
	cols := make([]color.NRGBA, len(specs))
	for i, spec := range specs {
		c, err := canvas.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", what, i, err)
		}
		cols[i] = c
	}
	return cols, nil
}

// Fixed colors of chart decorations.
var (
	textColor   = canvas.Gray(0)
	frameStroke = canvas.Stroke{Color: canvas.Gray(0), Width: 0.8}
	tickColor   = canvas.Gray(0.5)
)
