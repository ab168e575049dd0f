// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/aclements/go-gg/gg/layout"
	"github.com/likertviz/likert/internal/canvas"
)

// HistGrid draws a grid of cells, one per question, in row-major
// order. Each cell stacks one histogram per condition, overlaid with
// the median and interquartile range of that condition's ratings.
// All histograms share a vertical scale.
type HistGrid struct {
	// Questions titles the cells.
	Questions []string

	// Conditions names and colors the histograms of each cell,
	// top to bottom.
	Conditions []Condition

	// ScaleMax is the number of rating categories. Ratings
	// outside [1, ScaleMax] are not counted in any bin.
	ScaleMax int

	// Columns is the number of cells per row.
	Columns int

	// PanelWidth and PanelHeight give the size of each cell in
	// points, shared by all of its histograms. They default to
	// 216 × 72 (3in × 1in).
	PanelWidth, PanelHeight float64

	Style Style

	// Logger, if non-nil, receives progress messages.
	Logger *log.Logger
}

// Histogram bars and the interquartile band are drawn with these
// opacities.
const (
	histAlpha = 0.9
	iqrAlpha  = 0.1
)

var medianStroke = canvas.Stroke{Color: canvas.Gray(0.5), Width: 2}

// Render draws ratings r, indexed by [condition][question][participant],
// and writes the chart to path.
func (h *HistGrid) Render(path string, r Ratings) error {
	logf(h.Logger, "generating chart with ratings...")
	fig, err := h.plan(r)
	if err != nil {
		return err
	}
	c, err := canvas.Create(path, fig.w, fig.h)
	if err != nil {
		return err
	}
	fig.draw(c)
	if err := c.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logf(h.Logger, "chart saved to %s", path)
	return nil
}

// histCell is the layout of one question's cell.
type histCell struct {
	title *box
	subs  []*box
	ticks *box
}

type histFigure struct {
	*HistGrid
	style  Style
	colors []color.NRGBA
	sums   [][]Summary
	ymax   int
	shape  GridShape
	nq     int

	w, h         float64
	gridX, gridY float64
	cells        []histCell
	legend       legend
}

func (h *HistGrid) plan(r Ratings) (*histFigure, error) {
	nq, _, err := r.check(h.Questions, h.Conditions)
	if err != nil {
		return nil, err
	}
	f := &histFigure{HistGrid: h, style: h.Style.orDefault(), nq: nq}
	if f.shape, err = Grid(nq, h.Columns); err != nil {
		return nil, err
	}
	specs := make([]string, len(h.Conditions))
	for i, cond := range h.Conditions {
		specs[i] = cond.Color
	}
	if f.colors, err = parseColors("condition", specs); err != nil {
		return nil, err
	}
	if f.sums, f.ymax, err = HistSummaries(r, h.ScaleMax); err != nil {
		return nil, err
	}

	pw, ph := h.PanelWidth, h.PanelHeight
	if pw <= 0 {
		pw = 216
	}
	if ph <= 0 {
		ph = 72
	}
	nc := len(h.Conditions)
	titleH := 1.6 * f.style.AxisLabelSize
	ticksH := 1.8 * f.style.TickLabelSize

	// Each row of cells takes a title row, one row per
	// condition, a tick label row, and a gap row. Each column of
	// cells is followed by a gap column. Every cell gets boxes,
	// even past the last question, so the grid stays regular.
	var g layout.Grid
	rowsPer := nc + 3
	for i := 0; i < f.shape.Rows*f.shape.Cols; i++ {
		row, col := f.shape.Cell(i)
		x, y := 2*col, rowsPer*row
		cell := histCell{title: newBox(pw, titleH), ticks: newBox(pw, ticksH)}
		g.Add(cell.title, x, y, 1, 1)
		for n := 0; n < nc; n++ {
			sub := newBox(pw, ph/float64(nc))
			g.Add(sub, x, y+1+n, 1, 1)
			cell.subs = append(cell.subs, sub)
		}
		g.Add(cell.ticks, x, y+1+nc, 1, 1)
		if row < f.shape.Rows-1 {
			g.Add(newBox(0, 0.4*ph), x, y+2+nc, 1, 1)
		}
		if col < f.shape.Cols-1 {
			g.Add(newBox(0.1*pw, 0), x+1, y, 1, 1)
		}
		f.cells = append(f.cells, cell)
	}

	f.legend = legend{size: f.style.LegendSize}
	f.legend.entries = []legendEntry{
		{label: "Median", line: &medianStroke},
		{label: "IQR", fill: canvas.WithAlpha(canvas.Gray(0), iqrAlpha)},
	}
	for i, cond := range h.Conditions {
		f.legend.entries = append(f.legend.entries, legendEntry{label: cond.Name, fill: canvas.WithAlpha(f.colors[i], histAlpha)})
	}
	f.w, f.h, f.gridX = figureSize(&g, f.legend.width(), f.legend.height())
	f.gridY = figurePad + f.legend.height()
	g.SetLayout(0, 0, 0, 0)
	return f, nil
}

func (f *histFigure) draw(c canvas.Canvas) {
	f.legend.draw(c, figurePad, f.w-2*figurePad, figurePad)
	for q := 0; q < f.nq; q++ {
		c.Group("cell-" + strconv.Itoa(q))
		for n := range f.Conditions {
			c.Group("sub-" + strconv.Itoa(n))
			f.drawSub(c, q, n)
			c.Gend()
		}
		f.drawLabels(c, q)
		c.Gend()
	}
}

// drawLabels draws question q's title above its top histogram and
// the category tick labels below its bottom histogram.
func (f *histFigure) drawLabels(c canvas.Canvas, q int) {
	cell := f.cells[q]
	t := at(cell.title, f.gridX, f.gridY)
	c.Group("title")
	c.Text(t.x+t.w/2, t.y+t.h-0.3*f.style.AxisLabelSize, f.Questions[q],
		canvas.Font{Size: f.style.AxisLabelSize, Color: textColor, Anchor: canvas.AnchorMiddle})
	c.Gend()

	p := at(cell.ticks, f.gridX, f.gridY)
	xs := linear{0.5, float64(f.ScaleMax) + 0.5, p.x, p.x + p.w}
	c.Group("ticks")
	font := canvas.Font{Size: f.style.TickLabelSize, Color: tickColor, Anchor: canvas.AnchorMiddle, Align: canvas.AlignTop}
	for v := 1; v <= f.ScaleMax; v++ {
		c.Text(xs.Map(float64(v)), p.y+0.3*f.style.TickLabelSize, strconv.Itoa(v), font)
	}
	c.Gend()
}

// drawSub draws condition n's histogram for question q.
func (f *histFigure) drawSub(c canvas.Canvas, q, n int) {
	p := at(f.cells[q].subs[n], f.gridX, f.gridY)
	s := f.sums[n][q]
	xs := linear{0.5, float64(f.ScaleMax) + 0.5, p.x, p.x + p.w}
	ys := linear{0, float64(f.ymax), p.y + p.h, p.y}

	// The band spans [P25, P75+1], clipped to the panel.
	x0, x1 := xs.Map(xs.clamp(s.P25)), xs.Map(xs.clamp(s.P75+1))
	c.Group("iqr")
	c.Rect(x0, p.y, x1-x0, p.h, canvas.WithAlpha(canvas.Gray(0), iqrAlpha))
	c.Gend()

	c.Group("bars")
	fill := canvas.WithAlpha(f.colors[n], histAlpha)
	for b, count := range s.Counts {
		if count == 0 {
			continue
		}
		bx0, bx1 := xs.Map(float64(b)+0.5), xs.Map(float64(b)+1.5)
		top := ys.Map(float64(count))
		c.Rect(bx0, top, bx1-bx0, ys.Map(0)-top, fill)
	}
	c.Gend()

	// Out-of-range ratings can put the median off the panel, in
	// which case there is no line to draw.
	c.Group("median")
	if s.Median >= xs.lo && s.Median <= xs.hi {
		mx := xs.Map(s.Median)
		c.Line(mx, p.y, mx, p.y+p.h, medianStroke)
	}
	c.Gend()

	c.Group("counts")
	font := canvas.Font{Size: f.style.CountSize, Italic: true, Color: textColor, Anchor: canvas.AnchorMiddle}
	for b, count := range s.Counts {
		if count == 0 {
			continue
		}
		c.Text(xs.Map(float64(b+1)), ys.Map(0.2), strconv.Itoa(count), font)
	}
	c.Gend()

	p.frame(c)
}
