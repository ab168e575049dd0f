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

// BarChart draws, for each condition, a panel of horizontal stacked
// bars with one bar per question and one segment per rating
// category. The panels sit side by side and share a legend.
type BarChart struct {
	// Questions labels the bars of every panel, top to bottom.
	// Labels are only drawn left of the first panel.
	Questions []string

	// Conditions titles the panels, left to right.
	Conditions []Condition

	// Categories gives the label and color of each rating
	// category, lowest rating first. Its length sets the size of
	// the scale.
	Categories []Category

	// Center shifts each bar so the middle of its neutral
	// category lines up with the middle of the panel. Without
	// Center, every bar starts at the left edge.
	Center bool

	// Neutral is the 1-based neutral category used by Center. If
	// 0, the scale must have an odd number of categories and the
	// middle one is used.
	Neutral int

	// PanelWidth and PanelHeight give the size of each panel in
	// points. They default to 360 × 216 (5in × 3in).
	PanelWidth, PanelHeight float64

	Style Style

	// Logger, if non-nil, receives progress messages.
	Logger *log.Logger
}

// Bars occupy this fraction of each question's row.
const barHeight = 0.85

// Reference lines are drawn at these fractions of the participant
// count.
var refLines = []float64{0.25, 0.5, 0.75}

// Render draws ratings r, indexed by [condition][question][participant],
// and writes the chart to path.
func (b *BarChart) Render(path string, r Ratings) error {
	logf(b.Logger, "generating chart with ratings...")
	fig, err := b.plan(r)
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
	logf(b.Logger, "chart saved to %s", path)
	return nil
}

// barFigure is a BarChart with its data summarized and its layout
// computed.
type barFigure struct {
	*BarChart
	style  Style
	colors []color.NRGBA
	sums   [][]Summary
	nq, np int

	w, h    float64
	gridX   float64
	labels  *box
	titles  []*box
	panels  []*box
	legend  legend
	legendY float64
}

func (b *BarChart) plan(r Ratings) (*barFigure, error) {
	nq, np, err := r.check(b.Questions, b.Conditions)
	if err != nil {
		return nil, err
	}
	k := len(b.Categories)
	if k < 2 {
		return nil, shapeErrorf("%d rating categories, need at least 2", k)
	}
	f := &barFigure{BarChart: b, style: b.Style.orDefault(), nq: nq, np: np}
	specs := make([]string, k)
	for i, cat := range b.Categories {
		specs[i] = cat.Color
	}
	if f.colors, err = parseColors("category", specs); err != nil {
		return nil, err
	}
	if f.sums, err = BarSummaries(r, k, b.Center, b.Neutral); err != nil {
		return nil, err
	}

	pw, ph := b.PanelWidth, b.PanelHeight
	if pw <= 0 {
		pw = 360
	}
	if ph <= 0 {
		ph = 216
	}
	size := f.style.AxisLabelSize

	// Grid columns are the question labels, then alternating
	// panels and gaps. Row 0 holds panel titles.
	var g layout.Grid
	labelW := 0.0
	for _, q := range b.Questions {
		if w := canvas.TextWidth(q, size); w > labelW {
			labelW = w
		}
	}
	f.labels = newBox(labelW+0.5*size, ph)
	g.Add(f.labels, 0, 1, 1, 1)
	for i := range b.Conditions {
		title, panel := newBox(pw, 1.8*size), newBox(pw, ph)
		g.Add(title, 1+2*i, 0, 1, 1)
		g.Add(panel, 1+2*i, 1, 1, 1)
		f.titles = append(f.titles, title)
		f.panels = append(f.panels, panel)
		if i < len(b.Conditions)-1 {
			g.Add(newBox(0.05*pw, 0), 2+2*i, 1, 1, 1)
		}
	}

	f.legend = legend{size: f.style.LegendSize}
	for i, cat := range b.Categories {
		f.legend.entries = append(f.legend.entries, legendEntry{label: cat.Label, fill: f.colors[i]})
	}
	legendH := f.legend.height() + f.legend.size
	f.w, f.h, f.gridX = figureSize(&g, f.legend.width(), legendH)
	_, gh, _, _ := g.SizeHint()
	g.SetLayout(0, 0, 0, 0)
	f.legendY = figurePad + gh + f.legend.size
	return f, nil
}

// xRange returns the data extent of condition i's panel.
func (f *barFigure) xRange(i int) (lo, hi float64) {
	total := float64(f.np)
	if !f.Center {
		return 0, total
	}
	lo, hi = f.sums[i][0].Offset, f.sums[i][0].Offset
	for _, s := range f.sums[i][1:] {
		if s.Offset < lo {
			lo = s.Offset
		}
		if s.Offset > hi {
			hi = s.Offset
		}
	}
	return lo, total + hi
}

func (f *barFigure) draw(c canvas.Canvas) {
	for i := range f.Conditions {
		c.Group("panel-" + strconv.Itoa(i))
		f.drawPanel(c, i)
		c.Gend()
	}
	f.legend.draw(c, figurePad, f.w-2*figurePad, f.legendY)
}

func (f *barFigure) drawPanel(c canvas.Canvas, i int) {
	size := f.style.AxisLabelSize
	p := at(f.panels[i], f.gridX, figurePad)
	lo, hi := f.xRange(i)
	xs := linear{lo, hi, p.x, p.x + p.w}
	band := p.h / float64(f.nq)
	sums := f.sums[i]
	total := float64(f.np)

	t := at(f.titles[i], f.gridX, figurePad)
	c.Group("title")
	c.Text(t.x+t.w/2, t.y+t.h-0.4*size, f.Conditions[i].Name,
		canvas.Font{Size: size, Color: textColor, Anchor: canvas.AnchorMiddle})
	c.Gend()

	if i == 0 {
		l := at(f.labels, f.gridX, figurePad)
		c.Group("questions")
		font := canvas.Font{Size: size, Color: textColor, Anchor: canvas.AnchorEnd, Align: canvas.AlignMiddle}
		for j, q := range f.Questions {
			c.Text(l.x+l.w-0.5*size, p.y+(float64(j)+0.5)*band, q, font)
		}
		c.Gend()
	}

	c.Group("bars")
	for j, s := range sums {
		y := p.y + (float64(j)+(1-barHeight)/2)*band
		for cat, n := range s.Counts {
			if n == 0 {
				continue
			}
			x0 := xs.Map(float64(s.Cum[cat]-n) + s.Offset)
			x1 := xs.Map(float64(s.Cum[cat]) + s.Offset)
			c.Rect(x0, y, x1-x0, barHeight*band, f.colors[cat])
		}
	}
	c.Gend()

	// Reference lines go over the bars. Centered bars each have
	// their own offset, so lines are drawn per question.
	c.Group("ref")
	if f.Center {
		stroke := canvas.Stroke{Color: canvas.Gray(0.2), Width: 1, Dash: []float64{3.7, 1.6}}
		for j, s := range sums {
			for _, frac := range refLines {
				x := xs.Map(total*frac + s.Offset)
				c.Line(x, p.y+float64(j)*band, x, p.y+float64(j+1)*band, stroke)
			}
		}
	} else {
		stroke := canvas.Stroke{Color: canvas.Gray(0.5), Width: 1, Dash: []float64{3.7, 1.6}}
		for _, frac := range refLines {
			x := xs.Map(total * frac)
			c.Line(x, p.y, x, p.y+p.h, stroke)
		}
	}
	c.Gend()

	c.Group("counts")
	font := canvas.Font{Size: f.style.CountSize, Italic: true, Color: textColor, Anchor: canvas.AnchorMiddle, Align: canvas.AlignMiddle}
	for j, s := range sums {
		y := p.y + (float64(j)+0.5)*band
		for cat, n := range s.Counts {
			if n == 0 {
				continue
			}
			mid := float64(s.Cum[cat]) - float64(n)/2 + s.Offset
			c.Text(xs.Map(mid), y, strconv.Itoa(n), font)
		}
	}
	c.Gend()

	p.frame(c)
}
