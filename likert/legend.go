// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"image/color"

	"github.com/likertviz/likert/internal/canvas"
)

// A legendEntry is a swatch followed by a label. The swatch is a
// filled patch unless line is set.
type legendEntry struct {
	label string
	fill  color.NRGBA
	line  *canvas.Stroke
}

// legend is a single row of entries shared by every panel of a
// figure.
type legend struct {
	entries []legendEntry
	size    float64
}

func (l *legend) swatchW() float64 { return 2 * l.size }
func (l *legend) sep() float64     { return 0.6 * l.size }
func (l *legend) gap() float64     { return 1.5 * l.size }

func (l *legend) width() float64 {
	w := 0.0
	for i, e := range l.entries {
		if i > 0 {
			w += l.gap()
		}
		w += l.swatchW() + l.sep() + canvas.TextWidth(e.label, l.size)
	}
	return w
}

func (l *legend) height() float64 {
	return 2.5 * l.size
}

// draw draws the legend centered horizontally in [x, x+w] with its
// top at y.
func (l *legend) draw(c canvas.Canvas, x, w, y float64) {
	c.Group("legend")
	defer c.Gend()

	font := canvas.Font{Size: l.size, Color: textColor, Align: canvas.AlignMiddle}
	cx := x + (w-l.width())/2
	mid := y + l.height()/2
	for i, e := range l.entries {
		if i > 0 {
			cx += l.gap()
		}
		if e.line != nil {
			c.Line(cx, mid, cx+l.swatchW(), mid, *e.line)
		} else {
			sh := 0.7 * l.size
			c.Rect(cx, mid-sh/2, l.swatchW(), sh, e.fill)
		}
		cx += l.swatchW() + l.sep()
		c.Text(cx, mid, e.label, font)
		cx += canvas.TextWidth(e.label, l.size)
	}
}
