// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"github.com/aclements/go-gg/gg/layout"
	"github.com/likertviz/likert/internal/canvas"
)

// figurePad is the blank border around a figure, in points.
const figurePad = 6

// box is a fixed-size layout leaf.
type box struct {
	layout.Leaf
	w, h float64
}

func newBox(w, h float64) *box {
	return &box{w: w, h: h}
}

func (b *box) SizeHint() (w, h float64, flexw, flexh bool) {
	return b.w, b.h, false, false
}

// rect is an absolute rectangle on the figure.
type rect struct {
	x, y, w, h float64
}

// at returns the absolute rectangle of e, whose layout is relative
// to a parent at (px, py).
func at(e layout.Element, px, py float64) rect {
	x, y, w, h := e.Layout()
	return rect{px + x, py + y, w, h}
}

func (r rect) frame(c canvas.Canvas) {
	x2, y2 := r.x+r.w, r.y+r.h
	c.Line(r.x, r.y, x2, r.y, frameStroke)
	c.Line(x2, r.y, x2, y2, frameStroke)
	c.Line(x2, y2, r.x, y2, frameStroke)
	c.Line(r.x, y2, r.x, r.y, frameStroke)
}

// linear maps the data interval [lo, hi] onto the output interval
// [out0, out1]. out1 may be less than out0 to flip an axis.
type linear struct {
	lo, hi     float64
	out0, out1 float64
}

func (s linear) Map(v float64) float64 {
	if s.hi == s.lo {
		return s.out0
	}
	return s.out0 + (v-s.lo)/(s.hi-s.lo)*(s.out1-s.out0)
}

// clamp restricts v to the data interval of s.
func (s linear) clamp(v float64) float64 {
	if v < s.lo {
		return s.lo
	}
	if v > s.hi {
		return s.hi
	}
	return v
}

// figureSize returns the size of a figure holding grid g and a
// legend of the given width and height, and the x offset that
// centers g in the figure.
//
// Callers lay g out with g.SetLayout(0, 0, 0, 0). With no space to
// distribute, layout.Grid places every cell at its natural size.
func figureSize(g *layout.Grid, legendW, legendH float64) (w, h, gridX float64) {
	gw, gh, _, _ := g.SizeHint()
	w = gw
	if legendW > w {
		w = legendW
	}
	gridX = figurePad + (w-gw)/2
	return w + 2*figurePad, gh + legendH + 2*figurePad, gridX
}
