// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image/color"
	"strings"
)

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpText
)

// An Op is one recorded drawing primitive.
type Op struct {
	Kind OpKind

	// Group is the slash-separated path of enclosing groups.
	Group string

	// X, Y, W, H give the rectangle for OpRect. For OpLine the
	// endpoints are (X, Y) and (X+W, Y+H). For OpText, (X, Y) is
	// the text position.
	X, Y, W, H float64

	Fill   color.NRGBA
	Stroke Stroke
	Text   string
	Font   Font
}

// Recorder is a Canvas that records primitives in memory instead of
// rendering them.
type Recorder struct {
	Width, Height float64
	Ops           []Op
	Closed        bool

	groups []string
}

// NewRecorder returns a Recorder for a figure of size w × h.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{Width: w, Height: h}
}

func (r *Recorder) add(op Op) {
	op.Group = strings.Join(r.groups, "/")
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Rect(x, y, w, h float64, fill color.NRGBA) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: fill})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, s Stroke) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Stroke: s})
}

func (r *Recorder) Text(x, y float64, s string, f Font) {
	r.add(Op{Kind: OpText, X: x, Y: y, Text: s, Font: f})
}

func (r *Recorder) Group(id string) {
	r.groups = append(r.groups, id)
}

func (r *Recorder) Gend() {
	r.groups = r.groups[:len(r.groups)-1]
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}

// Find returns the recorded ops of kind k whose group path has the
// given prefix.
func (r *Recorder) Find(k OpKind, group string) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == k && (op.Group == group || strings.HasPrefix(op.Group, group+"/")) {
			res = append(res, op)
		}
	}
	return res
}
