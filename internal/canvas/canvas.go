// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas provides a minimal vector drawing surface for
// figures. Coordinates are in points with the origin at the top left
// and y growing downward.
//
// Two backends are provided: SVG (via github.com/ajstarks/svgo) and
// PDF (via github.com/go-pdf/fpdf). Create picks the backend from
// the output file's extension.
package canvas

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
)

// A Canvas receives drawing primitives for a single figure.
//
// Drawing methods do not return errors. Backends record the first
// error they encounter and report it from Close.
type Canvas interface {
	// Rect fills the rectangle with top-left corner (x, y) and
	// size (w, h).
	Rect(x, y, w, h float64, fill color.NRGBA)

	// Line strokes a line from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, s Stroke)

	// Text draws s at (x, y), positioned according to f's
	// anchor and alignment.
	Text(x, y float64, s string, f Font)

	// Group begins a named group of primitives. Groups nest and
	// must be closed with Gend.
	Group(id string)

	// Gend ends the innermost group.
	Gend()

	// Close finishes the figure and writes it out.
	Close() error
}

// Stroke describes how lines are drawn.
type Stroke struct {
	Color color.NRGBA
	Width float64

	// Dash is an optional on/off dash pattern in points. nil
	// means a solid line.
	Dash []float64
}

// Anchor is the horizontal anchor of text relative to its x
// coordinate.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Align is the vertical alignment of text relative to its y
// coordinate.
type Align int

const (
	AlignBaseline Align = iota
	AlignMiddle
	AlignTop
)

// Font describes how text is drawn.
type Font struct {
	Size   float64
	Italic bool
	Color  color.NRGBA
	Anchor Anchor
	Align  Align
}

// baseline returns the baseline y coordinate for text at y with
// alignment f.Align.
func (f Font) baseline(y float64) float64 {
	switch f.Align {
	case AlignMiddle:
		return y + 0.35*f.Size
	case AlignTop:
		return y + 0.75*f.Size
	}
	return y
}

// Create returns a Canvas of size w × h points that writes to path
// when closed. The backend is chosen by path's extension: ".svg" or
// ".pdf".
func Create(path string, w, h float64) (Canvas, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return newSVG(path, w, h), nil
	case ".pdf":
		return newPDF(path, w, h), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (want .svg or .pdf)", ext)
	}
}
