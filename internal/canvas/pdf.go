// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image/color"

	"github.com/go-pdf/fpdf"
)

// pdfFont is one of the PDF core fonts, so no font files need to be
// embedded.
const pdfFont = "Helvetica"

type pdfCanvas struct {
	path string
	pdf  *fpdf.Fpdf
	tr   func(string) string
}

func newPDF(path string, w, h float64) *pdfCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("likertplot", true)
	pdf.AddPage()
	return &pdfCanvas{
		path: path,
		pdf:  pdf,
		// Core fonts use cp1252.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *pdfCanvas) alpha(a uint8) {
	c.pdf.SetAlpha(float64(a)/0xff, "Normal")
}

func (c *pdfCanvas) Rect(x, y, w, h float64, fill color.NRGBA) {
	c.alpha(fill.A)
	c.pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64, s Stroke) {
	c.alpha(s.Color.A)
	c.pdf.SetDrawColor(int(s.Color.R), int(s.Color.G), int(s.Color.B))
	c.pdf.SetLineWidth(s.Width)
	c.pdf.SetDashPattern(s.Dash, 0)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Text(x, y float64, s string, f Font) {
	style := ""
	if f.Italic {
		style = "I"
	}
	c.alpha(f.Color.A)
	c.pdf.SetFont(pdfFont, style, f.Size)
	c.pdf.SetTextColor(int(f.Color.R), int(f.Color.G), int(f.Color.B))
	s = c.tr(s)
	switch f.Anchor {
	case AnchorMiddle:
		x -= c.pdf.GetStringWidth(s) / 2
	case AnchorEnd:
		x -= c.pdf.GetStringWidth(s)
	}
	c.pdf.Text(x, f.baseline(y), s)
}

// PDF has no use for group names; the drawing order is all that
// matters.
func (c *pdfCanvas) Group(id string) {}

func (c *pdfCanvas) Gend() {}

func (c *pdfCanvas) Close() error {
	return c.pdf.OutputFileAndClose(c.path)
}
