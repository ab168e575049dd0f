// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// svgScale is the number of SVG user units per point. svgo works in
// integer coordinates, so we draw at a finer resolution and let the
// viewBox scale it back down.
const svgScale = 10

const svgFontFamily = `Helvetica,Arial,sans-serif`

type svgCanvas struct {
	path string
	buf  bytes.Buffer
	svg  *svg.SVG
}

func newSVG(path string, w, h float64) *svgCanvas {
	c := &svgCanvas{path: path}
	c.svg = svg.New(&c.buf)
	wi, hi := int(math.Ceil(w)), int(math.Ceil(h))
	c.svg.Start(wi, hi,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, wi*svgScale, hi*svgScale),
		fmt.Sprintf(`font-family="%s"`, svgFontFamily))
	return c
}

func sc(x float64) int {
	return int(math.Round(x * svgScale))
}

func svgColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func svgOpacity(attr string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(";%s:%.3g", attr, float64(c.A)/0xff)
}

func (c *svgCanvas) Rect(x, y, w, h float64, fill color.NRGBA) {
	c.svg.Rect(sc(x), sc(y), sc(x+w)-sc(x), sc(y+h)-sc(y),
		"fill:"+svgColor(fill)+svgOpacity("fill-opacity", fill))
}

func (c *svgCanvas) Line(x1, y1, x2, y2 float64, s Stroke) {
	style := fmt.Sprintf("stroke:%s;stroke-width:%.3g", svgColor(s.Color), s.Width*svgScale) + svgOpacity("stroke-opacity", s.Color)
	if len(s.Dash) > 0 {
		dash := make([]string, len(s.Dash))
		for i, d := range s.Dash {
			dash[i] = fmt.Sprintf("%.3g", d*svgScale)
		}
		style += ";stroke-dasharray:" + strings.Join(dash, ",")
	}
	c.svg.Line(sc(x1), sc(y1), sc(x2), sc(y2), style)
}

func (c *svgCanvas) Text(x, y float64, s string, f Font) {
	style := fmt.Sprintf("font-size:%.3gpx;fill:%s", f.Size*svgScale, svgColor(f.Color))
	if f.Italic {
		style += ";font-style:italic"
	}
	anchor := "start"
	switch f.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	c.svg.Text(sc(x), sc(f.baseline(y)), s, style, `text-anchor="`+anchor+`"`)
}

func (c *svgCanvas) Group(id string) {
	c.svg.Group(`id="` + id + `"`)
}

func (c *svgCanvas) Gend() {
	c.svg.Gend()
}

func (c *svgCanvas) Close() error {
	c.svg.End()
	if err := os.WriteFile(c.path, c.buf.Bytes(), 0666); err != nil {
		os.Remove(c.path)
		return err
	}
	return nil
}
