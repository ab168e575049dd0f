// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// metricsFace is used to estimate text extents before anything is
// drawn. Its 7/13 advance-to-height ratio is close to the average
// glyph width of Helvetica.
var metricsFace = basicfont.Face7x13

// TextWidth estimates the width in points of s set at size points.
// It is used for layout only, so it needs to be close, not exact.
func TextWidth(s string, size float64) float64 {
	adv := font.MeasureString(metricsFace, s)
	return float64(adv) / 64 * size / float64(metricsFace.Height)
}
