// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var named = map[string]color.NRGBA{
	"black": {0, 0, 0, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"gray":  {0x80, 0x80, 0x80, 0xff},
	"grey":  {0x80, 0x80, 0x80, 0xff},
	"red":   {0xff, 0, 0, 0xff},
	"green": {0, 0x80, 0, 0xff},
	"blue":  {0, 0, 0xff, 0xff},
}

// Parse parses a color specification. It accepts "#rgb", "#rrggbb",
// "#rrggbbaa", a gray level given as a number in [0, 1] (so "0" is
// black and "0.5" is mid gray), and a handful of basic color names.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return color.NRGBA{}, fmt.Errorf("bad color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q", s)
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil {
		if g < 0 || g > 1 {
			return color.NRGBA{}, fmt.Errorf("gray level %q out of range [0, 1]", s)
		}
		return Gray(g), nil
	}
	return color.NRGBA{}, fmt.Errorf("bad color %q", s)
}

// Gray returns the opaque gray with level g in [0, 1].
func Gray(g float64) color.NRGBA {
	v := uint8(g*0xff + 0.5)
	return color.NRGBA{v, v, v, 0xff}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(a*0xff + 0.5)
	return c
}

// Hex formats c as "#rrggbb", dropping any alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
