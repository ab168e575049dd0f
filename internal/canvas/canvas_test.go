// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.NRGBA
	}{
		{"#b35806", color.NRGBA{0xb3, 0x58, 0x06, 0xff}},
		{"#FFF", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"0", color.NRGBA{0, 0, 0, 0xff}},
		{"1", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"0.5", color.NRGBA{0x80, 0x80, 0x80, 0xff}},
		{" Gray ", color.NRGBA{0x80, 0x80, 0x80, 0xff}},
	} {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.in, got, test.want)
		}
	}

	for _, bad := range []string{"", "#12", "#gggggg", "1.5", "-0.1", "mauve"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): expected error", bad)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0x54, 0x27, 0x88, 0xff}); got != "#542788" {
		t.Errorf("Hex = %q, want #542788", got)
	}
	c, _ := Parse("#998ec3")
	if got := Hex(c); got != "#998ec3" {
		t.Errorf("Hex(Parse(#998ec3)) = %q", got)
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("", 12); w != 0 {
		t.Errorf("TextWidth of empty string = %v, want 0", w)
	}
	short, long := TextWidth("Q1", 12), TextWidth("Q1 Q1", 12)
	if !(short > 0 && long > 2*short) {
		t.Errorf("TextWidth not increasing with length: %v, %v", short, long)
	}
	if small, big := TextWidth("abc", 8), TextWidth("abc", 16); big != 2*small {
		t.Errorf("TextWidth does not scale with size: %v at 8pt, %v at 16pt", small, big)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Group("a")
	r.Rect(1, 2, 3, 4, Gray(0))
	r.Group("b")
	r.Line(0, 0, 10, 0, Stroke{Width: 1})
	r.Gend()
	r.Gend()
	r.Text(5, 5, "x", Font{Size: 8})
	if err := r.Close(); err != nil || !r.Closed {
		t.Fatalf("Close: %v", err)
	}

	if got := len(r.Find(OpRect, "a")); got != 1 {
		t.Errorf("found %d rects in a, want 1", got)
	}
	if got := r.Find(OpLine, "a"); len(got) != 1 || got[0].Group != "a/b" || got[0].W != 10 {
		t.Errorf("lines in a = %+v", got)
	}
	if got := len(r.Find(OpText, "")); got != 1 {
		t.Errorf("found %d top-level texts, want 1", got)
	}
}

func drawSample(c Canvas) {
	c.Group("sample")
	c.Rect(10, 10, 40, 20, WithAlpha(Gray(0), 0.1))
	c.Line(0, 0, 100, 50, Stroke{Color: Gray(0.5), Width: 1, Dash: []float64{3, 2}})
	c.Text(50, 25, "café <1>", Font{Size: 8, Italic: true, Anchor: AnchorMiddle, Align: AlignMiddle})
	c.Gend()
}

func TestSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	c, err := Create(path, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	drawSample(c)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<svg`,
		`viewBox="0 0 1000 500"`,
		`id="sample"`,
		`fill-opacity:0.102`,
		`stroke-dasharray:30,20`,
		`text-anchor="middle"`,
		`font-style:italic`,
		`&lt;1&gt;`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("SVG output missing %q:\n%s", want, data)
		}
	}
}

func TestPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	c, err := Create(path, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	drawSample(c)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestCreateUnsupported(t *testing.T) {
	if _, err := Create(filepath.Join(t.TempDir(), "out.png"), 10, 10); err == nil {
		t.Error("Create with .png: expected error")
	}
}
