// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package likert

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/likertviz/likert/internal/canvas"
)

var testQuestions = []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6"}

func testBarChart(t *testing.T, nc int) *BarChart {
	t.Helper()
	cats, err := Categories(7)
	if err != nil {
		t.Fatal(err)
	}
	var conds []Condition
	for i := 0; i < nc; i++ {
		conds = append(conds, Condition{Name: fmt.Sprintf("tech%d", i+1)})
	}
	return &BarChart{Questions: testQuestions, Conditions: conds, Categories: cats}
}

// drawBar plans and draws b onto a Recorder.
func drawBar(t *testing.T, b *BarChart, r Ratings) (*barFigure, *canvas.Recorder) {
	t.Helper()
	f, err := b.plan(r)
	if err != nil {
		t.Fatal(err)
	}
	rec := canvas.NewRecorder(f.w, f.h)
	f.draw(rec)
	return f, rec
}

// rows groups ops by their y coordinate, in increasing order.
func rows(ops []canvas.Op) [][]canvas.Op {
	byY := map[float64][]canvas.Op{}
	for _, op := range ops {
		byY[op.Y] = append(byY[op.Y], op)
	}
	var ys []float64
	for y := range byY {
		ys = append(ys, y)
	}
	sort.Float64s(ys)
	var res [][]canvas.Op
	for _, y := range ys {
		res = append(res, byY[y])
	}
	return res
}

func panelGroup(i int) string {
	return "panel-" + strconv.Itoa(i)
}

func TestBarSinglePanel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := testBarChart(t, 1)
	_, rec := drawBar(t, b, randRatings(rng, 1, 6, 12, 1, 7))

	if n := len(rec.Find(canvas.OpRect, panelGroup(1))); n != 0 {
		t.Errorf("found %d rects in a second panel, want none", n)
	}
	bars := rows(rec.Find(canvas.OpRect, panelGroup(0)+"/bars"))
	if len(bars) != 6 {
		t.Fatalf("got %d bar rows, want 6", len(bars))
	}
	for i, row := range bars {
		w := 0.0
		for _, op := range row {
			w += op.W
		}
		// 12 of 12 participants span the whole 360pt panel.
		if math.Abs(w-360) > 1e-6 {
			t.Errorf("row %d: bars span %v, want 360", i, w)
		}
	}
	if n := len(rec.Find(canvas.OpLine, panelGroup(0)+"/ref")); n != 3 {
		t.Errorf("got %d reference lines, want 3", n)
	}
}

func TestBarPanels(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := testBarChart(t, 3)
	f, rec := drawBar(t, b, randRatings(rng, 3, 6, 12, 1, 7))

	lastX := math.Inf(-1)
	for i := 0; i < 3; i++ {
		g := panelGroup(i)
		bars := rec.Find(canvas.OpRect, g+"/bars")
		if len(bars) == 0 {
			t.Fatalf("panel %d has no bars", i)
		}
		if bars[0].X <= lastX {
			t.Errorf("panel %d starts at %v, not right of panel %d", i, bars[0].X, i-1)
		}
		for _, op := range bars {
			lastX = math.Max(lastX, op.X+op.W)
		}

		title := rec.Find(canvas.OpText, g+"/title")
		if len(title) != 1 || title[0].Text != b.Conditions[i].Name {
			t.Errorf("panel %d title = %+v", i, title)
		}

		labels := rec.Find(canvas.OpText, g+"/questions")
		if i == 0 {
			if len(labels) != len(testQuestions) {
				t.Errorf("first panel has %d question labels, want %d", len(labels), len(testQuestions))
			}
			for j, op := range labels {
				if op.Text != testQuestions[j] {
					t.Errorf("question label %d = %q, want %q", j, op.Text, testQuestions[j])
				}
			}
		} else if len(labels) != 0 {
			t.Errorf("panel %d has %d question labels, want none", i, len(labels))
		}
	}

	// Bar colors come from the categories.
	var all []canvas.Op
	for i := 0; i < 3; i++ {
		all = append(all, rec.Find(canvas.OpRect, panelGroup(i))...)
	}
	for _, op := range all {
		found := false
		for _, c := range f.colors {
			if op.Fill == c {
				found = true
			}
		}
		if !found {
			t.Errorf("bar color %v is not a category color", op.Fill)
		}
	}

	// One shared legend with every category in order.
	texts := rec.Find(canvas.OpText, "legend")
	swatches := rec.Find(canvas.OpRect, "legend")
	if len(texts) != 7 || len(swatches) != 7 {
		t.Fatalf("legend has %d labels and %d swatches, want 7 each", len(texts), len(swatches))
	}
	for i, cat := range b.Categories {
		if texts[i].Text != cat.Label {
			t.Errorf("legend label %d = %q, want %q", i, texts[i].Text, cat.Label)
		}
		if swatches[i].Fill != f.colors[i] {
			t.Errorf("legend swatch %d = %v, want %v", i, swatches[i].Fill, f.colors[i])
		}
		if texts[i].Y != texts[0].Y {
			t.Errorf("legend is not a single row")
		}
	}
	if texts[0].Y <= lastY(all) {
		t.Errorf("legend is not below the panels")
	}
}

func lastY(ops []canvas.Op) float64 {
	y := math.Inf(-1)
	for _, op := range ops {
		y = math.Max(y, op.Y+op.H)
	}
	return y
}

func TestBarOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	r := randRatings(rng, 1, 6, 12, 1, 7)
	r[0][0][0] = 0
	r[0][0][5] = 0
	b := testBarChart(t, 1)
	f, rec := drawBar(t, b, r)

	counts := rows(rec.Find(canvas.OpText, panelGroup(0)+"/counts"))
	if len(counts) != 6 {
		t.Fatalf("got %d rows of counts, want 6", len(counts))
	}
	for i, row := range counts {
		sum := 0
		for _, op := range row {
			n, err := strconv.Atoi(op.Text)
			if err != nil {
				t.Fatalf("count annotation %q: %v", op.Text, err)
			}
			if n == 0 {
				t.Errorf("row %d: zero count annotated", i)
			}
			sum += n
		}
		if want := f.sums[0][i].InRange; sum != want {
			t.Errorf("row %d: annotations sum to %d, want %d", i, sum, want)
		}
	}
	if got := f.sums[0][0].InRange; got != 10 {
		t.Errorf("first question has %d in-range ratings, want 10", got)
	}
}

func TestBarCentered(t *testing.T) {
	b := testBarChart(t, 2)
	b.Center = true
	// Condition 0 is uniform, so every bar is already centered.
	// Condition 1's first question is all 7s, which shifts it
	// right by half its length.
	r := Ratings{make([][]int, 6), make([][]int, 6)}
	for j := 0; j < 6; j++ {
		r[0][j] = uniform(7, 2)
		r[1][j] = uniform(7, 2)
	}
	for n := range r[1][0] {
		r[1][0][n] = 7
	}
	f, rec := drawBar(t, b, r)

	if lo, hi := f.xRange(0); lo != 0 || hi != 14 {
		t.Errorf("uniform panel x range = [%v, %v], want [0, 14]", lo, hi)
	}
	if lo, hi := f.xRange(1); lo != 0 || hi != 21 {
		t.Errorf("skewed panel x range = [%v, %v], want [0, 21]", lo, hi)
	}

	// Reference lines are drawn per question and span only that
	// question's row.
	for i := 0; i < 2; i++ {
		lines := rec.Find(canvas.OpLine, panelGroup(i)+"/ref")
		if len(lines) != 3*6 {
			t.Fatalf("panel %d: got %d reference segments, want 18", i, len(lines))
		}
		p := at(f.panels[i], f.gridX, figurePad)
		for _, op := range lines {
			if math.Abs(op.H-p.h/6) > 1e-9 {
				t.Errorf("panel %d: reference segment height %v, want %v", i, op.H, p.h/6)
			}
		}
	}

	// The skewed bar in panel 1 starts at data x = 7 of [0, 21].
	p := at(f.panels[1], f.gridX, figurePad)
	bars := rows(rec.Find(canvas.OpRect, panelGroup(1)+"/bars"))
	if len(bars[0]) != 1 {
		t.Fatalf("skewed row has %d segments, want 1", len(bars[0]))
	}
	if got, want := bars[0][0].X, p.x+p.w/3; math.Abs(got-want) > 1e-9 {
		t.Errorf("skewed bar starts at %v, want %v", got, want)
	}
}

func TestBarErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	r := randRatings(rng, 2, 6, 12, 1, 7)
	for _, test := range []struct {
		name   string
		modify func(b *BarChart)
		shape  bool
	}{
		{"too few conditions", func(b *BarChart) { b.Conditions = b.Conditions[:1] }, true},
		{"too few questions", func(b *BarChart) { b.Questions = b.Questions[:5] }, true},
		{"one category", func(b *BarChart) { b.Categories = b.Categories[:1] }, true},
		{"even centered", func(b *BarChart) { b.Categories = b.Categories[:6]; b.Center = true }, true},
		{"bad color", func(b *BarChart) { b.Categories[3].Color = "#zzzzzz" }, false},
	} {
		b := testBarChart(t, 2)
		test.modify(b)
		_, err := b.plan(r)
		if err == nil {
			t.Errorf("%s: expected error", test.name)
			continue
		}
		if errors.Is(err, ErrShape) != test.shape {
			t.Errorf("%s: got %v, ErrShape=%v", test.name, err, test.shape)
		}
	}
}

func TestBarRender(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := randRatings(rng, 2, 6, 12, 1, 7)
	dir := t.TempDir()
	for _, name := range []string{"bar.svg", "bar.pdf"} {
		var buf bytes.Buffer
		b := testBarChart(t, 2)
		b.Center = true
		b.Logger = log.New(&buf, "", 0)
		path := filepath.Join(dir, name)
		if err := b.Render(path, r); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("%s: output missing or empty: %v", name, err)
		}
		if !strings.Contains(buf.String(), "chart saved to "+path) {
			t.Errorf("%s: log = %q", name, buf.String())
		}
	}

	b := testBarChart(t, 2)
	if err := b.Render(filepath.Join(dir, "bar.png"), r); err == nil {
		t.Error("rendering to .png: expected error")
	}
}
