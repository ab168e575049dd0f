// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command likertplot draws example Likert-scale charts from random
// ratings.
//
// For one, two, and three conditions, likertplot writes a stacked bar
// chart (bar1, bar2, bar3) and a histogram grid (hist1, hist2, hist3)
// to the output directory. Questions, rating categories, and
// conditions may be overridden by a YAML file given with -config:
//
//	questions: [Ease of use, Speed, Accuracy]
//	categories:
//	  - {label: "1 - strongly disagree", color: "#d7191c"}
//	  - ...
//	conditions:
//	  - {name: Baseline, color: "#7fc97f"}
//	columns: 3
//	center: true
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/likertviz/likert/likert"
)

func main() {
	log.SetPrefix("likertplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", ".", "write charts to `dir`")
		flagFormat     = flag.String("format", "pdf", "output `format`: pdf or svg")
		flagConfig     = flag.String("config", "", "read chart labels and colors from YAML `file`")
		flagN          = flag.Int("n", 12, "number of simulated participants")
		flagSeed       = flag.Int64("seed", 1, "random `seed` for simulated ratings")
		flagCenter     = flag.Bool("center", false, "center bars on the neutral category")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	if *flagFormat != "pdf" && *flagFormat != "svg" {
		log.Fatalf("unknown format %q", *flagFormat)
	}
	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *flagCenter {
		cfg.Center = true
	}
	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*flagSeed))
	var ratings likert.Ratings
	for nc := 1; nc <= 3; nc++ {
		ratings = append(ratings, simulate(rng, len(cfg.Questions), *flagN, cfg.Scale))
		out := func(kind string) string {
			return filepath.Join(*flagOut, fmt.Sprintf("%s%d.%s", kind, nc, *flagFormat))
		}
		if err := writeCharts(cfg, ratings, out("bar"), out("hist")); err != nil {
			log.Fatal(err)
		}
	}
}

// simulate returns uniformly random ratings for nq questions and np
// participants on a k-point scale.
func simulate(rng *rand.Rand, nq, np, k int) [][]int {
	qs := make([][]int, nq)
	for i := range qs {
		qs[i] = make([]int, np)
		for j := range qs[i] {
			qs[i][j] = 1 + rng.Intn(k)
		}
	}
	return qs
}

// writeCharts draws a bar chart and a histogram grid of r.
func writeCharts(cfg config, r likert.Ratings, barPath, histPath string) error {
	cats, err := cfg.categories()
	if err != nil {
		return err
	}
	conds, err := cfg.conditions(len(r))
	if err != nil {
		return err
	}
	logger := log.New(os.Stderr, log.Prefix(), 0)

	bar := &likert.BarChart{
		Questions:  cfg.Questions,
		Conditions: conds,
		Categories: cats,
		Center:     cfg.Center,
		Neutral:    cfg.Neutral,
		Logger:     logger,
	}
	if err := bar.Render(barPath, r); err != nil {
		return err
	}

	hist := &likert.HistGrid{
		Questions:  cfg.Questions,
		Conditions: conds,
		ScaleMax:   len(cats),
		Columns:    cfg.Columns,
		Logger:     logger,
	}
	return hist.Render(histPath, r)
}
