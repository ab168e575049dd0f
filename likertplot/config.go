// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/likertviz/likert/likert"
	"gopkg.in/yaml.v3"
)

// config describes the example charts. Every field is optional in
// the YAML file; missing fields keep their defaults.
type config struct {
	Questions  []string         `yaml:"questions"`
	Scale      int              `yaml:"scale"`
	Categories []categoryEntry  `yaml:"categories"`
	Conditions []conditionEntry `yaml:"conditions"`
	Columns    int              `yaml:"columns"`
	Center     bool             `yaml:"center"`
	Neutral    int              `yaml:"neutral"`
}

type categoryEntry struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

type conditionEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

func defaultConfig() config {
	return config{
		Questions: []string{"Q1", "Q2", "Q3", "Q4", "Q5", "Q6"},
		Scale:     7,
		Columns:   3,
	}
}

// loadConfig reads a YAML config file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Categories) > 0 {
		cfg.Scale = len(cfg.Categories)
	}
	if cfg.Scale < 2 {
		return cfg, fmt.Errorf("%s: scale has %d categories, need at least 2", path, cfg.Scale)
	}
	return cfg, nil
}

// categories returns the rating categories, falling back to the
// ColorBrewer defaults.
func (c config) categories() ([]likert.Category, error) {
	if len(c.Categories) == 0 {
		return likert.Categories(c.Scale)
	}
	cats := make([]likert.Category, len(c.Categories))
	for i, e := range c.Categories {
		cats[i] = likert.Category{Label: e.Label, Color: e.Color}
	}
	return cats, nil
}

// conditions returns the first n conditions. Conditions without a
// name or color get a default one.
func (c config) conditions(n int) ([]likert.Condition, error) {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("tech%d", i+1)
		if i < len(c.Conditions) && c.Conditions[i].Name != "" {
			names[i] = c.Conditions[i].Name
		}
	}
	conds, err := likert.Conditions(names...)
	if err != nil {
		return nil, err
	}
	for i := range conds {
		if i < len(c.Conditions) && c.Conditions[i].Color != "" {
			conds[i].Color = c.Conditions[i].Color
		}
	}
	return conds, nil
}
