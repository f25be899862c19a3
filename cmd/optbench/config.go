package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config drives a benchmark batch. Zero values fall back to the defaults in
// defaultConfig.
type config struct {
	Cities     int      `yaml:"cities"`     // instance size (3..255)
	Span       float64  `yaml:"span"`       // side of the random square
	Runs       int      `yaml:"runs"`       // repetitions per algorithm
	Seed       int64    `yaml:"seed"`       // base seed (0 = engine default)
	Iterations int      `yaml:"iterations"` // per-algorithm iteration budget
	Timeout    string   `yaml:"timeout"`    // per-run deadline ("30s"), empty = none
	Output     string   `yaml:"output"`     // CSV path, empty = stdout
	Algorithms []string `yaml:"algorithms"` // subset to run, empty = all
}

func defaultConfig() config {
	return config{
		Cities:     40,
		Span:       100,
		Runs:       5,
		Seed:       1,
		Iterations: 2000,
	}
}

// loadConfig merges a YAML file (when path is non-empty) over the defaults.
func loadConfig(path string) (config, error) {
	var cfg = defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("optbench: read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("optbench: parse config: %w", err)
	}

	return cfg, nil
}

// wants reports whether name was requested (an empty selection means all).
func (c config) wants(name string) bool {
	if len(c.Algorithms) == 0 {
		return true
	}
	for _, a := range c.Algorithms {
		if a == name {
			return true
		}
	}

	return false
}
