package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config carries the benchmark run settings. A TOML file can set any
// subset of the fields; keys absent from the file keep their defaults.
//
//	filter = "concat"
//	count = 5
//	mem = true
//	output = "results.txt"
type config struct {
	Filter string `toml:"filter"`
	Count  int    `toml:"count"`
	Mem    bool   `toml:"mem"`
	Output string `toml:"output"`
}

func defaultConfig() config {
	return config{Count: 1}
}

func loadConfig(path string, cfg *config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Count < 1 {
		return fmt.Errorf("load config: count must be at least 1, got %d", cfg.Count)
	}
	return nil
}
