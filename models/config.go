// Package models defines data structures for configuration, corpora and output.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SummaryConfig holds the ranking parameters of a run.
// Values come from defaults, an optional YAML file, the environment and CLI flags,
// in that order of precedence.
type SummaryConfig struct {
	Sentences     int     `yaml:"sentences"`
	Threshold     float64 `yaml:"threshold"`
	Damping       float64 `yaml:"damping"`
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`
	// TopStems is the vocabulary size used when no stems are given explicitly.
	TopStems int `yaml:"top_stems"`
	// StrictLanguage rejects input that is not detected as English.
	StrictLanguage bool   `yaml:"strict_language"`
	StopwordsFile  string `yaml:"stopwords_file,omitempty"`
	DBPath         string `yaml:"db_path,omitempty"`
}

// DefaultSummaryConfig returns the built-in defaults.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		Sentences:     3,
		Threshold:     0.5,
		Damping:       0.85,
		Epsilon:       0.01,
		MaxIterations: 100,
		TopStems:      10,
	}
}

// Validate fails fast on out-of-range parameters.
func (c SummaryConfig) Validate() error {
	if c.Sentences < 0 {
		return fmt.Errorf("sentences must not be negative, got %d", c.Sentences)
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be within [0, 1], got %v", c.Threshold)
	}
	if math.IsNaN(c.Damping) || c.Damping < 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be within [0, 1], got %v", c.Damping)
	}
	if math.IsNaN(c.Epsilon) || c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.TopStems < 0 {
		return fmt.Errorf("top_stems must not be negative, got %d", c.TopStems)
	}
	return nil
}

// LoadSummaryConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadSummaryConfig(path string) (SummaryConfig, error) {
	cfg := DefaultSummaryConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnv loads variables from .env files into the process environment.
// Missing files are ignored; variables already set are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}
