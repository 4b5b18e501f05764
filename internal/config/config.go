// SPDX-License-Identifier: MIT

// Package config loads and validates the rectscan run configuration (rectscan.yaml).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure parsed from rectscan.yaml.
type Config struct {
	// Grid selects where the binary matrix comes from.
	Grid GridConfig `yaml:"grid"`
	// Rect is the rectangle size to search for.
	Rect RectConfig `yaml:"rect"`
	// SuppressOverlap restricts `locate` output to the greedy non-overlapping set.
	SuppressOverlap bool `yaml:"suppress_overlap"`
	// Workers is the goroutine budget for analysis; 0 or 1 runs sequentially.
	Workers int `yaml:"workers"`
	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
	// Output configures result rendering.
	Output OutputConfig `yaml:"output"`
}

// GridConfig names exactly one grid source.
type GridConfig struct {
	// Path is a text grid file (see grid.Parse).
	Path string `yaml:"path"`
	// Rows is an inline grid, one string per row.
	Rows []string `yaml:"rows"`
	// Sample selects the built-in 10x10 demonstration matrix.
	Sample bool `yaml:"sample"`
	// Random generates a seeded random grid.
	Random *RandomConfig `yaml:"random"`
}

// RandomConfig parameterizes a generated grid.
type RandomConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

// RectConfig is the searched rectangle height (rows) and width (cols).
type RectConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	// Format is "text" or "yaml".
	Format string `yaml:"format"`
	// Color enables highlighted matrix cells in text output.
	Color bool `yaml:"color"`
	// CellWidth is the printed width of a matrix cell.
	CellWidth int `yaml:"cell_width"`
}

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Defaults.
const (
	DefaultRectSize  = 3
	DefaultDensity   = 0.5
	DefaultLogLevel  = "info"
	DefaultCellWidth = 2
)

// ErrInvalidConfig classifies every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load reads and parses path, then applies defaults. It does not validate;
// callers merge flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes and applies defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Rect.Rows == 0 {
		cfg.Rect.Rows = DefaultRectSize
	}
	if cfg.Rect.Cols == 0 {
		cfg.Rect.Cols = DefaultRectSize
	}
	if cfg.Grid.Random != nil && cfg.Grid.Random.Density == 0 {
		cfg.Grid.Random.Density = DefaultDensity
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Output.CellWidth == 0 {
		cfg.Output.CellWidth = DefaultCellWidth
	}
}

// Validate checks the configuration for consistency. It does not check the
// rectangle against the grid size; that happens once the grid is loaded.
func Validate(cfg *Config) error {
	var errs []error
	if n := cfg.Grid.Sources(); n != 1 {
		errs = append(errs, fmt.Errorf("grid: exactly one of path, rows, sample, random must be set (got %d)", n))
	}
	if r := cfg.Grid.Random; r != nil {
		if r.Rows < 1 || r.Cols < 1 {
			errs = append(errs, fmt.Errorf("grid.random: rows and cols must be >= 1 (got %dx%d)", r.Rows, r.Cols))
		}
		if r.Density < 0 || r.Density > 1 {
			errs = append(errs, fmt.Errorf("grid.random.density must be in [0,1] (got %v)", r.Density))
		}
	}
	if cfg.Rect.Rows < 1 || cfg.Rect.Cols < 1 {
		errs = append(errs, fmt.Errorf("rect: rows and cols must be >= 1 (got %dx%d)", cfg.Rect.Rows, cfg.Rect.Cols))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0 (got %d)", cfg.Workers))
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
	}
	switch cfg.Output.Format {
	case FormatText, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format %q is not one of text, yaml", cfg.Output.Format))
	}
	if cfg.Output.CellWidth < 1 {
		errs = append(errs, fmt.Errorf("output.cell_width must be >= 1 (got %d)", cfg.Output.CellWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Sources counts how many grid sources are configured.
func (g GridConfig) Sources() int {
	n := 0
	if g.Path != "" {
		n++
	}
	if len(g.Rows) > 0 {
		n++
	}
	if g.Sample {
		n++
	}
	if g.Random != nil {
		n++
	}
	return n
}
