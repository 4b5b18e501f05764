// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/gridgen"
	"github.com/katalvlaran/rectscan/submatrix"
)

// LoadGrid materializes the configured grid source. cfg must be valid.
func LoadGrid(cfg *Config) (grid.Grid, error) {
	g := cfg.Grid
	switch {
	case g.Path != "":
		f, err := os.Open(g.Path)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("failed to open grid: %w", err)
		}
		defer f.Close()
		out, err := grid.Parse(f)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("%s: %w", g.Path, err)
		}
		return out, nil
	case len(g.Rows) > 0:
		return grid.ParseLines(g.Rows)
	case g.Sample:
		return gridgen.Sample(), nil
	case g.Random != nil:
		return gridgen.Random(g.Random.Rows, g.Random.Cols,
			gridgen.WithSeed(g.Random.Seed), gridgen.WithDensity(g.Random.Density))
	}
	return grid.Grid{}, fmt.Errorf("%w: no grid source", ErrInvalidConfig)
}

// Dims returns the configured rectangle size.
func (c *Config) Dims() submatrix.Dims {
	return submatrix.Dims{Rows: c.Rect.Rows, Cols: c.Rect.Cols}
}
