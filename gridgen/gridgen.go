// SPDX-License-Identifier: MIT

package gridgen

import (
	"fmt"

	"github.com/katalvlaran/rectscan/grid"
)

// sample is the 10×10 demonstration matrix.
var sample = [][]int{
	{1, 1, 1, 0, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 0, 1, 1, 1, 1},
	{1, 1, 0, 1, 1, 1, 1, 1, 0, 1},
	{1, 1, 1, 1, 0, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1, 0, 1, 1},
	{1, 1, 1, 0, 1, 1, 1, 1, 1, 1},
	{1, 0, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Sample returns the 10×10 demonstration matrix used by the CLI's --sample flag.
func Sample() grid.Grid {
	return grid.MustNew(sample)
}

// Filled returns a rows×cols grid with every cell set to value (0 or 1).
func Filled(rows, cols int, value uint8) (grid.Grid, error) {
	if rows < 1 || cols < 1 {
		return grid.Grid{}, fmt.Errorf("Filled: rows=%d, cols=%d: %w", rows, cols, ErrTooSmall)
	}
	cells := make([]uint8, rows*cols)
	if value != 0 {
		for i := range cells {
			cells[i] = value
		}
	}
	return grid.FromCells(rows, cols, cells)
}

// Random returns a rows×cols grid where each cell is 1 with the configured
// density. Cells are drawn in row-major order, so a fixed seed yields a fixed grid.
// Requires WithSeed or WithRand.
func Random(rows, cols int, opts ...Option) (grid.Grid, error) {
	if rows < 1 || cols < 1 {
		return grid.Grid{}, fmt.Errorf("Random: rows=%d, cols=%d: %w", rows, cols, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return grid.Grid{}, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}
	cells := make([]uint8, rows*cols)
	for i := range cells {
		if cfg.rng.Float64() < cfg.density {
			cells[i] = 1
		}
	}
	return grid.FromCells(rows, cols, cells)
}

// Blocks returns a rows×cols grid of zeros with an h×w block of ones stamped
// at each top-left corner in tops. Blocks may overlap.
func Blocks(rows, cols, h, w int, tops ...[2]int) (grid.Grid, error) {
	if rows < 1 || cols < 1 || h < 1 || w < 1 {
		return grid.Grid{}, fmt.Errorf("Blocks: rows=%d, cols=%d, h=%d, w=%d: %w", rows, cols, h, w, ErrTooSmall)
	}
	cells := make([]uint8, rows*cols)
	for _, tl := range tops {
		r0, c0 := tl[0], tl[1]
		if r0 < 0 || c0 < 0 || r0+h > rows || c0+w > cols {
			return grid.Grid{}, fmt.Errorf("Blocks: corner (%d,%d): %w", r0, c0, ErrBlockOutOfRange)
		}
		for r := r0; r < r0+h; r++ {
			for c := c0; c < c0+w; c++ {
				cells[r*cols+c] = 1
			}
		}
	}
	return grid.FromCells(rows, cols, cells)
}
