// SPDX-License-Identifier: MIT

package submatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/gridgen"
	"github.com/katalvlaran/rectscan/submatrix"
)

// coords builds a corner list from (row,col) pairs.
func coords(pairs ...[2]int) []submatrix.Coord {
	out := make([]submatrix.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = submatrix.Coord{Row: p[0], Col: p[1]}
	}
	return out
}

// randomGrid returns a seeded random grid and fails the test on error.
func randomGrid(t testing.TB, rows, cols int, seed int64, density float64) grid.Grid {
	t.Helper()
	g, err := gridgen.Random(rows, cols, gridgen.WithSeed(seed), gridgen.WithDensity(density))
	require.NoError(t, err)
	return g
}

// allOnes reports whether the d-sized rectangle at c is entirely 1s, by brute force.
func allOnes(g grid.Grid, c submatrix.Coord, d submatrix.Dims) bool {
	for r := c.Row; r < c.Row+d.Rows; r++ {
		for k := c.Col; k < c.Col+d.Cols; k++ {
			if g.At(r, k) != 1 {
				return false
			}
		}
	}
	return true
}

// bruteCandidates enumerates all-ones corners without prefix sums.
func bruteCandidates(g grid.Grid, d submatrix.Dims) []submatrix.Coord {
	var out []submatrix.Coord
	for r := 0; r+d.Rows <= g.Rows(); r++ {
		for c := 0; c+d.Cols <= g.Cols(); c++ {
			p := submatrix.Coord{Row: r, Col: c}
			if allOnes(g, p, d) {
				out = append(out, p)
			}
		}
	}
	return out
}
