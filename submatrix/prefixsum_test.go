// SPDX-License-Identifier: MIT

package submatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/submatrix"
)

// TestBuildPrefixSum_Small checks every entry of a 2×3 table by hand.
//
//	1 0 1
//	1 1 0
func TestBuildPrefixSum_Small(t *testing.T) {
	g := grid.MustNew([][]int{
		{1, 0, 1},
		{1, 1, 0},
	})
	ps, err := submatrix.BuildPrefixSum(g)
	require.NoError(t, err)
	require.Equal(t, 2, ps.Rows())
	require.Equal(t, 3, ps.Cols())

	want := [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 2},
		{0, 2, 3, 4},
	}
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], ps.At(i, j), "sum[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 2, ps.RegionSum(0, 1, 2, 2))
}

// TestBuildPrefixSum_Empty rejects the zero grid.
func TestBuildPrefixSum_Empty(t *testing.T) {
	_, err := submatrix.BuildPrefixSum(grid.Grid{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)
}

// TestRegionSum_MatchesBruteForce compares every sub-rectangle of several
// random grids against a direct count.
func TestRegionSum_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGrid(t, 7, 9, seed, 0.55)
		ps, err := submatrix.BuildPrefixSum(g)
		require.NoError(t, err)

		for top := 0; top < g.Rows(); top++ {
			for left := 0; left < g.Cols(); left++ {
				for h := 1; top+h <= g.Rows(); h++ {
					for w := 1; left+w <= g.Cols(); w++ {
						want := 0
						for r := top; r < top+h; r++ {
							for c := left; c < left+w; c++ {
								want += g.At(r, c)
							}
						}
						if got := ps.RegionSum(top, left, h, w); got != want {
							t.Fatalf("seed %d: RegionSum(%d,%d,%d,%d)=%d; want %d", seed, top, left, h, w, got, want)
						}
					}
				}
			}
		}
	}
}
