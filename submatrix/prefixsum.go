// SPDX-License-Identifier: MIT

package submatrix

import (
	"github.com/katalvlaran/rectscan/grid"
)

// PrefixSum is a (rows+1)×(cols+1) table where At(i,j) is the number of
// 1-cells in the sub-rectangle [0,i)×[0,j) of the source grid.
// Row 0 and column 0 are all zero. The table is only valid for the grid
// it was built from.
type PrefixSum struct {
	rows, cols int   // source grid shape
	sum        []int // row-major, stride cols+1
}

// BuildPrefixSum computes the table with the inclusion-exclusion recurrence
//
//	sum[i][j] = grid[i-1][j-1] + sum[i-1][j] + sum[i][j-1] - sum[i-1][j-1]
//
// Returns grid.ErrEmptyGrid for an empty grid.
// Complexity: O(R·C) time and memory.
func BuildPrefixSum(g grid.Grid) (PrefixSum, error) {
	if g.Empty() {
		return PrefixSum{}, grid.ErrEmptyGrid
	}
	rows, cols := g.Rows(), g.Cols()
	stride := cols + 1
	sum := make([]int, (rows+1)*stride)
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			sum[i*stride+j] = g.At(i-1, j-1) +
				sum[(i-1)*stride+j] +
				sum[i*stride+j-1] -
				sum[(i-1)*stride+j-1]
		}
	}

	return PrefixSum{rows: rows, cols: cols, sum: sum}, nil
}

// Rows returns the source grid's row count.
func (p PrefixSum) Rows() int { return p.rows }

// Cols returns the source grid's column count.
func (p PrefixSum) Cols() int { return p.cols }

// At returns sum[i][j] for 0 ≤ i ≤ Rows, 0 ≤ j ≤ Cols.
// Complexity: O(1).
func (p PrefixSum) At(i, j int) int {
	return p.sum[i*(p.cols+1)+j]
}

// RegionSum returns the number of 1-cells in the h×w rectangle whose
// top-left corner is (top,left). The rectangle must lie inside the grid.
// Complexity: O(1).
func (p PrefixSum) RegionSum(top, left, h, w int) int {
	return p.At(top+h, left+w) - p.At(top, left+w) - p.At(top+h, left) + p.At(top, left)
}

// matches reports whether the table was built from a grid of g's shape.
func (p PrefixSum) matches(g grid.Grid) bool {
	return p.rows == g.Rows() && p.cols == g.Cols() && len(p.sum) == (p.rows+1)*(p.cols+1)
}
