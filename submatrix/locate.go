// SPDX-License-Identifier: MIT

package submatrix

import (
	"fmt"

	"github.com/katalvlaran/rectscan/grid"
)

// ValidateDims checks 1 ≤ d.Rows ≤ g.Rows() and 1 ≤ d.Cols ≤ g.Cols().
// Returns grid.ErrEmptyGrid for an empty grid, ErrInvalidDimensions otherwise.
func ValidateDims(g grid.Grid, d Dims) error {
	if g.Empty() {
		return grid.ErrEmptyGrid
	}
	if d.Rows < 1 || d.Cols < 1 || d.Rows > g.Rows() || d.Cols > g.Cols() {
		return fmt.Errorf("rect %s in %dx%d grid: %w", d, g.Rows(), g.Cols(), ErrInvalidDimensions)
	}
	return nil
}

// Locate returns the top-left corner of every d-sized rectangle in g whose
// cells are all 1, in row-major scan order.
//
// With suppressOverlap, a qualifying corner is kept only if none of its
// cells is already covered by a previously kept rectangle; kept rectangles
// then cover their cells. This single greedy pass yields a maximal, not
// necessarily maximum, non-overlapping set.
//
// Validation happens before any scan; no partial result is returned on error.
// Complexity: O(R·C) unrestricted, O(R·C·x·y) worst case with suppression.
func Locate(g grid.Grid, d Dims, suppressOverlap bool) ([]Coord, error) {
	if err := ValidateDims(g, d); err != nil {
		return nil, err
	}
	ps, err := BuildPrefixSum(g)
	if err != nil {
		return nil, err
	}
	return locate(ps, d, suppressOverlap), nil
}

// LocateWithTable is Locate with a caller-supplied prefix-sum table, so
// several sizes can be searched without rebuilding it.
// Returns ErrTableMismatch if ps was not built from a grid of g's shape.
func LocateWithTable(g grid.Grid, ps PrefixSum, d Dims, suppressOverlap bool) ([]Coord, error) {
	if err := ValidateDims(g, d); err != nil {
		return nil, err
	}
	if !ps.matches(g) {
		return nil, fmt.Errorf("table %dx%d, grid %dx%d: %w", ps.rows, ps.cols, g.Rows(), g.Cols(), ErrTableMismatch)
	}
	return locate(ps, d, suppressOverlap), nil
}

func locate(ps PrefixSum, d Dims, suppressOverlap bool) []Coord {
	if suppressOverlap {
		return scanGreedy(ps, d)
	}
	return scanRows(ps, d, 0, ps.rows-d.Rows+1)
}

// scanRows emits every qualifying corner with top row in [from, to).
func scanRows(ps PrefixSum, d Dims, from, to int) []Coord {
	var out []Coord
	area := d.Area()
	lastCol := ps.cols - d.Cols
	for i := from; i < to; i++ {
		for j := 0; j <= lastCol; j++ {
			if ps.RegionSum(i, j, d.Rows, d.Cols) == area {
				out = append(out, Coord{Row: i, Col: j})
			}
		}
	}
	return out
}

// scanGreedy is the overlap-suppressing row-major pass.
func scanGreedy(ps PrefixSum, d Dims) []Coord {
	var out []Coord
	area := d.Area()
	mask := newCoverage(ps.rows, ps.cols)
	for i := 0; i <= ps.rows-d.Rows; i++ {
		for j := 0; j <= ps.cols-d.Cols; j++ {
			if ps.RegionSum(i, j, d.Rows, d.Cols) != area {
				continue
			}
			c := Coord{Row: i, Col: j}
			if mask.tryClaim(c, d) {
				out = append(out, c)
			}
		}
	}
	return out
}
