// SPDX-License-Identifier: MIT

package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input so later caller mutation cannot leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrNonBinary
// (wrapped with the offending position) for cells outside {0,1}.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return Grid{}, ErrNonRectangular
		}
	}
	cells := make([]uint8, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if v != 0 && v != 1 {
				return Grid{}, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrNonBinary)
			}
			cells[r*cols+c] = uint8(v)
		}
	}

	return Grid{rows: rows, cols: cols, cells: cells}, nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew(values [][]int) Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// FromCells builds a Grid directly from row-major cells without copying
// through a 2D slice. The cells slice is copied.
func FromCells(rows, cols int, cells []uint8) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	if len(cells) != rows*cols {
		return Grid{}, fmt.Errorf("%d cells for %dx%d: %w", len(cells), rows, cols, ErrNonRectangular)
	}
	out := make([]uint8, len(cells))
	for i, v := range cells {
		if v > 1 {
			r, c := i/cols, i%cols
			return Grid{}, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrNonBinary)
		}
		out[i] = v
	}

	return Grid{rows: rows, cols: cols, cells: out}, nil
}

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell value at (r,c). Out-of-range positions read as 0.
// Complexity: O(1).
func (g Grid) At(r, c int) int {
	if !g.InBounds(r, c) {
		return 0
	}
	return int(g.cells[r*g.cols+c])
}

// Index maps (r,c) to its row-major index: r*Cols + c.
// Complexity: O(1).
func (g Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (r, c int) {
	return idx / g.cols, idx % g.cols
}

// Ones counts the 1-cells.
// Complexity: O(R×C).
func (g Grid) Ones() int {
	n := 0
	for _, v := range g.cells {
		n += int(v)
	}
	return n
}

// ToRows returns a fresh 2D copy of the cells.
func (g Grid) ToRows() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.cells[r*g.cols+c])
		}
		out[r] = row
	}
	return out
}

// Equal reports whether two grids have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
