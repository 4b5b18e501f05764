// SPDX-License-Identifier: MIT

package grid

// Grid is an immutable rows×cols binary matrix.
// Cells are stored row-major: cells[r*cols+c].
// The zero value is an empty grid and is rejected by every analysis.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g Grid) Len() int { return len(g.cells) }

// Empty reports whether the grid has no cells (zero value).
func (g Grid) Empty() bool { return len(g.cells) == 0 }
