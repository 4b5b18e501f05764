// SPDX-License-Identifier: MIT

package submatrix

// coverage marks cells claimed by accepted rectangles during one greedy pass.
// It is allocated per pass and discarded afterwards.
type coverage struct {
	cols  int
	cells []bool
}

func newCoverage(rows, cols int) coverage {
	return coverage{cols: cols, cells: make([]bool, rows*cols)}
}

// free reports whether none of the d-sized rectangle's cells at c are claimed.
func (m coverage) free(c Coord, d Dims) bool {
	for r := c.Row; r < c.Row+d.Rows; r++ {
		base := r * m.cols
		for k := c.Col; k < c.Col+d.Cols; k++ {
			if m.cells[base+k] {
				return false
			}
		}
	}
	return true
}

// claim marks every cell of the d-sized rectangle at c.
func (m coverage) claim(c Coord, d Dims) {
	for r := c.Row; r < c.Row+d.Rows; r++ {
		base := r * m.cols
		for k := c.Col; k < c.Col+d.Cols; k++ {
			m.cells[base+k] = true
		}
	}
}

// tryClaim claims the rectangle if it is free and reports whether it did.
func (m coverage) tryClaim(c Coord, d Dims) bool {
	if !m.free(c, d) {
		return false
	}
	m.claim(c, d)
	return true
}
