// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text grid: one row per line, each cell the character
// '0' or '1'. Cells may be separated by spaces, tabs or commas.
// Blank lines are skipped and '#' starts a comment that runs to end of line.
//
// Example input:
//
//	# 3x4
//	1 1 0 1
//	1,1,1,1
//	0110
//
// Errors wrap ErrInvalidGrid and name the offending input line.
func Parse(r io.Reader) (Grid, error) {
	sc := bufio.NewScanner(r)
	var (
		cols  int
		rows  int
		cells []uint8
		line  int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		n := 0
		for _, ch := range text {
			switch ch {
			case ' ', '\t', ',':
				continue
			case '0', '1':
				cells = append(cells, uint8(ch-'0'))
				n++
			default:
				return Grid{}, fmt.Errorf("line %d: unexpected %q: %w", line, ch, ErrNonBinary)
			}
		}
		if rows == 0 {
			cols = n
		} else if n != cols {
			return Grid{}, fmt.Errorf("line %d: %d cells, want %d: %w", line, n, cols, ErrNonRectangular)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("grid: read: %w", err)
	}
	if rows == 0 || cols == 0 {
		return Grid{}, ErrEmptyGrid
	}

	return Grid{rows: rows, cols: cols, cells: cells}, nil
}

// ParseString is shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseLines parses one row per element, as found in YAML inline grids.
func ParseLines(lines []string) (Grid, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")))
}

// String renders the grid in the format accepted by Parse,
// cells separated by single spaces.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + g.cells[r*g.cols+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
