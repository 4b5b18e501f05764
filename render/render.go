// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/submatrix"
)

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Matrix writes title followed by rows, highest row first, each prefixed
// with its row number, then a separator and the column numbers:
//
//	Title
//	 1 |  0  1
//	 0 |  1  1
//	   +------
//	      0  1
//
// Rows may be ragged; the axis spans the first row's width.
func Matrix(w io.Writer, title string, rows [][]int, opts ...Option) error {
	cfg := newConfig(opts...)
	ew := &errWriter{w: w}
	ew.printf("%s\n", title)
	if len(rows) == 0 {
		return ew.err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		ew.printf("%s", cfg.axis(fmt.Sprintf("%2d |", i)))
		for _, v := range rows[i] {
			ew.printf(" %s", cfg.cell(v))
		}
		ew.printf("\n")
	}
	n := len(rows[0])
	ew.printf("%s\n", cfg.axis("   +"+strings.Repeat("-", n*(cfg.cellWidth+1))))
	var b strings.Builder
	b.WriteString("    ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, " %*d", cfg.cellWidth, j)
	}
	ew.printf("%s\n", cfg.axis(b.String()))
	return ew.err
}

// Grid is Matrix for a grid.Grid.
func Grid(w io.Writer, title string, g grid.Grid, opts ...Option) error {
	return Matrix(w, title, g.ToRows(), opts...)
}

// Coords writes heading and one "(row=R, col=C)" line per corner,
// followed by a blank line.
func Coords(w io.Writer, heading string, corners []submatrix.Coord) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n", heading)
	for _, p := range corners {
		ew.printf("(row=%d, col=%d)\n", p.Row, p.Col)
	}
	ew.printf("\n")
	return ew.err
}

// Clusters writes one "Cluster #k: (r,c) (r,c) " line per cluster, 1-based,
// followed by a blank line.
func Clusters(w io.Writer, clusters [][]submatrix.Coord) error {
	ew := &errWriter{w: w}
	ew.printf("Clusters of submatrices (by adjacency):\n")
	for i, cl := range clusters {
		ew.printf("Cluster #%d: %s\n", i+1, joinCoords(cl))
	}
	ew.printf("\n")
	return ew.err
}

// Selections writes each cluster's selection with its count.
func Selections(w io.Writer, sels []submatrix.Selection) error {
	ew := &errWriter{w: w}
	ew.printf("Non-overlapping submatrices in each cluster:\n")
	for i, s := range sels {
		ew.printf("Cluster #%d: %s, count = %d\n", i+1, joinCoords(s.Coords), s.Count())
	}
	ew.printf("\n")
	return ew.err
}

func joinCoords(cs []submatrix.Coord) string {
	var b strings.Builder
	for _, p := range cs {
		b.WriteString(p.String())
		b.WriteByte(' ')
	}
	return b.String()
}

// Overlay returns a rows×cols matrix where each cell holds the 1-based index
// of the first rectangle in corners that covers it, or 0 if none does.
// Corners whose rectangle leaves the grid are clipped.
func Overlay(g grid.Grid, corners []submatrix.Coord, d submatrix.Dims) [][]int {
	out := make([][]int, g.Rows())
	for r := range out {
		out[r] = make([]int, g.Cols())
	}
	for k, p := range corners {
		for r := p.Row; r < p.Row+d.Rows; r++ {
			for c := p.Col; c < p.Col+d.Cols; c++ {
				if g.InBounds(r, c) && out[r][c] == 0 {
					out[r][c] = k + 1
				}
			}
		}
	}
	return out
}

// Report writes a full analysis of g: the grid, every candidate, the greedy
// non-overlapping set, its coverage overlay, the clusters and the
// per-cluster selections.
func Report(w io.Writer, g grid.Grid, rep submatrix.Report, opts ...Option) error {
	d := rep.Dims
	steps := []func() error{
		func() error {
			return Grid(w, fmt.Sprintf("Original Binary Matrix (%dx%d):", g.Rows(), g.Cols()), g, opts...)
		},
		func() error {
			return Coords(w, fmt.Sprintf("All top-left coordinates of %s submatrices full of 1s:", d), rep.All)
		},
		func() error {
			return Coords(w, fmt.Sprintf("Non-overlapping top-left coordinates of %s submatrices (maximal set):", d), rep.NonOverlapping)
		},
		func() error {
			return Matrix(w, "Non-overlapping coverage (cell = rectangle number):", Overlay(g, rep.NonOverlapping, d), opts...)
		},
		func() error {
			_, err := io.WriteString(w, "\n")
			return err
		},
		func() error { return Clusters(w, rep.Clusters) },
		func() error { return Selections(w, rep.Selections) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
