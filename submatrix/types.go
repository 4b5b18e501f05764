// SPDX-License-Identifier: MIT

package submatrix

import "fmt"

// Coord is the top-left corner of a candidate rectangle.
type Coord struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
}

// String formats the corner as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders corners row-major: by Row, ties broken by Col.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Dims is the fixed rectangle size being searched for:
// Rows is the height (x), Cols the width (y).
type Dims struct {
	Rows int `yaml:"rows" json:"rows"`
	Cols int `yaml:"cols" json:"cols"`
}

// Area returns Rows*Cols.
func (d Dims) Area() int { return d.Rows * d.Cols }

// String formats the size as "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// Rect is a placed rectangle: a corner plus a size.
type Rect struct {
	Coord
	Dims
}

// RectAt places a d-sized rectangle at corner c.
func RectAt(c Coord, d Dims) Rect { return Rect{Coord: c, Dims: d} }

// String formats the rectangle as "RxC@(row,col)".
func (r Rect) String() string {
	return r.Dims.String() + "@" + r.Coord.String()
}

// Contains reports whether cell (row,col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Rows && col >= r.Col && col < r.Col+r.Cols
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Row < o.Row+o.Rows && o.Row < r.Row+r.Rows &&
		r.Col < o.Col+o.Cols && o.Col < r.Col+r.Cols
}

// Selection is the ordered, non-overlapping subset picked from one cluster.
type Selection struct {
	Coords []Coord
}

// Count returns the number of selected rectangles.
func (s Selection) Count() int { return len(s.Coords) }

// MarshalYAML emits the selection together with its count.
func (s Selection) MarshalYAML() (interface{}, error) {
	return struct {
		Count  int     `yaml:"count"`
		Coords []Coord `yaml:"coords,flow"`
	}{len(s.Coords), s.Coords}, nil
}

// Report is the full result of Analyze.
type Report struct {
	Dims           Dims        `yaml:"dims"`
	All            []Coord     `yaml:"all,flow"`
	NonOverlapping []Coord     `yaml:"non_overlapping,flow"`
	Clusters       [][]Coord   `yaml:"clusters,flow"`
	Selections     []Selection `yaml:"selections"`
}

// NonOverlapping reports whether no two d-sized rectangles at corners share a cell.
// Complexity: O(n²).
func NonOverlapping(corners []Coord, d Dims) bool {
	for i := 0; i < len(corners); i++ {
		a := RectAt(corners[i], d)
		for j := i + 1; j < len(corners); j++ {
			if a.Overlaps(RectAt(corners[j], d)) {
				return false
			}
		}
	}
	return true
}
