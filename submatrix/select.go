// SPDX-License-Identifier: MIT

package submatrix

import (
	"fmt"
	"sort"
)

// SelectPerCluster picks, for each cluster independently, a maximal set of
// non-overlapping d-sized rectangles.
//
// Each cluster's corners are sorted by (row, col) and scanned greedily
// against a coverage mask sized to the cluster's bounding box
// (max(row)+x by max(col)+y); a corner is accepted iff none of its cells is
// covered, then its cells are covered. Selection order is acceptance order.
// The input clusters are not modified. Output has one Selection per cluster,
// in cluster order.
//
// Returns ErrInvalidDimensions for d.Rows < 1 or d.Cols < 1 and
// ErrNegativeCoord for any corner with a negative component.
func SelectPerCluster(clusters [][]Coord, d Dims) ([]Selection, error) {
	if err := validateSelect(clusters, d); err != nil {
		return nil, err
	}
	out := make([]Selection, len(clusters))
	for i, cl := range clusters {
		out[i] = selectCluster(cl, d)
	}
	return out, nil
}

func validateSelect(clusters [][]Coord, d Dims) error {
	if d.Rows < 1 || d.Cols < 1 {
		return fmt.Errorf("rect %s: %w", d, ErrInvalidDimensions)
	}
	for i, cl := range clusters {
		for _, p := range cl {
			if p.Row < 0 || p.Col < 0 {
				return fmt.Errorf("cluster %d corner %s: %w", i, p, ErrNegativeCoord)
			}
		}
	}
	return nil
}

// selectCluster runs the sorted greedy pass over a single cluster.
func selectCluster(cluster []Coord, d Dims) Selection {
	if len(cluster) == 0 {
		return Selection{}
	}
	rects := make([]Coord, len(cluster))
	copy(rects, cluster)
	sort.Slice(rects, func(i, j int) bool { return rects[i].Less(rects[j]) })

	maxRow, maxCol := 0, 0
	for _, p := range rects {
		maxRow = max(maxRow, p.Row+d.Rows)
		maxCol = max(maxCol, p.Col+d.Cols)
	}
	mask := newCoverage(maxRow, maxCol)

	var picked []Coord
	for _, p := range rects {
		if mask.tryClaim(p, d) {
			picked = append(picked, p)
		}
	}
	return Selection{Coords: picked}
}
