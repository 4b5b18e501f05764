// SPDX-License-Identifier: MIT

package submatrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/gridgen"
	"github.com/katalvlaran/rectscan/submatrix"
)

// TestClusters_IsolatedCell: a single 1 surrounded by 0s forms one singleton.
func TestClusters_IsolatedCell(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	all, err := submatrix.Locate(g, submatrix.Dims{Rows: 1, Cols: 1}, false)
	require.NoError(t, err)

	got := submatrix.Clusters(all)
	assert.Equal(t, [][]submatrix.Coord{coords([2]int{1, 1})}, got)
}

// TestClusters_UnitStepAdjacency: horizontal neighbours join, diagonal ones do not.
func TestClusters_UnitStepAdjacency(t *testing.T) {
	joined := submatrix.Clusters(coords([2]int{0, 0}, [2]int{0, 1}))
	assert.Equal(t, [][]submatrix.Coord{coords([2]int{0, 0}, [2]int{0, 1})}, joined)

	split := submatrix.Clusters(coords([2]int{0, 0}, [2]int{1, 1}))
	assert.Equal(t, [][]submatrix.Coord{coords([2]int{0, 0}), coords([2]int{1, 1})}, split)
}

// TestClusters_IgnoresRectSize: corners one step apart are adjacent even when
// their 3×3 rectangles overlap heavily, and corners three apart are not even
// though their rectangles touch edge to edge.
func TestClusters_IgnoresRectSize(t *testing.T) {
	got := submatrix.Clusters(coords([2]int{0, 0}, [2]int{0, 3}, [2]int{0, 4}))
	assert.Equal(t, [][]submatrix.Coord{
		coords([2]int{0, 0}),
		coords([2]int{0, 3}, [2]int{0, 4}),
	}, got)
}

// TestClusters_OrderAndBFS pins seed order and BFS order (up, down, left, right).
func TestClusters_OrderAndBFS(t *testing.T) {
	in := coords(
		[2]int{5, 5},
		[2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{0, 1},
	)
	got := submatrix.Clusters(in)
	want := [][]submatrix.Coord{
		coords([2]int{5, 5}),
		coords([2]int{1, 1}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clusters mismatch (-want +got):\n%s", diff)
	}
}

// TestClusters_Sample pins the demonstration matrix clusters for 3×3.
func TestClusters_Sample(t *testing.T) {
	all, err := submatrix.Locate(gridgen.Sample(), submatrix.Dims{Rows: 3, Cols: 3}, false)
	require.NoError(t, err)
	got := submatrix.Clusters(all)
	want := [][]submatrix.Coord{
		coords([2]int{4, 4}),
		coords([2]int{5, 7}),
		coords([2]int{6, 2}, [2]int{7, 2}, [2]int{6, 3}, [2]int{7, 1}, [2]int{7, 3}, [2]int{7, 0}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clusters mismatch (-want +got):\n%s", diff)
	}
}

// TestClusters_Empty returns nil for no corners.
func TestClusters_Empty(t *testing.T) {
	assert.Nil(t, submatrix.Clusters(nil))
}

// TestClusters_Duplicates collapses repeated corners.
func TestClusters_Duplicates(t *testing.T) {
	got := submatrix.Clusters(coords([2]int{2, 2}, [2]int{2, 3}, [2]int{2, 2}))
	assert.Equal(t, [][]submatrix.Coord{coords([2]int{2, 2}, [2]int{2, 3})}, got)
}

// TestClusters_SparseCorners exercises far-apart and negative corners,
// which exceed the dense bounding-box budget.
func TestClusters_SparseCorners(t *testing.T) {
	in := coords(
		[2]int{-1_000_000, 0}, [2]int{1_000_000, 7}, [2]int{1_000_000, 8},
		[2]int{-999_999, 0},
	)
	got := submatrix.Clusters(in)
	want := [][]submatrix.Coord{
		coords([2]int{-1_000_000, 0}, [2]int{-999_999, 0}),
		coords([2]int{1_000_000, 7}, [2]int{1_000_000, 8}),
	}
	assert.Equal(t, want, got)
}

// TestClusters_Partition checks that clusters are disjoint, cover the input
// exactly, and that no two clusters contain unit-step neighbours.
func TestClusters_Partition(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGrid(t, 20, 20, seed, 0.7)
		all, err := submatrix.Locate(g, submatrix.Dims{Rows: 2, Cols: 2}, false)
		require.NoError(t, err)
		clusters := submatrix.Clusters(all)

		owner := make(map[submatrix.Coord]int)
		total := 0
		for ci, cl := range clusters {
			require.NotEmpty(t, cl)
			for _, p := range cl {
				_, dup := owner[p]
				require.False(t, dup, "seed %d: %s in two clusters", seed, p)
				owner[p] = ci
				total++
			}
		}
		require.Equal(t, len(all), total, "seed %d: union size", seed)
		for _, p := range all {
			require.Contains(t, owner, p)
		}
		for p, ci := range owner {
			for _, q := range []submatrix.Coord{{Row: p.Row + 1, Col: p.Col}, {Row: p.Row, Col: p.Col + 1}} {
				if cj, ok := owner[q]; ok {
					assert.Equal(t, ci, cj, "seed %d: neighbours %s,%s split", seed, p, q)
				}
			}
		}
		if len(clusters) > 0 {
			assert.Equal(t, all[0], clusters[0][0], "first cluster seeds at first candidate")
		}
	}
}
