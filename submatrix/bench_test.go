// SPDX-License-Identifier: MIT

package submatrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/rectscan/submatrix"
)

// BenchmarkLocate measures both locate modes on a 1000×1000 grid at 90% density.
// Complexity: O(R·C) unrestricted, O(R·C·x·y) suppressed.
func BenchmarkLocate(b *testing.B) {
	g := randomGrid(b, 1000, 1000, 42, 0.9)
	d := submatrix.Dims{Rows: 3, Cols: 3}
	for _, suppress := range []bool{false, true} {
		name := "all"
		if suppress {
			name = "non-overlapping"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := submatrix.Locate(g, d, suppress); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkClusters measures BFS clustering of the unrestricted candidate set.
func BenchmarkClusters(b *testing.B) {
	g := randomGrid(b, 1000, 1000, 42, 0.9)
	all, err := submatrix.Locate(g, submatrix.Dims{Rows: 2, Cols: 2}, false)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = submatrix.Clusters(all)
	}
}

// BenchmarkAnalyze compares sequential and parallel pipelines.
func BenchmarkAnalyze(b *testing.B) {
	g := randomGrid(b, 1000, 1000, 7, 0.9)
	d := submatrix.Dims{Rows: 2, Cols: 2}
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := submatrix.Analyze(context.Background(), g, d, submatrix.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
