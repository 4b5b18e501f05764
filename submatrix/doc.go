// SPDX-License-Identifier: MIT

// Package submatrix finds fixed-size all-ones rectangles in a binary grid,
// groups their positions into clusters and picks non-overlapping subsets.
//
// What:
//
//   - BuildPrefixSum: 2D prefix-sum table, O(1) rectangle sums.
//   - Locate: every top-left corner of an x×y all-ones rectangle, in
//     row-major order; optionally thinned greedily to a non-overlapping set.
//   - Clusters: BFS connected components of corners under unit-step
//     adjacency (±1 row or ±1 column), independent of rectangle size.
//   - SelectPerCluster: greedy non-overlapping subset inside each cluster,
//     scanning corners sorted by (row, col).
//   - Analyze: the whole pipeline, with optional parallel workers.
//
// Greedy policy:
//
//	Both non-overlapping passes accept a rectangle iff none of its cells is
//	already claimed, in a fixed scan order. The result is maximal (nothing
//	more can be added) but not necessarily maximum. The global pass scans in
//	locate order; the per-cluster pass scans its sorted corners. The two can
//	disagree on the same input.
//
// Complexity (R×C grid, x×y rectangle, n candidates):
//
//   - BuildPrefixSum:   O(R·C) time and memory.
//   - Locate:           O(R·C) unrestricted; O(R·C·x·y) with overlap suppression.
//   - Clusters:         O(n) expected (dense index) time and memory.
//   - SelectPerCluster: O(n log n + n·x·y) time, O(bounding box) memory per cluster.
//
// Errors:
//
//   - grid.ErrInvalidGrid (and its specific sentinels): empty grid.
//   - ErrInvalidDimensions: x or y < 1, or larger than the grid.
//   - ErrTableMismatch: prefix-sum table built from a grid of another shape.
//   - ErrNegativeCoord: SelectPerCluster given a corner with a negative component.
//
// Concurrency:
//
//	Every call allocates its own scratch state; nothing is shared between
//	calls, so all functions are safe for concurrent use. Analyze with
//	WithWorkers(n>1) scans row bands and clusters in parallel and preserves
//	the sequential output order exactly.
package submatrix
