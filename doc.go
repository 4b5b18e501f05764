// SPDX-License-Identifier: MIT

// Package rectscan finds fixed-size rectangles of ones in binary grids.
//
// Given a 0/1 matrix and a rectangle size x×y, rectscan:
//
//   - locates every top-left corner of an x×y all-ones rectangle,
//     using a 2D prefix-sum table for O(1) area checks;
//   - optionally thins them to a greedy, row-major, non-overlapping set;
//   - groups corners into clusters of unit-step neighbours (BFS);
//   - picks a greedy non-overlapping subset inside each cluster.
//
// Layout:
//
//	grid/: immutable binary Grid, validation, text parsing
//	gridgen/: sample, filled, random and block-stamped grids
//	submatrix/: prefix sums, Locate, Clusters, SelectPerCluster, Analyze
//	render/: axis-annotated matrices and result listings
//	cmd/rectscan: command-line front end
//
// Quick example:
//
//	g := gridgen.Sample()
//	rep, err := submatrix.Analyze(ctx, g, submatrix.Dims{Rows: 3, Cols: 3})
//
// Both greedy passes are maximal, not maximum: they never substitute an
// optimal packing for the documented scan order.
package rectscan
