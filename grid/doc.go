// SPDX-License-Identifier: MIT

// Package grid holds the immutable binary matrix that every rectscan
// analysis runs over.
//
// What:
//
//   - Grid wraps a rectangular matrix of 0/1 cells in flat row-major storage.
//   - New validates and deep-copies caller input; Parse reads a text grid.
//   - Index/Coordinate translate between (row, col) and flat indices.
//
// Why:
//
//   - Every downstream pass (prefix sums, greedy coverage masks) is
//     index-addressed; a flat layout keeps those passes allocation-light.
//   - Callers own the source data; Grid never aliases it.
//
// Complexity:
//
//   - New, Parse:  O(R×C) time and memory.
//   - At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrInvalidGrid: umbrella for every rejection below (use errors.Is).
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNonBinary: a cell value outside {0,1}.
package grid
