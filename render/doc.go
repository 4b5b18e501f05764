// SPDX-License-Identifier: MIT

// Package render prints grids and submatrix results as plain or colored text.
//
// What:
//
//   - Matrix: a 2D int matrix with a row axis on the left (highest row on
//     top, row 0 just above the axis line) and column numbers underneath.
//   - Coords, Clusters, Selections: the listings produced by an analysis.
//   - Overlay: label each cell with the rectangle that covers it, ready for Matrix.
//   - Report: everything above for one submatrix.Report.
//
// Color:
//
//	WithColor(true) highlights non-zero cells using lipgloss. Whether escape
//	codes are actually emitted depends on the output terminal; piping to a
//	file produces plain text.
package render
