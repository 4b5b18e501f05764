// SPDX-License-Identifier: MIT

package submatrix

import "errors"

// Sentinel errors for submatrix operations. Context is attached with %w;
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates rectangle dimensions outside 1..rows × 1..cols.
	ErrInvalidDimensions = errors.New("submatrix: invalid rectangle dimensions")
	// ErrTableMismatch indicates a prefix-sum table whose shape differs from the grid.
	ErrTableMismatch = errors.New("submatrix: prefix-sum table does not match grid")
	// ErrNegativeCoord indicates a corner with a negative row or column.
	ErrNegativeCoord = errors.New("submatrix: negative coordinate")
)
