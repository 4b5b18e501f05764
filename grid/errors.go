// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid classifies every grid rejection. The specific sentinels
// below wrap it, so errors.Is(err, ErrInvalidGrid) matches any of them.
var ErrInvalidGrid = errors.New("grid: invalid grid")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrNonBinary indicates a cell value other than 0 or 1.
	ErrNonBinary = fmt.Errorf("%w: cells must be 0 or 1", ErrInvalidGrid)
)
