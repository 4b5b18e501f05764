// SPDX-License-Identifier: MIT
// errors.go: sentinel errors for the gridgen package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Generators never panic at runtime; option constructors may.

package gridgen

import "errors"

// ErrTooSmall indicates a rows/cols/height/width parameter below 1.
var ErrTooSmall = errors.New("gridgen: dimension too small")

// ErrNeedRandSource indicates Random was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("gridgen: rng is required")

// ErrBlockOutOfRange indicates a stamped block does not fit inside the grid.
var ErrBlockOutOfRange = errors.New("gridgen: block out of range")
