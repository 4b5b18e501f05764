// SPDX-License-Identifier: MIT

// Package gridgen produces binary grids for demos, fixtures and benchmarks.
//
// What:
//
//   - Sample: the fixed 10×10 demonstration matrix.
//   - Filled: uniform all-0 or all-1 grids.
//   - Random: Bernoulli cells with a configurable density, seeded RNG.
//   - Blocks: all-zero grid with h×w blocks of ones stamped at given corners.
//
// Determinism:
//
//   - No global RNG. Random requires WithSeed or WithRand; otherwise it
//     returns ErrNeedRandSource.
//   - Options are applied in order; later options override earlier ones.
//
// Errors:
//
//   - ErrTooSmall: a dimension below 1.
//   - ErrNeedRandSource: Random called without an RNG.
//   - ErrBlockOutOfRange: a Blocks corner places the block outside the grid.
package gridgen
