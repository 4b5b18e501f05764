// SPDX-License-Identifier: MIT
// options.go: functional options for the gridgen package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves return sentinel errors and never panic.
//   • Seeding is explicit via WithSeed or WithRand.

package gridgen

import (
	"fmt"
	"math/rand"
)

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability that a Random cell is 1.
// Panics if p is outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("gridgen: WithDensity(%v) outside [0,1]", p))
	}
	return func(c *config) {
		c.density = p
	}
}
