// SPDX-License-Identifier: MIT

package gridgen

import "math/rand"

// defaultDensity is the Random fill probability when WithDensity is absent.
const defaultDensity = 0.5

// config aggregates generator knobs; resolved once per call.
type config struct {
	rng     *rand.Rand // nil means no randomness available
	density float64    // in [0,1]
}

// newConfig applies opts in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
