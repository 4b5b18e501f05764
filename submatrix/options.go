// SPDX-License-Identifier: MIT
// options.go: functional options for Analyze.
//
// Contract:
//   • Option constructors panic on meaningless inputs (programmer error).
//   • Defaults: sequential (1 worker), no-op logger.

package submatrix

import (
	"go.uber.org/zap"
)

// Option configures Analyze.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{workers: 1, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of goroutines used for the unrestricted
// locate pass and per-cluster selection. 0 and 1 both mean sequential.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("submatrix: WithWorkers(n<0)")
	}
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithLogger attaches a logger that receives per-stage debug statistics.
// Panics on nil; omit the option for silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("submatrix: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
