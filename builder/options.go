// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go: configuration and functional options.
//
// Deterministic defaults:
//   • idFn      = ExcelColumnIDFn ("A".."Z","AA",...)
//   • rng       = nil (stochastic constructors then fail with ErrNeedRandSource)
//   • minWeight = DefaultMinWeight, maxWeight = DefaultMaxWeight
//
// Invalid option values are recorded and surfaced by the constructor, so a
// value coming from user configuration never panics.

package builder

import (
	"fmt"
	"math/rand"
)

// Weight defaults for generated edges.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 20
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	minWeight int64
	maxWeight int64

	// first invalid option, if any
	err error
}

// BuilderOption customizes a constructor before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      ExcelColumnIDFn,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	// Last wins, except that the first recorded error sticks.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// WithIDScheme sets the node id generator: index → id. nil keeps the default.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG. nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange draws weights uniformly from [min, max].
// Requires 1 ≤ min ≤ max, else ErrInvalidWeightRange at construction.
func WithWeightRange(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		if min < 1 || max < min {
			c.fail(fmt.Errorf("%w: require 1 ≤ min ≤ max, got min=%d max=%d", ErrInvalidWeightRange, min, max))
			return
		}
		c.minWeight, c.maxWeight = min, max
	}
}

// weight draws one weight from the configured range.
func (c *builderConfig) weight() int64 {
	if c.maxWeight == c.minWeight {
		return c.minWeight
	}

	return c.minWeight + c.rng.Int63n(c.maxWeight-c.minWeight+1)
}
