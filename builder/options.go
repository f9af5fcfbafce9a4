// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/bidir/core"
)

// BuilderOption customizes constructor behavior by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithEdgeObserver calls fn for every edge a constructor emits, in emission
// order. Panics on nil.
func WithEdgeObserver(fn func(core.Edge)) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeObserver(nil)")
	}

	return func(c *builderConfig) { c.observe = fn }
}
