// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn         = PrefixedIDFn("V")     ("V1","V2",...)
//   • rng          = nil                   (stochastic constructors require WithSeed/WithRand)
//   • treeWeightFn = IntRangeWeightFn(1, 50)
//   • weightFn     = IntRangeWeightFn(1, 100)

package builder

import "math/rand"

// Default weight ranges for the spanning-tree backbone and the extra edges.
const (
	defaultTreeWeightMin  = 1
	defaultTreeWeightMax  = 50
	defaultExtraWeightMin = 1
	defaultExtraWeightMax = 100
	defaultIDPrefix       = "V"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for backbone (spanning-tree) edges.
	treeWeightFn WeightFn
	// Weight generator for every other edge.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         PrefixedIDFn(defaultIDPrefix),
		treeWeightFn: IntRangeWeightFn(defaultTreeWeightMin, defaultTreeWeightMax),
		weightFn:     IntRangeWeightFn(defaultExtraWeightMin, defaultExtraWeightMax),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
