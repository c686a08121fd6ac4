// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"

	"github.com/google/uuid"
)

// BuilderOption customizes a builderConfig before a Constructor runs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters shared by constructors:
// the RNG source for the Random* family and the run ID that BuildGraph
// returns. It is not safe for
// concurrent mutation; BuildGraph resolves one per call.
type builderConfig struct {
	rng   *rand.Rand
	runID string
}

// newBuilderConfig returns a builderConfig initialized with defaults (nil
// RNG, a fresh run ID), then applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{runID: uuid.NewString()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand sets an explicit RNG source for stochastic constructors. A nil
// rng is a no-op.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh *rand.Rand for reproducible stochastic output,
// mirroring the teacher builder's WithSeed option.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

