// File: config.go
// Role: builderConfig and BuilderOption, the functional-options layer
// shared by every constructor in this package, built for graph.Graph's
// always-weighted, int-indexed model.
//
// builderConfig holds two fields:
//   - rng:      *rand.Rand source for randomness (nil means deterministic).
//   - weightFn: WeightFn producing edge weights given an RNG.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then
// apply any number of BuilderOption in order. Later options override
// earlier ones.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra
// space.
package builder

import "math/rand"

// BuilderOption customizes the behavior of a graph constructor. It mutates
// the builderConfig before graph construction begins.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters shared by Grid and
// Warehouse: a randomness source and an edge-weight generator.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig returns a builderConfig initialized with defaults
// (nil RNG, DefaultWeightFn), then applies each BuilderOption in order.
//
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWeightFn injects a custom WeightFn into the builderConfig. A nil wfn
// is a no-op.
func WithWeightFn(wfn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if wfn != nil {
			cfg.weightFn = wfn
		}
	}
}

// WithRand sets an explicit *rand.Rand source for randomness. A nil rng is
// a no-op and leaves the existing source untouched.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the RNG source. Use this for reproducible randomness in tests.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
