// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - offset   = 0   (constructors start at node id 0)
//   - rng      = nil (pure/deterministic unless seeded)
//   - weightFn = nil (graph stays unweighted, every node weighs 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// first node id used by the topology constructors.
	offset int
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Node weight generator; nil keeps the graph unweighted.
	weightFn WeightFn
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// span validates that k nodes starting at cfg.offset fit into g's id range
// and returns the first id.
func (cfg builderConfig) span(method string, nodeNumber, k int) (int, error) {
	if cfg.offset+k > nodeNumber {
		return 0, builderErrorf(method, "needs ids %d..%d, graph has %d nodes", cfg.offset, cfg.offset+k-1, nodeNumber)
	}

	return cfg.offset, nil
}
