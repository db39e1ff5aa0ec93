// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i asc, j asc with j > i; deterministic per seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// RandomSparse returns a Constructor that includes every pair {i,j}
// independently with probability p.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		first, err := cfg.span(MethodRandomSparse, g.NodeNumber(), n)
		if err != nil {
			return err
		}

		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					edges = append(edges, [2]int{i, j})
				case p == MinProbability:
				case cfg.rng.Float64() < p:
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return addEdges(g, MethodRandomSparse, first, edges)
	}
}
