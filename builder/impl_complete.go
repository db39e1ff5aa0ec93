// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_complete.go - Complete(n): every pair (i<j) in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Complete returns a Constructor for K_n (n ≥ 1).
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodComplete, g.NodeNumber(), n)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, [2]int{i, j})
			}
		}

		return addEdges(g, MethodComplete, first, edges)
	}
}
