// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): left side first, right side after.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2} (n1, n2 ≥ 1).
// Left ids are first..first+n1-1, right ids follow.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: partition sizes must be ≥ 1, got %d and %d: %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodCompleteBipartite, g.NodeNumber(), n1+n2)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, n1*n2)
		for l := 0; l < n1; l++ {
			for r := 0; r < n2; r++ {
				edges = append(edges, [2]int{l, n1 + r})
			}
		}

		return addEdges(g, MethodCompleteBipartite, first, edges)
	}
}
