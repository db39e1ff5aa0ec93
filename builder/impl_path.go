// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_path.go - Path(n): ids first..first+n-1, edges (i, i+1) in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Path returns a Constructor for the simple path P_n (n ≥ 1).
// Complexity: O(n) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodPath, g.NodeNumber(), n)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}

		return addEdges(g, MethodPath, first, edges)
	}
}
