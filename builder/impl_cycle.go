// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_cycle.go - Cycle(n): a path plus the closing edge (n-1, 0).

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Odd cycles are the smallest graphs with chromatic number 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodCycle, g.NodeNumber(), n)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, [2]int{i, (i + 1) % n})
		}

		return addEdges(g, MethodCycle, first, edges)
	}
}
