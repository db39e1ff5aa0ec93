// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_star.go - Star(n): the hub is the first id, leaves follow.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Star returns a Constructor for K_{1,n-1} (n ≥ 2) centered at the first id.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodStar, g.NodeNumber(), n)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, [2]int{0, leaf})
		}

		return addEdges(g, MethodStar, first, edges)
	}
}
