// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_wheel.go - Wheel(n) = C_{n-1} on the first n-1 ids plus a hub on the last id.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Wheel returns a Constructor for W_n (n ≥ 4). Spokes are emitted in
// ascending rim order after the rim cycle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodWheel, g.NodeNumber(), n)
		if err != nil {
			return err
		}
		if err = Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}
		hub := n - 1
		spokes := make([][2]int, 0, n-1)
		for rim := 0; rim < hub; rim++ {
			spokes = append(spokes, [2]int{hub, rim})
		}

		return addEdges(g, MethodWheel, first, spokes)
	}
}
