// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// impl_grid.go - Grid(rows, cols): row-major ids r*cols+c, 4-neighborhood.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Edges are emitted row-major: right neighbor, then down neighbor.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		first, err := cfg.span(MethodGrid, g.NodeNumber(), rows*cols)
		if err != nil {
			return err
		}
		edges := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					edges = append(edges, [2]int{id, id + 1})
				}
				if r+1 < rows {
					edges = append(edges, [2]int{id, id + cols})
				}
			}
		}

		return addEdges(g, MethodGrid, first, edges)
	}
}
