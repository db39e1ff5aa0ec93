// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copies of a graph.
// Determinism:
//   - The clone has identical ids, weights, adjacency and representors.

package core

import "github.com/emirpasic/gods/sets/treeset"

// Clone returns a deep copy of g: weights, active set, adjacency and the
// representor mapping. Mutating the clone never affects g, which is how the
// pricer keeps a pristine original next to its contracted working copy.
//
// Complexity: O(n + E log E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		weighted:     g.weighted,
		nodeNumber:   g.nodeNumber,
		weights:      make([]float64, g.nodeNumber),
		adjacency:    make([]*treeset.Set, g.nodeNumber),
		active:       treeset.NewWithIntComparator(),
		representors: make([]int, g.nodeNumber),
	}
	copy(clone.weights, g.weights)
	copy(clone.representors, g.representors)

	it := g.active.Iterator()
	for it.Next() {
		u := it.Value().(int)
		clone.active.Add(u)
		clone.adjacency[u] = treeset.NewWithIntComparator(g.adjacency[u].Values()...)
	}

	return clone
}
