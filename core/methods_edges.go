// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion and queries between active nodes.
//
// Policy:
//   - Edges are undirected and unweighted; adjacency is mirrored on insert.
//   - Self-loops are ignored, parallel edges collapse (set semantics).

package core

// AddEdge connects two active nodes. A self-loop request is a no-op.
// Returns ErrNodeOutOfRange or ErrInactiveNode for invalid endpoints.
// Complexity: O(log deg).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkActive(u); err != nil {
		return err
	}
	if err := g.checkActive(v); err != nil {
		return err
	}
	if u == v {
		return nil
	}
	g.adjacency[u].Add(v)
	g.adjacency[v].Add(u)

	return nil
}

// HasEdge reports whether two active nodes are adjacent.
// Returns ErrNodeOutOfRange or ErrInactiveNode for invalid endpoints.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkActive(u); err != nil {
		return false, err
	}
	if err := g.checkActive(v); err != nil {
		return false, err
	}

	return g.adjacency[u].Contains(v), nil
}

// adjacent is the unchecked form of HasEdge for ids already known to be active.
func (g *Graph) adjacent(u, v int) bool { return g.adjacency[u].Contains(v) }

// EdgeCount returns the number of edges among active nodes.
// Complexity: O(A).
func (g *Graph) EdgeCount() int {
	var total int
	it := g.active.Iterator()
	for it.Next() {
		total += g.adjacency[it.Value().(int)].Size()
	}

	return total / 2
}

// Edges returns every edge {u,v} with u < v among active nodes, ordered by (u,v).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for _, u := range g.ActiveNodes() {
		for _, v := range setToInts(g.adjacency[u]) {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}
