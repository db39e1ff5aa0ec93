// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node queries and weight management.
//
// Determinism:
//   - ActiveNodes() and Neighbors() return ids in ascending order.
//
// Weights:
//   - Only active nodes carry meaningful weights. AddNodeWeight resolves the
//     representor first, so dual values of merged nodes accumulate on the root.

package core

import (
	"math"

	"github.com/emirpasic/gods/sets/treeset"
)

// checkRange returns ErrNodeOutOfRange when u is not a valid node id.
func (g *Graph) checkRange(u int) error {
	if u < 0 || u >= g.nodeNumber {
		return ErrNodeOutOfRange
	}

	return nil
}

// checkActive returns ErrNodeOutOfRange or ErrInactiveNode for invalid u.
func (g *Graph) checkActive(u int) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	if !g.active.Contains(u) {
		return ErrInactiveNode
	}

	return nil
}

// IsActive reports whether u is a valid id that has not been merged away.
func (g *Graph) IsActive(u int) bool { return g.checkActive(u) == nil }

// ActiveNodes returns the active node ids in ascending order.
// Complexity: O(A).
func (g *Graph) ActiveNodes() []int { return setToInts(g.active) }

// ActiveCount returns the number of active nodes.
func (g *Graph) ActiveCount() int { return g.active.Size() }

// Neighbors returns the sorted neighbors of u, or nil when u is not active.
// The returned slice is a fresh copy.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) []int {
	if !g.IsActive(u) {
		return nil
	}

	return setToInts(g.adjacency[u])
}

// Degree returns the number of neighbors of an active node.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkActive(u); err != nil {
		return 0, err
	}

	return g.adjacency[u].Size(), nil
}

// NodeWeight returns the weight of an active node.
func (g *Graph) NodeWeight(u int) (float64, error) {
	if err := g.checkActive(u); err != nil {
		return 0, err
	}

	return g.weights[u], nil
}

// Weights returns a copy of the weight vector indexed by node id. Entries of
// inactive nodes are stale; read only the ids returned by ActiveNodes.
// Heuristics take this snapshot once to avoid per-lookup validation.
func (g *Graph) Weights() []float64 {
	out := make([]float64, g.nodeNumber)
	copy(out, g.weights)

	return out
}

// NodeSetWeight returns the sum of weights of the given active nodes.
func (g *Graph) NodeSetWeight(set []int) (float64, error) {
	var total float64
	for _, u := range set {
		w, err := g.NodeWeight(u)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

// Surplus returns weight(u) minus the total weight of u's neighbors.
func (g *Graph) Surplus(u int) (float64, error) {
	if err := g.checkActive(u); err != nil {
		return 0, err
	}
	s := g.weights[u]
	it := g.adjacency[u].Iterator()
	for it.Next() {
		s -= g.weights[it.Value().(int)]
	}

	return s, nil
}

// MaxWeight returns the largest absolute weight among active nodes, or 1 for
// an unweighted graph. A weighted graph without active nodes yields 0.
// Complexity: O(A).
func (g *Graph) MaxWeight() float64 {
	if !g.weighted {
		return 1
	}
	var best float64
	it := g.active.Iterator()
	for it.Next() {
		best = math.Max(best, math.Abs(g.weights[it.Value().(int)]))
	}

	return best
}

// SetWeightsToZero resets every weight, active or not, to zero.
func (g *Graph) SetWeightsToZero() {
	for u := range g.weights {
		g.weights[u] = 0
	}
}

// SetNodeWeight overwrites the weight of an active node and marks the graph weighted.
func (g *Graph) SetNodeWeight(u int, w float64) error {
	if err := g.checkActive(u); err != nil {
		return err
	}
	g.weights[u] = w
	g.weighted = true

	return nil
}

// AddNodeWeight adds w to the weight of u's representor. It accepts merged
// nodes, which is how per-node dual values accumulate on a contracted group.
func (g *Graph) AddNodeWeight(u int, w float64) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	g.weights[g.representors[u]] += w
	g.weighted = true

	return nil
}

// InitNodeWeights sets active weights from w and accumulates the entries of
// merged nodes onto their representors.
// Returns ErrSizeMismatch if len(w) != NodeNumber().
func (g *Graph) InitNodeWeights(w []float64) error {
	if len(w) != g.nodeNumber {
		return ErrSizeMismatch
	}
	for u := 0; u < g.nodeNumber; u++ {
		if g.active.Contains(u) {
			g.weights[u] = w[u]
		}
	}
	for u := 0; u < g.nodeNumber; u++ {
		if !g.active.Contains(u) {
			g.weights[g.representors[u]] += w[u]
		}
	}
	g.weighted = true

	return nil
}

// setToInts flattens an int treeset into an ascending slice.
func setToInts(s *treeset.Set) []int {
	out := make([]int, 0, s.Size())
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}
