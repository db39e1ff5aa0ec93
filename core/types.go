// SPDX-License-Identifier: MIT
// Package core defines the contractable weighted Graph used by pricing and
// branching, together with its sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrInactiveNode    - operation referenced a node that was merged away.
//	ErrNodeOutOfRange  - node id outside 0..NodeNumber()-1.
//	ErrConnectedMerge  - merge of two nodes whose representors are adjacent.
//	ErrSizeMismatch    - weight vector length differs from the node count.
//	ErrNegativeSize    - NewGraph called with n < 0.
package core

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for core graph operations.
var (
	// ErrInactiveNode indicates that an operation referenced a node that is
	// no longer active (it was merged into another representor).
	ErrInactiveNode = errors.New("core: node is not active")

	// ErrNodeOutOfRange indicates a node id outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrConnectedMerge indicates an attempt to merge two nodes whose current
	// representors are adjacent. Such a contraction would create a self-loop.
	ErrConnectedMerge = errors.New("core: connected nodes can't be merged")

	// ErrSizeMismatch indicates that a weight vector does not match the node count.
	ErrSizeMismatch = errors.New("core: weight vector size does not match node number")

	// ErrNegativeSize indicates a negative node count passed to NewGraph.
	ErrNegativeSize = errors.New("core: negative node number")
)

// defaultNodeWeight is the weight of every node when no weights are supplied.
const defaultNodeWeight = 1.0

// GraphOption configures a Graph before it is returned by NewGraph.
type GraphOption func(g *Graph) error

// WithWeights installs an explicit weight vector and marks the graph weighted.
// The vector is copied; len(w) must equal the node count or NewGraph fails
// with ErrSizeMismatch.
func WithWeights(w []float64) GraphOption {
	return func(g *Graph) error {
		if len(w) != g.nodeNumber {
			return ErrSizeMismatch
		}
		copy(g.weights, w)
		g.weighted = true

		return nil
	}
}

// WithEdges adds every pair of edges as undirected edges. Self-loops are ignored.
func WithEdges(edges [][2]int) GraphOption {
	return func(g *Graph) error {
		for _, e := range edges {
			if err := g.AddEdge(e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Graph is an undirected node-weighted graph without self-loops that supports
// contraction of nodes (MergeNodes) and insertion of separation edges
// (SplitNodes). Node ids are the integers 0..NodeNumber()-1 and never change.
//
// Invariants:
//   - representors[u] is always the current root of u's merge group; the
//     mapping is kept flat, so one lookup reaches the root.
//   - representors[u] == u for every active u.
//   - adjacency is symmetric and only holds active nodes.
//
// A Graph is not safe for concurrent mutation; callers owning a working copy
// (see Clone) must serialize access themselves.
type Graph struct {
	weighted   bool
	nodeNumber int

	// weights[u] for active u; inactive entries are stale and never read.
	weights []float64

	// adjacency[u] holds the sorted neighbor ids of active node u, nil otherwise.
	adjacency []*treeset.Set

	// active holds the nodes not merged into another representor.
	active *treeset.Set

	representors []int
}

// NewGraph creates a graph with n isolated nodes of weight 1 and applies opts
// in order. The graph is unweighted unless WithWeights is supplied.
// Complexity: O(n log n) plus the cost of the options.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	g := &Graph{
		nodeNumber:   n,
		weights:      make([]float64, n),
		adjacency:    make([]*treeset.Set, n),
		active:       treeset.NewWithIntComparator(),
		representors: make([]int, n),
	}
	for u := 0; u < n; u++ {
		g.weights[u] = defaultNodeWeight
		g.adjacency[u] = treeset.NewWithIntComparator()
		g.active.Add(u)
		g.representors[u] = u
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// IsWeighted reports whether explicit node weights were supplied.
func (g *Graph) IsWeighted() bool { return g.weighted }

// NodeNumber returns the number of original nodes; it never changes.
func (g *Graph) NodeNumber() int { return g.nodeNumber }
