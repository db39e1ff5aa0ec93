// SPDX-License-Identifier: MIT
// Package core provides the contractable, node-weighted Graph that carries
// branching decisions into the pricing subproblem.
//
// The Graph G = (V,E) has a fixed id space 0..n-1 and supports:
//
//   - Undirected edges, no self-loops, no parallel edges.
//   - Per-node weights (default 1, marked weighted once any weight is set).
//   - Contraction: MergeNodes(u,v) folds the group of v into the group of u.
//   - Separation: SplitNodes(u,v) joins the two current representors by an
//     edge so they can never be merged later.
//   - Expansion: RecoverAllMergedTo(S) maps a set of representors back to
//     every original id they stand for.
//
// Ordered sets (github.com/emirpasic/gods treeset) back the active set and
// every adjacency list, so ActiveNodes(), Neighbors() and Edges() all return
// ids in ascending order and every heuristic built on top is deterministic.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)
//	WithWeights(w []float64), WithEdges(edges [][2]int)
//
//	// Edges
//	AddEdge(u, v int) error              // O(log deg)
//	HasEdge(u, v int) (bool, error)      // O(log deg)
//	EdgeCount() int, Edges() [][2]int
//
//	// Contraction
//	MergeNodes(u, v int) error           // O(n + deg log deg)
//	SplitNodes(u, v int) error
//	Representor(u int) (int, error)
//	RecoverAllMergedTo(set []int) []int
//
//	// Weights
//	NodeWeight, NodeSetWeight, Surplus, MaxWeight, Weights
//	SetWeightsToZero, SetNodeWeight, AddNodeWeight, InitNodeWeights
//
// Concurrency:
//
//	Graph is not synchronized. Pricing owns a private working copy per call
//	(see Clone), so no locking is needed on the hot path.
package core
