// SPDX-License-Identifier: MIT

// Package bnp solves minimum graph coloring by branch-and-price.
//
// The master problem covers every node with independent sets (columns) at
// unit cost. Columns are generated by pricing: node weights are set to the
// master duals and a maximum-weight independent set heavier than 1+ε is a
// column with negative reduced cost. Pricing runs a chain of mwis.Heuristic
// methods on a working copy of the graph in which the branching decisions of
// the current tree node are applied as contractions:
//
//	merge(u, v): u and v share a color; the nodes are contracted.
//	split(u, v): u and v get different colors; an edge is added.
//
// The package is split along the roles of a column-generation framework:
//
//	Pricer     - PricingRule: working graph, duals, heuristic chain.
//	RyanFoster - BranchingRule: most fractional node pair.
//	Propagator - ConstraintPropagator: fixes columns contradicting decisions.
//	LPMaster   - Master: restricted master LP on gonum's simplex.
//	Solver     - depth-first driver tying them together, seeded by DSatur.
//
// Example:
//
//	s, err := bnp.NewSolver(g, bnp.WithTimeLimit(time.Minute))
//	if err != nil {
//		return err
//	}
//	res, err := s.Solve(ctx)
//	// res.Colors[u] is the color of node u.
//
// Nothing in the package is safe for concurrent use.
package bnp
