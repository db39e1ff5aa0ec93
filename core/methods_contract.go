// SPDX-License-Identifier: MIT
// File: methods_contract.go
// Role: Contraction (merge) and separation (split) of nodes, the graph-level
// encoding of same/differ branching decisions.
//
// Invariants kept by every method here:
//   - representors stay flat: a merged node points straight at its root.
//   - a failed call leaves the graph untouched.

package core

import "sort"

// Representor returns the current root of u's merge group.
func (g *Graph) Representor(u int) (int, error) {
	if err := g.checkRange(u); err != nil {
		return 0, err
	}

	return g.representors[u], nil
}

// MergeNodes contracts the groups of u and v into the representor of u.
//
// Steps:
//  1. Resolve repU, repV. Equal roots make the call a no-op.
//  2. Adjacent roots fail with ErrConnectedMerge (state unchanged).
//  3. Deactivate repV and repoint every node of its group to repU.
//  4. Union repV's adjacency into repU and relink repV's neighbors to repU.
//
// The weight of repV is not transferred; pricing re-seeds weights with
// AddNodeWeight after all merges are applied.
// Complexity: O(n + deg(repV)·log deg).
func (g *Graph) MergeNodes(u, v int) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	if err := g.checkRange(v); err != nil {
		return err
	}
	repU, repV := g.representors[u], g.representors[v]
	if repU == repV {
		return nil
	}
	if g.adjacent(repU, repV) {
		return ErrConnectedMerge
	}

	g.active.Remove(repV)
	for x := range g.representors {
		if g.representors[x] == repV {
			g.representors[x] = repU
		}
	}

	it := g.adjacency[repV].Iterator()
	for it.Next() {
		w := it.Value().(int)
		g.adjacency[repU].Add(w)
		g.adjacency[w].Remove(repV)
		g.adjacency[w].Add(repU)
	}
	g.adjacency[repV] = nil

	return nil
}

// SplitNodes adds an edge between the current representors of u and v, which
// forbids any later merge of the two groups. Idempotent.
func (g *Graph) SplitNodes(u, v int) error {
	if err := g.checkRange(u); err != nil {
		return err
	}
	if err := g.checkRange(v); err != nil {
		return err
	}

	return g.AddEdge(g.representors[u], g.representors[v])
}

// RecoverAllMergedTo expands a set of representors to every original node
// whose current representor lies in set. The result contains set itself and
// is sorted ascending without duplicates. Ids outside 0..n-1 are dropped.
// Complexity: O(n + |set| log |set|).
func (g *Graph) RecoverAllMergedTo(set []int) []int {
	in := make(map[int]struct{}, len(set))
	for _, u := range set {
		if g.checkRange(u) == nil {
			in[u] = struct{}{}
		}
	}
	out := make([]int, 0, len(in))
	for u := range in {
		out = append(out, u)
	}
	for x := 0; x < g.nodeNumber; x++ {
		if _, ok := in[x]; ok {
			continue
		}
		if _, ok := in[g.representors[x]]; ok {
			out = append(out, x)
		}
	}
	sort.Ints(out)

	return out
}
