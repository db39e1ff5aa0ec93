// SPDX-License-Identifier: MIT
// File: localsearch.go
// Role: 1-for-2 swap local search for weighted independent sets.
//
// State:
//   - active:      solution nodes still eligible to leave in a swap.
//   - deactivated: solution nodes proven unswappable; they stay in the set.
//   - free:        non-solution nodes with tightness 0 (addable).
//   - tightness:   number of solution neighbors of each node.
//
// The solution is always active ∪ deactivated and is independent.
// Determinism: every set is an ordered treeset, every scan is ascending.

package mwis

import (
	"slices"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
)

// LocalSearch refines independent sets of one graph. It is not safe for
// concurrent use; create one per goroutine.
type LocalSearch struct {
	g         *core.Graph
	weights   []float64
	neighbors [][]int
	tightness []int

	active      *treeset.Set
	deactivated *treeset.Set
	free        *treeset.Set
}

// NewLocalSearch snapshots the weights and adjacency of g's active nodes.
// Later mutations of g are not observed.
// Complexity: O(A + E).
func NewLocalSearch(g *core.Graph) *LocalSearch {
	ls := &LocalSearch{
		g:         g,
		weights:   g.Weights(),
		neighbors: make([][]int, g.NodeNumber()),
		tightness: make([]int, g.NodeNumber()),
	}
	for _, u := range g.ActiveNodes() {
		ls.neighbors[u] = g.Neighbors(u)
	}

	return ls
}

// Refine grows set to a maximal independent set and applies improving
// 1-for-2 swaps until none remains. A swap removes a solution node u and
// inserts two non-adjacent nodes v, w whose only solution neighbor is u,
// provided weight(v)+weight(w) ≥ weight(u). Each swap grows the set by at
// least one node, so the search terminates.
//
// The result is sorted, maximal, independent and no lighter than the naive
// maximal completion of set.
//
// Errors: core.ErrInactiveNode / core.ErrNodeOutOfRange for bad members,
// ErrNotIndependent if set has adjacent members.
func (ls *LocalSearch) Refine(set []int) ([]int, error) {
	ok, err := core.IsIndependentSet(ls.g, set)
	if err != nil {
		return nil, errors.Wrap(err, "mwis: local search")
	}
	if !ok {
		return nil, ErrNotIndependent
	}

	ls.init(set)
	swaps := 0
	for {
		exit, in1, in2, found := ls.findSwap()
		if !found {
			break
		}
		ls.remove(exit)
		ls.add(in1)
		ls.add(in2)
		ls.toMaximal()
		swaps++
	}
	klog.V(2).Infof("mwis: local search applied %d swaps, |IS|=%d", swaps, ls.deactivated.Size())

	return intValues(ls.deactivated), nil
}

// Refine is a convenience wrapper returning the refined set and its weight.
func Refine(g *core.Graph, set []int) ([]int, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	out, err := NewLocalSearch(g).Refine(set)
	if err != nil {
		return nil, 0, err
	}
	w, err := g.NodeSetWeight(out)

	return out, w, err
}

func (ls *LocalSearch) init(set []int) {
	for i := range ls.tightness {
		ls.tightness[i] = 0
	}
	ls.active = treeset.NewWithIntComparator()
	ls.deactivated = treeset.NewWithIntComparator()
	ls.free = treeset.NewWithIntComparator()

	for _, u := range set {
		ls.active.Add(u)
	}
	it := ls.active.Iterator()
	for it.Next() {
		for _, v := range ls.neighbors[it.Value().(int)] {
			ls.tightness[v]++
		}
	}
	for _, u := range ls.g.ActiveNodes() {
		if !ls.active.Contains(u) && ls.tightness[u] == 0 {
			ls.free.Add(u)
		}
	}
	ls.toMaximal()
}

// findSwap scans active nodes in ascending order. A node without a swap is
// moved to deactivated and never rescanned unless remove() wakes it up.
func (ls *LocalSearch) findSwap() (exit, in1, in2 int, found bool) {
	for !ls.active.Empty() {
		u := first(ls.active)
		if v, w, ok := ls.swapFor(u); ok {
			return u, v, w, true
		}
		ls.active.Remove(u)
		ls.deactivated.Add(u)
	}

	return 0, 0, 0, false
}

// swapFor returns the first pair (v, w), v < w, of 1-tight neighbors of u
// that are non-adjacent and together weigh at least weight(u).
func (ls *LocalSearch) swapFor(u int) (int, int, bool) {
	var oneTight []int
	for _, v := range ls.neighbors[u] {
		if ls.tightness[v] == 1 {
			oneTight = append(oneTight, v)
		}
	}
	for i, v := range oneTight {
		for _, w := range oneTight[i+1:] {
			if ls.weights[v]+ls.weights[w] < ls.weights[u] {
				continue
			}
			if _, adjacent := slices.BinarySearch(ls.neighbors[v], w); !adjacent {
				return v, w, true
			}
		}
	}

	return 0, 0, false
}

// remove takes an active node out of the solution. A neighbor left with a
// single solution neighbor may enable a new swap around that neighbor, so a
// deactivated one is woken up.
func (ls *LocalSearch) remove(u int) {
	for _, v := range ls.neighbors[u] {
		ls.tightness[v]--
		switch ls.tightness[v] {
		case 0:
			ls.free.Add(v)
		case 1:
			for _, x := range ls.neighbors[v] {
				if ls.deactivated.Contains(x) {
					ls.deactivated.Remove(x)
					ls.active.Add(x)
					break
				}
			}
		}
	}
	ls.active.Remove(u)
}

// add inserts a free node into the solution.
func (ls *LocalSearch) add(u int) {
	for _, v := range ls.neighbors[u] {
		ls.tightness[v]++
		ls.free.Remove(v)
	}
	ls.free.Remove(u)
	ls.active.Add(u)
}

// toMaximal adds the smallest free node until none is left.
func (ls *LocalSearch) toMaximal() {
	for !ls.free.Empty() {
		ls.add(first(ls.free))
	}
}

// first returns the smallest element of a non-empty int treeset.
func first(s *treeset.Set) int {
	it := s.Iterator()
	it.First()

	return it.Value().(int)
}

func intValues(s *treeset.Set) []int {
	out := make([]int, 0, s.Size())
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}
