// SPDX-License-Identifier: MIT
// File: greedy.go
// Role: Greedy multi-order MWIS construction refined by local search.
//
// Orders:
//   - weight:          w(u)
//   - surplus:         w(u) - Σ w(N(u))
//   - dynamic surplus: surplus, raised by w(v) for every remaining neighbor of
//     a node v eliminated during construction.
//
// Ties go to the smallest id.

package mwis

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
)

// Greedy is the cheapest pricing method. It is stateless between calls.
type Greedy struct {
	opts GreedyOptions
}

// NewGreedy builds a Greedy with DefaultGreedyOptions overridden by opts.
func NewGreedy(opts ...GreedyOption) *Greedy {
	o := DefaultGreedyOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Greedy{opts: o}
}

// Improve runs Rounds rounds of three maximal-set constructions, one per
// order, refines each with local search and keeps the heaviest. Between
// rounds the top node of the weight and surplus orders is demoted by
// NodeNumber()·MaxWeight() so the next round starts elsewhere. Stops early
// once best.Weight > cutoff.
//
// Complexity: O(Rounds · (A² + LS)) where LS is one local search.
func (gr *Greedy) Improve(g *core.Graph, best *Solution, cutoff float64) (bool, error) {
	if err := check(g, best); err != nil {
		return false, err
	}
	nodes := g.ActiveNodes()
	if len(nodes) == 0 {
		return best.Weight > cutoff, nil
	}

	weights := g.Weights()
	neighbors := make([][]int, g.NodeNumber())
	weightOrder := make([]float64, g.NodeNumber())
	surplusOrder := make([]float64, g.NodeNumber())
	for _, u := range nodes {
		neighbors[u] = g.Neighbors(u)
		weightOrder[u] = weights[u]
		surplusOrder[u] = weights[u]
		for _, v := range neighbors[u] {
			surplusOrder[u] -= weights[v]
		}
	}

	ls := NewLocalSearch(g)
	factor := float64(g.NodeNumber()) * g.MaxWeight()

	for round := 0; round < gr.opts.Rounds; round++ {
		orders := []struct {
			priority []float64
			dynamic  bool
		}{
			{weightOrder, false},
			{surplusOrder, false},
			{append([]float64(nil), surplusOrder...), true},
		}
		for _, o := range orders {
			set := maximalSet(nodes, neighbors, weights, o.priority, o.dynamic)
			refined, err := ls.Refine(set)
			if err != nil {
				return false, err
			}
			var w float64
			for _, u := range refined {
				w += weights[u]
			}
			if offer(best, refined, w) {
				klog.V(2).Infof("mwis: greedy round %d improved best to %.6g", round, w)
			}
		}
		if best.Weight > cutoff {
			break
		}
		gr.demote(nodes, weightOrder, factor)
		gr.demote(nodes, surplusOrder, factor)
	}

	return best.Weight > cutoff, nil
}

func (gr *Greedy) demote(nodes []int, priority []float64, factor float64) {
	target := nodes[len(nodes)-1]
	if gr.opts.Demotion == DemoteTopPriority {
		target = argmax(nodes, priority)
	}
	priority[target] -= factor
}

// maximalSet repeatedly takes the remaining node of highest priority and
// eliminates its neighbors. With dynamic set, priority is updated in place.
func maximalSet(nodes []int, neighbors [][]int, weights, priority []float64, dynamic bool) []int {
	remaining := treeset.NewWithIntComparator()
	for _, u := range nodes {
		remaining.Add(u)
	}

	var set []int
	for !remaining.Empty() {
		u := argmaxSet(remaining, priority)
		for _, v := range neighbors[u] {
			if !remaining.Contains(v) {
				continue
			}
			remaining.Remove(v)
			if dynamic {
				for _, x := range neighbors[v] {
					if remaining.Contains(x) {
						priority[x] += weights[v]
					}
				}
			}
		}
		remaining.Remove(u)
		set = append(set, u)
	}

	return set
}

func argmax(nodes []int, priority []float64) int {
	best := nodes[0]
	for _, u := range nodes[1:] {
		if priority[u] > priority[best] {
			best = u
		}
	}

	return best
}

func argmaxSet(s *treeset.Set, priority []float64) int {
	it := s.Iterator()
	it.Next()
	best := it.Value().(int)
	for it.Next() {
		if u := it.Value().(int); priority[u] > priority[best] {
			best = u
		}
	}

	return best
}
