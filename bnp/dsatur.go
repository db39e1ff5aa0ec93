// SPDX-License-Identifier: MIT
// File: dsatur.go
// Role: DSATUR coloring used to seed the column pool.
//
// Bookkeeping per uncolored node u:
//   - candidate[u]: smallest color not known to be taken by a neighbor; all
//     smaller colors are taken.
//   - forbidden[u]: taken colors above candidate[u], kept ordered so that the
//     candidate can skip over a consecutive run in one pass.

package bnp

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/qbnp/core"
)

// DSatur colors the active nodes of g. It repeatedly colors the uncolored
// node of maximum saturation degree, breaking ties by graph degree and then
// by smallest id. Returns the color of every node id (inactive ids get 0)
// and the number of colors used.
// Complexity: O(n² + m log n).
func DSatur(g *core.Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.NodeNumber()
	candidate := make([]int, n)
	saturation := make([]int, n)
	forbidden := make([]*treeset.Set, n)
	uncolored := make(map[int]bool, n)
	order := g.ActiveNodes()
	degree := make([]int, n)
	for _, u := range order {
		d, err := g.Degree(u)
		if err != nil {
			return nil, 0, err
		}
		degree[u] = d
		forbidden[u] = treeset.NewWithIntComparator()
		uncolored[u] = true
	}

	maxColor := -1
	for len(uncolored) > 0 {
		pick := -1
		for _, u := range order {
			if !uncolored[u] {
				continue
			}
			if pick < 0 || saturation[u] > saturation[pick] ||
				(saturation[u] == saturation[pick] && degree[u] > degree[pick]) {
				pick = u
			}
		}
		color := candidate[pick]
		maxColor = max(maxColor, color)
		for _, u := range g.Neighbors(pick) {
			if !uncolored[u] {
				continue
			}
			saturation[u]++
			switch {
			case candidate[u] > color:
			case candidate[u] < color:
				forbidden[u].Add(color)
			default:
				candidate[u]++
				for forbidden[u].Contains(candidate[u]) {
					forbidden[u].Remove(candidate[u])
					candidate[u]++
				}
			}
		}
		delete(uncolored, pick)
	}

	return candidate, maxColor + 1, nil
}

// ColorClasses groups the active nodes of g by color; class c lists the
// nodes with colors[u] == c in ascending order.
func ColorClasses(g *core.Graph, colors []int, nColors int) [][]int {
	classes := make([][]int, nColors)
	for _, u := range g.ActiveNodes() {
		c := colors[u]
		classes[c] = append(classes[c], u)
	}

	return classes
}
