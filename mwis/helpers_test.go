// SPDX-License-Identifier: MIT
package mwis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/builder"
	"github.com/katalvlaran/qbnp/core"
)

func weighted(t *testing.T, w []float64, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(w), core.WithWeights(w), core.WithEdges(edges))
	require.NoError(t, err)

	return g
}

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.IntegerWeightFn(1, 10))},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every subset of the active nodes.
func bruteForce(t *testing.T, g *core.Graph) float64 {
	t.Helper()
	nodes := g.ActiveNodes()
	require.LessOrEqual(t, len(nodes), 20)
	weights := g.Weights()
	best := 0.0
	for mask := 0; mask < 1<<len(nodes); mask++ {
		var set []int
		var w float64
		for i, u := range nodes {
			if mask&(1<<i) != 0 {
				set = append(set, u)
				w += weights[u]
			}
		}
		if ok, _ := core.IsIndependentSet(g, set); ok && w > best {
			best = w
		}
	}

	return best
}

func isMaximal(g *core.Graph, set []int) bool {
	in := make(map[int]bool, len(set))
	for _, u := range set {
		in[u] = true
	}
	for _, u := range g.ActiveNodes() {
		if in[u] {
			continue
		}
		blocked := false
		for _, v := range g.Neighbors(u) {
			if in[v] {
				blocked = true
				break
			}
		}
		if !blocked {
			return false
		}
	}

	return true
}
