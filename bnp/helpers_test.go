// SPDX-License-Identifier: MIT
package bnp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/bnp"
	"github.com/katalvlaran/qbnp/builder"
	"github.com/katalvlaran/qbnp/core"
)

func graphOf(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithEdges(edges))
	require.NoError(t, err)

	return g
}

func built(t *testing.T, n int, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, cons...)
	require.NoError(t, err)

	return g
}

func poolOf(t *testing.T, n int, cols ...[]int) *bnp.ColumnPool {
	t.Helper()
	p := bnp.NewColumnPool(n)
	for _, c := range cols {
		_, err := p.Add(c)
		require.NoError(t, err)
	}

	return p
}

// requireProper checks that colors is a proper coloring using k colors.
func requireProper(t *testing.T, g *core.Graph, colors []int, k int) {
	t.Helper()
	require.Len(t, colors, g.NodeNumber())
	used := make(map[int]bool)
	for u, c := range colors {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, k)
		used[c] = true
		for _, v := range g.Neighbors(u) {
			require.NotEqual(t, c, colors[v], "edge (%d,%d)", u, v)
		}
	}
	require.Len(t, used, k)
}

// chromatic computes the chromatic number by backtracking.
func chromatic(g *core.Graph) int {
	n := g.NodeNumber()
	if n == 0 {
		return 0
	}
	colors := make([]int, n)
	var try func(u, k int) bool
	try = func(u, k int) bool {
		if u == n {
			return true
		}
		for c := 0; c < k; c++ {
			ok := true
			for _, v := range g.Neighbors(u) {
				if v < u && colors[v] == c {
					ok = false
					break
				}
			}
			if ok {
				colors[u] = c
				if try(u+1, k) {
					return true
				}
			}
		}
		return false
	}
	for k := 1; ; k++ {
		if try(0, k) {
			return k
		}
	}
}
