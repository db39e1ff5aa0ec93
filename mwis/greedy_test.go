// SPDX-License-Identifier: MIT
package mwis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
)

func TestGreedy_Triangle(t *testing.T) {
	g := weighted(t, []float64{3, 2, 2}, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	var best mwis.Solution
	found, err := mwis.NewGreedy().Improve(g, &best, math.Inf(1))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 3.0, best.Weight)
	assert.Equal(t, []int{0}, best.Nodes)
}

func TestGreedy_CutoffReached(t *testing.T) {
	g := weighted(t, []float64{3, 2, 2}, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	var best mwis.Solution
	found, err := mwis.NewGreedy().Improve(g, &best, 1)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestHeuristics_IsolatedNodes(t *testing.T) {
	methods := map[string]mwis.Heuristic{
		"greedy":        mwis.NewGreedy(),
		"greedy-legacy": mwis.NewGreedy(mwis.WithDemotion(mwis.DemoteHighestID), mwis.WithRounds(2)),
		"exact":         mwis.NewExact(),
	}
	for name, h := range methods {
		h := h
		t.Run(name, func(t *testing.T) {
			g := weighted(t, []float64{1, 1, 1}, nil)
			var best mwis.Solution
			_, err := h.Improve(g, &best, math.Inf(1))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2}, best.Nodes)
			assert.Equal(t, 3.0, best.Weight)
		})
	}
}

func TestGreedy_KeepsHeavierIncoming(t *testing.T) {
	g := weighted(t, []float64{1, 1}, [][2]int{{0, 1}})
	best := mwis.Solution{Nodes: []int{0}, Weight: 10}

	_, err := mwis.NewGreedy().Improve(g, &best, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 10.0, best.Weight)
}

func TestGreedy_NeverBeatsOptimum(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(t, 12, 0.35, seed)
		opt := bruteForce(t, g)

		var best mwis.Solution
		_, err := mwis.NewGreedy().Improve(g, &best, math.Inf(1))
		require.NoError(t, err)
		ok, err := core.IsIndependentSet(g, best.Nodes)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.LessOrEqual(t, best.Weight, opt+1e-9)
		assert.Greater(t, best.Weight, 0.0)
	}
}

func TestGreedy_Errors(t *testing.T) {
	_, err := mwis.NewGreedy().Improve(nil, &mwis.Solution{}, 0)
	require.ErrorIs(t, err, mwis.ErrNilGraph)
	g := weighted(t, []float64{1}, nil)
	_, err = mwis.NewGreedy().Improve(g, nil, 0)
	require.ErrorIs(t, err, mwis.ErrNilSolution)

	assert.Panics(t, func() { mwis.WithRounds(0) })
	assert.Panics(t, func() { mwis.WithDemotion(mwis.Demotion(7)) })
	assert.Panics(t, func() { mwis.WithPrecision(0) })
}

func TestGreedy_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	var best mwis.Solution
	found, err := mwis.NewGreedy().Improve(g, &best, 0)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, best.Nodes)
}
