// SPDX-License-Identifier: MIT
package mwis_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
)

func TestLocalSearch_SwapsHubForLeaves(t *testing.T) {
	// Star centered at 0 with two leaves; 2+2 ≥ 3 triggers the swap.
	g := weighted(t, []float64{3, 2, 2}, [][2]int{{0, 1}, {0, 2}})

	set, w, err := mwis.Refine(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, set)
	assert.Equal(t, 4.0, w)
}

func TestLocalSearch_KeepsHeavierHub(t *testing.T) {
	g := weighted(t, []float64{5, 2, 2}, [][2]int{{0, 1}, {0, 2}})

	set, w, err := mwis.Refine(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, set)
	assert.Equal(t, 5.0, w)
}

func TestLocalSearch_CompletesEmptySet(t *testing.T) {
	g := weighted(t, []float64{1, 1, 1}, nil)

	set, w, err := mwis.Refine(g, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, set)
	assert.Equal(t, 3.0, w)
}

func TestLocalSearch_RejectsBadInput(t *testing.T) {
	g := weighted(t, []float64{1, 1}, [][2]int{{0, 1}})

	_, _, err := mwis.Refine(g, []int{0, 1})
	require.ErrorIs(t, err, mwis.ErrNotIndependent)
	_, _, err = mwis.Refine(g, []int{4})
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, _, err = mwis.Refine(nil, nil)
	require.ErrorIs(t, err, mwis.ErrNilGraph)
}

func TestLocalSearch_MaximalAndNotWorseThanCompletion(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := randomGraph(t, 14, 0.3, seed)
		start := []int{int(seed) % 14}

		set, w, err := mwis.Refine(g, start)
		require.NoError(t, err)

		ok, err := core.IsIndependentSet(g, set)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d", seed)
		assert.True(t, isMaximal(g, set), "seed %d", seed)

		naive := naiveCompletion(g, start)
		naiveW, err := g.NodeSetWeight(naive)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w, naiveW, "seed %d", seed)
	}
}

// naiveCompletion adds nodes in ascending order while they stay independent.
func naiveCompletion(g *core.Graph, start []int) []int {
	set := append([]int(nil), start...)
	for _, u := range g.ActiveNodes() {
		if slices.Contains(set, u) {
			continue
		}
		candidate := append(slices.Clone(set), u)
		if ok, _ := core.IsIndependentSet(g, candidate); ok {
			set = candidate
		}
	}

	return set
}

func TestLocalSearch_ContractedGraph(t *testing.T) {
	g := weighted(t, []float64{1, 1, 1, 1}, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, g.MergeNodes(0, 2))

	set, _, err := mwis.Refine(g, nil)
	require.NoError(t, err)
	assert.NotContains(t, set, 2)
	ok, err := core.IsIndependentSet(g, set)
	require.NoError(t, err)
	assert.True(t, ok)
}
