// SPDX-License-Identifier: MIT
// Package core_test verifies merge/split contraction semantics.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
)

func TestMergeNodes_RelinksNeighbors(t *testing.T) {
	// 0-1, 2-3; merge 1 and 3.
	g := mustGraph(t, 4, core.WithEdges([][2]int{{0, 1}, {2, 3}}))
	require.NoError(t, g.MergeNodes(Node1, Node3))

	assert.Equal(t, []int{0, 1, 2}, g.ActiveNodes())
	assert.Equal(t, []int{0, 2}, g.Neighbors(Node1))
	assert.Equal(t, []int{1}, g.Neighbors(Node2))

	rep, err := g.Representor(Node3)
	require.NoError(t, err)
	assert.Equal(t, Node1, rep)
}

func TestMergeNodes_FlatRepresentors(t *testing.T) {
	g := mustGraph(t, 5)
	require.NoError(t, g.MergeNodes(Node1, Node2))
	require.NoError(t, g.MergeNodes(Node0, Node1))
	require.NoError(t, g.MergeNodes(Node4, Node0))

	for _, u := range []int{Node0, Node1, Node2, Node4} {
		rep, err := g.Representor(u)
		require.NoError(t, err)
		assert.Equal(t, Node4, rep, "node %d", u)
	}
	assert.Equal(t, []int{3, 4}, g.ActiveNodes())
}

func TestMergeNodes_AfterMergeNotAdjacent(t *testing.T) {
	g := mustGraph(t, 4, core.WithEdges([][2]int{{0, 2}, {1, 3}}))
	require.NoError(t, g.MergeNodes(Node0, Node1))

	ok, err := g.HasEdge(Node0, Node2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, g.ActiveNodes(), Node1)
}

func TestMergeNodes_ConnectedFailsUnchanged(t *testing.T) {
	g := pathGraph(t, 3)
	before := g.Clone()

	err := g.MergeNodes(Node0, Node1)
	require.ErrorIs(t, err, core.ErrConnectedMerge)
	assert.Equal(t, before.ActiveNodes(), g.ActiveNodes())
	assert.Equal(t, before.Edges(), g.Edges())
}

func TestMergeNodes_SameGroupIsNoop(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.MergeNodes(Node0, Node1))
	require.NoError(t, g.MergeNodes(Node1, Node0))
	assert.Equal(t, []int{0, 2}, g.ActiveNodes())
}

func TestSplitNodes_ForbidsMerge(t *testing.T) {
	g := mustGraph(t, 4)
	require.NoError(t, g.MergeNodes(Node0, Node1))
	require.NoError(t, g.SplitNodes(Node1, Node2))
	require.NoError(t, g.SplitNodes(Node1, Node2))

	ok, err := g.HasEdge(Node0, Node2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, g.EdgeCount())
	require.ErrorIs(t, g.MergeNodes(Node2, Node1), core.ErrConnectedMerge)
}

func TestRecoverAllMergedTo(t *testing.T) {
	g := mustGraph(t, 5)
	assert.Equal(t, []int{1, 3}, g.RecoverAllMergedTo([]int{3, 1}))

	require.NoError(t, g.MergeNodes(Node1, Node3))
	require.NoError(t, g.MergeNodes(Node1, Node4))
	got := g.RecoverAllMergedTo([]int{Node1, Node2})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Subset(t, got, []int{Node1, Node2})
}
