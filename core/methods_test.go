// SPDX-License-Identifier: MIT
// Package core_test verifies node, edge and weight contracts of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := mustGraph(t, 3)
	assert.Equal(t, 3, g.NodeNumber())
	assert.Equal(t, []int{0, 1, 2}, g.ActiveNodes())
	assert.False(t, g.IsWeighted())
	assert.Equal(t, 1.0, g.MaxWeight())
	w, err := g.NodeWeight(Node2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestNewGraph_Errors(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrNegativeSize)

	_, err = core.NewGraph(2, core.WithWeights([]float64{1}))
	require.ErrorIs(t, err, core.ErrSizeMismatch)

	_, err = core.NewGraph(2, core.WithEdges([][2]int{{0, 5}}))
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestAddEdge_SymmetricAndSelfLoop(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.AddEdge(Node0, Node1))
	require.NoError(t, g.AddEdge(Node1, Node0))
	require.NoError(t, g.AddEdge(Node2, Node2))

	ok, err := g.HasEdge(Node1, Node0)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = g.HasEdge(Node2, Node2)
	require.NoError(t, err)
	assert.False(t, ok, "self-loops are ignored")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, [][2]int{{0, 1}}, g.Edges())
}

func TestAddEdge_InactiveNode(t *testing.T) {
	g := mustGraph(t, 3)
	require.NoError(t, g.MergeNodes(Node0, Node1))

	require.ErrorIs(t, g.AddEdge(Node1, Node2), core.ErrInactiveNode)
	_, err := g.HasEdge(Node2, Node1)
	require.ErrorIs(t, err, core.ErrInactiveNode)
	_, err = g.HasEdge(Node2, 9)
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestWeights_Queries(t *testing.T) {
	g := pathGraph(t, 4, core.WithWeights([]float64{1, 2, 1, -5}))
	assert.True(t, g.IsWeighted())
	assert.Equal(t, 5.0, g.MaxWeight())

	s, err := g.Surplus(Node1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)

	total, err := g.NodeSetWeight([]int{Node0, Node2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)

	d, err := g.Degree(Node1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{0, 2}, g.Neighbors(Node1))
}

func TestWeights_Mutation(t *testing.T) {
	g := mustGraph(t, 3)
	g.SetWeightsToZero()
	assert.Equal(t, []float64{0, 0, 0}, g.Weights())

	require.NoError(t, g.SetNodeWeight(Node0, 2.5))
	assert.True(t, g.IsWeighted())
	require.ErrorIs(t, g.InitNodeWeights([]float64{1}), core.ErrSizeMismatch)

	require.NoError(t, g.MergeNodes(Node0, Node2))
	require.ErrorIs(t, g.SetNodeWeight(Node2, 1), core.ErrInactiveNode)

	// Merged weights accumulate on the representor.
	g.SetWeightsToZero()
	require.NoError(t, g.AddNodeWeight(Node0, 0.25))
	require.NoError(t, g.AddNodeWeight(Node2, 0.5))
	w, err := g.NodeWeight(Node0)
	require.NoError(t, err)
	assert.Equal(t, 0.75, w)

	require.NoError(t, g.InitNodeWeights([]float64{1, 2, 3}))
	w, err = g.NodeWeight(Node0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, w)
}

func TestMaxWeight_EmptyWeighted(t *testing.T) {
	g := mustGraph(t, 0, core.WithWeights(nil))
	assert.Equal(t, 0.0, g.MaxWeight())
}

func TestClone_Independent(t *testing.T) {
	g := pathGraph(t, 3)
	c := g.Clone()
	require.NoError(t, c.MergeNodes(Node0, Node2))
	require.NoError(t, c.SplitNodes(Node0, Node1))

	assert.Equal(t, []int{0, 1, 2}, g.ActiveNodes())
	assert.Equal(t, []int{0, 1}, c.ActiveNodes())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, c.EdgeCount())
}

func TestIsIndependentSet(t *testing.T) {
	g := pathGraph(t, 4)
	ok, err := core.IsIndependentSet(g, []int{Node0, Node2})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = core.IsIndependentSet(g, []int{Node1, Node2})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = core.IsIndependentSet(g, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = core.IsIndependentSet(g, []int{7})
	require.ErrorIs(t, err, core.ErrNodeOutOfRange)
}
