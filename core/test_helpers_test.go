// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/core"
)

// Common node ids used across core tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3
	Node4 = 4
)

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)

	return g
}

// pathGraph returns 0-1-...-(n-1).
func pathGraph(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for u := 0; u+1 < n; u++ {
		edges = append(edges, [2]int{u, u + 1})
	}

	return mustGraph(t, n, append(opts, core.WithEdges(edges))...)
}
