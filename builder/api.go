// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order, then draws node weights.
//   - Determinism: same inputs/options/seed and constructor order produce
//     identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/qbnp/core"
)

// Constructor adds a topology to g using the resolved builderConfig.
// Constructors validate parameters early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an n-node core.Graph, applies all constructors in order
// and finally assigns node weights when a WeightFn is configured (ids in
// ascending order, one draw per node).
//
// Errors:
//   - core.ErrNegativeSize for n < 0.
//   - Wrapped constructor errors; branch with errors.Is against the builder
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//
// Complexity: O(n) plus the cost of every constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.weightFn != nil {
		w := make([]float64, n)
		for u := range w {
			w[u] = cfg.weightFn(cfg.rng)
		}
		if err = g.InitNodeWeights(w); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdges inserts edges offset by first, wrapping failures with method context.
func addEdges(g *core.Graph, method string, first int, edges [][2]int) error {
	for _, e := range edges {
		if err := g.AddEdge(first+e[0], first+e[1]); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, first+e[0], first+e[1], err)
		}
	}

	return nil
}

// builderErrorf formats a size failure as "<Method>: <message>: ErrTooFewVertices".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrTooFewVertices)
}

// At runs c with its node range starting at first, overriding WithOffset for
// that constructor only. Use it to place several components in one graph.
func At(first int, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if first < 0 || c == nil {
			return fmt.Errorf("BuildGraph: At(%d): %w", first, ErrConstructFailed)
		}
		cfg.offset = first

		return c(g, cfg)
	}
}
