// SPDX-License-Identifier: MIT
package mwis

import (
	"errors"

	"github.com/katalvlaran/qbnp/core"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("mwis: nil graph")

	// ErrNilSolution indicates a nil *Solution argument.
	ErrNilSolution = errors.New("mwis: nil solution")

	// ErrNotIndependent indicates an input set with two adjacent members.
	ErrNotIndependent = errors.New("mwis: set is not independent")
)

// Solution is an independent set with its cached weight.
// Nodes is kept sorted ascending.
type Solution struct {
	Nodes  []int
	Weight float64
}

// Heuristic is the contract shared by every pricing method.
type Heuristic interface {
	// Improve searches g for an independent set heavier than best, replaces
	// best when one is found and reports whether best.Weight > cutoff.
	Improve(g *core.Graph, best *Solution, cutoff float64) (bool, error)
}

// HeuristicFunc adapts a plain function to Heuristic.
type HeuristicFunc func(g *core.Graph, best *Solution, cutoff float64) (bool, error)

// Improve calls f.
func (f HeuristicFunc) Improve(g *core.Graph, best *Solution, cutoff float64) (bool, error) {
	return f(g, best, cutoff)
}

// offer replaces best with nodes when strictly heavier.
func offer(best *Solution, nodes []int, weight float64) bool {
	if weight <= best.Weight {
		return false
	}
	best.Nodes = append(best.Nodes[:0:0], nodes...)
	best.Weight = weight

	return true
}

// check validates the common arguments of every Improve.
func check(g *core.Graph, best *Solution) error {
	if g == nil {
		return ErrNilGraph
	}
	if best == nil {
		return ErrNilSolution
	}

	return nil
}
