// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for the greedy and exact methods.
//
// Option constructors validate and panic on meaningless values; Improve
// itself never panics.

package mwis

import "fmt"

// Demotion selects which node loses its priority between greedy rounds.
type Demotion int

const (
	// DemoteTopPriority demotes the current winner of each static order.
	DemoteTopPriority Demotion = iota
	// DemoteHighestID demotes the node with the largest id in each static
	// order regardless of its priority.
	DemoteHighestID
)

const (
	// DefaultRounds is the number of greedy rounds.
	DefaultRounds = 5
	// DefaultExactPrecision is the integer resolution of the largest weight
	// in the MaxSAT encoding.
	DefaultExactPrecision = 1_000_000
	// MaxExactPrecision caps the resolution used when a result near the
	// cutoff is re-solved.
	MaxExactPrecision = 1_000_000_000

	precisionStep = 1000
)

// GreedyOptions configures Greedy.
type GreedyOptions struct {
	// Rounds is the number of demote-and-retry rounds (≥ 1).
	Rounds int
	// Demotion chooses the node demoted after each round.
	Demotion Demotion
}

// DefaultGreedyOptions returns Rounds=5, Demotion=DemoteTopPriority.
func DefaultGreedyOptions() GreedyOptions {
	return GreedyOptions{Rounds: DefaultRounds, Demotion: DemoteTopPriority}
}

// GreedyOption mutates GreedyOptions.
type GreedyOption func(*GreedyOptions)

// WithRounds sets the number of rounds. Panics if n < 1.
func WithRounds(n int) GreedyOption {
	if n < 1 {
		panic(fmt.Sprintf("mwis: WithRounds(%d): must be ≥ 1", n))
	}
	return func(o *GreedyOptions) {
		o.Rounds = n
	}
}

// WithDemotion sets the demotion policy. Panics on an unknown value.
func WithDemotion(d Demotion) GreedyOption {
	if d != DemoteTopPriority && d != DemoteHighestID {
		panic(fmt.Sprintf("mwis: WithDemotion(%d): unknown policy", d))
	}
	return func(o *GreedyOptions) {
		o.Demotion = d
	}
}

// ExactOption mutates an Exact solver.
type ExactOption func(*Exact)

// WithPrecision sets the integer weight of the heaviest node in the MaxSAT
// encoding. Panics if p < 1.
func WithPrecision(p int) ExactOption {
	if p < 1 {
		panic(fmt.Sprintf("mwis: WithPrecision(%d): must be ≥ 1", p))
	}
	return func(e *Exact) {
		e.precision = p
	}
}
