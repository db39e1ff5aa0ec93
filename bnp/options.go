// SPDX-License-Identifier: MIT
// File: options.go
// Role: Solver configuration.
//
// Option constructors validate and panic on meaningless values; Solve itself
// never panics.

package bnp

import (
	"fmt"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qbnp/mwis"
	"github.com/katalvlaran/qbnp/quantum"
)

// Options configures Solver.
type Options struct {
	// Eps is the integrality tolerance; pricing uses cutoff 1+Eps.
	Eps float64
	// MaxNodes bounds the processed tree nodes; 0 means unlimited.
	MaxNodes int
	// TimeLimit bounds the whole solve; 0 means unlimited.
	TimeLimit time.Duration
	// MaxPricingRounds bounds the columns priced per tree node; 0 means
	// unlimited.
	MaxPricingRounds int
	// ArtificialCost is the big-M of the master; 0 means NodeNumber()+1.
	ArtificialCost float64

	// UseGreedy, UseQuantum and UseExact select the pricing chain steps.
	UseGreedy  bool
	UseQuantum bool
	UseExact   bool

	Greedy  []mwis.GreedyOption
	Quantum []quantum.Option
	Exact   []mwis.ExactOption

	// Registerer receives the solver metrics when non-nil.
	Registerer prometheus.Registerer
}

// DefaultOptions enables the full pricing chain with Eps = DefaultEps.
func DefaultOptions() Options {
	return Options{
		Eps:        DefaultEps,
		UseGreedy:  true,
		UseQuantum: true,
		UseExact:   true,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithEps sets the tolerance. Panics unless 0 < eps < 0.5.
func WithEps(eps float64) Option {
	if !(eps > 0 && eps < 0.5) || math.IsNaN(eps) {
		panic(fmt.Sprintf("bnp: WithEps(%g): must be in (0, 0.5)", eps))
	}
	return func(o *Options) {
		o.Eps = eps
	}
}

// WithMaxNodes bounds the tree size. Panics if n < 0.
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bnp: WithMaxNodes(%d): must be ≥ 0", n))
	}
	return func(o *Options) {
		o.MaxNodes = n
	}
}

// WithTimeLimit bounds the solve time. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("bnp: WithTimeLimit(%v): must be ≥ 0", d))
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithMaxPricingRounds bounds column generation per node. Panics if n < 0.
func WithMaxPricingRounds(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bnp: WithMaxPricingRounds(%d): must be ≥ 0", n))
	}
	return func(o *Options) {
		o.MaxPricingRounds = n
	}
}

// WithArtificialCost sets the big-M of the master. Panics if m < 0.
func WithArtificialCost(m float64) Option {
	if m < 0 || math.IsNaN(m) {
		panic(fmt.Sprintf("bnp: WithArtificialCost(%g): must be ≥ 0", m))
	}
	return func(o *Options) {
		o.ArtificialCost = m
	}
}

// WithPricing selects the pricing chain steps. Panics if all are disabled.
func WithPricing(greedy, quantumStep, exact bool) Option {
	if !greedy && !quantumStep && !exact {
		panic("bnp: WithPricing: at least one method is required")
	}
	return func(o *Options) {
		o.UseGreedy, o.UseQuantum, o.UseExact = greedy, quantumStep, exact
	}
}

// WithGreedyOptions forwards options to the greedy heuristic.
func WithGreedyOptions(opts ...mwis.GreedyOption) Option {
	return func(o *Options) {
		o.Greedy = append(o.Greedy, opts...)
	}
}

// WithQuantumOptions forwards options to the quantum heuristic.
func WithQuantumOptions(opts ...quantum.Option) Option {
	return func(o *Options) {
		o.Quantum = append(o.Quantum, opts...)
	}
}

// WithExactOptions forwards options to the exact fallback.
func WithExactOptions(opts ...mwis.ExactOption) Option {
	return func(o *Options) {
		o.Exact = append(o.Exact, opts...)
	}
}

// WithRegisterer exports the solver metrics to reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = reg
	}
}

// Methods builds the pricing chain selected by o, cheapest first.
func (o Options) Methods() []Method {
	var methods []Method
	if o.UseGreedy {
		methods = append(methods, Method{Name: MethodGreedy, Heuristic: mwis.NewGreedy(o.Greedy...)})
	}
	if o.UseQuantum {
		methods = append(methods, Method{Name: MethodQuantum, Heuristic: quantum.NewMWIS(o.Quantum...)})
	}
	if o.UseExact {
		methods = append(methods, Method{Name: MethodExact, Heuristic: mwis.NewExact(o.Exact...)})
	}

	return methods
}
