// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, constraint records and functional options.
//
// Errors:
//
//	ErrOversizedBruteForce - exact enumeration requested above the size cap.
//	ErrInvalidConstraint   - constraint references an inactive spin or a bad sign.
//	ErrSpinOutOfRange      - spin id outside 0..Size()-1.

package quantum

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrOversizedBruteForce indicates that SolveByBruteForce was called with
	// more active spins than the configured limit. It is a configuration bug.
	ErrOversizedBruteForce = errors.New("quantum: brute force above size limit")

	// ErrInvalidConstraint indicates a constraint with an inactive spin, a
	// self pair or a sign other than ±1.
	ErrInvalidConstraint = errors.New("quantum: invalid constraint")

	// ErrSpinOutOfRange indicates a spin id outside 0..Size()-1.
	ErrSpinOutOfRange = errors.New("quantum: spin id out of range")
)

// NoSpin marks the absent second spin of a single-spin constraint.
const NoSpin = -1

// Params are the two depth-1 QAOA angles.
type Params struct {
	Beta  float64
	Gamma float64
}

// Constraint fixes s_U = Sign when V == NoSpin, and s_U = Sign·s_V otherwise.
type Constraint struct {
	Sign int
	U    int
	V    int
}

// IsPair reports whether c relates two spins.
func (c Constraint) IsPair() bool { return c.V != NoSpin }

const (
	// DefaultBruteForceLimit is the largest active spin count solved exactly.
	DefaultBruteForceLimit = 12
	// DefaultGlobalBudget bounds the global multistart search of one call.
	DefaultGlobalBudget = 10 * time.Second
	// DefaultLocalBudget bounds the local refinement of one call.
	DefaultLocalBudget = 10 * time.Second

	// maxBruteForceLimit keeps 1<<limit enumerations within int range on
	// every platform and within reasonable time.
	maxBruteForceLimit = 30
)

// Options configures RQAOA and the quantum MWIS heuristic.
type Options struct {
	// BruteForceLimit is the active spin count at which elimination stops
	// and exhaustive enumeration takes over.
	BruteForceLimit int
	// GlobalBudget is the wall-clock budget of the first, global search.
	GlobalBudget time.Duration
	// LocalBudget is the wall-clock budget of each local refinement.
	LocalBudget time.Duration
	// Starts is the number of global starting points; 0 means one per
	// active spin.
	Starts int
	// Seed drives the starting points; 0 selects the package default.
	Seed int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		BruteForceLimit: DefaultBruteForceLimit,
		GlobalBudget:    DefaultGlobalBudget,
		LocalBudget:     DefaultLocalBudget,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithBruteForceLimit sets the exhaustive enumeration cap.
// Panics if n < 1 or n > 30.
func WithBruteForceLimit(n int) Option {
	if n < 1 || n > maxBruteForceLimit {
		panic(fmt.Sprintf("quantum: WithBruteForceLimit(%d): must be in [1, %d]", n, maxBruteForceLimit))
	}
	return func(o *Options) {
		o.BruteForceLimit = n
	}
}

// WithGlobalBudget sets the global search budget. Panics if d <= 0.
func WithGlobalBudget(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("quantum: WithGlobalBudget(%v): must be positive", d))
	}
	return func(o *Options) {
		o.GlobalBudget = d
	}
}

// WithLocalBudget sets the local refinement budget. Panics if d <= 0.
func WithLocalBudget(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("quantum: WithLocalBudget(%v): must be positive", d))
	}
	return func(o *Options) {
		o.LocalBudget = d
	}
}

// WithStarts sets the number of global starting points. Panics if n < 0.
func WithStarts(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("quantum: WithStarts(%d): must be ≥ 0", n))
	}
	return func(o *Options) {
		o.Starts = n
	}
}

// WithSeed sets the seed of the starting points.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
