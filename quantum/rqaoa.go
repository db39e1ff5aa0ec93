// SPDX-License-Identifier: MIT
// File: rqaoa.go
// Role: Recursive elimination, exhaustive base case and LIFO reconstruction.
//
// Algorithm:
//  1. While more than BruteForceLimit spins are active: refresh the
//     common-neighbor cache, optimize (β, γ), pick the strongest correlation
//     and eliminate one spin with it.
//  2. Enumerate the remaining spins exhaustively and fix each of them.
//  3. Walk the constraint stack backwards to assign every spin.

package quantum

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// RunStats summarizes one GroundState call.
type RunStats struct {
	Eliminations int
	Evaluations  int
	TimeOuts     int
}

// RQAOA searches Ising ground states by recursive QAOA-guided elimination.
// An RQAOA is not safe for concurrent use.
type RQAOA struct {
	opts Options
	rng  *rand.Rand
	runs uint64
}

// NewRQAOA returns an RQAOA configured by opts.
func NewRQAOA(opts ...Option) *RQAOA {
	o := buildOptions(opts)

	return &RQAOA{opts: o, rng: rngFromSeed(o.Seed)}
}

// Options returns the effective configuration.
func (r *RQAOA) Options() Options { return r.opts }

// GroundState eliminates spins of h until the exhaustive limit is reached,
// solves the rest exactly and returns the reconstructed assignment indexed by
// spin id. h is consumed: all of its spins end up inactive.
func (r *RQAOA) GroundState(h *Hamiltonian) ([]int, RunStats, error) {
	var stats RunStats
	r.runs++
	opt := NewOptimizer(r.opts, deriveRNG(r.rng, r.runs))

	for h.ActiveCount() > r.opts.BruteForceLimit {
		h.updateCommonNeighbors()
		starts := r.opts.Starts
		if starts == 0 {
			starts = h.ActiveCount()
		}
		res := opt.Optimize(h.Mean, starts)
		stats.Evaluations += res.Evaluations
		if res.TimedOut {
			stats.TimeOuts++
		}
		c := h.FindMaxCorrelation(res.Params)
		if err := h.AddConstraint(c); err != nil {
			return nil, stats, errors.Wrapf(err, "quantum: eliminate %+v", c)
		}
		stats.Eliminations++
		klog.V(2).Infof("quantum: eliminated spin %d (sign %d, partner %d), %d active, ⟨E⟩=%.6g",
			c.U, c.Sign, c.V, h.ActiveCount(), res.Value)
	}
	if err := h.SolveByBruteForce(r.opts.BruteForceLimit); err != nil {
		return nil, stats, err
	}

	return h.Unwind(), stats, nil
}

// SolveByBruteForce enumerates every assignment of the active spins, keeps
// the first one of strictly minimal score and fixes each active spin to its
// value with a single-spin constraint. The score is Energy, or the installed
// objective of the assignment completed through the constraint stack.
// Enumeration starts from all −1 and flips the last active spin fastest.
// Returns ErrOversizedBruteForce when more than limit spins are active.
// Complexity: O(2^A · (A² + C)) for C stacked constraints.
func (h *Hamiltonian) SolveByBruteForce(limit int) error {
	k := len(h.active)
	if k > limit || k > maxBruteForceLimit {
		return errors.Wrapf(ErrOversizedBruteForce, "%d active spins, limit %d", k, limit)
	}
	spins := make([]int, h.size)
	full := make([]int, h.size)
	best := make([]int, k)
	bestEnergy, bestScore := 0, 0.0
	for m := 0; m < 1<<k; m++ {
		for i, u := range h.active {
			spins[u] = -1
			if m&(1<<(k-1-i)) != 0 {
				spins[u] = 1
			}
		}
		better := m == 0
		if h.objective != nil {
			h.unwindInto(full, spins)
			if score := h.objective(full); better || score < bestScore {
				bestScore, better = score, true
			}
		} else if e := h.Energy(spins); better || e < bestEnergy {
			bestEnergy, better = e, true
		}
		if better {
			for i, u := range h.active {
				best[i] = spins[u]
			}
		}
	}
	for i, u := range h.active {
		h.constraints = append(h.constraints, Constraint{Sign: best[i], U: u, V: NoSpin})
	}
	h.active = h.active[:0]

	return nil
}

// Unwind assigns every spin by replaying the constraint stack last to first.
// Spins never constrained stay at −1.
func (h *Hamiltonian) Unwind() []int {
	result := make([]int, h.size)
	h.unwindInto(result, nil)

	return result
}

// unwindInto fills dst from the values of the active spins in spins (all −1
// when spins is nil) and the constraint stack.
func (h *Hamiltonian) unwindInto(dst, spins []int) {
	for i := range dst {
		dst[i] = -1
	}
	if spins != nil {
		for _, u := range h.active {
			dst[u] = spins[u]
		}
	}
	for i := len(h.constraints) - 1; i >= 0; i-- {
		c := h.constraints[i]
		if c.IsPair() {
			dst[c.U] = c.Sign * dst[c.V]
		} else {
			dst[c.U] = c.Sign
		}
	}
}
