// SPDX-License-Identifier: MIT
// File: mwis.go
// Role: RQAOA as an mwis.Heuristic.

package quantum

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
)

// MWIS finds heavy independent sets through the Ising ground state found by
// RQAOA, followed by local search refinement.
type MWIS struct {
	rqaoa *RQAOA
}

// NewMWIS returns the quantum-inspired heuristic configured by opts.
func NewMWIS(opts ...Option) *MWIS {
	return &MWIS{rqaoa: NewRQAOA(opts...)}
}

// Improve implements mwis.Heuristic.
//
// Zero-weight nodes are left out of the encoding and re-enter through the
// maximal completion of local search. A reconstructed assignment that is not
// independent is an approximation failure: it is logged and reported as
// (false, nil).
func (q *MWIS) Improve(g *core.Graph, best *mwis.Solution, cutoff float64) (bool, error) {
	if g == nil {
		return false, mwis.ErrNilGraph
	}
	if best == nil {
		return false, mwis.ErrNilSolution
	}
	h, vars, err := NewMWISHamiltonian(g)
	if err != nil {
		return false, err
	}
	spins, stats, err := q.rqaoa.GroundState(h)
	if err != nil {
		return false, errors.Wrap(err, "quantum: ground state")
	}
	set := make([]int, 0, len(vars))
	for i, u := range vars {
		if spins[i] == 1 {
			set = append(set, u)
		}
	}
	independent, err := core.IsIndependentSet(g, set)
	if err != nil {
		return false, err
	}
	if !independent {
		klog.Warningf("quantum: ground state candidate %v is not independent", set)
		return false, nil
	}

	refined, weight, err := mwis.Refine(g, set)
	if err != nil {
		return false, err
	}
	if weight > best.Weight {
		best.Nodes = refined
		best.Weight = weight
	}
	klog.V(2).Infof("quantum: %d spins, %d eliminations, %d evaluations, weight %.6g",
		len(vars), stats.Eliminations, stats.Evaluations, weight)

	return best.Weight > cutoff, nil
}
