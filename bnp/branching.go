// SPDX-License-Identifier: MIT
// File: branching.go
// Role: Ryan-Foster pair selection.
//
// pairValue[u][v] sums the values of fractional columns containing both u and
// v; pairValue[u][u] sums those containing u. The score of a pair is
// min(p, 1−p) with p = pairValue[u][v]. A pair whose joint value equals one
// of its singleton values is rejected: every fractional column covering that
// node already agrees on the pair.

package bnp

import (
	"math"
	"slices"

	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/mat"
)

// DefaultEps is the tolerance used for integrality and equality tests.
const DefaultEps = 1e-6

// RyanFoster implements BranchingRule.
type RyanFoster struct {
	eps float64
}

// NewRyanFoster returns the rule with tolerance eps; eps <= 0 selects
// DefaultEps.
func NewRyanFoster(eps float64) *RyanFoster {
	if eps <= 0 {
		eps = DefaultEps
	}

	return &RyanFoster{eps: eps}
}

// PairValues builds the symmetric pair table from the fractional columns of
// frac. Values within eps of an integer are ignored.
// Complexity: O(Σ|S|² + n²).
func (r *RyanFoster) PairValues(frac map[ColumnID]float64, pool *ColumnPool) (*mat.SymDense, error) {
	n := pool.NodeNumber()
	if n == 0 {
		return nil, ErrNoBranchingPair
	}
	pair := mat.NewSymDense(n, nil)
	ids := make([]ColumnID, 0, len(frac))
	for id := range frac {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		val := frac[id]
		if !r.fractional(val) {
			continue
		}
		col, err := pool.Column(id)
		if err != nil {
			return nil, err
		}
		for i, u := range col.Nodes {
			for _, v := range col.Nodes[i:] {
				pair.SetSym(u, v, pair.At(u, v)+val)
			}
		}
	}

	return pair, nil
}

// SelectBranchingPair implements BranchingRule. It returns u < v, or
// ErrNoBranchingPair when no pair has a positive score.
func (r *RyanFoster) SelectBranchingPair(frac map[ColumnID]float64, pool *ColumnPool) (int, int, error) {
	pair, err := r.PairValues(frac, pool)
	if err != nil {
		return 0, 0, err
	}
	n := pool.NodeNumber()
	bestU, bestV := -1, -1
	var best float64
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			p := pair.At(u, v)
			score := math.Min(p, 1-p)
			if score <= best {
				continue
			}
			if r.equal(p, pair.At(u, u)) || r.equal(p, pair.At(v, v)) {
				continue
			}
			best, bestU, bestV = score, u, v
		}
	}
	if bestU < 0 {
		return 0, 0, ErrNoBranchingPair
	}
	klog.V(1).Infof("bnp: branching on (%d,%d), joint value %.6g", bestU, bestV, pair.At(bestU, bestV))

	return bestU, bestV, nil
}

func (r *RyanFoster) fractional(x float64) bool {
	return x > r.eps && x < 1-r.eps
}

func (r *RyanFoster) equal(a, b float64) bool { return math.Abs(a-b) <= r.eps }
