// SPDX-License-Identifier: MIT
// File: exact.go
// Role: Exact MWIS fallback as weighted partial MaxSAT.
//
// Encoding over active nodes of positive weight:
//   - hard clause (¬x_u ∨ ¬x_v) for every edge {u,v};
//   - soft clause (x_u) of weight round(w_u / maxw · precision), at least 1.
//
// Minimizing the weight of falsified soft clauses maximizes the selected
// weight. Nodes of weight ≤ 0 never improve a set and are left out.

package mwis

import (
	"math"
	"strconv"

	"github.com/crillab/gophersat/maxsat"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
)

// Exact is the last-resort pricing method. Its optimum is exact up to the
// integer rounding of weights controlled by WithPrecision; see Improve for
// how near-cutoff results are re-solved.
type Exact struct {
	precision int
}

// NewExact returns an Exact solver with DefaultExactPrecision.
func NewExact(opts ...ExactOption) *Exact {
	e := &Exact{precision: DefaultExactPrecision}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Improve solves MWIS on the active nodes of g and offers the optimum to best.
//
// Rounding each weight to 1/precision of the heaviest one shifts a set's
// weight by at most one unit per member, so the true optimum exceeds the
// returned set by at most 2·|V|·maxw/precision. When that slack straddles
// cutoff the model is solved again with precisionStep times finer units, up
// to MaxExactPrecision.
func (e *Exact) Improve(g *core.Graph, best *Solution, cutoff float64) (bool, error) {
	if err := check(g, best); err != nil {
		return false, err
	}

	weights := g.Weights()
	var positive []int
	maxw := 0.0
	for _, u := range g.ActiveNodes() {
		if weights[u] > 0 {
			positive = append(positive, u)
			maxw = math.Max(maxw, weights[u])
		}
	}
	if len(positive) == 0 {
		return best.Weight > cutoff, nil
	}

	precision := e.precision
	for {
		set, w, ok := solveMaxSAT(g, positive, weights, maxw, precision)
		if !ok {
			klog.Warningf("mwis: exact solver returned no model for %d nodes", len(positive))
			break
		}
		offer(best, set, w)
		slack := 2 * float64(len(positive)) * maxw / float64(precision)
		if best.Weight > cutoff || w+slack <= cutoff || precision >= MaxExactPrecision {
			break
		}
		precision = min(precision*precisionStep, MaxExactPrecision)
		klog.V(2).Infof("mwis: exact weight %.9g within %.3g of cutoff, precision %d", w, slack, precision)
	}

	return best.Weight > cutoff, nil
}

// solveMaxSAT returns an optimum of the weighted MaxSAT model at the given
// precision and its weight in the unrounded weights.
func solveMaxSAT(g *core.Graph, positive []int, weights []float64, maxw float64, precision int) ([]int, float64, bool) {
	constrs := make([]maxsat.Constr, 0, 2*len(positive))
	for i, u := range positive {
		scaled := int(math.Round(weights[u] / maxw * float64(precision)))
		if scaled < 1 {
			scaled = 1
		}
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(varName(u))}, scaled))
		for _, v := range positive[i+1:] {
			if ok, _ := g.HasEdge(u, v); ok {
				constrs = append(constrs, maxsat.HardClause(
					maxsat.Var(varName(u)).Negation(),
					maxsat.Var(varName(v)).Negation(),
				))
			}
		}
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return nil, 0, false
	}
	var set []int
	var w float64
	for _, u := range positive {
		if model[varName(u)] {
			set = append(set, u)
			w += weights[u]
		}
	}
	klog.V(2).Infof("mwis: exact found |IS|=%d weight=%.6g (unsatisfied soft weight %d)", len(set), w, cost)

	return set, w, true
}

func varName(u int) string { return "x" + strconv.Itoa(u) }
