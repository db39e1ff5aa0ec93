// SPDX-License-Identifier: MIT
// File: pricer.go
// Role: Pricing orchestrator over a contracted working copy of the graph.
//
// Flow of one PriceColumn call:
//  1. If the active branching constraints are not applied yet, clone the
//     original graph and replay them (merge → MergeNodes, split → SplitNodes).
//  2. Zero every weight, then add each node's dual to its representor.
//  3. Run the methods in order until one reports a set heavier than cutoff.
//  4. Expand the set to original ids and verify it on the original graph.
//
// A call that finds nothing marks the constraints for re-application: the
// driver branches next, and the following call comes from another tree node.

package bnp

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
)

// Pricing method names.
const (
	MethodGreedy  = "greedy"
	MethodQuantum = "quantum"
	MethodExact   = "exact"
)

// Method is one named step of the pricing chain.
type Method struct {
	Name      string
	Heuristic mwis.Heuristic
}

// PricerStats counts pricing outcomes.
type PricerStats struct {
	Calls    int
	Found    map[string]int
	Failures int
	// Rejected counts sets that failed verification on the original graph.
	Rejected int
}

// Pricer implements PricingRule. It is not safe for concurrent use.
type Pricer struct {
	original *core.Graph
	working  *core.Graph
	applied  bool
	methods  []Method
	stats    PricerStats
	metrics  *Metrics
}

// NewPricer returns a Pricer trying methods in the given order.
// metrics may be nil.
func NewPricer(g *core.Graph, methods []Method, metrics *Metrics) (*Pricer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Pricer{
		original: g,
		methods:  methods,
		stats:    PricerStats{Found: make(map[string]int, len(methods))},
		metrics:  metrics,
	}, nil
}

// Invalidate forces the next call to rebuild the working graph.
func (p *Pricer) Invalidate() { p.applied = false }

// Applied reports whether the working graph reflects the constraints of the
// last call.
func (p *Pricer) Applied() bool { return p.applied }

// Stats returns a copy of the counters.
func (p *Pricer) Stats() PricerStats {
	s := p.stats
	s.Found = make(map[string]int, len(p.stats.Found))
	for k, v := range p.stats.Found {
		s.Found[k] = v
	}

	return s
}

// PriceColumn implements PricingRule.
//
// Errors from a method abort the call. A set that is not independent in the
// original graph is logged and treated as "not found".
func (p *Pricer) PriceColumn(duals []float64, active []*Constraint, cutoff float64) ([]int, bool, error) {
	if len(duals) != p.original.NodeNumber() {
		return nil, false, ErrDualSize
	}
	p.stats.Calls++
	if !p.applied {
		if err := p.apply(active); err != nil {
			return nil, false, err
		}
	}

	p.working.SetWeightsToZero()
	for u, d := range duals {
		if err := p.working.AddNodeWeight(u, d); err != nil {
			return nil, false, err
		}
	}

	best := &mwis.Solution{}
	winner := ""
	for _, m := range p.methods {
		found, err := m.Heuristic.Improve(p.working, best, cutoff)
		if err != nil {
			p.metrics.pricing(m.Name, OutcomeError)
			return nil, false, errors.Wrapf(err, "bnp: %s pricing", m.Name)
		}
		if found {
			p.metrics.pricing(m.Name, OutcomeFound)
			winner = m.Name
			break
		}
		p.metrics.pricing(m.Name, OutcomeNotFound)
	}
	if winner == "" {
		p.stats.Failures++
		p.applied = false
		klog.V(1).Infof("bnp: pricing found no set above %.6g (best %.6g)", cutoff, best.Weight)
		return nil, false, nil
	}

	set := p.working.RecoverAllMergedTo(best.Nodes)
	ok, err := core.IsIndependentSet(p.original, set)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.stats.Rejected++
		p.applied = false
		klog.Warningf("bnp: %s pricing returned %v, not independent in the original graph", winner, set)
		return nil, false, nil
	}
	p.stats.Found[winner]++
	klog.V(1).Infof("bnp: %s priced a column of weight %.6g, |S|=%d", winner, best.Weight, len(set))

	return set, true, nil
}

// apply rebuilds the working graph from the original and the active
// constraints.
func (p *Pricer) apply(active []*Constraint) error {
	p.working = p.original.Clone()
	for _, c := range active {
		var err error
		switch c.Kind {
		case Merge:
			err = p.working.MergeNodes(c.U, c.V)
		case Split:
			err = p.working.SplitNodes(c.U, c.V)
		default:
			err = ErrUnknownConstraintKind
		}
		if err != nil {
			return errors.Wrapf(err, "bnp: apply %v", c)
		}
	}
	p.applied = true

	return nil
}
