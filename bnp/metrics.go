// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus counters for pricing outcomes, columns and tree nodes.

package bnp

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Pricing outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Tree node outcome labels.
const (
	NodeBranched   = "branched"
	NodeIntegral   = "integral"
	NodePruned     = "pruned"
	NodeInfeasible = "infeasible"
)

// Metrics groups the solver counters. A nil *Metrics records nothing.
type Metrics struct {
	Pricing *prometheus.CounterVec
	Columns prometheus.Counter
	Nodes   *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg when reg is
// non-nil. Registration errors are returned unchanged.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Pricing: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qbnp_pricing_total",
				Help: "Pricing attempts per method and outcome",
			},
			[]string{"method", "outcome"},
		),
		Columns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "qbnp_columns_total",
				Help: "Columns added to the master problem",
			},
		),
		Nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qbnp_nodes_total",
				Help: "Branch-and-price nodes processed per outcome",
			},
			[]string{"outcome"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Pricing, m.Columns, m.Nodes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) pricing(method, outcome string) {
	if m == nil {
		return
	}
	m.Pricing.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) column() {
	if m == nil {
		return
	}
	m.Columns.Inc()
}

func (m *Metrics) node(outcome string) {
	if m == nil {
		return
	}
	m.Nodes.WithLabelValues(outcome).Inc()
}
