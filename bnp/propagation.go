// SPDX-License-Identifier: MIT
// File: propagation.go
// Role: Incremental fixing of columns that contradict branching constraints.
//
// Each constraint remembers the pool size it was last checked against, so a
// pass only scans columns created since. Reactivating a constraint after new
// columns appeared marks it unpropagated again.

package bnp

import "github.com/plan-systems/klog"

// Propagator implements ConstraintPropagator.
type Propagator struct{}

// NewPropagator returns a Propagator.
func NewPropagator() *Propagator { return &Propagator{} }

// Activate is called when the tree node owning c becomes active. It marks c
// unpropagated when columns were added since its last check and reports
// whether a new pass is needed.
func (*Propagator) Activate(c *Constraint, nColumns int) bool {
	if c.lastPropagated != nColumns {
		c.propagated = false
	}

	return !c.propagated
}

// Deactivate is called when the tree node owning c is left. Columns created
// while c was active and fully propagated honor c already, so the current
// pool size becomes its checkpoint. A constraint skipped after a cutoff keeps
// its checkpoint and rescans later.
func (*Propagator) Deactivate(c *Constraint, nColumns int) {
	if c.propagated {
		c.lastPropagated = nColumns
	}
}

// Propagate implements ConstraintPropagator. fix is called for every
// inconsistent column and returns true when the fix conflicts with the
// master bounds. The constraint being scanned is always completed; the pass then
// stops with Infeasible set and later constraints stay unpropagated.
func (*Propagator) Propagate(active []*Constraint, pool *ColumnPool, fix func(ColumnID) bool) PropagationResult {
	var res PropagationResult
	for _, c := range active {
		if c.propagated {
			continue
		}
		for _, col := range pool.Since(c.lastPropagated) {
			if !c.Violates(col) {
				continue
			}
			c.inconsistent = append(c.inconsistent, col.ID)
			res.Fixed = append(res.Fixed, col.ID)
			if fix(col.ID) {
				res.Infeasible = true
			}
		}
		c.propagated = true
		c.lastPropagated = pool.Len()
		if res.Infeasible {
			klog.V(1).Infof("bnp: %v cut off the node", c)
			return res
		}
	}
	if len(res.Fixed) > 0 {
		klog.V(2).Infof("bnp: propagation fixed %d columns", len(res.Fixed))
	}

	return res
}
