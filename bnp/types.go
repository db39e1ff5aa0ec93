// SPDX-License-Identifier: MIT
// File: types.go
// Role: Columns, branching constraints, sentinel errors and the rule
// interfaces consumed by the branch-and-price driver.
//
// Errors:
//
//	ErrInfeasiblePricing     - propagation fixed every column a node needs.
//	ErrNoBranchingPair       - no node pair qualifies for Ryan-Foster branching.
//	ErrUnknownConstraintKind - constraint kind is neither Merge nor Split.
//	ErrNilGraph              - nil graph passed to a constructor.
//	ErrDualSize              - dual vector length differs from the node count.
//	ErrEmptyColumn           - column without nodes.
//	ErrUnknownColumn         - column id not present in the pool.

package bnp

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors.
var (
	// ErrInfeasiblePricing indicates that a propagation fix conflicted with
	// the bounds of the master. It is reported as a cutoff of the tree node
	// through PropagationResult, never as a fatal error.
	ErrInfeasiblePricing = errors.New("bnp: propagation made the node infeasible")

	// ErrNoBranchingPair indicates a fractional solution without a pair whose
	// joint value differs from both singleton values.
	ErrNoBranchingPair = errors.New("bnp: no branching pair")

	// ErrUnknownConstraintKind indicates a constraint kind other than Merge or Split.
	ErrUnknownConstraintKind = errors.New("bnp: unknown constraint kind")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("bnp: nil graph")

	// ErrDualSize indicates a dual vector that does not match the node count.
	ErrDualSize = errors.New("bnp: dual vector size does not match node number")

	// ErrEmptyColumn indicates an attempt to add a column without nodes.
	ErrEmptyColumn = errors.New("bnp: empty column")

	// ErrUnknownColumn indicates a column id not present in the pool.
	ErrUnknownColumn = errors.New("bnp: unknown column")
)

// ColumnID identifies a column; ids are dense and assigned in creation order.
type ColumnID int

// Column is an independent set of the original graph.
// Nodes is sorted ascending and never modified after creation.
type Column struct {
	ID    ColumnID
	Nodes []int
}

// Covers reports whether u belongs to the column.
func (c Column) Covers(u int) bool {
	_, ok := slices.BinarySearch(c.Nodes, u)
	return ok
}

// Kind is the type of a Ryan-Foster branching decision.
type Kind int

const (
	// Merge forces two nodes into the same color class.
	Merge Kind = iota
	// Split forces two nodes into different color classes.
	Split
)

// String returns "merge" or "split".
func (k Kind) String() string {
	switch k {
	case Merge:
		return "merge"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Constraint is one branching decision on the node pair {U, V} together with
// its incremental propagation state.
//
// Invariants:
//   - lastPropagated is the pool size up to which columns were checked.
//   - inconsistent lists every checked column violating the decision; it
//     only grows, since consistency is a property of the column alone.
type Constraint struct {
	Kind Kind
	U, V int

	propagated     bool
	lastPropagated int
	inconsistent   []ColumnID
}

// NewConstraint returns an unpropagated constraint.
func NewConstraint(kind Kind, u, v int) (*Constraint, error) {
	if kind != Merge && kind != Split {
		return nil, ErrUnknownConstraintKind
	}

	return &Constraint{Kind: kind, U: u, V: v}, nil
}

// Propagated reports whether every column known at the last check was
// examined.
func (c *Constraint) Propagated() bool { return c.propagated }

// Inconsistent returns the columns found to violate c so far.
func (c *Constraint) Inconsistent() []ColumnID { return slices.Clone(c.inconsistent) }

// Violates reports whether col is inconsistent with c: a merge is violated
// when exactly one of U, V is covered, a split when both are.
func (c *Constraint) Violates(col Column) bool {
	cu, cv := col.Covers(c.U), col.Covers(c.V)
	if c.Kind == Merge {
		return cu != cv
	}

	return cu && cv
}

// String renders the constraint as "merge(u,v)" or "split(u,v)".
func (c *Constraint) String() string { return fmt.Sprintf("%s(%d,%d)", c.Kind, c.U, c.V) }

// Master is the restricted master problem seen by the rules.
type Master interface {
	// DualValue returns the dual of node's covering constraint.
	DualValue(node int) float64
	// FractionalSolution returns the positive column values of the last LP.
	FractionalSolution() map[ColumnID]float64
	// AddColumn registers a new independent set and returns its id.
	AddColumn(nodes []int) (ColumnID, error)
	// FixColumnToZero excludes a column at the current tree node and reports
	// whether the fix conflicts with a column forced to one.
	FixColumnToZero(id ColumnID) (infeasible bool)
}

// PricingRule searches a column with negative reduced cost.
type PricingRule interface {
	// PriceColumn returns an independent set of the original graph whose dual
	// weight exceeds cutoff, honoring the active branching constraints.
	PriceColumn(duals []float64, active []*Constraint, cutoff float64) ([]int, bool, error)
}

// BranchingRule selects the node pair of a Ryan-Foster branching.
type BranchingRule interface {
	SelectBranchingPair(frac map[ColumnID]float64, pool *ColumnPool) (u, v int, err error)
}

// PropagationResult reports the columns fixed by one propagation pass.
type PropagationResult struct {
	Fixed      []ColumnID
	Infeasible bool
}

// ConstraintPropagator fixes columns that contradict active constraints.
type ConstraintPropagator interface {
	Propagate(active []*Constraint, pool *ColumnPool, fix func(ColumnID) bool) PropagationResult
}
