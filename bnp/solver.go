// SPDX-License-Identifier: MIT
// File: solver.go
// Role: Depth-first branch-and-price driver for minimum graph coloring.
//
// Per tree node:
//  1. Prune when the parent bound already matches the incumbent.
//  2. Re-fix the columns known to contradict the path constraints, then
//     propagate the constraints over new columns.
//  3. Column generation: solve the master, price with its duals, add the
//     column, repeat until pricing fails.
//  4. Prune on artificial mass (infeasible) or on the bound ⌈z⌉.
//  5. Round the LP solution into a coloring to improve the incumbent.
//  6. Stop when integral or bounded by the incumbent, otherwise branch with
//     Ryan-Foster: the merge child is explored before the split child.
//
// LP bounds are proofs only when the exact method closes the pricing chain;
// without it, bound pruning still happens but Result.Optimal stays false.

package bnp

import (
	"context"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/qbnp/core"
)

// Result is the outcome of Solve.
type Result struct {
	// Colors assigns a color in 0..NumColors-1 to every node.
	Colors    []int
	NumColors int
	// LowerBound is ⌈root LP⌉ when proven, 0 otherwise.
	LowerBound int
	// Optimal reports that the tree was exhausted with proven bounds. Pricing
	// bounds hold up to the rounding of the exact method, at most
	// 2·|V|·maxw/mwis.MaxExactPrecision in reduced cost.
	Optimal bool
	Nodes   int
	Columns int
	Pricing PricerStats
}

// treeNode is one branch-and-price subproblem; path holds the constraints
// from the root, oldest first.
type treeNode struct {
	id    int
	path  []*Constraint
	bound float64
}

// Solver owns the tree, the master and the three rules. A Solver runs one
// Solve at a time.
type Solver struct {
	g          *core.Graph
	opts       Options
	pool       *ColumnPool
	master     *LPMaster
	pricer     *Pricer
	branching  BranchingRule
	propagator *Propagator
	metrics    *Metrics

	proven     bool
	incomplete bool
	best       []int
	bestColors int
	lowerBound int
	nodes      int
	nextID     int
	deadline   time.Time
}

// NewSolver prepares a solver for g, which must not be contracted.
func NewSolver(g *core.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.ActiveCount() != g.NodeNumber() {
		return nil, errors.Wrap(core.ErrInactiveNode, "bnp: solver needs an uncontracted graph")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	metrics, err := NewMetrics(o.Registerer)
	if err != nil {
		return nil, errors.Wrap(err, "bnp: register metrics")
	}
	methods := o.Methods()
	if len(methods) == 0 {
		return nil, errors.New("bnp: empty pricing chain")
	}
	pricer, err := NewPricer(g, methods, metrics)
	if err != nil {
		return nil, err
	}
	pool := NewColumnPool(g.NodeNumber())
	pool.OnColumnAdded(func(c Column) {
		metrics.column()
		klog.V(2).Infof("bnp: column %d = %v", c.ID, c.Nodes)
	})

	return &Solver{
		g:          g,
		opts:       o,
		pool:       pool,
		master:     NewLPMaster(pool, o.ArtificialCost, o.Eps),
		pricer:     pricer,
		branching:  NewRyanFoster(o.Eps),
		propagator: NewPropagator(),
		metrics:    metrics,
		proven:     o.UseExact,
	}, nil
}

// Metrics returns the solver counters.
func (s *Solver) Metrics() *Metrics { return s.metrics }

// Pool returns the column pool.
func (s *Solver) Pool() *ColumnPool { return s.pool }

// Solve runs branch-and-price until the tree is exhausted, a limit is hit or
// ctx is done. Hitting a limit is not an error: the incumbent is returned
// with Optimal == false.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	n := s.g.NodeNumber()
	if n == 0 {
		return Result{Colors: []int{}, Optimal: true}, nil
	}
	if s.opts.TimeLimit > 0 {
		s.deadline = time.Now().Add(s.opts.TimeLimit)
	}

	colors, k, err := DSatur(s.g)
	if err != nil {
		return Result{}, err
	}
	s.best, s.bestColors = colors, k
	for _, class := range ColorClasses(s.g, colors, k) {
		if _, err := s.master.AddColumn(class); err != nil {
			return Result{}, err
		}
	}
	klog.V(1).Infof("bnp: DSATUR seeded %d colors", k)

	stack := []*treeNode{{id: s.newID(), bound: 0}}
	for len(stack) > 0 {
		if s.stopped(ctx) {
			s.incomplete = true
			break
		}
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		children, err := s.process(ctx, node)
		if err != nil {
			return Result{}, err
		}
		// Merge child last so it is popped first.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
		if s.proven && s.lowerBound > 0 && s.bestColors <= s.lowerBound {
			klog.V(1).Infof("bnp: incumbent %d matches the root bound", s.bestColors)
			stack = stack[:0]
		}
	}

	res := Result{
		Colors:    slices.Clone(s.best),
		NumColors: s.bestColors,
		Optimal:   s.proven && !s.incomplete,
		Nodes:     s.nodes,
		Columns:   s.pool.Len(),
		Pricing:   s.pricer.Stats(),
	}
	if s.proven {
		res.LowerBound = s.lowerBound
	}
	klog.V(1).Infof("bnp: %d colors after %d nodes, %d columns, optimal=%v",
		res.NumColors, res.Nodes, res.Columns, res.Optimal)

	return res, nil
}

// process solves one tree node and returns its children.
func (s *Solver) process(ctx context.Context, node *treeNode) ([]*treeNode, error) {
	s.nodes++
	if s.ceil(node.bound) >= s.bestColors {
		s.metrics.node(NodePruned)
		return nil, nil
	}

	s.master.ResetFixes()
	for _, c := range node.path {
		s.propagator.Activate(c, s.pool.Len())
	}
	defer func() {
		for _, c := range node.path {
			s.propagator.Deactivate(c, s.pool.Len())
		}
	}()
	infeasible := false
	for _, c := range node.path {
		for _, id := range c.Inconsistent() {
			infeasible = s.master.FixColumnToZero(id) || infeasible
		}
	}
	if prop := s.propagator.Propagate(node.path, s.pool, s.master.FixColumnToZero); prop.Infeasible || infeasible {
		s.metrics.node(NodeInfeasible)
		return nil, nil
	}

	lpres, converged, err := s.generateColumns(ctx, node)
	if err != nil {
		return nil, err
	}
	if lpres.Artificial > s.opts.Eps {
		if !converged {
			s.incomplete = true
		}
		s.metrics.node(NodeInfeasible)
		return nil, nil
	}
	bound := lpres.Objective
	if converged && node.id == 0 {
		s.lowerBound = s.ceil(bound)
	}
	if !converged {
		s.incomplete = true
		bound = node.bound
	}

	frac := s.master.FractionalSolution()
	s.round(frac)
	if s.integral(frac) {
		s.metrics.node(NodeIntegral)
		return nil, nil
	}
	if s.ceil(bound) >= s.bestColors {
		s.metrics.node(NodePruned)
		return nil, nil
	}

	u, v, err := s.branching.SelectBranchingPair(frac, s.pool)
	if errors.Is(err, ErrNoBranchingPair) {
		klog.Warningf("bnp: node %d is fractional but has no branching pair", node.id)
		s.incomplete = true
		s.metrics.node(NodePruned)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.metrics.node(NodeBranched)

	children := make([]*treeNode, 0, 2)
	for _, kind := range []Kind{Merge, Split} {
		c, err := NewConstraint(kind, u, v)
		if err != nil {
			return nil, err
		}
		path := append(slices.Clone(node.path), c)
		children = append(children, &treeNode{id: s.newID(), path: path, bound: bound})
	}

	return children, nil
}

// generateColumns runs the master/pricing loop of one node. converged is
// false when a limit interrupted it before pricing failed.
func (s *Solver) generateColumns(ctx context.Context, node *treeNode) (LPResult, bool, error) {
	s.pricer.Invalidate()
	cutoff := 1 + s.opts.Eps
	for round := 0; ; round++ {
		lpres, err := s.master.Solve()
		if err != nil {
			return LPResult{}, false, errors.Wrapf(err, "bnp: node %d", node.id)
		}
		if (s.opts.MaxPricingRounds > 0 && round >= s.opts.MaxPricingRounds) || s.stopped(ctx) {
			return lpres, false, nil
		}
		set, ok, err := s.pricer.PriceColumn(s.master.Duals(), node.path, cutoff)
		if err != nil {
			return LPResult{}, false, err
		}
		if !ok {
			klog.V(1).Infof("bnp: node %d LP %.6g after %d columns", node.id, lpres.Objective, round)
			return lpres, true, nil
		}
		if _, err := s.master.AddColumn(set); err != nil {
			return LPResult{}, false, err
		}
	}
}

// round turns the LP solution into a coloring: columns are taken by
// decreasing value and each claims its still uncolored nodes.
func (s *Solver) round(frac map[ColumnID]float64) {
	ids := make([]ColumnID, 0, len(frac))
	for id := range frac {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if frac[ids[i]] != frac[ids[j]] {
			return frac[ids[i]] > frac[ids[j]]
		}
		return ids[i] < ids[j]
	})

	n := s.g.NodeNumber()
	colors := make([]int, n)
	for u := range colors {
		colors[u] = -1
	}
	left, used := n, 0
	for _, id := range ids {
		col, err := s.pool.Column(id)
		if err != nil {
			return
		}
		claimed := false
		for _, u := range col.Nodes {
			if colors[u] < 0 {
				colors[u] = used
				left--
				claimed = true
			}
		}
		if claimed {
			used++
		}
		if left == 0 || used >= s.bestColors {
			break
		}
	}
	if left == 0 && used < s.bestColors {
		klog.V(1).Infof("bnp: rounding improved the incumbent to %d colors", used)
		s.best, s.bestColors = colors, used
	}
}

func (s *Solver) integral(frac map[ColumnID]float64) bool {
	for _, v := range frac {
		if math.Abs(v-math.Round(v)) > s.opts.Eps {
			return false
		}
	}

	return true
}

// ceil rounds an LP bound up, tolerating values just above an integer.
func (s *Solver) ceil(x float64) int { return int(math.Ceil(x - s.opts.Eps)) }

func (s *Solver) stopped(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	if s.opts.MaxNodes > 0 && s.nodes >= s.opts.MaxNodes {
		return true
	}

	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

func (s *Solver) newID() int {
	id := s.nextID
	s.nextID++

	return id
}
