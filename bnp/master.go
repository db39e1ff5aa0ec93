// SPDX-License-Identifier: MIT
// File: master.go
// Role: Restricted master LP of the set-covering coloring formulation.
//
// Primal (standard form for lp.Simplex):
//
//	min  Σ_c x_c + M·Σ_u a_u
//	s.t. Σ_{c∋u} x_c + a_u − s_u = 1     for every node u
//	     x, a, s ≥ 0
//
// The artificial a_u keep every tree node feasible; a final solution with
// artificial mass above eps means the node cannot be covered by its columns.
//
// Dual (solved separately, since lp.Simplex reports primal values only):
//
//	max  Σ_u y_u
//	s.t. Σ_{u∈c} y_u ≤ 1                 for every unfixed column c
//	     0 ≤ y_u ≤ M
//
// Both programs start from an identity basis of artificials or slacks, which
// guarantees full row rank and a feasible initial basis.

package bnp

import (
	"math"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// lpTol is the reduced-cost tolerance passed to lp.Simplex.
const lpTol = 1e-10

// LPResult summarizes one master solve.
type LPResult struct {
	Objective  float64
	Artificial float64
	Columns    int
}

// LPMaster implements Master on top of gonum's simplex.
// It is not safe for concurrent use.
type LPMaster struct {
	pool  *ColumnPool
	bigM  float64
	eps   float64
	fixed map[ColumnID]bool

	duals  []float64
	values map[ColumnID]float64
}

// NewLPMaster returns a master over pool. bigM <= 0 selects NodeNumber()+1.
func NewLPMaster(pool *ColumnPool, bigM, eps float64) *LPMaster {
	if bigM <= 0 {
		bigM = float64(pool.NodeNumber() + 1)
	}
	if eps <= 0 {
		eps = DefaultEps
	}

	return &LPMaster{
		pool:   pool,
		bigM:   bigM,
		eps:    eps,
		fixed:  make(map[ColumnID]bool),
		duals:  make([]float64, pool.NodeNumber()),
		values: make(map[ColumnID]float64),
	}
}

// Pool returns the column pool.
func (m *LPMaster) Pool() *ColumnPool { return m.pool }

// AddColumn implements Master.
func (m *LPMaster) AddColumn(nodes []int) (ColumnID, error) { return m.pool.Add(nodes) }

// DualValue implements Master.
func (m *LPMaster) DualValue(node int) float64 {
	if node < 0 || node >= len(m.duals) {
		return 0
	}

	return m.duals[node]
}

// Duals returns a copy of all duals of the last solve.
func (m *LPMaster) Duals() []float64 {
	out := make([]float64, len(m.duals))
	copy(out, m.duals)

	return out
}

// FractionalSolution implements Master.
func (m *LPMaster) FractionalSolution() map[ColumnID]float64 {
	out := make(map[ColumnID]float64, len(m.values))
	for id, v := range m.values {
		out[id] = v
	}

	return out
}

// FixColumnToZero implements Master. Columns are never forced to one, so a
// fix cannot conflict with a bound and the result is always false. A node
// left without unfixed columns stays feasible: pricing may still cover it,
// and the artificial mass after converged pricing decides.
func (m *LPMaster) FixColumnToZero(id ColumnID) bool {
	m.fixed[id] = true
	delete(m.values, id)

	return false
}

// IsFixed reports whether id is fixed to zero at the current tree node.
func (m *LPMaster) IsFixed(id ColumnID) bool { return m.fixed[id] }

// ResetFixes unfixes every column.
func (m *LPMaster) ResetFixes() { clear(m.fixed) }

// Solve optimizes the primal and dual restricted masters over the unfixed
// columns and caches column values and duals.
func (m *LPMaster) Solve() (LPResult, error) {
	n := m.pool.NodeNumber()
	var cols []Column
	for _, col := range m.pool.Since(0) {
		if !m.fixed[col.ID] {
			cols = append(cols, col)
		}
	}
	clear(m.values)
	for u := range m.duals {
		m.duals[u] = 0
	}
	if n == 0 {
		return LPResult{}, nil
	}

	objective, artificial, err := m.solvePrimal(cols)
	if err != nil {
		return LPResult{}, err
	}
	dualObjective, err := m.solveDual(cols)
	if err != nil {
		return LPResult{}, err
	}
	if math.Abs(objective-dualObjective) > 1e3*m.eps*math.Max(1, objective) {
		klog.Warningf("bnp: master primal %.9g and dual %.9g disagree", objective, dualObjective)
	}

	return LPResult{Objective: objective, Artificial: artificial, Columns: len(cols)}, nil
}

func (m *LPMaster) solvePrimal(cols []Column) (float64, float64, error) {
	n, k := m.pool.NodeNumber(), len(cols)
	width := k + 2*n
	a := mat.NewDense(n, width, nil)
	c := make([]float64, width)
	b := make([]float64, n)
	basic := make([]int, n)
	for j, col := range cols {
		c[j] = 1
		for _, u := range col.Nodes {
			a.Set(u, j, 1)
		}
	}
	for u := 0; u < n; u++ {
		c[k+u] = m.bigM
		a.Set(u, k+u, 1)
		a.Set(u, k+n+u, -1)
		b[u] = 1
		basic[u] = k + u
	}

	obj, x, err := lp.Simplex(c, a, b, lpTol, basic)
	if err != nil {
		return 0, 0, errors.Wrap(err, "bnp: primal master")
	}
	for j, col := range cols {
		if x[j] > m.eps {
			m.values[col.ID] = x[j]
		}
	}
	var artificial float64
	for u := 0; u < n; u++ {
		artificial += x[k+u]
	}

	return obj, artificial, nil
}

func (m *LPMaster) solveDual(cols []Column) (float64, error) {
	n, k := m.pool.NodeNumber(), len(cols)
	rows, width := k+n, 2*n+k
	a := mat.NewDense(rows, width, nil)
	c := make([]float64, width)
	b := make([]float64, rows)
	basic := make([]int, rows)
	for u := 0; u < n; u++ {
		c[u] = -1
	}
	for i, col := range cols {
		for _, u := range col.Nodes {
			a.Set(i, u, 1)
		}
		a.Set(i, n+i, 1)
		b[i] = 1
		basic[i] = n + i
	}
	for u := 0; u < n; u++ {
		row := k + u
		a.Set(row, u, 1)
		a.Set(row, n+k+u, 1)
		b[row] = m.bigM
		basic[row] = n + k + u
	}

	obj, y, err := lp.Simplex(c, a, b, lpTol, basic)
	if err != nil {
		return 0, errors.Wrap(err, "bnp: dual master")
	}
	copy(m.duals, y[:n])

	return -obj, nil
}
