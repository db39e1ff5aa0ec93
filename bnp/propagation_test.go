// SPDX-License-Identifier: MIT
package bnp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/bnp"
)

func mustConstraint(t *testing.T, kind bnp.Kind, u, v int) *bnp.Constraint {
	t.Helper()
	c, err := bnp.NewConstraint(kind, u, v)
	require.NoError(t, err)

	return c
}

func TestPropagator_FixesInconsistentColumns(t *testing.T) {
	pool := poolOf(t, 4, []int{0, 1}, []int{0}, []int{1, 2}, []int{3})
	merge := mustConstraint(t, bnp.Merge, 0, 1)
	split := mustConstraint(t, bnp.Split, 2, 3)
	p := bnp.NewPropagator()

	var fixed []bnp.ColumnID
	fix := func(id bnp.ColumnID) bool {
		fixed = append(fixed, id)
		return false
	}
	res := p.Propagate([]*bnp.Constraint{merge, split}, pool, fix)
	assert.False(t, res.Infeasible)
	assert.Equal(t, []bnp.ColumnID{1, 2}, res.Fixed)
	assert.Equal(t, []bnp.ColumnID{1, 2}, fixed)
	assert.True(t, merge.Propagated())
	assert.True(t, split.Propagated())
	assert.Equal(t, []bnp.ColumnID{1, 2}, merge.Inconsistent())
	assert.Empty(t, split.Inconsistent())
}

func TestPropagator_ScansOnlyNewColumns(t *testing.T) {
	pool := poolOf(t, 3, []int{0})
	merge := mustConstraint(t, bnp.Merge, 0, 1)
	p := bnp.NewPropagator()
	calls := 0
	fix := func(bnp.ColumnID) bool { calls++; return false }

	p.Propagate([]*bnp.Constraint{merge}, pool, fix)
	assert.Equal(t, 1, calls)

	// Nothing new: activation keeps the constraint propagated.
	assert.False(t, p.Activate(merge, pool.Len()))
	p.Propagate([]*bnp.Constraint{merge}, pool, fix)
	assert.Equal(t, 1, calls)
	p.Deactivate(merge, pool.Len())

	_, err := pool.Add([]int{1})
	require.NoError(t, err)
	_, err = pool.Add([]int{0, 1})
	require.NoError(t, err)

	assert.True(t, p.Activate(merge, pool.Len()))
	res := p.Propagate([]*bnp.Constraint{merge}, pool, fix)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []bnp.ColumnID{1}, res.Fixed)
	assert.Equal(t, []bnp.ColumnID{0, 1}, merge.Inconsistent())
}

func TestPropagator_DeactivateRecordsColumnCount(t *testing.T) {
	pool := poolOf(t, 3, []int{2})
	split := mustConstraint(t, bnp.Split, 0, 1)
	p := bnp.NewPropagator()
	p.Propagate([]*bnp.Constraint{split}, pool, func(bnp.ColumnID) bool { return false })

	// A column created while the constraint is active honors it.
	_, err := pool.Add([]int{0})
	require.NoError(t, err)
	p.Deactivate(split, pool.Len())

	assert.False(t, p.Activate(split, pool.Len()))
}

func TestPropagator_FixingLastCoverIsNotInfeasible(t *testing.T) {
	// Node 2 appears only in {0,1,2}, which the split rules out.
	pool := poolOf(t, 3, []int{0, 1, 2}, []int{0}, []int{1})
	m := bnp.NewLPMaster(pool, 0, 0)
	split := mustConstraint(t, bnp.Split, 0, 1)

	res := bnp.NewPropagator().Propagate([]*bnp.Constraint{split}, pool, m.FixColumnToZero)
	assert.False(t, res.Infeasible)
	assert.Equal(t, []bnp.ColumnID{0}, res.Fixed)
	assert.True(t, m.IsFixed(0))
}

func TestSplitChildSolvesAfterPropagation(t *testing.T) {
	g := graphOf(t, 3, nil)
	pool := poolOf(t, 3, []int{0, 1, 2}, []int{0}, []int{1})
	m := bnp.NewLPMaster(pool, 0, 0)
	split := mustConstraint(t, bnp.Split, 0, 1)
	active := []*bnp.Constraint{split}

	prop := bnp.NewPropagator().Propagate(active, pool, m.FixColumnToZero)
	require.False(t, prop.Infeasible)

	p, err := bnp.NewPricer(g, exactChain(), nil)
	require.NoError(t, err)
	var lp bnp.LPResult
	for round := 0; ; round++ {
		require.Less(t, round, 10, "column generation must converge")
		lp, err = m.Solve()
		require.NoError(t, err)
		set, ok, err := p.PriceColumn(m.Duals(), active, 1+bnp.DefaultEps)
		require.NoError(t, err)
		if !ok {
			break
		}
		col, err := m.AddColumn(set)
		require.NoError(t, err)
		c, err := pool.Column(col)
		require.NoError(t, err)
		require.False(t, split.Violates(c))
	}

	assert.InDelta(t, 0.0, lp.Artificial, 1e-9)
	assert.InDelta(t, 2.0, lp.Objective, 1e-9)
}

func TestPropagator_InfeasibleStops(t *testing.T) {
	// A fix callback reporting a bound conflict ends the pass.
	pool := poolOf(t, 3, []int{0, 1, 2})
	first := mustConstraint(t, bnp.Split, 0, 1)
	second := mustConstraint(t, bnp.Merge, 0, 2)
	p := bnp.NewPropagator()

	res := p.Propagate([]*bnp.Constraint{first, second}, pool, func(bnp.ColumnID) bool { return true })
	assert.True(t, res.Infeasible)
	assert.Equal(t, []bnp.ColumnID{0}, res.Fixed)
	assert.True(t, first.Propagated())
	assert.False(t, second.Propagated())

	// The skipped constraint keeps its checkpoint across deactivation.
	p.Deactivate(second, pool.Len())
	assert.True(t, p.Activate(second, pool.Len()))
}
