// SPDX-License-Identifier: MIT
package quantum_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qbnp/builder"
	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
	"github.com/katalvlaran/qbnp/quantum"
)

func weighted(t *testing.T, w []float64, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(w), core.WithWeights(w), core.WithEdges(edges))
	require.NoError(t, err)

	return g
}

// fast keeps elimination runs short in tests.
func fast() []quantum.Option {
	return []quantum.Option{
		quantum.WithSeed(7),
		quantum.WithStarts(2),
		quantum.WithGlobalBudget(200 * time.Millisecond),
		quantum.WithLocalBudget(100 * time.Millisecond),
	}
}

func optimum(t *testing.T, g *core.Graph) float64 {
	t.Helper()
	nodes := g.ActiveNodes()
	weights := g.Weights()
	best := 0.0
	for mask := 0; mask < 1<<len(nodes); mask++ {
		var set []int
		var w float64
		for i, u := range nodes {
			if mask&(1<<i) != 0 {
				set = append(set, u)
				w += weights[u]
			}
		}
		if ok, _ := core.IsIndependentSet(g, set); ok && w > best {
			best = w
		}
	}

	return best
}

func TestNewMWISHamiltonian_Path(t *testing.T) {
	g := weighted(t, []float64{1, 2, 1, 2}, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	h, vars, err := quantum.NewMWISHamiltonian(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, vars)

	// scale 2, λ 6, gcd 2.
	for u, want := range []int{1, 2, 4, -1} {
		assert.Equal(t, want, h.Linear(u), "h_%d", u)
	}
	assert.Equal(t, 3, h.Quadratic(0, 1))
	assert.Equal(t, 3, h.Quadratic(2, 3))
	assert.Zero(t, h.Quadratic(0, 2))

	// {1, 3} is the ground state.
	assert.Equal(t, -13, h.Energy([]int{-1, 1, -1, 1}))
	require.NoError(t, h.SolveByBruteForce(quantum.DefaultBruteForceLimit))
	assert.Equal(t, []int{-1, 1, -1, 1}, h.Unwind())
}

func TestNewMWISHamiltonian_SkipsZeroWeights(t *testing.T) {
	g := weighted(t, []float64{0, 1, 0, 5}, [][2]int{{0, 1}, {1, 3}})

	h, vars, err := quantum.NewMWISHamiltonian(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, vars)
	assert.Equal(t, 2, h.Size())
	assert.Equal(t, []int{1}, h.Neighbors(0))

	_, _, err = quantum.NewMWISHamiltonian(nil)
	assert.ErrorIs(t, err, mwis.ErrNilGraph)
}

func TestMWIS_Path(t *testing.T) {
	g := weighted(t, []float64{1, 2, 1, 2}, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	var best mwis.Solution
	found, err := quantum.NewMWIS(fast()...).Improve(g, &best, 1+1e-6)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{1, 3}, best.Nodes)
	assert.Equal(t, 4.0, best.Weight)
}

func TestMWIS_IsolatedNodes(t *testing.T) {
	g := weighted(t, []float64{1, 1, 1}, nil)

	var best mwis.Solution
	_, err := quantum.NewMWIS(fast()...).Improve(g, &best, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, best.Nodes)
	assert.Equal(t, 3.0, best.Weight)
}

func TestMWIS_ZeroWeightNodesCompleteTheSet(t *testing.T) {
	g := weighted(t, []float64{0, 3, 0, 0}, [][2]int{{0, 1}, {1, 2}})

	var best mwis.Solution
	_, err := quantum.NewMWIS(fast()...).Improve(g, &best, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, best.Nodes)
	assert.Equal(t, 3.0, best.Weight)
}

// Up to the exhaustive limit no spin is eliminated and the exhaustive step
// scores assignments in the unrounded weights, so the result is optimal.
func TestMWIS_SmallGraphsMatchOptimum(t *testing.T) {
	weightFns := map[string]builder.WeightFn{
		"integer": builder.IntegerWeightFn(1, 10),
		"real":    builder.UniformWeightFn(0.1, 1.3),
	}
	for name, fn := range weightFns {
		for seed := int64(1); seed <= 6; seed++ {
			g, err := builder.BuildGraph(10,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(fn)},
				builder.RandomSparse(10, 0.35),
			)
			require.NoError(t, err)

			var best mwis.Solution
			_, err = quantum.NewMWIS(fast()...).Improve(g, &best, math.Inf(1))
			require.NoError(t, err)
			assert.InDelta(t, optimum(t, g), best.Weight, 1e-9, "%s seed %d", name, seed)
		}
	}
}

func TestMWIS_ResolvesNearTies(t *testing.T) {
	// Rounding maps all four weights to the same integer.
	g := weighted(t, []float64{1, 1, 1.0001, 1}, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	var best mwis.Solution
	found, err := quantum.NewMWIS(fast()...).Improve(g, &best, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{0, 2}, best.Nodes)
	assert.InDelta(t, 2.0001, best.Weight, 1e-12)
}

func TestMWIS_EliminationStaysSound(t *testing.T) {
	g, err := builder.BuildGraph(16,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.IntegerWeightFn(1, 5))},
		builder.RandomSparse(16, 0.2),
	)
	require.NoError(t, err)

	best := mwis.Solution{}
	_, err = quantum.NewMWIS(append(fast(), quantum.WithBruteForceLimit(10))...).Improve(g, &best, math.Inf(1))
	require.NoError(t, err)
	if best.Nodes != nil {
		ok, err := core.IsIndependentSet(g, best.Nodes)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.LessOrEqual(t, best.Weight, optimum(t, g))
	}
}

func TestMWIS_KeepsHeavierIncoming(t *testing.T) {
	g := weighted(t, []float64{1, 1}, [][2]int{{0, 1}})
	best := mwis.Solution{Nodes: []int{0}, Weight: 10}

	found, err := quantum.NewMWIS(fast()...).Improve(g, &best, 5)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10.0, best.Weight)
}

func TestMWIS_NilArguments(t *testing.T) {
	q := quantum.NewMWIS()
	_, err := q.Improve(nil, &mwis.Solution{}, 0)
	assert.ErrorIs(t, err, mwis.ErrNilGraph)
	_, err = q.Improve(weighted(t, []float64{1}, nil), nil, 0)
	assert.ErrorIs(t, err, mwis.ErrNilSolution)
}

func TestRQAOA_EliminatesDownToLimit(t *testing.T) {
	h := sample(t)
	r := quantum.NewRQAOA(append(fast(), quantum.WithBruteForceLimit(2))...)

	spins, stats, err := r.GroundState(h)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Eliminations)
	assert.Len(t, spins, 5)
	assert.Len(t, h.Constraints(), 5)
	assert.Zero(t, h.ActiveCount())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { quantum.WithBruteForceLimit(0) })
	assert.Panics(t, func() { quantum.WithBruteForceLimit(31) })
	assert.Panics(t, func() { quantum.WithGlobalBudget(0) })
	assert.Panics(t, func() { quantum.WithLocalBudget(-time.Second) })
	assert.Panics(t, func() { quantum.WithStarts(-1) })
	assert.NotPanics(t, func() { quantum.WithStarts(0) })

	opts := quantum.NewRQAOA(quantum.WithBruteForceLimit(5)).Options()
	assert.Equal(t, 5, opts.BruteForceLimit)
	assert.Equal(t, quantum.DefaultGlobalBudget, opts.GlobalBudget)
}
