// SPDX-License-Identifier: MIT
// File: optimize.go
// Role: Wall-clock bounded minimization of ⟨E⟩(β, γ).
//
// Policy:
//   - First call (no previous estimate): global multistart Nelder–Mead from
//     uniformly drawn points in [0, 2π)², bounded by GlobalBudget in total.
//   - Every call: local Nelder–Mead refinement from the current estimate,
//     bounded by LocalBudget.
//   - Expiring budgets are soft: the best point seen so far is returned with
//     TimedOut set. Callers treat a timed out result like a converged one.
//
// Both angles enter ⟨E⟩ only through trigonometric functions of integer
// multiples, so the objective is 2π-periodic in each coordinate and the box
// constraint of the search reduces to wrapping the result into [0, 2π).

package quantum

import (
	"math"
	"math/rand"
	"time"

	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/optimize"
)

const (
	period = 2 * math.Pi

	// convergeTol and convergeIters stop a local run once the objective
	// stalls.
	convergeTol   = 1e-9
	convergeIters = 40
)

// OptimizeResult is the outcome of one Optimize call.
type OptimizeResult struct {
	Params      Params
	Value       float64
	Evaluations int
	TimedOut    bool
}

// Optimizer minimizes ⟨E⟩ and remembers its last estimate between calls of
// one elimination run.
type Optimizer struct {
	opts     Options
	rng      *rand.Rand
	estimate *Params
}

// NewOptimizer returns an Optimizer without a previous estimate.
func NewOptimizer(opts Options, rng *rand.Rand) *Optimizer {
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	return &Optimizer{opts: opts, rng: rng}
}

// Estimate returns the last optimized parameters and whether one exists.
func (o *Optimizer) Estimate() (Params, bool) {
	if o.estimate == nil {
		return Params{}, false
	}

	return *o.estimate, true
}

// Optimize minimizes f. starts is the number of global starting points used
// when no previous estimate exists; values < 1 are raised to 1.
func (o *Optimizer) Optimize(f func(Params) float64, starts int) OptimizeResult {
	objective := func(x []float64) float64 { return f(Params{Beta: x[0], Gamma: x[1]}) }
	var res OptimizeResult
	var x []float64

	if o.estimate == nil {
		x, res = o.global(objective, max(starts, 1))
	} else {
		x = []float64{o.estimate.Beta, o.estimate.Gamma}
		res.Value = objective(x)
		res.Evaluations = 1
	}

	lx, lf, evals, timedOut := minimizeWithin(objective, x, o.opts.LocalBudget)
	res.Evaluations += evals
	res.TimedOut = res.TimedOut || timedOut
	if lf < res.Value {
		x, res.Value = lx, lf
	}

	res.Params = Params{Beta: wrapAngle(x[0]), Gamma: wrapAngle(x[1])}
	o.estimate = &res.Params
	if res.TimedOut {
		klog.V(2).Infof("quantum: optimizer budget expired, best ⟨E⟩=%.6g", res.Value)
	}

	return res
}

// global runs multistart local searches until starts are exhausted or the
// global budget expires.
func (o *Optimizer) global(objective func([]float64) float64, starts int) ([]float64, OptimizeResult) {
	deadline := time.Now().Add(o.opts.GlobalBudget)
	res := OptimizeResult{Value: math.Inf(1)}
	var best []float64
	for k := 0; k < starts; k++ {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			res.TimedOut = true
			break
		}
		x0 := uniformAngles(o.rng, 2)
		x, fx, evals, timedOut := minimizeWithin(objective, x0, remaining)
		res.Evaluations += evals
		if fx < res.Value {
			best, res.Value = x, fx
		}
		if timedOut {
			res.TimedOut = true
			break
		}
	}
	if best == nil {
		best = uniformAngles(o.rng, 2)
		res.Value = objective(best)
		res.Evaluations++
	}

	return best, res
}

// minimizeWithin runs Nelder–Mead from x0 with a runtime cap. It never fails:
// when gonum reports an error the starting point is returned.
func minimizeWithin(objective func([]float64) float64, x0 []float64, budget time.Duration) ([]float64, float64, int, bool) {
	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		Runtime:   budget,
		Converger: &optimize.FunctionConverge{Absolute: convergeTol, Iterations: convergeIters},
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if result == nil || len(result.X) != len(x0) || math.IsNaN(result.F) {
		if err != nil {
			klog.V(2).Infof("quantum: local search failed: %v", err)
		}
		return x0, objective(x0), 1, false
	}

	return result.X, result.F, result.FuncEvaluations, result.Status == optimize.RuntimeLimit
}

// wrapAngle maps x into [0, 2π).
func wrapAngle(x float64) float64 {
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}

	return x
}
