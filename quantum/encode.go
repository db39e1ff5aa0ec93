// SPDX-License-Identifier: MIT
// File: encode.go
// Role: Ising encoding of maximum-weight independent set.
//
// Spin +1 selects a node. With x = (1+s)/2 the QUBO
//
//	min −Σ w_i x_i + λ Σ_{ij∈E} x_i x_j
//
// becomes, after scaling by 4 and dropping constants,
//
//	h_i  = −2·w_i + λ·deg(i)
//	J_ij = λ
//
// Weights are scaled to integers first; λ exceeds every scaled weight, so a
// ground state never selects both endpoints of an edge. All coefficients are
// divided by their gcd to keep the expectation landscape 2π-periodic with as
// few oscillations as possible.
//
// Rounding can merge or swap nearly equal weights, so the exhaustive step
// scores assignments with the same QUBO in the unrounded weights and penalty
// 1+max(w, 0). Without eliminations that step returns an exact optimum.

package quantum

import (
	"math"

	"github.com/katalvlaran/qbnp/core"
	"github.com/katalvlaran/qbnp/mwis"
)

// zeroWeight is the magnitude below which a node is left out of the encoding.
const zeroWeight = 1e-9

// NewMWISHamiltonian encodes the active nodes of g with nonzero weight. Spin i
// of the result stands for node vars[i].
func NewMWISHamiltonian(g *core.Graph) (*Hamiltonian, []int, error) {
	if g == nil {
		return nil, nil, mwis.ErrNilGraph
	}
	weights := g.Weights()
	var vars []int
	for _, u := range g.ActiveNodes() {
		if math.Abs(weights[u]) >= zeroWeight {
			vars = append(vars, u)
		}
	}
	index := make(map[int]int, len(vars))
	for i, u := range vars {
		index[u] = i
	}

	maxWeight := g.MaxWeight()
	scale := 1
	if g.IsWeighted() && maxWeight > 0 {
		scale = max(int(float64(len(vars))/maxWeight), 1)
	}
	lambda := scale * (1 + int(math.Ceil(maxWeight)))

	h := NewHamiltonian(len(vars))
	divisor := lambda
	for i, u := range vars {
		deg := 0
		for _, v := range g.Neighbors(u) {
			if _, ok := index[v]; ok {
				deg++
			}
		}
		c := -int(math.Round(2*float64(scale)*weights[u])) + lambda*deg
		h.linear[i] = c
		divisor = gcd(divisor, c)
	}
	if divisor > 1 {
		for i := range h.linear {
			h.linear[i] /= divisor
		}
	}
	coupling := lambda / divisor
	var edges [][2]int
	for i, u := range vars {
		for _, v := range g.Neighbors(u) {
			if j, ok := index[v]; ok && i < j {
				h.setQuadratic(i, j, coupling)
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	w := make([]float64, len(vars))
	for i, u := range vars {
		w[i] = weights[u]
	}
	h.SetObjective(quboObjective(w, edges, 1+math.Max(maxWeight, 0)))

	return h, vars, nil
}

// quboObjective returns −Σ w_i x_i + penalty·Σ_{ij∈edges} x_i x_j over
// spins, with x_i = 1 iff spin i is +1.
func quboObjective(w []float64, edges [][2]int, penalty float64) func([]int) float64 {
	return func(spins []int) float64 {
		var e float64
		for i, wi := range w {
			if spins[i] == 1 {
				e -= wi
			}
		}
		for _, ed := range edges {
			if spins[ed[0]] == 1 && spins[ed[1]] == 1 {
				e += penalty
			}
		}

		return e
	}
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
