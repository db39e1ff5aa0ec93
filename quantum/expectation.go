// SPDX-License-Identifier: MIT
// File: expectation.go
// Role: Closed-form depth-1 QAOA expectations ⟨Z_u⟩, ⟨Z_u Z_v⟩ and ⟨E⟩.
//
// The formulas evaluate the p=1 ansatz analytically from the local structure
// of the Hamiltonian; no state vector is simulated. Pair terms read the
// common-neighbor cache and refresh it first when it is stale.

package quantum

import "math"

// ZMean returns ⟨Z_u⟩ = sin β · sin(γ h_u) · Π_{v∈N(u)} cos(γ J_uv).
func (h *Hamiltonian) ZMean(u int, p Params) float64 {
	hu := h.linear[u]
	if hu == 0 {
		return 0
	}
	z := math.Sin(p.Beta) * math.Sin(p.Gamma*float64(hu))
	for _, v := range h.neighbors[u] {
		z *= math.Cos(p.Gamma * float64(h.quadratic[u*h.size+v]))
	}

	return z
}

// ZZMean returns ⟨Z_u Z_v⟩ for u < v.
func (h *Hamiltonian) ZZMean(u, v int, p Params) float64 {
	if u > v {
		u, v = v, u
	}
	if h.stale {
		h.updateCommonNeighbors()
	}
	g := p.Gamma
	var zz float64
	if juv := h.quadratic[u*h.size+v]; juv != 0 {
		cu := math.Cos(g * float64(h.linear[u]))
		for _, x := range h.neighbors[u] {
			if x != v {
				cu *= math.Cos(g * float64(h.quadratic[u*h.size+x]))
			}
		}
		cv := math.Cos(g * float64(h.linear[v]))
		for _, x := range h.neighbors[v] {
			if x != u {
				cv *= math.Cos(g * float64(h.quadratic[v*h.size+x]))
			}
		}
		zz = math.Sin(2*p.Beta) * math.Sin(g*float64(juv)) * (cu + cv)
	}

	plus := math.Cos(g * float64(h.linear[u]+h.linear[v]))
	minus := math.Cos(g * float64(h.linear[u]-h.linear[v]))
	for _, x := range h.common[u*h.size+v] {
		jux := h.quadratic[u*h.size+x]
		jvx := h.quadratic[v*h.size+x]
		plus *= math.Cos(g * float64(jux+jvx))
		minus *= math.Cos(g * float64(jux-jvx))
	}
	sb := math.Sin(p.Beta)
	zz += sb * sb * (minus - plus)

	return zz / 2
}

// Mean returns ⟨E⟩ = Σ h_u ⟨Z_u⟩ + Σ_{u<v} J_uv ⟨Z_u Z_v⟩ over active spins.
// Terms with a zero coefficient are skipped.
func (h *Hamiltonian) Mean(p Params) float64 {
	var e float64
	for i, u := range h.active {
		if hu := h.linear[u]; hu != 0 {
			e += float64(hu) * h.ZMean(u, p)
		}
		for _, v := range h.active[i+1:] {
			if juv := h.quadratic[u*h.size+v]; juv != 0 {
				e += float64(juv) * h.ZZMean(u, v, p)
			}
		}
	}

	return e
}

// FindMaxCorrelation returns the constraint derived from the expectation of
// largest magnitude. Candidates are scanned u ascending, ⟨Z_u⟩ before
// ⟨Z_u Z_v⟩ for v > u; only a strictly larger magnitude replaces the current
// choice. With no nonzero expectation it fixes the first active spin to +1.
func (h *Hamiltonian) FindMaxCorrelation(p Params) Constraint {
	best := Constraint{Sign: 1, U: NoSpin, V: NoSpin}
	if len(h.active) > 0 {
		best.U = h.active[0]
	}
	var top float64
	consider := func(val float64, u, v int) {
		if math.Abs(val) <= top {
			return
		}
		top = math.Abs(val)
		best = Constraint{Sign: signOf(val), U: u, V: v}
	}
	for i, u := range h.active {
		consider(h.ZMean(u, p), u, NoSpin)
		for _, v := range h.active[i+1:] {
			consider(h.ZZMean(u, v, p), u, v)
		}
	}

	return best
}

func signOf(x float64) int {
	if x < 0 {
		return -1
	}

	return 1
}
