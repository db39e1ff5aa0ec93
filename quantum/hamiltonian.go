// SPDX-License-Identifier: MIT
// File: hamiltonian.go
// Role: Integer Ising Hamiltonian with spin elimination.
//
//	E(s) = Σ_i h_i·s_i + Σ_{i<j} J_ij·s_i·s_j,   s_i ∈ {−1, +1}
//
// Storage:
//   - h and J are dense; J is symmetric with a zero diagonal.
//   - neighbors[u] is the sorted list of active spins v with J_uv ≠ 0.
//   - common[u*size+v] (u < v) caches N(u) ∪ N(v) \ {u, v}. Any change of
//     the coupling structure marks the cache stale; the next pair expectation
//     rebuilds it for all active pairs.
//
// Determinism:
//   - ActiveSpins, neighbor lists and the constraint stack are ordered, so two
//     runs over the same Hamiltonian visit terms in the same order.

package quantum

import (
	"slices"
)

// Hamiltonian is an Ising model over spins 0..Size()-1 of which a subset is
// active. Eliminated spins are recorded as constraints on a LIFO stack.
// A Hamiltonian is not safe for concurrent use.
type Hamiltonian struct {
	size        int
	linear      []int
	quadratic   []int
	neighbors   [][]int
	common      [][]int
	active      []int
	constraints []Constraint
	stale       bool
	objective   func(spins []int) float64
}

// NewHamiltonian returns a Hamiltonian with n active spins and no terms.
func NewHamiltonian(n int) *Hamiltonian {
	if n < 0 {
		n = 0
	}
	h := &Hamiltonian{
		size:      n,
		linear:    make([]int, n),
		quadratic: make([]int, n*n),
		neighbors: make([][]int, n),
		common:    make([][]int, n*n),
		active:    make([]int, n),
		stale:     true,
	}
	for u := range h.active {
		h.active[u] = u
	}

	return h
}

// SetObjective installs a real-valued score of full assignments that
// SolveByBruteForce minimizes instead of Energy; the integer terms then only
// steer elimination. A nil fn restores Energy.
func (h *Hamiltonian) SetObjective(fn func(spins []int) float64) { h.objective = fn }

// Size returns the number of allocated spins.
func (h *Hamiltonian) Size() int { return h.size }

// ActiveSpins returns the active spins in ascending order.
func (h *Hamiltonian) ActiveSpins() []int { return slices.Clone(h.active) }

// ActiveCount returns the number of active spins.
func (h *Hamiltonian) ActiveCount() int { return len(h.active) }

// IsActive reports whether u is an active spin.
func (h *Hamiltonian) IsActive(u int) bool {
	_, ok := slices.BinarySearch(h.active, u)
	return ok
}

// Constraints returns a copy of the elimination stack, oldest first.
func (h *Hamiltonian) Constraints() []Constraint { return slices.Clone(h.constraints) }

// Linear returns h_u.
func (h *Hamiltonian) Linear(u int) int { return h.linear[u] }

// Quadratic returns J_uv.
func (h *Hamiltonian) Quadratic(u, v int) int { return h.quadratic[u*h.size+v] }

// Neighbors returns the sorted spins coupled to u.
func (h *Hamiltonian) Neighbors(u int) []int { return slices.Clone(h.neighbors[u]) }

// SetLinear sets h_u of an active spin.
func (h *Hamiltonian) SetLinear(u, c int) error {
	if err := h.checkRange(u); err != nil {
		return err
	}
	if !h.IsActive(u) {
		return ErrInvalidConstraint
	}
	h.linear[u] = c

	return nil
}

// SetQuadratic sets J_uv = J_vu = c. A zero coupling unlinks u and v.
func (h *Hamiltonian) SetQuadratic(u, v, c int) error {
	if err := h.checkRange(u); err != nil {
		return err
	}
	if err := h.checkRange(v); err != nil {
		return err
	}
	if u == v {
		return ErrInvalidConstraint
	}
	h.setQuadratic(u, v, c)

	return nil
}

func (h *Hamiltonian) setQuadratic(u, v, c int) {
	h.quadratic[u*h.size+v] = c
	h.quadratic[v*h.size+u] = c
	h.stale = true
	if c == 0 {
		h.neighbors[u] = removeSorted(h.neighbors[u], v)
		h.neighbors[v] = removeSorted(h.neighbors[v], u)
		return
	}
	h.neighbors[u] = insertSorted(h.neighbors[u], v)
	h.neighbors[v] = insertSorted(h.neighbors[v], u)
}

// Energy evaluates E over the active spins. spins is indexed by spin id;
// entries of inactive spins are ignored.
func (h *Hamiltonian) Energy(spins []int) int {
	e := 0
	for i, u := range h.active {
		e += h.linear[u] * spins[u]
		for _, v := range h.active[i+1:] {
			e += h.quadratic[u*h.size+v] * spins[u] * spins[v]
		}
	}

	return e
}

// AddConstraint records c, substitutes s_U in terms of the remaining spins
// and deactivates U. The constant energy offset of the substitution is
// dropped.
//
//	pair   s_U = σ·s_V:  h_V += σ·h_U,  J_Vw += σ·J_Uw  for w ∈ N(U) \ {V}
//	single s_U = σ:      h_w += σ·J_Uw                  for w ∈ N(U)
func (h *Hamiltonian) AddConstraint(c Constraint) error {
	if err := h.validate(c); err != nil {
		return err
	}
	h.constraints = append(h.constraints, c)
	u := c.U
	if c.IsPair() {
		h.linear[c.V] += c.Sign * h.linear[u]
	}
	for _, w := range slices.Clone(h.neighbors[u]) {
		if w == c.V {
			continue
		}
		juw := h.quadratic[u*h.size+w]
		if c.IsPair() {
			h.setQuadratic(c.V, w, h.quadratic[c.V*h.size+w]+c.Sign*juw)
		} else {
			h.linear[w] += c.Sign * juw
		}
	}
	h.removeSpin(u)

	return nil
}

// removeSpin unlinks u from every neighbor list and deactivates it.
// neighbors[u] is kept so that the stale couplings of u remain readable.
func (h *Hamiltonian) removeSpin(u int) {
	for _, w := range h.neighbors[u] {
		h.neighbors[w] = removeSorted(h.neighbors[w], u)
	}
	h.active = removeSorted(h.active, u)
	h.stale = true
}

// updateCommonNeighbors rebuilds the N(u) ∪ N(v) \ {u, v} cache for every
// active pair u < v.
// Complexity: O(A² · d).
func (h *Hamiltonian) updateCommonNeighbors() {
	for i, u := range h.active {
		for _, v := range h.active[i+1:] {
			idx := u*h.size + v
			merged := h.common[idx][:0]
			a, b := h.neighbors[u], h.neighbors[v]
			for len(a) > 0 || len(b) > 0 {
				var x int
				switch {
				case len(b) == 0 || (len(a) > 0 && a[0] < b[0]):
					x, a = a[0], a[1:]
				case len(a) == 0 || b[0] < a[0]:
					x, b = b[0], b[1:]
				default:
					x, a, b = a[0], a[1:], b[1:]
				}
				if x != u && x != v {
					merged = append(merged, x)
				}
			}
			h.common[idx] = merged
		}
	}
	h.stale = false
}

func (h *Hamiltonian) checkRange(u int) error {
	if u < 0 || u >= h.size {
		return ErrSpinOutOfRange
	}

	return nil
}

func (h *Hamiltonian) validate(c Constraint) error {
	if c.Sign != 1 && c.Sign != -1 {
		return ErrInvalidConstraint
	}
	if err := h.checkRange(c.U); err != nil {
		return err
	}
	if !h.IsActive(c.U) {
		return ErrInvalidConstraint
	}
	if !c.IsPair() {
		return nil
	}
	if err := h.checkRange(c.V); err != nil {
		return err
	}
	if c.V == c.U || !h.IsActive(c.V) {
		return ErrInvalidConstraint
	}

	return nil
}

func insertSorted(s []int, x int) []int {
	i, ok := slices.BinarySearch(s, x)
	if ok {
		return s
	}

	return slices.Insert(s, i, x)
}

func removeSorted(s []int, x int) []int {
	i, ok := slices.BinarySearch(s, x)
	if !ok {
		return s
	}

	return slices.Delete(s, i, i+1)
}
