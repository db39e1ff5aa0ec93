// SPDX-License-Identifier: MIT

// Package quantum implements a classical, quantum-inspired heuristic for
// maximum-weight independent set.
//
// An instance is encoded as an integer Ising Hamiltonian (NewMWISHamiltonian).
// RQAOA then shrinks the Hamiltonian one spin at a time: it minimizes the
// closed-form depth-1 QAOA energy ⟨E⟩(β, γ), picks the single-spin or pair
// expectation of largest magnitude, and substitutes the corresponding spin
// away. Once BruteForceLimit spins remain they are solved exactly and the
// elimination stack is replayed in reverse to recover a full assignment.
//
// Nothing here simulates quantum states; all expectations are analytic.
//
// Example:
//
//	q := quantum.NewMWIS(quantum.WithSeed(7))
//	best := &mwis.Solution{}
//	improved, err := q.Improve(g, best, 1+1e-6)
//
// Options follow the functional style: constructors panic on meaningless
// values, and parameter optimization is bounded by wall-clock budgets that
// never surface as errors.
package quantum
