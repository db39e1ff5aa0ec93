// SPDX-License-Identifier: MIT
// Package mwis implements Maximum-Weight Independent Set methods used as
// pricing oracles: a 1-for-2 swap local search, a greedy multi-order
// construction and an exact weighted MaxSAT fallback.
//
// Every method satisfies Heuristic:
//
//	Improve(g *core.Graph, best *Solution, cutoff float64) (bool, error)
//
// best carries the best known set on input and is replaced only by a
// strictly heavier set. The boolean reports best.Weight > cutoff; use
// math.Inf(1) as cutoff to ask for the best set a method can find.
//
// Methods work on the active nodes of g only, so they run unchanged on a
// contracted working copy.
package mwis
