// SPDX-License-Identifier: MIT
// Package dimacs reads and writes node-weighted graphs in the DIMACS
// clique/coloring text format:
//
//	c <free-form comment>
//	p <format> <nodes> <edges>
//	e <u> <v>          (1-based endpoints)
//	n <u> <weight>     (1-based node, optional)
//
// The problem line must come before any edge or node line. A graph is
// weighted iff at least one "n" line is present; in that case nodes without
// an "n" line weigh 0, otherwise every node weighs 1.
//
// Parsing is grammar-driven (github.com/alecthomas/participle/v2); the
// result is a *core.Graph with node ids 0..n-1.
package dimacs
