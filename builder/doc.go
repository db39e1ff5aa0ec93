// SPDX-License-Identifier: MIT
// Package builder assembles deterministic fixture graphs for tests, examples
// and the command-line tool.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(n, bopts, cons...) creates an n-node
//     core.Graph, runs every Constructor in order, then applies the node
//     weight policy.
//   - Topologies over a contiguous id range: Path, Cycle, Star, Wheel,
//     Complete, CompleteBipartite, Grid, RandomSparse. Each constructor
//     places its nodes at ids first..first+k-1 (see WithOffset), so several
//     components can share one graph.
//   - Node-weight distributions (WeightFn): Constant, Uniform, Normal,
//     Exponential. A graph is weighted iff a weight option is supplied.
//
// Guarantees:
//
//   - Same inputs, options and seed produce identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
package builder
