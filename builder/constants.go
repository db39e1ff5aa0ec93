// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by graph builders.
package builder

// Method tags prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Minimum node counts per topology.
const (
	MinCycleNodes = 3
	MinPathNodes  = 1
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
