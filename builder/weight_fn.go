// SPDX-License-Identifier: MIT
// Package: qbnp/builder
//
// weight_fn.go - node weight distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultNodeWeight is returned by stochastic weight policies when no RNG is
// configured, and is the weight of every node in an unweighted graph.
const DefaultNodeWeight float64 = 1

// WeightFn produces a node weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. A nil rng yields DefaultNodeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultNodeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn drawing integers uniformly in [min, max].
// Panics if min < 0 or max < min. A nil rng yields DefaultNodeWeight.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultNodeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn samples N(mean, stddev), rounds to the nearest integer and
// clips at 0. Panics if stddev < 0. A nil rng yields DefaultNodeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultNodeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn samples Exp(rate) rounded to the nearest integer.
// Panics if rate ≤ 0. A nil rng yields DefaultNodeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultNodeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}
