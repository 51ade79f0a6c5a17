// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// weight_fn.go — edge-weight distributions for graph constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// Default weight range used when no WeightFn is configured.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 1000
)

// WeightFn produces a positive edge weight given an optional *rand.Rand.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from the integers in
// [lo, hi]. Panics if lo < 1 or hi < lo. With a nil RNG it yields lo so that
// deterministic constructors still produce valid weights.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// DefaultWeightFn samples uniformly from [DefaultMinWeight, DefaultMaxWeight].
// Never panics.
func DefaultWeightFn(rng *rand.Rand) int64 {
	return UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)(rng)
}
