// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_random_density.go - implementation of RandomDensity(percent) constructor.
//
// Model:
//   - Target edge count m = ⌊percent/100 · n(n−1)/2⌋.
//   - Rejection sampling: draw (u, v) uniformly from [0,n)²; discard loops and
//     pairs already present in either orientation; accept until m edges exist.
//   - Accepted pairs are kept in an ordered set keyed by (min, max), so the
//     duplicate check is O(log m) and independent of adjacency-list length.
//
// Contract:
//   - 0 ≤ percent ≤ 100 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Expected trials: O(M · H(M)) in the dense limit (coupon collector over
//     M = n(n−1)/2 pairs); O(m) for small densities. Space: O(m).
//
// Determinism:
//   - Per trial: Intn(n) for u, Intn(n) for v; one weight draw per accepted edge.

package builder

import (
	"fmt"
	"math"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodRandomDensity = "RandomDensity"
	densityMin          = 0.0
	densityMax          = 100.0
	minDensityNodes     = 1
)

// pair is an unordered vertex pair normalized to lo < hi.
type pair struct {
	lo, hi int
}

func pairLess(a, b pair) bool {
	if a.lo != b.lo {
		return a.lo < b.lo
	}
	return a.hi < b.hi
}

// TargetEdges returns ⌊percent/100 · n(n−1)/2⌋, the edge count RandomDensity
// produces for n vertices. Out-of-range inputs are clamped to [0, M].
func TargetEdges(n int, percent float64) int {
	if n < 2 || math.IsNaN(percent) || percent <= densityMin {
		return 0
	}
	maxEdges := n * (n - 1) / 2
	if percent >= densityMax {
		return maxEdges
	}

	return int(percent * float64(maxEdges) / densityMax)
}

// RandomDensity returns a Constructor that adds exactly TargetEdges(n, percent)
// distinct non-loop edges chosen by rejection sampling.
func RandomDensity(percent float64) Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		// 1) Validate parameters.
		n := g.Order()
		if n < minDensityNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDensity, n, minDensityNodes, ErrTooFewVertices)
		}
		if math.IsNaN(percent) || percent < densityMin || percent > densityMax {
			return fmt.Errorf("%s: percent=%.4f not in [%.0f,%.0f]: %w",
				methodRandomDensity, percent, densityMin, densityMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDensity, ErrNeedRandSource)
		}

		// 2) Sample until the edge set reaches the target.
		target := TargetEdges(n, percent)
		seen := btree.NewBTreeG[pair](pairLess)
		for seen.Len() < target {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			if u == v {
				continue
			}
			key := pair{lo: min(u, v), hi: max(u, v)}
			if _, ok := seen.Get(key); ok {
				continue
			}
			seen.Set(key)
			if err := addEdge(methodRandomDensity, g, cfg, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
