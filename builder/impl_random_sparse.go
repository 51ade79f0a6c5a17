// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i). One Float64 per trial,
//     then one weight draw per accepted edge.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p) over the graph's vertices.
func RandomSparse(p float64) Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (no side effects on invalid input).
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) One trial per unordered pair.
		n := g.Order()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
