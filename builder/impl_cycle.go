// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_cycle.go — implementation of Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i – (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.
//
// Determinism:
//   • Edge emission order by increasing i; weights follow cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes the graph's vertices into C_n.
func Cycle() Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// The last step wraps n-1 back to 0.
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
