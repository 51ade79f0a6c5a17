// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_path.go — implementation of Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges in stable order i – i+1 for i=0..n-2.
//   • Weights drawn from cfg.weightFn in emission order.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links the graph's vertices into P_n.
func Path() Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
