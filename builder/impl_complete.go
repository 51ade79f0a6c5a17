// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_complete.go — implementation of Complete() constructor.
//
// Contract:
//   • n ≥ 1 (K_1 has no edges).
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n over the graph's vertices.
func Complete() Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
