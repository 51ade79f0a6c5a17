// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// impl_star.go — implementation of Star() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex 0 is the hub; spokes 0 – i for i=1..n-1 in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor that connects vertex 0 to every other vertex.
func Star() Constructor {
	return func(g *shortestpath.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		for i := starCenter + 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, starCenter, i); err != nil {
				return err
			}
		}

		return nil
	}
}
