// SPDX-License-Identifier: MIT
// Package: lvlheap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g with n vertices,
//     resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Keep the graph simple (no loops, no parallel edges) on their own.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *shortestpath.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices (0..n-1), resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*shortestpath.Graph, error) {
	g, err := shortestpath.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrTooFewVertices, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge adds {u,v} with the next configured weight, tagging failures with method.
func addEdge(method string, g *shortestpath.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
