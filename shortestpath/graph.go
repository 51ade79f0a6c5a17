// SPDX-License-Identifier: MIT
// Package: lvlheap/shortestpath
//
// graph.go — undirected weighted graph over dense integer vertex ids.

package shortestpath

import "fmt"

// Arc is one entry of an adjacency list: the neighbor and the edge weight.
type Arc struct {
	To     int
	Weight int64
}

// Edge is an undirected edge as it was added.
type Edge struct {
	U, V   int
	Weight int64
}

// Graph is an undirected graph with vertices 0..n-1 and positive integer weights.
//
// Every AddEdge(u, v, w) appends Arc{v, w} to u's list and Arc{u, w} to v's list.
// A Graph is built once and read-only afterwards; it is not safe for concurrent
// mutation.
type Graph struct {
	adj   [][]Arc // vertex → adjacency list
	edges []Edge  // insertion order
}

// NewGraph returns a graph with n isolated vertices.
// Returns ErrTooFewVertices if n < 1.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	}

	return &Graph{adj: make([][]Arc, n)}, nil
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Returns ErrVertexOutOfRange if u or v is outside 0..n-1 and
// ErrNonPositiveWeight if w ≤ 0. The graph is unchanged on error.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("%w: edge %d-%d with %d vertices", ErrVertexOutOfRange, u, v, len(g.adj))
	}
	if w <= 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNonPositiveWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return len(g.edges) }

// Arcs returns u's adjacency list. The slice is shared with the graph and must
// not be modified. Returns nil for an unknown vertex.
func (g *Graph) Arcs(u int) []Arc {
	if !g.has(u) {
		return nil
	}

	return g.adj[u]
}

// Degree returns the number of arcs leaving u.
func (g *Graph) Degree(u int) int { return len(g.Arcs(u)) }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether u and v are adjacent. Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	for _, a := range g.Arcs(u) {
		if a.To == v {
			return true
		}
	}

	return false
}

func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.adj) }
