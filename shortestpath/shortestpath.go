// SPDX-License-Identifier: MIT
// Package: lvlheap/shortestpath
//
// shortestpath.go — Run and the per-run state machine.
//
// Notes on implementation choices:
//   - Every vertex starts in the queue with key Infinity; the source is then
//     lowered to 0 through decrease-key, so the "visited" set is exactly the
//     set of vertices no longer in the queue.
//   - A vertex popped with key Infinity is unreachable, and so is every vertex
//     still queued behind it. The loop keeps draining without relaxing so that
//     Infinity + w is never formed.
//   - Relaxation uses strict "<", so an extracted vertex can never be offered a
//     decrease: its final distance is ≤ dist[u] < dist[u] + w.

package shortestpath

import "fmt"

// Run computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in 0..g.Order()-1 (ErrSourceOutOfRange).
//  3. the queue kind must be known (ErrUnknownQueue).
//
// Returns a Distances vector of length g.Order(); unreachable vertices hold
// Infinity. Complexity: O(E + V log V) with FibonacciHeap, O(E·V) worst case
// with LeftistTree.
func Run(g *Graph, source int, opts ...Option) (Distances, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.has(source) {
		return nil, fmt.Errorf("%w: source=%d vertices=%d", ErrSourceOutOfRange, source, g.Order())
	}
	q, err := newQueue(cfg.Queue, g.Order())
	if err != nil {
		return nil, fmt.Errorf("%w: %d", err, int(cfg.Queue))
	}

	// 3) Run.
	r := &runner{
		g:      g,
		source: source,
		q:      q,
		dist:   make(Distances, g.Order()),
	}
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	// 4) Publish counters.
	if c := cfg.Counters; c != nil {
		c.Extractions += r.counters.Extractions
		c.Relaxations += r.counters.Relaxations
		c.DecreaseKeys += r.counters.DecreaseKeys
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Run.
type runner struct {
	g        *Graph    // read-only input
	source   int       // start vertex
	q        queue     // owned exclusively by this run
	dist     Distances // vertex → best known distance
	counters Counters  // local counts, merged into Options.Counters at the end
}

// init sets dist[v] = Infinity for all v, queues every vertex with that key and
// lowers the source to 0.
func (r *runner) init() error {
	for v := range r.dist {
		r.dist[v] = Infinity
		if err := r.q.push(v, Infinity); err != nil {
			return fmt.Errorf("shortestpath: queue vertex %d: %w", v, err)
		}
	}

	r.dist[r.source] = 0
	if err := r.q.decrease(r.source, 0); err != nil {
		return fmt.Errorf("shortestpath: seed source %d: %w", r.source, err)
	}

	return nil
}

// process extracts vertices in order of distance until the queue is empty.
func (r *runner) process() error {
	for !r.q.empty() {
		u, d, err := r.q.pop()
		if err != nil {
			return fmt.Errorf("shortestpath: extract: %w", err)
		}
		r.counters.Extractions++

		// Everything left is unreachable; drain without relaxing.
		if d == Infinity {
			continue
		}

		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax offers dist[u] + w to every neighbor of u.
func (r *runner) relax(u int, du int64) error {
	for _, a := range r.g.adj[u] {
		r.counters.Relaxations++

		// Saturate instead of overflowing on absurdly large weights.
		if a.Weight >= Infinity-du {
			continue
		}
		nd := du + a.Weight
		if nd >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = nd
		if err := r.q.decrease(a.To, nd); err != nil {
			return fmt.Errorf("shortestpath: decrease vertex %d to %d: %w", a.To, nd, err)
		}
		r.counters.DecreaseKeys++
	}

	return nil
}
