// SPDX-License-Identifier: MIT

// Package shortestpath computes single-source shortest paths on an undirected
// graph with positive integer weights, using Dijkstra's algorithm driven by a
// true decrease-key priority queue.
//
// Overview:
//
//   - Graph stores vertices 0..n-1 and, for each vertex, an adjacency list of
//     (neighbor, weight) arcs. AddEdge(u, v, w) appends the arc to both ends.
//   - Run pre-inserts every vertex into the selected queue with key Infinity,
//     lowers the source to 0 and then repeatedly extracts the minimum vertex u,
//     relaxing every arc (u, v, w): if dist[u] + w < dist[v] the distance is
//     updated and the queue is told to decrease v's key.
//   - Once extracted, a vertex's distance is final. No vertex is reinserted.
//     Vertices never reached keep Infinity.
//
// Queues (QueueKind):
//
//   - FibonacciHeap (default): handle-based decrease-key, O(1) amortized.
//     Total time O(E + V log V).
//   - LeftistTree: decrease-key is a full-tree delete followed by a reinsert,
//     O(V) per call. Total time O(E·V) worst case. Kept as the comparison
//     baseline.
//
// Both queues yield identical distance vectors for any graph and source;
// package bench cross-checks them.
//
// Options:
//
//   - WithQueue(kind)      choose the priority queue.
//   - WithCounters(&c)     collect extraction / relaxation / decrease-key counts.
//
// Errors (sentinel):
//
//   - ErrNilGraph          nil *Graph passed to Run.
//   - ErrSourceOutOfRange  source is not a vertex of the graph.
//   - ErrUnknownQueue      unrecognized QueueKind.
//   - ErrTooFewVertices    NewGraph with n < 1.
//   - ErrVertexOutOfRange  AddEdge endpoint outside 0..n-1.
//   - ErrNonPositiveWeight AddEdge with weight ≤ 0.
//
// Concurrency:
//
//   - Run is synchronous and single-threaded with no I/O in the loop. A Graph may
//     be read by several Run calls at once once construction is finished; each
//     Run owns its own queue and distance vector.
package shortestpath
