// SPDX-License-Identifier: MIT

// Package edgelist reads and writes the plain-text graph format used by the
// lvlheap command and renders distance reports.
//
// Input format (whitespace separated, blank lines ignored):
//
//	<source>
//	<n> <m>
//	<u> <v> <w>     ← exactly m lines
//
// Example:
//
//	0
//	4 4
//	0 1 1
//	1 2 2
//	0 2 5
//	2 3 1
//
// Parse validates every record before handing back a graph: a malformed line
// yields ErrMalformed (wrapped with the 1-based line number), and a file whose
// edge lines do not match m yields ErrCountMismatch. Vertex and weight checks
// are delegated to shortestpath.Graph.AddEdge and surface wrapped in
// ErrMalformed.
//
// WriteDistances prints one line per vertex:
//
//	<d> // cost from node <source> to <v>
//
// with INF for unreachable vertices.
package edgelist
