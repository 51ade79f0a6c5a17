// SPDX-License-Identifier: MIT
// Package: lvlheap/edgelist
//
// write.go — graph and distance writers.

package edgelist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

// Write emits g in the format Parse reads, edges in insertion order.
func Write(w io.Writer, g *shortestpath.Graph, source int) error {
	if g == nil {
		return shortestpath.ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d %d\n", source, g.Order(), g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Weight)
	}

	return bw.Flush()
}

// WriteDistances prints "<d> // cost from node <source> to <v>" for every
// vertex, with INF for unreachable ones.
func WriteDistances(w io.Writer, source int, dist shortestpath.Distances) error {
	bw := bufio.NewWriter(w)
	for v, d := range dist {
		if d == shortestpath.Infinity {
			fmt.Fprintf(bw, "INF // cost from node %d to %d\n", source, v)
			continue
		}
		fmt.Fprintf(bw, "%d // cost from node %d to %d\n", d, source, v)
	}

	return bw.Flush()
}
