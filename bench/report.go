// SPDX-License-Identifier: MIT
// Package: lvlheap/bench
//
// report.go — human readable rendering of a Report.

package bench

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvlheap/shortestpath"
)

// MismatchMessage is printed instead of timings when the queues disagree.
const MismatchMessage = "The shortest path distances are not correctly calculated."

// WriteGenerated prints the line announcing a freshly sampled graph.
func WriteGenerated(w io.Writer, vertices, edges int, percent float64) error {
	_, err := fmt.Fprintf(w, "Successfully generated a random graph with %d vertices, %d edges (%.2f%% density).\n",
		vertices, edges, percent)

	return err
}

// WriteReport prints the performance header followed by one timing line per
// queue, or MismatchMessage when the distance vectors differ.
func WriteReport(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Performance metrics for a graph with %d vertices and %.2f%% density:\n\n", r.Vertices, r.Density)

	if !r.Match {
		fmt.Fprintln(bw, MismatchMessage)
		return bw.Flush()
	}
	for _, res := range r.Results {
		fmt.Fprintf(bw, "%s Time: %.3f ms\n", timingLabel(res.Queue), millis(res.Mean))
		if len(res.Durations) > 1 {
			fmt.Fprintf(bw, "  (%d runs, stddev %.3f ms)\n", len(res.Durations), millis(res.StdDev))
		}
	}

	return bw.Flush()
}

func timingLabel(k shortestpath.QueueKind) string {
	switch k {
	case shortestpath.LeftistTree:
		return "Leftist Tree"
	case shortestpath.FibonacciHeap:
		return "Fibonacci Heap"
	default:
		return k.String()
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
