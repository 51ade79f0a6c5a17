// SPDX-License-Identifier: MIT
// Package: lvlheap/shortestpath
//
// types.go — sentinel errors, QueueKind, options, counters and Distances.

package shortestpath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Infinity is the distance of a vertex that the source cannot reach.
const Infinity int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *Graph was passed to Run.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrSourceOutOfRange indicates the source is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("shortestpath: source vertex out of range")

	// ErrUnknownQueue indicates an unrecognized QueueKind.
	ErrUnknownQueue = errors.New("shortestpath: unknown queue kind")

	// ErrTooFewVertices indicates NewGraph was asked for fewer than one vertex.
	ErrTooFewVertices = errors.New("shortestpath: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrVertexOutOfRange = errors.New("shortestpath: vertex out of range")

	// ErrNonPositiveWeight indicates an edge weight ≤ 0.
	ErrNonPositiveWeight = errors.New("shortestpath: edge weight must be positive")
)

// QueueKind selects the priority queue that drives Run.
type QueueKind int

const (
	// FibonacciHeap uses package fibheap with per-vertex handles.
	FibonacciHeap QueueKind = iota

	// LeftistTree uses package leftist with delete+reinsert decrease-key.
	LeftistTree
)

// QueueKinds lists every supported kind in a stable order.
func QueueKinds() []QueueKind { return []QueueKind{LeftistTree, FibonacciHeap} }

// String returns the canonical name of k.
func (k QueueKind) String() string {
	switch k {
	case FibonacciHeap:
		return "fibonacci"
	case LeftistTree:
		return "leftist"
	default:
		return fmt.Sprintf("QueueKind(%d)", int(k))
	}
}

// Label returns the human readable name used in reports.
func (k QueueKind) Label() string {
	switch k {
	case FibonacciHeap:
		return "Fibonacci heap"
	case LeftistTree:
		return "Leftist tree"
	default:
		return k.String()
	}
}

// ParseQueueKind maps a name to a QueueKind. Accepted (case-insensitive):
// "fibonacci", "fibonacci-heap", "f"; "leftist", "leftist-tree", "l".
func ParseQueueKind(s string) (QueueKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fibonacci", "fibonacci-heap", "fib", "f":
		return FibonacciHeap, nil
	case "leftist", "leftist-tree", "l":
		return LeftistTree, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQueue, s)
	}
}

// MarshalText implements encoding.TextMarshaler so QueueKind works in config files.
func (k QueueKind) MarshalText() ([]byte, error) {
	switch k {
	case FibonacciHeap, LeftistTree:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownQueue, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseQueueKind.
func (k *QueueKind) UnmarshalText(text []byte) error {
	parsed, err := ParseQueueKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// Counters records the work done by one Run.
type Counters struct {
	Extractions  int64 // vertices removed from the queue
	Relaxations  int64 // arcs examined
	DecreaseKeys int64 // successful relaxations forwarded to the queue
}

// Options configures Run.
type Options struct {
	Queue    QueueKind // priority queue driving the loop
	Counters *Counters // optional work counters, nil to skip
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns Options with the Fibonacci heap and no counters.
func DefaultOptions() Options {
	return Options{Queue: FibonacciHeap}
}

// WithQueue selects the priority queue.
func WithQueue(k QueueKind) Option {
	return func(o *Options) {
		o.Queue = k
	}
}

// WithCounters makes Run add its work counts into c. Panics on nil.
func WithCounters(c *Counters) Option {
	if c == nil {
		panic("shortestpath: WithCounters(nil)")
	}
	return func(o *Options) {
		o.Counters = c
	}
}

// Distances maps vertex index to its shortest distance from the source.
// Unreachable vertices hold Infinity.
type Distances []int64

// Reachable reports whether v has a finite distance.
func (d Distances) Reachable(v int) bool {
	return v >= 0 && v < len(d) && d[v] != Infinity
}

// Equal reports whether d and other have the same length and values.
func (d Distances) Equal(other Distances) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}

	return true
}

// Mismatches returns the vertices whose distances differ. Indices beyond the
// shorter vector count as mismatches.
func (d Distances) Mismatches(other Distances) []int {
	n := len(d)
	if len(other) > n {
		n = len(other)
	}
	var out []int
	for i := 0; i < n; i++ {
		if i >= len(d) || i >= len(other) || d[i] != other[i] {
			out = append(out, i)
		}
	}

	return out
}
