// SPDX-License-Identifier: MIT
// Package: lvlheap/fibheap
//
// types.go — sentinel errors, options, Handle, arena node and the Heap type.

package fibheap

import "errors"

// Sentinel errors returned by Heap operations.
var (
	// ErrEmpty indicates ExtractMin or Min was called on an empty heap.
	ErrEmpty = errors.New("fibheap: heap is empty")

	// ErrInvalidHandle indicates a handle that does not name a live node.
	ErrInvalidHandle = errors.New("fibheap: invalid handle")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("fibheap: new key is greater than current key")

	// ErrCorrupt indicates Validate detected a broken structural invariant.
	ErrCorrupt = errors.New("fibheap: invariant violated")
)

// maxDegree sizes the consolidation table. Degrees are bounded by
// log_φ(n) < 92 for any n that fits in an int64.
const maxDegree = 128

// Handle names a node inside a Heap. It is returned by Insert and stays valid
// until ExtractMin removes that node; a later Insert may reuse the slot.
type Handle int32

// nilHandle marks an absent link.
const nilHandle Handle = -1

// node is one arena entry. Ring links are never nilHandle for a live node.
type node struct {
	key    int64
	value  int
	degree int32  // number of direct children
	mark   bool   // lost a child since it last became a child
	live   bool   // false once extracted
	parent Handle // nilHandle for roots
	child  Handle // any one child, nilHandle if none
	left   Handle // ring predecessor
	right  Handle // ring successor
}

// Options configures a Heap.
type Options struct {
	// Capacity pre-sizes the node arena.
	Capacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity pre-allocates room for n nodes. Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("fibheap: WithCapacity(n < 0)")
	}
	return func(o *Options) {
		o.Capacity = n
	}
}

// Heap is a Fibonacci min-heap.
//
// The zero value is not usable; construct with New.
type Heap struct {
	nodes   []node
	free    []Handle
	min     Handle // root with the smallest key, nilHandle iff empty
	size    int
	table   [maxDegree]Handle // consolidation scratch, all nilHandle between calls
	scratch []Handle          // ring snapshot scratch
}

// New returns an empty Heap.
func New(opts ...Option) *Heap {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Heap{
		nodes: make([]node, 0, cfg.Capacity),
		min:   nilHandle,
	}
	for i := range h.table {
		h.table[i] = nilHandle
	}

	return h
}
