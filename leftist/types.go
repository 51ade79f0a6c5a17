// SPDX-License-Identifier: MIT
// Package: lvlheap/leftist
//
// types.go — sentinel errors, options, arena node and the Tree type.

package leftist

import "errors"

// Sentinel errors returned by Tree operations.
var (
	// ErrEmpty indicates DeleteMin or Min was called on an empty tree.
	ErrEmpty = errors.New("leftist: tree is empty")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("leftist: vertex id must be non-negative")

	// ErrDuplicateVertex indicates an Insert for a vertex that already has a node.
	ErrDuplicateVertex = errors.New("leftist: vertex already present")

	// ErrVertexNotFound indicates a DecreaseKey for a vertex without a node.
	ErrVertexNotFound = errors.New("leftist: vertex not found")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("leftist: new key is greater than current key")

	// ErrCorrupt indicates Validate detected a broken structural invariant.
	ErrCorrupt = errors.New("leftist: invariant violated")
)

// nilNode marks an absent child link or an unmapped vertex.
const nilNode int32 = -1

// node is one arena entry.
type node struct {
	vertex int   // payload
	key    int64 // priority; smaller is better
	left   int32 // arena index of the left child or nilNode
	right  int32 // arena index of the right child or nilNode
	npl    int32 // null-path-length: 1 + npl(right)
}

// Options configures a Tree.
type Options struct {
	// Capacity pre-sizes the arena and the vertex table.
	Capacity int
}

// Option is a functional option for New.
type Option func(*Options)

// WithCapacity pre-allocates room for n nodes and vertex ids in [0,n).
// Panics if n is negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("leftist: WithCapacity(n < 0)")
	}
	return func(o *Options) {
		o.Capacity = n
	}
}

// Tree is a min-ordered leftist tree over (vertex, key) pairs.
//
// The zero value is not usable; construct with New.
type Tree struct {
	nodes []node  // arena
	free  []int32 // recycled arena slots
	pos   []int32 // vertex → arena slot, nilNode when absent
	root  int32   // arena index of the root or nilNode
	size  int     // number of live nodes
}

// New returns an empty Tree.
func New(opts ...Option) *Tree {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{
		nodes: make([]node, 0, cfg.Capacity),
		pos:   make([]int32, cfg.Capacity),
		root:  nilNode,
	}
	for i := range t.pos {
		t.pos[i] = nilNode
	}

	return t
}
