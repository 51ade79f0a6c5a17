// SPDX-License-Identifier: MIT
// Package: lvlheap/shortestpath
//
// queue.go — adapters presenting leftist.Tree and fibheap.Heap as one
// vertex-keyed priority queue.

package shortestpath

import (
	"github.com/katalvlaran/lvlheap/fibheap"
	"github.com/katalvlaran/lvlheap/leftist"
)

// queue is the decrease-key priority queue the runner drives.
// Every vertex is pushed exactly once; pop is only called when !empty().
type queue interface {
	push(v int, key int64) error
	pop() (v int, key int64, err error)
	decrease(v int, key int64) error
	empty() bool
}

// newQueue builds a fresh queue of kind k sized for n vertices.
func newQueue(k QueueKind, n int) (queue, error) {
	switch k {
	case FibonacciHeap:
		return &fibQueue{
			heap:    fibheap.New(fibheap.WithCapacity(n)),
			handles: make([]fibheap.Handle, n),
		}, nil
	case LeftistTree:
		return &leftistQueue{tree: leftist.New(leftist.WithCapacity(n))}, nil
	default:
		return nil, ErrUnknownQueue
	}
}

// fibQueue keeps the handle of every vertex so decrease is O(1) amortized.
type fibQueue struct {
	heap    *fibheap.Heap
	handles []fibheap.Handle // vertex → handle returned by Insert
}

func (q *fibQueue) push(v int, key int64) error {
	q.handles[v] = q.heap.Insert(key, v)
	return nil
}

func (q *fibQueue) pop() (int, int64, error) { return q.heap.ExtractMin() }

func (q *fibQueue) decrease(v int, key int64) error {
	return q.heap.DecreaseKey(q.handles[v], key)
}

func (q *fibQueue) empty() bool { return q.heap.IsEmpty() }

// leftistQueue forwards to the tree, whose decrease-key searches the whole tree.
type leftistQueue struct {
	tree *leftist.Tree
}

func (q *leftistQueue) push(v int, key int64) error { return q.tree.Insert(v, key) }

func (q *leftistQueue) pop() (int, int64, error) { return q.tree.DeleteMin() }

func (q *leftistQueue) decrease(v int, key int64) error { return q.tree.DecreaseKey(v, key) }

func (q *leftistQueue) empty() bool { return q.tree.IsEmpty() }
