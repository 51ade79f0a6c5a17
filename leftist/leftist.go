// SPDX-License-Identifier: MIT
// Package: lvlheap/leftist
//
// leftist.go — Insert, DeleteMin, DecreaseKey, Remove and the Meld primitive.
//
// Tie-break policy:
//   - meld(a, b) swaps its operands only when key(a) > key(b); on equal keys the
//     first operand stays the parent. This shapes the tree but never changes
//     which keys come out of DeleteMin.

package leftist

import "fmt"

// Insert adds vertex with the given key by melding a singleton node into the root.
//
// Returns ErrNegativeVertex for vertex < 0 and ErrDuplicateVertex if the vertex
// already has a node in the tree.
//
// Complexity: O(log n).
func (t *Tree) Insert(vertex int, key int64) error {
	if vertex < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertex, vertex)
	}
	t.growPos(vertex)
	if t.pos[vertex] != nilNode {
		return fmt.Errorf("%w: %d", ErrDuplicateVertex, vertex)
	}

	idx := t.alloc(vertex, key)
	t.root = t.meld(t.root, idx)
	t.size++

	return nil
}

// DeleteMin detaches the root and melds its two children into the new root.
// The returned key is the minimum among all keys in the tree.
//
// Complexity: O(log n).
func (t *Tree) DeleteMin() (vertex int, key int64, err error) {
	if t.root == nilNode {
		return 0, 0, ErrEmpty
	}

	r := t.root
	n := t.nodes[r]
	t.root = t.meld(n.left, n.right)
	t.release(r)
	t.size--

	return n.vertex, n.key, nil
}

// Min reports the root's vertex and key without removing it.
func (t *Tree) Min() (vertex int, key int64, err error) {
	if t.root == nilNode {
		return 0, 0, ErrEmpty
	}
	n := t.nodes[t.root]

	return n.vertex, n.key, nil
}

// DecreaseKey lowers the key of vertex to newKey by deleting its node and
// inserting a fresh one.
//
// The node is found by a full recursive search of the tree, not through the
// vertex table, so the cost is O(n) in the worst case. Returns
// ErrVertexNotFound if the vertex is absent and ErrKeyIncrease if newKey is
// greater than the current key; in both cases the tree is unchanged.
func (t *Tree) DecreaseKey(vertex int, newKey int64) error {
	cur, ok := t.Key(vertex)
	if !ok {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, vertex)
	}
	if newKey > cur {
		return fmt.Errorf("%w: vertex %d key %d -> %d", ErrKeyIncrease, vertex, cur, newKey)
	}

	if _, err := t.Remove(vertex); err != nil {
		return err
	}

	return t.Insert(vertex, newKey)
}

// Remove deletes the node carrying vertex from anywhere in the tree and
// returns its key.
//
// Every visited node is searched in both subtrees until the vertex is found.
// On the way back up each ancestor of the removed node gets its leftist
// property and null-path-length restored.
//
// Complexity: O(n) search + O(log n) meld.
func (t *Tree) Remove(vertex int) (int64, error) {
	key, ok := t.Key(vertex)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, vertex)
	}

	root, found := t.remove(t.root, vertex)
	if !found {
		// The vertex table says present but the tree disagrees.
		return 0, fmt.Errorf("%w: vertex %d mapped but not reachable from root", ErrCorrupt, vertex)
	}
	t.root = root
	t.size--

	return key, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return t.size }

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree) IsEmpty() bool { return t.root == nilNode }

// Contains reports whether vertex currently has a node in the tree.
func (t *Tree) Contains(vertex int) bool {
	return vertex >= 0 && vertex < len(t.pos) && t.pos[vertex] != nilNode
}

// Key returns the current key of vertex.
func (t *Tree) Key(vertex int) (int64, bool) {
	if !t.Contains(vertex) {
		return 0, false
	}

	return t.nodes[t.pos[vertex]].key, true
}

// meld merges the trees rooted at a and b and returns the new root.
//
// The root with the smaller key keeps its left subtree; its right subtree is
// recursively melded with the other tree. Recursion depth is bounded by the
// combined right-spine length, O(log n).
func (t *Tree) meld(a, b int32) int32 {
	if a == nilNode {
		return b
	}
	if b == nilNode {
		return a
	}

	// Keep the smaller key on top; equal keys leave a as the parent.
	if t.nodes[a].key > t.nodes[b].key {
		a, b = b, a
	}

	merged := t.meld(t.nodes[a].right, b)
	t.nodes[a].right = merged
	t.restore(a)

	return a
}

// remove searches the subtree rooted at i for vertex. When found, the node is
// replaced by the meld of its children and its slot is released. Returns the
// (possibly new) subtree root and whether the vertex was found.
func (t *Tree) remove(i int32, vertex int) (int32, bool) {
	if i == nilNode {
		return nilNode, false
	}

	n := t.nodes[i]
	if n.vertex == vertex {
		sub := t.meld(n.left, n.right)
		t.release(i)

		return sub, true
	}

	if sub, found := t.remove(n.left, vertex); found {
		t.nodes[i].left = sub
		t.restore(i)

		return i, true
	}
	if sub, found := t.remove(n.right, vertex); found {
		t.nodes[i].right = sub
		t.restore(i)

		return i, true
	}

	return i, false
}

// restore re-establishes the leftist property at i and recomputes its npl.
func (t *Tree) restore(i int32) {
	n := &t.nodes[i]
	switch {
	case n.left == nilNode:
		n.left, n.right = n.right, nilNode
	case t.npl(n.right) > t.npl(n.left):
		n.left, n.right = n.right, n.left
	}
	n.npl = 1 + t.npl(n.right)
}

// npl returns the null-path-length of i; absent nodes have 0.
func (t *Tree) npl(i int32) int32 {
	if i == nilNode {
		return 0
	}

	return t.nodes[i].npl
}

// alloc places a singleton node in the arena and maps vertex to it.
func (t *Tree) alloc(vertex int, key int64) int32 {
	n := node{vertex: vertex, key: key, left: nilNode, right: nilNode, npl: 1}

	var idx int32
	if last := len(t.free) - 1; last >= 0 {
		idx = t.free[last]
		t.free = t.free[:last]
		t.nodes[idx] = n
	} else {
		idx = int32(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}
	t.pos[vertex] = idx

	return idx
}

// release unmaps the vertex stored at i and recycles the slot.
func (t *Tree) release(i int32) {
	t.pos[t.nodes[i].vertex] = nilNode
	t.nodes[i] = node{left: nilNode, right: nilNode}
	t.free = append(t.free, i)
}

// growPos extends the vertex table so that vertex is addressable.
func (t *Tree) growPos(vertex int) {
	for len(t.pos) <= vertex {
		t.pos = append(t.pos, nilNode)
	}
}
