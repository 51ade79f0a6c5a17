// SPDX-License-Identifier: MIT
// Package: lvlheap/fibheap
//
// fibheap.go — Insert, ExtractMin, DecreaseKey and the ring, link, cut and
// consolidate primitives.
//
// Tie-break policy:
//   - consolidate walks roots in ring order starting at the old minimum's
//     successor. When the walked root x meets a table occupant y of the same
//     degree, they swap only if key(x) > key(y); on equal keys x stays the
//     parent and y becomes its child.
//   - DecreaseKey cuts only on a strict violation (key < parent key).

package fibheap

import "fmt"

// Insert adds a singleton node with the given key and value to the root list
// and returns its handle for later DecreaseKey calls.
//
// Complexity: O(1).
func (h *Heap) Insert(key int64, value int) Handle {
	x := h.alloc(key, value)
	h.addRoot(x)
	h.size++

	return x
}

// ExtractMin removes the node with the smallest key and returns its value and key.
//
// Steps:
//  1. Promote every child of the minimum to the root list with parent cleared.
//  2. Splice the minimum out of the root list.
//  3. If roots remain, consolidate and rebuild the minimum pointer.
//
// Complexity: O(log n) amortized.
func (h *Heap) ExtractMin() (value int, key int64, err error) {
	z := h.min
	if z == nilHandle {
		return 0, 0, ErrEmpty
	}

	// 1) Promote children.
	if c := h.nodes[z].child; c != nilHandle {
		children := h.ring(c)
		for _, x := range children {
			h.nodes[x].parent = nilHandle
			h.splice(z, x)
		}
		h.nodes[z].child = nilHandle
		h.nodes[z].degree = 0
	}

	// 2) Splice out z.
	right := h.nodes[z].right
	if right == z {
		h.min = nilHandle
	} else {
		h.unlink(z)
		h.min = right
	}

	value, key = h.nodes[z].value, h.nodes[z].key
	h.release(z)
	h.size--

	// 3) Consolidate.
	if h.min != nilHandle {
		h.consolidate()
	}

	return value, key, nil
}

// Min reports the value and key of the minimum without removing it.
func (h *Heap) Min() (value int, key int64, err error) {
	if h.min == nilHandle {
		return 0, 0, ErrEmpty
	}
	n := h.nodes[h.min]

	return n.value, n.key, nil
}

// DecreaseKey lowers the key of the node named by x to newKey.
//
// If the node now breaks heap order with its parent it is cut to the root list
// and the parent is cascading-cut. Returns ErrInvalidHandle for a handle that
// does not name a live node and ErrKeyIncrease if newKey exceeds the current
// key; in both cases the heap is unchanged.
//
// Complexity: O(1) amortized.
func (h *Heap) DecreaseKey(x Handle, newKey int64) error {
	if !h.valid(x) {
		return fmt.Errorf("%w: %d", ErrInvalidHandle, x)
	}
	n := &h.nodes[x]
	if newKey > n.key {
		return fmt.Errorf("%w: handle %d key %d -> %d", ErrKeyIncrease, x, n.key, newKey)
	}

	n.key = newKey
	if p := n.parent; p != nilHandle && newKey < h.nodes[p].key {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if newKey < h.nodes[h.min].key {
		h.min = x
	}

	return nil
}

// Key returns the current key of the node named by x.
func (h *Heap) Key(x Handle) (int64, bool) {
	if !h.valid(x) {
		return 0, false
	}

	return h.nodes[x].key, true
}

// Value returns the value stored in the node named by x.
func (h *Heap) Value(x Handle) (int, bool) {
	if !h.valid(x) {
		return 0, false
	}

	return h.nodes[x].value, true
}

// Len returns the number of nodes in the heap.
func (h *Heap) Len() int { return h.size }

// IsEmpty reports whether the heap holds no nodes.
func (h *Heap) IsEmpty() bool { return h.min == nilHandle }

// consolidate links roots of equal degree until every degree occurs at most
// once, then rescans the table for the new minimum.
func (h *Heap) consolidate() {
	roots := h.ring(h.min)
	for _, w := range roots {
		x := w
		d := h.nodes[x].degree
		for h.table[d] != nilHandle {
			y := h.table[d]
			if h.nodes[x].key > h.nodes[y].key {
				x, y = y, x
			}
			h.link(y, x)
			h.table[d] = nilHandle
			d++
		}
		h.table[d] = x
	}

	h.min = nilHandle
	for d := range h.table {
		x := h.table[d]
		if x == nilHandle {
			continue
		}
		if h.min == nilHandle || h.nodes[x].key < h.nodes[h.min].key {
			h.min = x
		}
		h.table[d] = nilHandle
	}
}

// link makes root y a child of root x.
func (h *Heap) link(y, x Handle) {
	h.unlink(y)
	if c := h.nodes[x].child; c == nilHandle {
		h.nodes[x].child = y
	} else {
		h.splice(c, y)
	}
	h.nodes[y].parent = x
	h.nodes[y].mark = false
	h.nodes[x].degree++
}

// cut moves x from p's child ring to the root list and clears its mark.
func (h *Heap) cut(x, p Handle) {
	if h.nodes[x].right == x {
		h.nodes[p].child = nilHandle
	} else {
		if h.nodes[p].child == x {
			h.nodes[p].child = h.nodes[x].right
		}
		h.unlink(x)
	}
	h.nodes[p].degree--

	h.splice(h.min, x)
	h.nodes[x].parent = nilHandle
	h.nodes[x].mark = false
}

// cascadingCut walks up from y: an unmarked non-root gets marked and the walk
// stops; a marked non-root is cut and the walk continues with its parent.
func (h *Heap) cascadingCut(y Handle) {
	for {
		z := h.nodes[y].parent
		if z == nilHandle {
			return
		}
		if !h.nodes[y].mark {
			h.nodes[y].mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

// addRoot splices a detached singleton into the root list and updates min.
func (h *Heap) addRoot(x Handle) {
	if h.min == nilHandle {
		h.min = x
		return
	}
	h.splice(h.min, x)
	if h.nodes[x].key < h.nodes[h.min].key {
		h.min = x
	}
}

// splice inserts x into the ring containing a, right after a.
func (h *Heap) splice(a, x Handle) {
	b := h.nodes[a].right
	h.nodes[x].left = a
	h.nodes[x].right = b
	h.nodes[b].left = x
	h.nodes[a].right = x
}

// unlink removes x from its ring and makes it a singleton ring.
func (h *Heap) unlink(x Handle) {
	l, r := h.nodes[x].left, h.nodes[x].right
	h.nodes[l].right = r
	h.nodes[r].left = l
	h.nodes[x].left = x
	h.nodes[x].right = x
}

// ring snapshots the ring containing start, beginning at start.
// The returned slice aliases h.scratch and is valid until the next call.
func (h *Heap) ring(start Handle) []Handle {
	h.scratch = h.scratch[:0]
	x := start
	for {
		h.scratch = append(h.scratch, x)
		x = h.nodes[x].right
		if x == start {
			break
		}
	}

	return h.scratch
}

// valid reports whether x names a live node.
func (h *Heap) valid(x Handle) bool {
	return x >= 0 && int(x) < len(h.nodes) && h.nodes[x].live
}

// alloc returns a live singleton node, recycling a freed slot when possible.
func (h *Heap) alloc(key int64, value int) Handle {
	var x Handle
	if last := len(h.free) - 1; last >= 0 {
		x = h.free[last]
		h.free = h.free[:last]
	} else {
		x = Handle(len(h.nodes))
		h.nodes = append(h.nodes, node{})
	}
	h.nodes[x] = node{
		key:    key,
		value:  value,
		live:   true,
		parent: nilHandle,
		child:  nilHandle,
		left:   x,
		right:  x,
	}

	return x
}

// release marks x dead and recycles its slot.
func (h *Heap) release(x Handle) {
	h.nodes[x] = node{parent: nilHandle, child: nilHandle, left: nilHandle, right: nilHandle}
	h.free = append(h.free, x)
}
