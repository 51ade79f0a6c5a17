// SPDX-License-Identifier: MIT
// Package: lvlheap/fibheap
//
// validate.go — structural self-check used by tests and debugging tools.

package fibheap

import "fmt"

// Validate checks every invariant the heap relies on:
//   - min is nilHandle iff the heap is empty, and names a root with the
//     smallest key among all roots;
//   - every ring is symmetric (x.right.left == x);
//   - roots have no parent, children point back at their parent;
//   - degree equals the number of direct children;
//   - heap order: no child has a key smaller than its parent's;
//   - reachable node count equals Len() and equals the live arena slots.
//
// Returns nil or an error wrapping ErrCorrupt. Complexity: O(n).
func (h *Heap) Validate() error {
	live := 0
	for i := range h.nodes {
		if h.nodes[i].live {
			live++
		}
	}
	if live != h.size {
		return fmt.Errorf("%w: live slots %d, size %d", ErrCorrupt, live, h.size)
	}

	if h.min == nilHandle {
		if h.size != 0 {
			return fmt.Errorf("%w: no minimum but size %d", ErrCorrupt, h.size)
		}
		return nil
	}
	if !h.valid(h.min) {
		return fmt.Errorf("%w: minimum %d is not live", ErrCorrupt, h.min)
	}

	count := 0
	minKey := h.nodes[h.min].key
	err := h.walkRing(h.min, nilHandle, func(r Handle) error {
		if h.nodes[r].key < minKey {
			return fmt.Errorf("%w: root %d key %d below minimum key %d", ErrCorrupt, r, h.nodes[r].key, minKey)
		}
		return h.validateTree(r, &count)
	})
	if err != nil {
		return err
	}
	if count != h.size {
		return fmt.Errorf("%w: reachable nodes %d, size %d", ErrCorrupt, count, h.size)
	}

	return nil
}

// validateTree checks the subtree rooted at x and adds its node count to count.
func (h *Heap) validateTree(x Handle, count *int) error {
	*count++
	if *count > h.size {
		return fmt.Errorf("%w: more reachable nodes than size %d", ErrCorrupt, h.size)
	}
	n := h.nodes[x]
	if !n.live {
		return fmt.Errorf("%w: dead node %d reachable", ErrCorrupt, x)
	}
	if n.child == nilHandle {
		if n.degree != 0 {
			return fmt.Errorf("%w: node %d has degree %d but no child", ErrCorrupt, x, n.degree)
		}
		return nil
	}

	children := int32(0)
	err := h.walkRing(n.child, x, func(c Handle) error {
		children++
		if h.nodes[c].key < n.key {
			return fmt.Errorf("%w: heap order at %d (key %d) child %d (key %d)",
				ErrCorrupt, x, n.key, c, h.nodes[c].key)
		}
		return h.validateTree(c, count)
	})
	if err != nil {
		return err
	}
	if children != n.degree {
		return fmt.Errorf("%w: node %d degree %d, children %d", ErrCorrupt, x, n.degree, children)
	}

	return nil
}

// walkRing visits the ring containing start, checking ring symmetry and that
// each member's parent equals parent. The walk is bounded by the arena size.
func (h *Heap) walkRing(start, parent Handle, visit func(Handle) error) error {
	x := start
	for steps := 0; ; steps++ {
		if steps > len(h.nodes) {
			return fmt.Errorf("%w: ring at %d does not close", ErrCorrupt, start)
		}
		if !h.valid(x) {
			return fmt.Errorf("%w: ring at %d reaches dead slot %d", ErrCorrupt, start, x)
		}
		n := h.nodes[x]
		if !h.valid(n.right) || h.nodes[n.right].left != x {
			return fmt.Errorf("%w: ring asymmetry at %d", ErrCorrupt, x)
		}
		if n.parent != parent {
			return fmt.Errorf("%w: node %d parent %d, want %d", ErrCorrupt, x, n.parent, parent)
		}
		next := n.right
		if err := visit(x); err != nil {
			return err
		}
		x = next
		if x == start {
			return nil
		}
	}
}
