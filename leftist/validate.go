// SPDX-License-Identifier: MIT
// Package: lvlheap/leftist
//
// validate.go — structural self-check used by tests and debugging tools.

package leftist

import "fmt"

// Validate walks the whole tree and checks:
//  1. heap order: every node's key ≤ its children's keys;
//  2. leftist property: npl(left) ≥ npl(right) at every node;
//  3. npl bookkeeping: npl(node) == 1 + npl(right);
//  4. the node count equals Len();
//  5. the vertex table points at the node carrying each vertex and at nothing else.
//
// Returns nil or an error wrapping ErrCorrupt. Complexity: O(n + maxVertex).
func (t *Tree) Validate() error {
	seen := 0
	if err := t.validate(t.root, &seen); err != nil {
		return err
	}
	if seen != t.size {
		return fmt.Errorf("%w: reachable nodes %d, size %d", ErrCorrupt, seen, t.size)
	}

	mapped := 0
	for v, idx := range t.pos {
		if idx == nilNode {
			continue
		}
		mapped++
		if int(idx) >= len(t.nodes) || t.nodes[idx].vertex != v {
			return fmt.Errorf("%w: vertex %d mapped to wrong slot %d", ErrCorrupt, v, idx)
		}
	}
	if mapped != t.size {
		return fmt.Errorf("%w: mapped vertices %d, size %d", ErrCorrupt, mapped, t.size)
	}

	return nil
}

func (t *Tree) validate(i int32, seen *int) error {
	if i == nilNode {
		return nil
	}
	*seen++
	if *seen > len(t.nodes) {
		return fmt.Errorf("%w: cycle detected", ErrCorrupt)
	}

	n := t.nodes[i]
	for _, c := range [2]int32{n.left, n.right} {
		if c != nilNode && t.nodes[c].key < n.key {
			return fmt.Errorf("%w: heap order at vertex %d (key %d) child vertex %d (key %d)",
				ErrCorrupt, n.vertex, n.key, t.nodes[c].vertex, t.nodes[c].key)
		}
	}
	if t.npl(n.left) < t.npl(n.right) {
		return fmt.Errorf("%w: leftist property at vertex %d: npl(left)=%d < npl(right)=%d",
			ErrCorrupt, n.vertex, t.npl(n.left), t.npl(n.right))
	}
	if n.npl != 1+t.npl(n.right) {
		return fmt.Errorf("%w: npl at vertex %d is %d, want %d", ErrCorrupt, n.vertex, n.npl, 1+t.npl(n.right))
	}

	if err := t.validate(n.left, seen); err != nil {
		return err
	}

	return t.validate(n.right, seen)
}
