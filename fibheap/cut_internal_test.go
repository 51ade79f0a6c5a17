// SPDX-License-Identifier: MIT
package fibheap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// findInner returns a live non-root node with at least two children.
func findInner(h *Heap) Handle {
	for i := range h.nodes {
		n := h.nodes[i]
		if n.live && n.parent != nilHandle && n.degree >= 2 {
			return Handle(i)
		}
	}

	return nilHandle
}

func TestCascadingCut(t *testing.T) {
	h := New()
	for k := 0; k < 16; k++ {
		h.Insert(int64(k), k)
	}
	// 15 nodes remain after consolidation: trees of degree 3, 2, 1 and 0.
	_, _, err := h.ExtractMin()
	require.NoError(t, err)
	require.NoError(t, h.Validate())

	p := findInner(h)
	require.NotEqual(t, nilHandle, p)
	g := h.nodes[p].parent
	require.Equal(t, nilHandle, h.nodes[g].parent, "grandparent should be a root")

	children := append([]Handle(nil), h.ring(h.nodes[p].child)...)
	require.GreaterOrEqual(t, len(children), 2)
	c1, c2 := children[0], children[1]
	degree := h.nodes[p].degree

	// First loss marks the parent and leaves it in place.
	require.NoError(t, h.DecreaseKey(c1, -10))
	require.NoError(t, h.Validate())
	require.Equal(t, nilHandle, h.nodes[c1].parent)
	require.True(t, h.nodes[p].mark)
	require.Equal(t, degree-1, h.nodes[p].degree)
	require.Equal(t, g, h.nodes[p].parent)
	require.Equal(t, c1, h.min)

	// Second loss cuts the marked parent to the root list; the cascade stops at the root.
	require.NoError(t, h.DecreaseKey(c2, -20))
	require.NoError(t, h.Validate())
	require.Equal(t, nilHandle, h.nodes[c2].parent)
	require.Equal(t, nilHandle, h.nodes[p].parent)
	require.False(t, h.nodes[p].mark)
	require.False(t, h.nodes[g].mark)
	require.Equal(t, c2, h.min)

	prev := int64(-1 << 62)
	for !h.IsEmpty() {
		_, k, err := h.ExtractMin()
		require.NoError(t, err)
		require.NoError(t, h.Validate())
		require.GreaterOrEqual(t, k, prev)
		prev = k
	}
}

func TestDecreaseKeyWithoutViolationKeepsParent(t *testing.T) {
	h := New()
	for k := 0; k < 8; k++ {
		h.Insert(int64(k*10), k)
	}
	_, _, err := h.ExtractMin()
	require.NoError(t, err)

	var x Handle = nilHandle
	for i := range h.nodes {
		if h.nodes[i].live && h.nodes[i].parent != nilHandle {
			x = Handle(i)
			break
		}
	}
	require.NotEqual(t, nilHandle, x)
	p := h.nodes[x].parent

	// Lowering to exactly the parent's key does not violate heap order.
	require.NoError(t, h.DecreaseKey(x, h.nodes[p].key))
	require.Equal(t, p, h.nodes[x].parent)
	require.False(t, h.nodes[p].mark)
	require.NoError(t, h.Validate())
}

func TestConsolidateBoundsRootList(t *testing.T) {
	h := New()
	const n = 1 << 10
	for k := 0; k < n; k++ {
		h.Insert(int64(k), k)
	}
	_, _, err := h.ExtractMin()
	require.NoError(t, err)

	// n-1 = 1023 = 2^10 - 1 nodes consolidate into exactly ten binomial trees.
	roots := h.ring(h.min)
	require.Len(t, roots, 10)
	seen := make(map[int32]bool)
	for _, r := range roots {
		d := h.nodes[r].degree
		require.False(t, seen[d], "two roots with degree %d", d)
		seen[d] = true
	}
}
