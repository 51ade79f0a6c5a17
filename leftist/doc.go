// SPDX-License-Identifier: MIT

// Package leftist implements a min-ordered leftist tree keyed by int64
// distances and carrying an int vertex payload.
//
// Overview:
//
//   - A leftist tree is a heap-ordered binary tree in which every node
//     satisfies npl(left) ≥ npl(right), where npl (null-path-length) is the
//     length of the shortest path from a node to a descendant lacking a
//     child. An absent child has npl 0 and a node has npl = 1 + npl(right).
//   - Because the right spine of an n-node leftist tree has at most
//     ⌊log₂(n+1)⌋ nodes, Meld walks only right spines and runs in O(log n).
//   - Insert and DeleteMin are both expressed through Meld.
//
// Decrease-key:
//
//   - DecreaseKey is delete-then-reinsert. The node for the vertex is located
//     by a recursive search over both subtrees of every visited node (no parent
//     pointers), its two children are melded into its place, and a fresh
//     singleton with the new key is melded back in.
//   - The search is O(n) in the worst case. This is a known inefficiency kept on
//     purpose so the tree behaves like a plain mergeable heap without parent
//     links; use package fibheap when decrease-key cost matters.
//
// Storage:
//
//   - Nodes live in an arena slice addressed by int32 indices; child links are
//     indices (nilNode == -1). Freed slots are recycled through a free list.
//   - A vertex → slot table backs Contains and Key in O(1). It does not
//     shortcut the deletion search.
//
// Complexity:
//
//   - Insert:      O(log n)
//   - DeleteMin:   O(log n)
//   - DecreaseKey: O(n) search + O(log n) melds
//   - Space:       O(n + maxVertex)
//
// Errors (sentinel):
//
//   - ErrEmpty            DeleteMin or Min on an empty tree.
//   - ErrNegativeVertex   vertex id < 0.
//   - ErrDuplicateVertex  Insert of a vertex that is already in the tree.
//   - ErrVertexNotFound   DecreaseKey of a vertex that is not in the tree.
//   - ErrKeyIncrease      DecreaseKey with a key larger than the current one.
//   - ErrCorrupt          Validate found a broken invariant.
//
// Thread safety:
//
//   - A Tree is not safe for concurrent use. It is meant to be owned by a single
//     shortest-path run and discarded afterwards.
package leftist
