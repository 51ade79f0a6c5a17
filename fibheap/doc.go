// SPDX-License-Identifier: MIT

// Package fibheap implements a Fibonacci heap (min-heap) with int64 keys and
// int values, addressed through stable handles so that DecreaseKey runs in
// O(1) amortized time.
//
// Structure:
//
//   - The heap is a circular doubly linked root list of heap-ordered trees plus
//     a pointer to the root with the smallest key.
//   - Every node's children form their own circular ring; the parent points at
//     one of them. A singleton ring links to itself.
//   - Nodes are stored in an arena and all links (parent, child, left, right)
//     are arena indices. A Handle is such an index and stays valid until the
//     node it names is extracted.
//
// Operations and amortized costs (potential = roots + 2·marked):
//
//   - Insert:      O(1)      splice a singleton next to the minimum.
//   - ExtractMin:  O(log n)  promote children, splice out, consolidate.
//   - DecreaseKey: O(1)      cut from the parent and cascade over marked ancestors.
//
// Consolidation walks the root list once and links roots of equal degree
// (the larger key becomes the child) through a degree-indexed table, leaving
// at most one root per degree. The table has a fixed size of maxDegree slots,
// well above log_φ(2^63) ≈ 91, so no input can overflow it.
//
// Marks: a non-root node is marked once it has lost a child since it last
// became a child. Losing a second child cuts it to the root list, which is
// what keeps subtree sizes exponential in degree.
//
// Errors (sentinel):
//
//   - ErrEmpty          ExtractMin or Min on an empty heap.
//   - ErrInvalidHandle  handle out of range or naming an extracted node.
//   - ErrKeyIncrease    DecreaseKey with a key larger than the current one.
//   - ErrCorrupt        Validate found a broken invariant.
//
// A Heap is not safe for concurrent use.
package fibheap
