// SPDX-License-Identifier: MIT
package fibheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlheap/fibheap"
)

// BenchmarkHeap_InsertExtractMin measures n inserts followed by n extractions.
func BenchmarkHeap_InsertExtractMin(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := fibheap.New(fibheap.WithCapacity(n))
		for v, k := range keys {
			h.Insert(k, v)
		}
		for !h.IsEmpty() {
			_, _, _ = h.ExtractMin()
		}
	}
}

// BenchmarkHeap_DecreaseKey measures decrease-key on a consolidated heap.
func BenchmarkHeap_DecreaseKey(b *testing.B) {
	const n = 1024
	h := fibheap.New(fibheap.WithCapacity(n + 1))
	handles := make([]fibheap.Handle, n)
	for v := 0; v < n; v++ {
		handles[v] = h.Insert(int64(1<<40), v)
	}
	h.Insert(0, n)
	_, _, _ = h.ExtractMin()
	next := int64(1 << 40)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next--
		_ = h.DecreaseKey(handles[i%n], next)
	}
}
