// SPDX-License-Identifier: MIT
package leftist_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlheap/leftist"
)

// BenchmarkTree_InsertDeleteMin measures n inserts followed by n DeleteMin calls.
func BenchmarkTree_InsertDeleteMin(b *testing.B) {
	const n = 4096
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := leftist.New(leftist.WithCapacity(n))
		for v, k := range keys {
			_ = tr.Insert(v, k)
		}
		for !tr.IsEmpty() {
			_, _, _ = tr.DeleteMin()
		}
	}
}

// BenchmarkTree_DecreaseKey shows the O(n) search cost of delete+reinsert.
func BenchmarkTree_DecreaseKey(b *testing.B) {
	const n = 1024
	tr := leftist.New(leftist.WithCapacity(n))
	for v := 0; v < n; v++ {
		_ = tr.Insert(v, int64(1<<40))
	}
	next := int64(1 << 40)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next--
		_ = tr.DecreaseKey(i%n, next)
	}
}
