// SPDX-License-Identifier: MIT
package shortestpath_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlheap/builder"
	"github.com/katalvlaran/lvlheap/shortestpath"
)

// BenchmarkRun measures both queues on seeded random graphs of rising density.
func BenchmarkRun(b *testing.B) {
	for _, n := range []int{500, 2000} {
		for _, percent := range []float64{1, 10} {
			g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDensity(percent))
			if err != nil {
				b.Fatal(err)
			}
			for _, k := range shortestpath.QueueKinds() {
				b.Run(fmt.Sprintf("%s/n=%d/d=%.0f%%", k, n, percent), func(b *testing.B) {
					b.ReportAllocs()
					for i := 0; i < b.N; i++ {
						if _, err := shortestpath.Run(g, 0, shortestpath.WithQueue(k)); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		}
	}
}
