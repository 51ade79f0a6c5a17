// SPDX-License-Identifier: MIT
package fibheap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/fibheap"
)

// ExampleHeap keeps the handles returned by Insert to decrease keys later.
func ExampleHeap() {
	h := fibheap.New()
	a := h.Insert(40, 0)
	h.Insert(10, 1)
	h.Insert(30, 2)

	if err := h.DecreaseKey(a, 5); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := h.DecreaseKey(a, 50); err != nil {
		fmt.Println("rejected:", err)
	}

	for !h.IsEmpty() {
		v, k, _ := h.ExtractMin()
		fmt.Printf("value=%d key=%d\n", v, k)
	}
	// Output:
	// rejected: fibheap: new key is greater than current key: handle 0 key 5 -> 50
	// value=0 key=5
	// value=1 key=10
	// value=2 key=30
}
