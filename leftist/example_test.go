// SPDX-License-Identifier: MIT
package leftist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlheap/leftist"
)

// ExampleTree shows the delete-then-reinsert decrease-key path.
func ExampleTree() {
	tr := leftist.New()
	_ = tr.Insert(0, 40)
	_ = tr.Insert(1, 10)
	_ = tr.Insert(2, 30)

	// Vertex 0 drops below everyone else.
	_ = tr.DecreaseKey(0, 5)

	for !tr.IsEmpty() {
		v, k, _ := tr.DeleteMin()
		fmt.Printf("vertex=%d key=%d\n", v, k)
	}
	// Output:
	// vertex=0 key=5
	// vertex=1 key=10
	// vertex=2 key=30
}
