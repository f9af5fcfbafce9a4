// SPDX-License-Identifier: MIT
package vmap_test

import (
	"fmt"

	"github.com/katalvlaran/bidir/vmap"
)

// ExampleMap shows overwrite semantics and insertion-order iteration.
func ExampleMap() {
	dist := vmap.New[int, float64](vmap.WithCapacity(64))
	_ = dist.Put(10, 4.5)
	_ = dist.Put(3, 1.0)
	_ = dist.Put(10, 2.5) // overwrite keeps position

	for v, d := range dist.All() {
		fmt.Printf("%d=%.1f\n", v, d)
	}
	_, err := dist.Get(99)
	fmt.Println(err)
	// Output:
	// 10=2.5
	// 3=1.0
	// vmap: key not found
}
