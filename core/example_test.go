// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/bidir/core"
)

// ExampleGraph demonstrates building a directed graph and reading both
// adjacency directions.
func ExampleGraph() {
	// 1) Create a graph and add edges (endpoints are auto-added).
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 2.5)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 1)

	// 2) Walk successors of 0 and predecessors of 1.
	for v, w := range g.Children(0) {
		fmt.Printf("0 -> %d (%g)\n", v, w)
	}
	for u, w := range g.Parents(1) {
		fmt.Printf("%d -> 1 (%g)\n", u, w)
	}

	// 3) Edges are reported sorted.
	fmt.Println(g.Edges())
	// Output:
	// 0 -> 1 (2.5)
	// 0 -> 2 (1)
	// 0 -> 1 (2.5)
	// 2 -> 1 (1)
	// [0->1(2.5) 0->2(1) 2->1(1)]
}
