// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory directed weighted graph
// that the search packages run on.
//
// The Graph G = (V,E) stores, for every vertex, two adjacency maps:
//
//   - children: successor id → weight of the edge vertex→successor
//   - parents:  predecessor id → weight of the edge predecessor→vertex
//
// so a forward search walks Children and a backward search walks Parents with
// the same O(1)-per-pair cost. Both maps are vmap.Map values; the pair
// (children, parents) is kept consistent by every mutator:
//
//	u.children[v] == w  ⇔  v.parents[u] == w
//
// Constraints:
//
//   - Vertex ids are non-negative ints (ErrBadVertexID otherwise).
//   - Edge weights are finite and non-negative (ErrNegativeWeight, ErrBadWeight).
//   - At most one edge per ordered pair; AddEdge on an existing pair
//     overwrites the weight.
//   - Self-loops require WithLoops() (ErrLoopNotAllowed otherwise).
//
// Core methods:
//
//	AddVertex(id) error                       // O(1)
//	HasVertex(id) bool                        // O(1), false on a nil *Graph
//	RemoveVertex(id) error                    // O(deg(v))
//	AddEdge(from, to, w) error                // O(1) amortized, auto-adds endpoints
//	HasEdge(from, to) bool                    // O(1)
//	EdgeWeight(from, to) (float64, error)     // O(1)
//	RemoveEdge(from, to) error                // O(1)
//	Children(id) / Parents(id) iter.Seq2      // O(deg) per pass
//	OutDegree / InDegree                      // O(1)
//	Vertices() / Edges()                      // sorted, O(V log V) / O(E log E)
//	Clone() / Clear()
//
// Concurrency:
//
// A single sync.RWMutex guards the graph. Children and Parents take the read
// lock only long enough to snapshot the vertex's adjacency, then yield from
// the snapshot, so a loop body may call back into the graph (even mutate it)
// without deadlocking. Searches never mutate the graph they read.
package core
