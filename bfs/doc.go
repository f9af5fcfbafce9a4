// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over the children (or parents)
// of a directed graph, returning hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - Hooks: OnVisit may abort the walk with an error.
//   - WithReverse walks incoming edges instead of outgoing ones.
//   - WithMaxDepth bounds the explored layers.
//
// Why
//
//	Weights are ignored, so BFS answers reachability in O(V + E). The
//	benchmark harness uses Reachable as an independent oracle: a shortest
//	path search must report NoPath exactly when the target is unreachable.
//
// Determinism
//
//	Neighbors are expanded in the graph's adjacency order, which for
//	core.Graph is insertion order, so the visit sequence is reproducible.
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid option (negative depth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
