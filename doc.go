// SPDX-License-Identifier: MIT

// Package bidir is a point-to-point shortest-path toolkit built around
// bidirectional Dijkstra over directed graphs with non-negative weights.
//
// 🚀 What is in the box?
//
//	• core/       - thread-safe directed Graph with children and parents per vertex
//	• bidijkstra/ - bidirectional and unidirectional Dijkstra, status codes, stats, hooks
//	• dheap/      - indexed d-ary min-heap with decrease-key
//	• vmap/       - insertion-ordered hash map and set keyed by integer ids
//	• vlist/      - growable ring deque used for path reconstruction
//	• builder/    - deterministic graph fixtures (random, grid, path, complete, disjoint)
//	• graphio/    - YAML edge lists
//	• osmload/    - OpenStreetMap extracts (XML, PBF) as routable graphs
//	• cmd/bidirbench - benchmark CLI comparing both searches
//
// ✨ How the search works
//
// Two frontiers grow at once: forward from the source over outgoing edges,
// backward from the target over incoming edges. The smaller frontier is
// expanded next. Whenever a scanned vertex is known to both sides, the
// combined distance is a candidate path; the search stops once the two
// frontier minima together exceed the best candidate.
//
// Quick example:
//
//	    0 ──3──▶ 1
//	    │        ▲
//	    1        4
//	    ▼        │
//	    2 ───────┘
//
//	g := core.NewGraph()
//	_ = g.AddEdge(0, 1, 3)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 1)
//	path, _ := bidijkstra.FindShortestPath(g, 0, 1) // [0 2 1]
//
//	go get github.com/katalvlaran/bidir
package bidir
