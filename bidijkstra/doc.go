// SPDX-License-Identifier: MIT

// Package bidijkstra finds single-pair shortest paths on directed graphs with
// non-negative edge weights using bidirectional Dijkstra, and ships the plain
// unidirectional variant as a reference oracle.
//
// Overview:
//
//   - FindShortestPath grows a forward frontier from the source over
//     outgoing edges and a backward frontier from the target over incoming
//     edges. Each frontier owns an indexed d-ary heap (dheap), a closed set,
//     a distance map and a parent map (vmap).
//   - FindShortestPathUnidirectional runs one forward frontier and stops the
//     first time the target is popped.
//
// Bidirectional algorithm:
//
//  1. Validate: nil graph → ErrNoGraph; absent endpoints → ErrNoSourceVertex
//     and/or ErrNoTargetVertex (joined). source == target returns [source]
//     without allocating any search state.
//  2. Seed (source, 0) forward and (target, 0) backward; each root is its own
//     parent.
//  3. While both open sets are non-empty:
//     a) if a meeting vertex is known and
//     dist[minForward] + dist[minBackward] > best, stop;
//     b) expand the side with the smaller |open|+|closed| (forward on ties);
//     c) pop its minimum into the closed set and relax every neighbor not yet
//     closed on that side (insert or decrease-key, parent = popped vertex);
//     d) for every scanned neighbor the other side has reached, the meeting
//     length is distOwn[n] + distOther[n]; a smaller one replaces best and
//     makes n the meeting vertex.
//  4. No meeting vertex → ErrNoPath. Otherwise the forward parent chain of
//     the meeting vertex is prepended and the backward chain appended,
//     giving source→…→meeting→…→target.
//
// Resource model:
//
//   - Every call allocates and owns its heaps, maps and sets; all of them are
//     released on every exit path. Concurrent searches over one graph are
//     safe as long as the graph is not mutated meanwhile.
//   - WithMaxEntries bounds every structure; hitting it aborts the search with
//     ErrNoMemory and no partial path is returned.
//   - A missing distance or parent entry that must exist by construction is
//     a defect and panics.
//
// Options:
//
//	WithDegree(d)            heap branching factor (default 4)
//	WithInitialCapacity(n)   initial heap and map size (default 1024)
//	WithLoadFactor(f)        map growth trigger (default 1.3)
//	WithMaxEntries(n)        per-structure entry limit (default unbounded)
//	WithLogger(l)            debug-level search summaries
//	WithOnExpand(fn)         called for each closed vertex
//	WithStats(st)            expansion and relaxation counters
//
// Outcomes map onto a Status bitmask through StatusOf for reporting.
package bidijkstra
