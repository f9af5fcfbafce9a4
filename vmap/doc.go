// SPDX-License-Identifier: MIT

// Package vmap provides the keyed hash map used for every piece of per-vertex
// bookkeeping in the search packages: tentative distances, predecessors,
// closed sets, heap position indices and the graph's own adjacency.
//
// Overview:
//
//   - Map[K, V] maps an integer vertex key to a value of any type.
//   - Set[K] is the payload-free specialization used for closed sets.
//   - Iteration (All, Keys) visits live entries in insertion order.
//
// Layout:
//
//   - The bucket array length is always a power of two; a bucket is selected
//     with hash(k) & (capacity-1), never with a modulo.
//   - Entries live in a single arena slice and are addressed by index. Each
//     entry carries its collision-chain link and its insertion-order links
//     (prev/next) as arena indices, so removal and rehashing can never leave
//     a dangling reference. Freed slots are recycled through a free list.
//
// Growth policy:
//
//   - Before a new key is inserted, if Len() >= capacity*loadFactor the bucket
//     array doubles and every live entry is rehashed by walking the
//     insertion-order list.
//   - Capacity is floored at MinCapacity and rounded up to a power of two; the
//     load factor is floored at MinLoadFactor. Load factors above 1 are legal
//     (chains simply get longer).
//
// Errors:
//
//   - ErrKeyNotFound  – Get on an absent key.
//   - ErrOutOfMemory  – Put/Add of a new key would exceed the limit configured
//     with WithMaxEntries. Go has no recoverable allocation failure, so the
//     entry limit is how callers bound (and test) growth failure.
//
// Complexity:
//
//   - Put, Get, Lookup, Contains, Remove: O(1) expected.
//   - Clear: O(Len()) – only buckets referenced by live entries are reset.
//   - Growth: O(Len()) per doubling, amortized O(1) per insertion.
//
// Thread safety:
//
//   - A Map is not safe for concurrent mutation. Searches own their maps
//     exclusively; the core graph guards its maps with its own lock.
package vmap
