// SPDX-License-Identifier: MIT

// Package dheap implements an indexed d-ary min-heap keyed by vertex id.
//
// Each element is a (key, priority) pair stored in a flat slot array laid out
// as an implicit d-ary tree: the children of slot i are d*i+1 … d*i+d and the
// parent of slot i is (i-1)/d. A vmap.Map records the current slot of every
// key, which makes Contains O(1) and DecreaseKey a true in-place operation
// instead of the lazy "push a duplicate and skip stale entries" pattern.
//
// Operations:
//
//   - Insert       O(log_d n)   sift up; ErrDuplicateVertex if already present.
//   - DecreaseKey  O(log_d n)   sift up; no-op unless the new priority is smaller.
//   - ExtractMin   O(d·log_d n) move last slot to the root and sift down
//     across all d children.
//   - PeekMin, Priority, Contains, Len: O(1).
//
// Sizing:
//
//   - Degree defaults to 4 and may not be below 2.
//   - The slot array starts at WithCapacity (floor 4) and grows by ×1.5.
//   - WithMaxEntries bounds both the slot array and the index; exceeding it
//     yields ErrOutOfMemory, leaving the heap unchanged.
//
// A Heap is not safe for concurrent use.
package dheap
