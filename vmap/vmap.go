// SPDX-License-Identifier: MIT

package vmap

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

// entry is one arena slot. All links are arena indices (none when absent).
type entry[K constraints.Integer, V any] struct {
	key   K
	value V
	chain int // next entry in the same bucket, or next free slot
	prev  int // previous entry in insertion order
	next  int // next entry in insertion order
}

// Map is a chained hash map from integer keys to values of type V.
//
// The zero value is not usable; construct with New.
type Map[K constraints.Integer, V any] struct {
	buckets []int         // bucket -> first arena index of its chain
	entries []entry[K, V] // arena of live and free slots

	free int // head of the free-slot list
	head int // oldest live entry
	tail int // newest live entry
	size int // live entries

	mask       uint64  // len(buckets)-1
	loadFactor float64 // growth trigger
	threshold  int     // size at which the next insertion grows the table
	maxEntries int     // 0 = unbounded
}

// New creates an empty Map configured by opts.
//
// Complexity: O(capacity).
func New[K constraints.Integer, V any](opts ...Option) *Map[K, V] {
	cfg := resolve(opts)
	m := &Map[K, V]{
		loadFactor: cfg.LoadFactor,
		maxEntries: cfg.MaxEntries,
	}
	m.reset(cfg.Capacity)

	return m
}

// reset installs a fresh bucket array of the given power-of-two capacity.
func (m *Map[K, V]) reset(capacity int) {
	m.buckets = newBuckets(capacity)
	m.mask = uint64(capacity - 1)
	m.threshold = growthThreshold(capacity, m.loadFactor)
	m.entries = m.entries[:0]
	m.free, m.head, m.tail = none, none, none
	m.size = 0
}

// growthThreshold is the entry count at which a bucket array of the given
// capacity doubles. Load factors too large for an int never trigger growth.
func growthThreshold(capacity int, loadFactor float64) int {
	t := float64(capacity) * loadFactor
	if t >= math.MaxInt {
		return math.MaxInt
	}

	return int(t)
}

func newBuckets(n int) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = none
	}

	return b
}

// hash spreads the key bits (64-bit finalizer from MurmurHash3) so that dense
// or strided vertex ids do not pile into a few buckets under mask indexing.
func hash[K constraints.Integer](k K) uint64 {
	x := uint64(k)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}

// find returns the arena index holding k, or none.
func (m *Map[K, V]) find(k K) int {
	for i := m.buckets[hash(k)&m.mask]; i != none; i = m.entries[i].chain {
		if m.entries[i].key == k {
			return i
		}
	}

	return none
}

// Put inserts k→v or overwrites the value of an existing key.
// Overwriting never fails. Inserting a new key fails with ErrOutOfMemory when
// the entry limit is reached; the map is left unchanged in that case.
func (m *Map[K, V]) Put(k K, v V) error {
	if i := m.find(k); i != none {
		m.entries[i].value = v
		return nil
	}
	if m.maxEntries > 0 && m.size >= m.maxEntries {
		return ErrOutOfMemory
	}
	if m.size >= m.threshold {
		m.grow()
	}

	i := m.alloc(k, v)
	b := hash(k) & m.mask
	m.entries[i].chain = m.buckets[b]
	m.buckets[b] = i

	// Append to the insertion-order list.
	m.entries[i].prev = m.tail
	if m.tail == none {
		m.head = i
	} else {
		m.entries[m.tail].next = i
	}
	m.tail = i
	m.size++

	return nil
}

// alloc takes a slot from the free list or appends one to the arena.
func (m *Map[K, V]) alloc(k K, v V) int {
	e := entry[K, V]{key: k, value: v, chain: none, prev: none, next: none}
	if m.free != none {
		i := m.free
		m.free = m.entries[i].chain
		m.entries[i] = e
		return i
	}
	m.entries = append(m.entries, e)

	return len(m.entries) - 1
}

// grow doubles the bucket array and rehashes every live entry.
func (m *Map[K, V]) grow() {
	capacity := len(m.buckets) << 1
	m.buckets = newBuckets(capacity)
	m.mask = uint64(capacity - 1)
	m.threshold = growthThreshold(capacity, m.loadFactor)

	for i := m.head; i != none; i = m.entries[i].next {
		b := hash(m.entries[i].key) & m.mask
		m.entries[i].chain = m.buckets[b]
		m.buckets[b] = i
	}
}

// Get returns the value stored under k, or ErrKeyNotFound.
func (m *Map[K, V]) Get(k K) (V, error) {
	if i := m.find(k); i != none {
		return m.entries[i].value, nil
	}
	var zero V

	return zero, ErrKeyNotFound
}

// Lookup returns the value stored under k and whether it was present.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	if i := m.find(k); i != none {
		return m.entries[i].value, true
	}
	var zero V

	return zero, false
}

// MustGet returns the value stored under k and panics if k is absent.
// Use it only where presence is guaranteed by construction.
func (m *Map[K, V]) MustGet(k K) V {
	i := m.find(k)
	if i == none {
		panic(ErrKeyNotFound)
	}

	return m.entries[i].value
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.find(k) != none
}

// Remove deletes k and reports whether it was present.
// The freed slot is recycled by a later Put.
func (m *Map[K, V]) Remove(k K) bool {
	b := hash(k) & m.mask
	prev := none
	for i := m.buckets[b]; i != none; i = m.entries[i].chain {
		if m.entries[i].key != k {
			prev = i
			continue
		}

		// Unlink from the bucket chain.
		if prev == none {
			m.buckets[b] = m.entries[i].chain
		} else {
			m.entries[prev].chain = m.entries[i].chain
		}

		// Unlink from the insertion-order list.
		e := &m.entries[i]
		if e.prev == none {
			m.head = e.next
		} else {
			m.entries[e.prev].next = e.next
		}
		if e.next == none {
			m.tail = e.prev
		} else {
			m.entries[e.next].prev = e.prev
		}

		*e = entry[K, V]{chain: m.free, prev: none, next: none}
		m.free = i
		m.size--

		return true
	}

	return false
}

// Clear removes all entries but keeps the current bucket capacity.
// Only the buckets referenced by live entries are reset.
func (m *Map[K, V]) Clear() {
	for i := m.head; i != none; i = m.entries[i].next {
		m.buckets[hash(m.entries[i].key)&m.mask] = none
	}
	clear(m.entries)
	m.entries = m.entries[:0]
	m.free, m.head, m.tail = none, none, none
	m.size = 0
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the current bucket count (always a power of two).
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// All yields every key/value pair in insertion order.
// The key being yielded may be removed from inside the loop body; any other
// mutation during iteration has undefined iteration order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := m.head; i != none; {
			e := m.entries[i]
			if !yield(e.key, e.value) {
				return
			}
			i = e.next
		}
	}
}

// Keys yields every key in insertion order, with the same mutation rules as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
