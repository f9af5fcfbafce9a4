// SPDX-License-Identifier: MIT

package dheap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/bidir/vmap"
)

type slot[K constraints.Integer] struct {
	key      K
	priority float64
}

// Heap is an indexed d-ary min-heap. Construct with New.
type Heap[K constraints.Integer] struct {
	slots      []slot[K]
	index      *vmap.Map[K, int] // key -> slot position
	degree     int
	maxEntries int
}

// New creates an empty Heap.
func New[K constraints.Integer](opts ...Option) *Heap[K] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < MinCapacity {
		cfg.Capacity = MinCapacity
	}

	indexOpts := []vmap.Option{
		vmap.WithCapacity(cfg.Capacity),
		vmap.WithMaxEntries(cfg.MaxEntries),
	}
	if cfg.LoadFactor > 0 {
		indexOpts = append(indexOpts, vmap.WithLoadFactor(cfg.LoadFactor))
	}

	return &Heap[K]{
		slots:      make([]slot[K], 0, cfg.Capacity),
		index:      vmap.New[K, int](indexOpts...),
		degree:     cfg.Degree,
		maxEntries: cfg.MaxEntries,
	}
}

// Insert adds k with priority p.
func (h *Heap[K]) Insert(k K, p float64) error {
	if h.index.Contains(k) {
		return fmt.Errorf("%w: %v", ErrDuplicateVertex, k)
	}
	n := len(h.slots)
	if h.maxEntries > 0 && n >= h.maxEntries {
		return ErrOutOfMemory
	}
	if err := h.index.Put(k, n); err != nil {
		if errors.Is(err, vmap.ErrOutOfMemory) {
			return ErrOutOfMemory
		}
		return err
	}
	if n == cap(h.slots) {
		grown := make([]slot[K], n, n+n/2+1)
		copy(grown, h.slots)
		h.slots = grown
	}
	h.slots = append(h.slots, slot[K]{key: k, priority: p})
	h.siftUp(n)

	return nil
}

// DecreaseKey lowers the priority of k to p and reports whether it changed.
// A p that is not strictly smaller than the current priority is ignored.
// Panics if k is not in the heap.
func (h *Heap[K]) DecreaseKey(k K, p float64) bool {
	pos, ok := h.index.Lookup(k)
	if !ok {
		panic(fmt.Sprintf("dheap: DecreaseKey(%v): key not in heap", k))
	}
	if !(p < h.slots[pos].priority) {
		return false
	}
	h.slots[pos].priority = p
	h.siftUp(pos)

	return true
}

// ExtractMin removes and returns the key with the smallest priority.
// Ties are broken arbitrarily.
func (h *Heap[K]) ExtractMin() (K, error) {
	n := len(h.slots)
	if n == 0 {
		var zero K
		return zero, ErrEmpty
	}

	root := h.slots[0]
	last := h.slots[n-1]
	h.slots = h.slots[:n-1]
	h.index.Remove(root.key)
	if n > 1 {
		h.place(0, last)
		h.siftDown(0)
	}

	return root.key, nil
}

// PeekMin returns the minimum key and its priority without removing it.
func (h *Heap[K]) PeekMin() (K, float64, bool) {
	if len(h.slots) == 0 {
		var zero K
		return zero, 0, false
	}

	return h.slots[0].key, h.slots[0].priority, true
}

// Priority returns the current priority of k.
func (h *Heap[K]) Priority(k K) (float64, bool) {
	pos, ok := h.index.Lookup(k)
	if !ok {
		return 0, false
	}

	return h.slots[pos].priority, true
}

// Contains reports whether k is in the heap.
func (h *Heap[K]) Contains(k K) bool { return h.index.Contains(k) }

// Len returns the number of elements.
func (h *Heap[K]) Len() int { return len(h.slots) }

// Degree returns the branching factor.
func (h *Heap[K]) Degree() int { return h.degree }

// Clear removes all elements, keeping allocated storage.
func (h *Heap[K]) Clear() {
	h.slots = h.slots[:0]
	h.index.Clear()
}

// place writes s into position i and records the position in the index.
func (h *Heap[K]) place(i int, s slot[K]) {
	h.slots[i] = s
	// Key is already indexed, so this is an overwrite and cannot fail.
	_ = h.index.Put(s.key, i)
}

func (h *Heap[K]) siftUp(i int) {
	s := h.slots[i]
	for i > 0 {
		parent := (i - 1) / h.degree
		if h.slots[parent].priority <= s.priority {
			break
		}
		h.place(i, h.slots[parent])
		i = parent
	}
	h.place(i, s)
}

func (h *Heap[K]) siftDown(i int) {
	s := h.slots[i]
	n := len(h.slots)
	for {
		first := h.degree*i + 1
		if first >= n {
			break
		}
		best := first
		for c := first + 1; c < first+h.degree && c < n; c++ {
			if h.slots[c].priority < h.slots[best].priority {
				best = c
			}
		}
		if h.slots[best].priority >= s.priority {
			break
		}
		h.place(i, h.slots[best])
		i = best
	}
	h.place(i, s)
}
