// SPDX-License-Identifier: MIT

package vmap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Set is a Map without payload. It backs the closed sets of a search.
type Set[K constraints.Integer] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty Set configured by opts.
func NewSet[K constraints.Integer](opts ...Option) *Set[K] {
	return &Set[K]{m: New[K, struct{}](opts...)}
}

// Add inserts k. Adding a present key is a no-op.
// Returns ErrOutOfMemory if the entry limit is reached.
func (s *Set[K]) Add(k K) error { return s.m.Put(k, struct{}{}) }

// Contains reports whether k is a member.
func (s *Set[K]) Contains(k K) bool { return s.m.Contains(k) }

// Remove deletes k and reports whether it was a member.
func (s *Set[K]) Remove(k K) bool { return s.m.Remove(k) }

// Len returns the number of members.
func (s *Set[K]) Len() int { return s.m.Len() }

// Clear removes every member.
func (s *Set[K]) Clear() { s.m.Clear() }

// All yields the members in insertion order.
func (s *Set[K]) All() iter.Seq[K] { return s.m.Keys() }
