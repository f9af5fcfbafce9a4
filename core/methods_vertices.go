// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex queries.
// Determinism:
//   - Vertices() returns ids sorted ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"slices"

	"github.com/katalvlaran/bidir/vmap"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrBadVertexID if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) error {
	if id < 0 {
		return ErrBadVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.ensureVertex(id)

	return err
}

// ensureVertex returns the vertex record for id, creating it if needed.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id VertexID) (*vertex, error) {
	if v, ok := g.vertices.Lookup(id); ok {
		return v, nil
	}
	v := &vertex{}
	if err := g.vertices.Put(id, v); err != nil {
		return nil, err
	}

	return v, nil
}

// HasVertex reports whether id is present. A nil Graph has no vertices.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Contains(id)
}

// RemoveVertex deletes id together with every edge that enters or leaves it.
//
// Errors:
//   - ErrBadVertexID if id < 0.
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(indeg + outdeg).
func (g *Graph) RemoveVertex(id VertexID) error {
	if id < 0 {
		return ErrBadVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices.Lookup(id)
	if !ok {
		return ErrVertexNotFound
	}

	// Detach outgoing edges from their heads, then incoming edges from their tails.
	// A self-loop appears in both maps but is counted once.
	removed := 0
	if v.children != nil {
		for child := range v.children.Keys() {
			if child != id {
				g.vertices.MustGet(child).parents.Remove(id)
			}
			removed++
		}
	}
	if v.parents != nil {
		for parent := range v.parents.Keys() {
			if parent == id {
				continue
			}
			g.vertices.MustGet(parent).children.Remove(id)
			removed++
		}
	}
	g.vertices.Remove(id)
	g.edgeCount -= removed

	return nil
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	ids := make([]VertexID, 0, g.vertices.Len())
	for id := range g.vertices.Keys() {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.Len()
}

// OutDegree returns the number of edges leaving id.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) OutDegree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices.Lookup(id)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return mapLen(v.children), nil
}

// InDegree returns the number of edges entering id.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) InDegree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices.Lookup(id)
	if !ok {
		return 0, ErrVertexNotFound
	}

	return mapLen(v.parents), nil
}

func mapLen(m *vmap.Map[VertexID, float64]) int {
	if m == nil {
		return 0
	}

	return m.Len()
}
