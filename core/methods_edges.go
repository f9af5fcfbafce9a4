// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/bidir/vmap"
)

// AddEdge inserts the directed edge from→to with weight w, creating missing
// endpoints. If the edge already exists its weight is overwritten.
//
// Steps:
//  1. Validate ids, weight and loop policy.
//  2. Ensure both endpoints exist.
//  3. Record w in from.children[to] and to.parents[from].
//
// Errors:
//   - ErrBadVertexID, ErrBadWeight, ErrNegativeWeight, ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID, w float64) error {
	if from < 0 || to < 0 {
		return ErrBadVertexID
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := g.ensureVertex(from)
	if err != nil {
		return err
	}
	v, err := g.ensureVertex(to)
	if err != nil {
		return err
	}
	if u.children == nil {
		u.children = newAdjacency()
	}
	if v.parents == nil {
		v.parents = newAdjacency()
	}

	existed := u.children.Contains(to)
	if err = u.children.Put(to, w); err != nil {
		return err
	}
	if err = v.parents.Put(from, w); err != nil {
		return err
	}
	if !existed {
		g.edgeCount++
	}

	return nil
}

func newAdjacency() *vmap.Map[VertexID, float64] {
	return vmap.New[VertexID, float64]()
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to VertexID) bool {
	_, err := g.EdgeWeight(from, to)

	return err == nil
}

// EdgeWeight returns the weight of from→to.
//
// Errors:
//   - ErrVertexNotFound if from is absent.
//   - ErrEdgeNotFound if from exists but has no edge to to.
func (g *Graph) EdgeWeight(from, to VertexID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.vertices.Lookup(from)
	if !ok {
		return 0, ErrVertexNotFound
	}
	if u.children == nil {
		return 0, ErrEdgeNotFound
	}
	w, ok := u.children.Lookup(to)
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// RemoveEdge deletes from→to. Endpoints are kept.
//
// Errors:
//   - ErrVertexNotFound if either endpoint is absent.
//   - ErrEdgeNotFound if the edge is absent.
func (g *Graph) RemoveEdge(from, to VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.vertices.Lookup(from)
	if !ok {
		return ErrVertexNotFound
	}
	v, ok := g.vertices.Lookup(to)
	if !ok {
		return ErrVertexNotFound
	}
	if u.children == nil || !u.children.Remove(to) {
		return ErrEdgeNotFound
	}
	v.parents.Remove(from)
	g.edgeCount--

	return nil
}

// Edges returns a snapshot of every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, u := range g.vertices.All() {
		if u.children == nil {
			continue
		}
		for to, w := range u.children.All() {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	return edges
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
