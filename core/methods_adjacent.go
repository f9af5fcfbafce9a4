// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood iteration (Children, Parents) used by forward and backward searches.
// Determinism:
//   - Pairs are yielded in edge insertion order of the vertex's adjacency map.
// Concurrency:
//   - The read lock is held only while snapshotting; yielding happens unlocked.

package core

import (
	"iter"

	"github.com/katalvlaran/bidir/vmap"
)

// neighbor is one snapshotted adjacency pair.
type neighbor struct {
	id     VertexID
	weight float64
}

// Children yields (successor, weight) for every edge leaving id.
// An absent vertex yields nothing. The sequence is restartable; each pass
// takes a fresh snapshot and yields every pair exactly once.
func (g *Graph) Children(id VertexID) iter.Seq2[VertexID, float64] {
	return g.neighbors(id, func(v *vertex) *vmap.Map[VertexID, float64] { return v.children })
}

// Parents yields (predecessor, weight) for every edge entering id.
// Semantics match Children.
func (g *Graph) Parents(id VertexID) iter.Seq2[VertexID, float64] {
	return g.neighbors(id, func(v *vertex) *vmap.Map[VertexID, float64] { return v.parents })
}

func (g *Graph) neighbors(id VertexID, side func(*vertex) *vmap.Map[VertexID, float64]) iter.Seq2[VertexID, float64] {
	return func(yield func(VertexID, float64) bool) {
		for _, nb := range g.snapshot(id, side) {
			if !yield(nb.id, nb.weight) {
				return
			}
		}
	}
}

// snapshot copies one adjacency side of id under the read lock.
func (g *Graph) snapshot(id VertexID, side func(*vertex) *vmap.Map[VertexID, float64]) []neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices.Lookup(id)
	if !ok {
		return nil
	}
	adj := side(v)
	if adj == nil {
		return nil
	}
	out := make([]neighbor, 0, adj.Len())
	for nid, w := range adj.All() {
		out = append(out, neighbor{id: nid, weight: w})
	}

	return out
}
