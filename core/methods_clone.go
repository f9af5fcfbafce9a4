// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Adjacency insertion order is preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithCapacity(g.vertices.Len())}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	for id, v := range g.vertices.All() {
		nv := &vertex{}
		if v.children != nil {
			nv.children = newAdjacency()
			for to, w := range v.children.All() {
				_ = nv.children.Put(to, w) // unbounded map
			}
		}
		if v.parents != nil {
			nv.parents = newAdjacency()
			for from, w := range v.parents.All() {
				_ = nv.parents.Put(from, w)
			}
		}
		_ = clone.vertices.Put(id, nv)
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear removes every vertex and edge while preserving configuration.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices.Clear()
	g.edgeCount = 0
}
