// SPDX-License-Identifier: MIT
// File: types.go
// Role: VertexID, Edge, Graph, GraphOption, sentinel errors and NewGraph.

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/bidir/vmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex id.
	ErrBadVertexID = errors.New("core: vertex id must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// VertexID identifies a vertex. Valid ids are non-negative.
type VertexID int

// Edge is a value snapshot of one directed edge.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// String renders the edge as "from->to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d(%g)", e.From, e.To, e.Weight)
}

// vertex holds both adjacency directions. Maps are allocated on first use.
type vertex struct {
	children *vmap.Map[VertexID, float64]
	parents  *vmap.Map[VertexID, float64]
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity presizes the vertex table for about n vertices.
// Panics if n < 0.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(g *Graph) { g.capacity = n }
}

// Graph is a directed graph with non-negative float64 edge weights.
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowLoops bool
	capacity   int

	vertices  *vmap.Map[VertexID, *vertex]
	edgeCount int
}

// NewGraph creates an empty Graph. By default self-loops are rejected.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = vmap.New[VertexID, *vertex](vmap.WithCapacity(g.capacity))

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }
