// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules and weight validation.
//   - Verify the children/parents mirror invariant across mutations.
//   - Anchor ordering guarantees of Vertices and Edges.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidir/core"
)

// collect drains a neighbor sequence into a map.
func collect(seq func(func(core.VertexID, float64) bool)) map[core.VertexID]float64 {
	out := map[core.VertexID]float64{}
	for id, w := range seq {
		out[id] = w
	}

	return out
}

// requireMirrored asserts u.children[v]==w ⇔ v.parents[u]==w for every edge.
func requireMirrored(t *testing.T, g *core.Graph) {
	t.Helper()
	total := 0
	for _, u := range g.Vertices() {
		for v, w := range g.Children(u) {
			back := collect(g.Parents(v))
			pw, ok := back[u]
			require.True(t, ok, "edge %d->%d missing from parents of %d", u, v, v)
			require.Equal(t, w, pw)
			total++
		}
		for p, w := range g.Parents(u) {
			fw, err := g.EdgeWeight(p, u)
			require.NoError(t, err)
			require.Equal(t, w, fw)
		}
	}
	require.Equal(t, g.EdgeCount(), total)
}

// TestGraph_AddRemoveVertex VERIFIES AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	// Stage 1: negative ids are rejected.
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(-1), core.ErrBadVertexID)
	require.ErrorIs(t, g.RemoveVertex(-1), core.ErrBadVertexID)

	// Stage 2: add is idempotent.
	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3))
	assert.True(t, g.HasVertex(3))
	assert.Equal(t, 1, g.VertexCount())

	// Stage 3: removal of missing and present vertices.
	require.ErrorIs(t, g.RemoveVertex(9), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(3))
	assert.False(t, g.HasVertex(3))
	assert.Equal(t, 0, g.VertexCount())
}

func TestGraph_NilHasVertex(t *testing.T) {
	var g *core.Graph
	assert.False(t, g.HasVertex(0))
}

// TestGraph_AddEdgeValidation VERIFIES weight and loop constraints.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge(0, 1, -0.5), core.ErrNegativeWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(-2, 1, 1), core.ErrBadVertexID)
	require.ErrorIs(t, g.AddEdge(4, 4, 1), core.ErrLoopNotAllowed)

	// Nothing was created by rejected calls.
	assert.Equal(t, 0, g.VertexCount())

	looped := core.NewGraph(core.WithLoops())
	require.NoError(t, looped.AddEdge(4, 4, 1))
	assert.True(t, looped.HasEdge(4, 4))
	assert.True(t, looped.Looped())
}

// TestGraph_AddEdgeOverwrite VERIFIES that re-adding an edge replaces its
// weight in both directions without creating a parallel edge.
func TestGraph_AddEdgeOverwrite(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))

	assert.Equal(t, 1, g.EdgeCount())
	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, map[core.VertexID]float64{0: 2}, collect(g.Parents(1)))
	assert.False(t, g.HasEdge(1, 0))
}

func TestGraph_EdgeWeightErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0))
	_, err := g.EdgeWeight(7, 0)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.EdgeWeight(0, 7)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_RemoveEdgeAndVertex VERIFIES the mirror invariant after removals.
func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	// Stage 1: a small diamond plus a loop.
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 4))
	require.NoError(t, g.AddEdge(1, 3, 2))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 0, 7))
	require.NoError(t, g.AddEdge(1, 1, 3))
	require.Equal(t, 6, g.EdgeCount())
	requireMirrored(t, g)

	// Stage 2: remove a single edge.
	require.ErrorIs(t, g.RemoveEdge(1, 0), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdge(8, 0), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveEdge(0, 2))
	assert.False(t, g.HasEdge(0, 2))
	assert.True(t, g.HasVertex(2))
	requireMirrored(t, g)

	// Stage 3: remove vertex 1 (in, out and loop edges).
	require.NoError(t, g.RemoveVertex(1))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Empty(t, collect(g.Children(1)))
	requireMirrored(t, g)

	out, err := g.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 0, out)
	in, err := g.InDegree(3)
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	_, err = g.InDegree(1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_VerticesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 2, 1))
	require.NoError(t, g.AddEdge(1, 9, 2))
	require.NoError(t, g.AddEdge(1, 3, 3))
	require.NoError(t, g.AddVertex(0))

	assert.Equal(t, []core.VertexID{0, 1, 2, 3, 5, 9}, g.Vertices())
	assert.Equal(t, []core.Edge{
		{From: 1, To: 3, Weight: 3},
		{From: 1, To: 9, Weight: 2},
		{From: 5, To: 2, Weight: 1},
	}, g.Edges())
	assert.Equal(t, "1->3(3)", g.Edges()[0].String())
}

// TestGraph_ChildrenRestartable VERIFIES that a neighbor sequence can be
// iterated twice, stopped early, and used on absent vertices.
func TestGraph_ChildrenRestartable(t *testing.T) {
	g := core.NewGraph()
	for i := core.VertexID(1); i <= 5; i++ {
		require.NoError(t, g.AddEdge(0, i, float64(i)))
	}
	seq := g.Children(0)
	assert.Len(t, collect(seq), 5)
	assert.Len(t, collect(seq), 5)

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
	assert.Empty(t, collect(g.Children(42)))
	assert.Empty(t, collect(g.Parents(0)))
}

// TestGraph_MutateInsideIteration VERIFIES that the snapshot lets a loop
// body call mutators without deadlock.
func TestGraph_MutateInsideIteration(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	for v := range g.Children(0) {
		require.NoError(t, g.RemoveEdge(0, v))
	}
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(1, 1, 2))

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.True(t, c.Looped())

	require.NoError(t, c.AddEdge(1, 2, 3))
	require.NoError(t, g.RemoveEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
	assert.True(t, c.HasEdge(0, 1))
	requireMirrored(t, c)
}

func TestGraph_Clear(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1, 1))
	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	require.NoError(t, g.AddEdge(2, 2, 1))
}

func TestGraph_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { core.WithCapacity(-1) })
}
