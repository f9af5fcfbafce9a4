// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidir/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all children appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge(0, core.VertexID(id+1), float64(id))
		}(i)
	}
	wg.Wait()

	out, err := g.OutDegree(0)
	require.NoError(t, err)
	require.Equal(t, num, out)
	requireMirrored(t, g)
}

// TestConcurrentReadersAndWriters mixes neighbor iteration with mutation to
// surface races under -race.
func TestConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(core.VertexID(i), core.VertexID(i+1), 1))
	}

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			v := core.VertexID(id % 50)
			_ = g.AddEdge(v, v+2, float64(id))
			_ = g.RemoveEdge(v, v+2)
		}(i)
		go func(id int) {
			defer wg.Done()
			for range g.Children(core.VertexID(id % 50)) {
			}
			for range g.Parents(core.VertexID(id % 50)) {
			}
		}(i)
	}
	wg.Wait()
	requireMirrored(t, g)
}
