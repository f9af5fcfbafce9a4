// SPDX-License-Identifier: MIT
// Package bidijkstra_test verifies both path finders: validation, fixed
// optimality anchors, unreachable targets, entry limits and hooks.
package bidijkstra_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bidir/bidijkstra"
	"github.com/katalvlaran/bidir/builder"
	"github.com/katalvlaran/bidir/core"
)

// finders lists both implementations so every contract is checked on each.
var finders = []struct {
	name string
	find bidijkstra.PathFinder
}{
	{"bidirectional", bidijkstra.FindShortestPath},
	{"unidirectional", bidijkstra.FindShortestPathUnidirectional},
}

// diamond is the fixed optimality anchor: the direct edge 0→1 (10) loses to
// 0→2→1 (2+3) and to 0→3→1 (3+5).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 2))
	require.NoError(t, g.AddEdge(2, 1, 3))
	require.NoError(t, g.AddEdge(0, 3, 3))
	require.NoError(t, g.AddEdge(3, 1, 5))

	return g
}

// FinderSuite runs the shared contract against one PathFinder.
type FinderSuite struct {
	suite.Suite
	find bidijkstra.PathFinder
}

func TestFinders(t *testing.T) {
	for _, f := range finders {
		t.Run(f.name, func(t *testing.T) {
			suite.Run(t, &FinderSuite{find: f.find})
		})
	}
}

// TestOptimalityAnchor VERIFIES the fixed 4-vertex example returns [0,2,1], length 5.
func (s *FinderSuite) TestOptimalityAnchor() {
	g := diamond(s.T())
	var st bidijkstra.Stats

	path, err := s.find(g, 0, 1, bidijkstra.WithStats(&st))
	s.Require().NoError(err)
	s.Equal([]core.VertexID{0, 2, 1}, path.Slice())

	w, err := bidijkstra.PathWeight(g, path)
	s.Require().NoError(err)
	s.Equal(5.0, w)
	s.Equal(5.0, st.Length)
}

// TestReflexive VERIFIES source == target yields [v] without any expansion.
func (s *FinderSuite) TestReflexive() {
	g := diamond(s.T())
	expanded := 0
	path, err := s.find(g, 3, 3, bidijkstra.WithOnExpand(func(bidijkstra.Direction, core.VertexID) { expanded++ }))
	s.Require().NoError(err)
	s.Equal([]core.VertexID{3}, path.Slice())
	s.Zero(expanded)

	// Reflexive on an isolated vertex too.
	s.Require().NoError(g.AddVertex(9))
	path, err = s.find(g, 9, 9)
	s.Require().NoError(err)
	s.Equal(1, path.Len())
}

// TestMissingEndpoints VERIFIES combinable source/target errors and a nil path.
func (s *FinderSuite) TestMissingEndpoints() {
	g := diamond(s.T())

	path, err := s.find(g, 42, 1)
	s.Nil(path)
	s.ErrorIs(err, bidijkstra.ErrNoSourceVertex)
	s.NotErrorIs(err, bidijkstra.ErrNoTargetVertex)
	s.Equal(bidijkstra.StatusNoSourceVertex, bidijkstra.StatusOf(err))

	path, err = s.find(g, 0, 42)
	s.Nil(path)
	s.Equal(bidijkstra.StatusNoTargetVertex, bidijkstra.StatusOf(err))

	path, err = s.find(g, 41, 42)
	s.Nil(path)
	s.ErrorIs(err, bidijkstra.ErrNoSourceVertex)
	s.ErrorIs(err, bidijkstra.ErrNoTargetVertex)
	st := bidijkstra.StatusOf(err)
	s.True(st.Has(bidijkstra.StatusNoSourceVertex | bidijkstra.StatusNoTargetVertex))
	s.Equal("NoSourceVertex|NoTargetVertex", st.String())

	// Missing endpoints win over source == target.
	_, err = s.find(g, 42, 42)
	s.ErrorIs(err, bidijkstra.ErrNoSourceVertex)
}

func (s *FinderSuite) TestNilGraph() {
	path, err := s.find(nil, 0, 1)
	s.Nil(path)
	s.ErrorIs(err, bidijkstra.ErrNoGraph)

	var typed *core.Graph
	_, err = s.find(typed, 0, 1)
	s.ErrorIs(err, bidijkstra.ErrNoGraph)
	s.Equal(bidijkstra.StatusNoGraph, bidijkstra.StatusOf(err))
}

// TestNoPath VERIFIES unreachable targets across components and against edge direction.
func (s *FinderSuite) TestNoPath() {
	g, err := builder.BuildGraph(nil, nil, builder.Disjoint(3, 3))
	s.Require().NoError(err)

	for _, q := range [][2]core.VertexID{{0, 5}, {3, 2}, {2, 0}} {
		path, err := s.find(g, q[0], q[1])
		s.Nil(path, "query %v", q)
		s.ErrorIs(err, bidijkstra.ErrNoPath, "query %v", q)
		s.Equal(bidijkstra.StatusNoPath, bidijkstra.StatusOf(err))
	}

	path, err := s.find(g, 3, 5)
	s.Require().NoError(err)
	s.Equal([]core.VertexID{3, 4, 5}, path.Slice())
}

// TestEntryLimit VERIFIES that hitting WithMaxEntries aborts with ErrNoMemory
// and no partial path, and that a generous limit changes nothing.
func (s *FinderSuite) TestEntryLimit() {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10))
	s.Require().NoError(err)

	path, err := s.find(g, 0, 9, bidijkstra.WithMaxEntries(1))
	s.Nil(path)
	s.ErrorIs(err, bidijkstra.ErrNoMemory)
	s.Equal(bidijkstra.StatusNoMemory, bidijkstra.StatusOf(err))

	path, err = s.find(g, 0, 9, bidijkstra.WithMaxEntries(64))
	s.Require().NoError(err)
	s.Equal(10, path.Len())
}

// TestZeroWeights VERIFIES correctness when many paths tie at length zero.
func (s *FinderSuite) TestZeroWeights() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithConstantWeight(0)},
		builder.Grid(4, 4))
	s.Require().NoError(err)

	path, err := s.find(g, 0, 15)
	s.Require().NoError(err)
	first, _ := path.Front()
	last, _ := path.Back()
	s.Equal(core.VertexID(0), first)
	s.Equal(core.VertexID(15), last)
	w, err := bidijkstra.PathWeight(g, path)
	s.Require().NoError(err)
	s.Zero(w)
}

// TestSelfLoopsIgnored VERIFIES loops neither break traceback nor lengthen paths.
func (s *FinderSuite) TestSelfLoopsIgnored() {
	g := core.NewGraph(core.WithLoops())
	s.Require().NoError(g.AddEdge(0, 0, 1))
	s.Require().NoError(g.AddEdge(0, 1, 2))
	s.Require().NoError(g.AddEdge(1, 1, 0))
	s.Require().NoError(g.AddEdge(1, 2, 2))

	path, err := s.find(g, 0, 2)
	s.Require().NoError(err)
	s.Equal([]core.VertexID{0, 1, 2}, path.Slice())
}

// TestRepeatedSearches VERIFIES identical results across many calls, which
// exercises full release of per-call state.
func (s *FinderSuite) TestRepeatedSearches() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(0, 10)},
		builder.RandomEdges(200, 800))
	s.Require().NoError(err)

	want, wantErr := s.find(g, 0, 100)
	for i := 0; i < 200; i++ {
		got, err := s.find(g, 0, 100, bidijkstra.WithInitialCapacity(0))
		s.Require().Equal(wantErr, err)
		s.Require().True(want.Equal(got))
	}
}

func TestStatsAndHooksAgree(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(1, 5)},
		builder.Grid(10, 10))
	require.NoError(t, err)

	for _, f := range finders {
		var (
			st       bidijkstra.Stats
			forward  int
			backward int
		)
		hook := func(d bidijkstra.Direction, _ core.VertexID) {
			if d == bidijkstra.Forward {
				forward++
			} else {
				backward++
			}
		}
		_, err = f.find(g, 0, 99, bidijkstra.WithStats(&st), bidijkstra.WithOnExpand(hook))
		require.NoError(t, err, f.name)
		assert.Equal(t, forward, st.ExpandedForward, f.name)
		assert.Equal(t, backward, st.ExpandedBackward, f.name)
		assert.Equal(t, forward+backward, st.Expanded(), f.name)
		assert.Positive(t, st.Relaxed, f.name)
	}

	// Only the bidirectional search meets in the middle.
	var st bidijkstra.Stats
	_, err = bidijkstra.FindShortestPath(g, 0, 99, bidijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Positive(t, st.ExpandedBackward)
	assert.Positive(t, st.MeetingUpdates)
}

func TestStatsResetBetweenCalls(t *testing.T) {
	g := diamond(t)
	var st bidijkstra.Stats
	_, err := bidijkstra.FindShortestPath(g, 0, 1, bidijkstra.WithStats(&st))
	require.NoError(t, err)
	first := st

	_, err = bidijkstra.FindShortestPath(g, 0, 1, bidijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, first, st)
}

func TestWithLoggerEmitsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := bidijkstra.FindShortestPath(diamond(t), 0, 1, bidijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bidirectional search finished")
	assert.Contains(t, buf.String(), "status=OK")

	buf.Reset()
	_, err = bidijkstra.FindShortestPathUnidirectional(diamond(t), 1, 0, bidijkstra.WithLogger(logger))
	require.ErrorIs(t, err, bidijkstra.ErrNoPath)
	assert.Contains(t, buf.String(), "status=NoPath")
}

func TestConcurrentSearchesShareGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(21), builder.WithUniformWeight(0, 10)},
		builder.RandomEdges(300, 1500))
	require.NoError(t, err)

	want := make([]float64, 16)
	for i := range want {
		p, err := bidijkstra.FindShortestPathUnidirectional(g, core.VertexID(i), core.VertexID(299-i))
		if errors.Is(err, bidijkstra.ErrNoPath) {
			want[i] = -1
			continue
		}
		require.NoError(t, err)
		want[i], err = bidijkstra.PathWeight(g, p)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	got := make([]float64, len(want))
	for i := range want {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := bidijkstra.FindShortestPath(g, core.VertexID(i), core.VertexID(299-i))
			if err != nil {
				got[i] = -1
				return
			}
			got[i], _ = bidijkstra.PathWeight(g, p)
		}(i)
	}
	wg.Wait()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "query %d", i)
	}
}

func TestPathWeight(t *testing.T) {
	g := diamond(t)
	w, err := bidijkstra.PathWeight(g, nil)
	require.NoError(t, err)
	assert.Zero(t, w)

	path, err := bidijkstra.FindShortestPath(g, 0, 0)
	require.NoError(t, err)
	w, err = bidijkstra.PathWeight(g, path)
	require.NoError(t, err)
	assert.Zero(t, w)

	bad, err := bidijkstra.FindShortestPath(g, 2, 1)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(2, 1))
	_, err = bidijkstra.PathWeight(g, bad)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", bidijkstra.StatusOK.String())
	assert.Equal(t, "NoMemory", bidijkstra.StatusNoMemory.String())
	assert.Equal(t, bidijkstra.StatusUnknown, bidijkstra.StatusOf(errors.New("other")))
	assert.Equal(t, bidijkstra.StatusOK, bidijkstra.StatusOf(nil))
	assert.Equal(t, "forward", bidijkstra.Forward.String())
	assert.Equal(t, "backward", bidijkstra.Backward.String())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { bidijkstra.WithDegree(1) })
	assert.Panics(t, func() { bidijkstra.WithInitialCapacity(-1) })
	assert.Panics(t, func() { bidijkstra.WithLoadFactor(0) })
	assert.Panics(t, func() { bidijkstra.WithLoadFactor(math.Inf(1)) })
	assert.Panics(t, func() { bidijkstra.WithLoadFactor(math.NaN()) })
	assert.Panics(t, func() { bidijkstra.WithMaxEntries(-1) })
}

// TestFindShortestPath_HugeLoadFactor VERIFIES a finite but enormous load
// factor only stops map growth; the search result is unchanged.
func TestFindShortestPath_HugeLoadFactor(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomEdges(200, 1000))
	require.NoError(t, err)

	for _, target := range []core.VertexID{17, 99, 150} {
		want, wantErr := bidijkstra.FindShortestPathUnidirectional(g, 0, target)
		got, gotErr := bidijkstra.FindShortestPath(g, 0, target, bidijkstra.WithLoadFactor(1e300))
		require.Equal(t, bidijkstra.StatusOf(wantErr), bidijkstra.StatusOf(gotErr))
		if wantErr != nil {
			continue
		}
		ww, err := bidijkstra.PathWeight(g, want)
		require.NoError(t, err)
		gw, err := bidijkstra.PathWeight(g, got)
		require.NoError(t, err)
		assert.InDelta(t, ww, gw, 1e-9)
	}
}
