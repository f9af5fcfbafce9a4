// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strings"

	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
)

// Sentinel errors. Missing endpoints are reported together through
// errors.Join, so errors.Is matches each one independently.
var (
	// ErrNoGraph indicates a nil graph.
	ErrNoGraph = errors.New("bidijkstra: graph is nil")

	// ErrNoSourceVertex indicates the source vertex is not in the graph.
	ErrNoSourceVertex = errors.New("bidijkstra: source vertex not found")

	// ErrNoTargetVertex indicates the target vertex is not in the graph.
	ErrNoTargetVertex = errors.New("bidijkstra: target vertex not found")

	// ErrNoMemory indicates a heap, map, closed set or the result path hit
	// its entry limit; the search was aborted and all state released.
	ErrNoMemory = errors.New("bidijkstra: out of memory")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("bidijkstra: no path")
)

// Status is a bitmask summary of a search outcome, for reporting.
type Status uint8

const (
	StatusOK      Status = 0
	StatusNoGraph Status = 1 << (iota - 1)
	StatusNoSourceVertex
	StatusNoTargetVertex
	StatusNoMemory
	StatusNoPath
	StatusUnknown
)

var statusNames = []struct {
	bit  Status
	name string
}{
	{StatusNoGraph, "NoGraph"},
	{StatusNoSourceVertex, "NoSourceVertex"},
	{StatusNoTargetVertex, "NoTargetVertex"},
	{StatusNoMemory, "NoMemory"},
	{StatusNoPath, "NoPath"},
	{StatusUnknown, "Unknown"},
}

// StatusOf maps an error returned by a PathFinder to its Status bits.
// A nil error is StatusOK; an error not produced by this package is StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var s Status
	if errors.Is(err, ErrNoGraph) {
		s |= StatusNoGraph
	}
	if errors.Is(err, ErrNoSourceVertex) {
		s |= StatusNoSourceVertex
	}
	if errors.Is(err, ErrNoTargetVertex) {
		s |= StatusNoTargetVertex
	}
	if errors.Is(err, ErrNoMemory) {
		s |= StatusNoMemory
	}
	if errors.Is(err, ErrNoPath) {
		s |= StatusNoPath
	}
	if s == 0 {
		s = StatusUnknown
	}

	return s
}

// Has reports whether every bit of flag is set in s.
func (s Status) Has(flag Status) bool { return s&flag == flag }

// String renders the set bits joined by "|", or "OK".
func (s Status) String() string {
	if s == StatusOK {
		return "OK"
	}
	var parts []string
	for _, sn := range statusNames {
		if s&sn.bit != 0 {
			parts = append(parts, sn.name)
		}
	}

	return strings.Join(parts, "|")
}

// Graph is the read-only view a search needs. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id core.VertexID) bool
	// Children yields (successor, weight) for edges leaving id.
	Children(id core.VertexID) iter.Seq2[core.VertexID, float64]
	// Parents yields (predecessor, weight) for edges entering id.
	Parents(id core.VertexID) iter.Seq2[core.VertexID, float64]
}

// PathFinder is the signature shared by FindShortestPath and
// FindShortestPathUnidirectional.
type PathFinder func(g Graph, source, target core.VertexID, opts ...Option) (*vlist.List[core.VertexID], error)

// Direction names a search frontier.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Stats receives per-search counters when passed through WithStats.
// It is reset at the start of every search.
type Stats struct {
	ExpandedForward  int     // vertices closed by the forward frontier
	ExpandedBackward int     // vertices closed by the backward frontier
	Relaxed          int     // neighbor distance improvements
	MeetingUpdates   int     // times the best meeting path improved
	Length           float64 // total weight of the returned path
}

// Expanded returns the vertices closed in both directions.
func (s *Stats) Expanded() int { return s.ExpandedForward + s.ExpandedBackward }

const (
	// DefaultDegree is the branching factor of the search heaps.
	DefaultDegree = 4
	// DefaultInitialCapacity sizes every heap and map of a search.
	DefaultInitialCapacity = 1024
	// DefaultLoadFactor is the growth trigger of every search map.
	DefaultLoadFactor = 1.3
)

// Options configures a search.
type Options struct {
	Degree          int
	InitialCapacity int
	LoadFactor      float64
	// MaxEntries bounds every heap, map, closed set and the result path.
	// 0 means unbounded.
	MaxEntries int
	Logger     *slog.Logger
	OnExpand   func(Direction, core.VertexID)
	Stats      *Stats
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when no Option is supplied.
func DefaultOptions() Options {
	return Options{
		Degree:          DefaultDegree,
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// WithDegree sets the heap branching factor. Panics if d < 2.
func WithDegree(d int) Option {
	if d < 2 {
		panic(fmt.Sprintf("bidijkstra: WithDegree(%d): degree must be >= 2", d))
	}

	return func(o *Options) { o.Degree = d }
}

// WithInitialCapacity sets the initial size of heaps and maps. Panics if n < 0.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bidijkstra: WithInitialCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) { o.InitialCapacity = n }
}

// WithLoadFactor sets the map load factor. Panics if f is not a positive
// finite number.
func WithLoadFactor(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		panic(fmt.Sprintf("bidijkstra: WithLoadFactor(%g): load factor must be positive and finite", f))
	}

	return func(o *Options) { o.LoadFactor = f }
}

// WithMaxEntries bounds every search structure; exceeding it yields ErrNoMemory.
// Panics if n < 0.
func WithMaxEntries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bidijkstra: WithMaxEntries(%d): limit must be non-negative", n))
	}

	return func(o *Options) { o.MaxEntries = n }
}

// WithLogger sets the logger that receives debug-level search summaries.
// A nil logger keeps the default (discard).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a hook called each time a vertex is closed.
func WithOnExpand(fn func(Direction, core.VertexID)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithStats makes the search record its counters into st.
func WithStats(st *Stats) Option {
	return func(o *Options) { o.Stats = st }
}
