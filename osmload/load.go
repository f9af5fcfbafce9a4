// SPDX-License-Identifier: MIT

package osmload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"

	"github.com/katalvlaran/bidir/core"
)

var (
	// ErrUnknownFormat indicates an input format other than XML or PBF.
	ErrUnknownFormat = errors.New("osmload: unknown format")
	// ErrNoWays indicates that no way passed the highway filter.
	ErrNoWays = errors.New("osmload: no routable ways")
)

// Format selects the decoder.
type Format int

const (
	FormatXML Format = iota
	FormatPBF
)

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatPBF:
		return "pbf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "xml", "osm" and "pbf".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "xml", "osm":
		return FormatXML, nil
	case "pbf":
		return FormatPBF, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension (.osm, .xml, .pbf).
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Option configures Load.
type Option func(*options)

type options struct {
	highways map[string]bool
	procs    int
	logger   *slog.Logger
}

// WithHighways restricts loading to ways whose highway tag is one of classes.
// With no classes every highway=* way is kept.
func WithHighways(classes ...string) Option {
	return func(o *options) {
		o.highways = make(map[string]bool, len(classes))
		for _, c := range classes {
			o.highways[c] = true
		}
	}
}

// WithProcs sets the PBF decoder parallelism. Panics if n < 1.
func WithProcs(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("osmload: WithProcs(%d): must be >= 1", n))
	}
	return func(o *options) { o.procs = n }
}

// WithLogger routes load diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Network is a routable graph with its OSM provenance.
type Network struct {
	Graph *core.Graph
	// Nodes[v] is the OSM node behind vertex v.
	Nodes []osm.NodeID
	// Coords[v] is the location of vertex v.
	Coords []orb.Point

	index map[osm.NodeID]core.VertexID
}

// Vertex returns the vertex assigned to an OSM node.
func (n *Network) Vertex(id osm.NodeID) (core.VertexID, bool) {
	v, ok := n.index[id]
	return v, ok
}

// Nearest returns the vertex closest to p. Returns false on an empty network.
func (n *Network) Nearest(p orb.Point) (core.VertexID, bool) {
	best, found := core.VertexID(0), false
	bestDist := 0.0
	for i, c := range n.Coords {
		d := geo.Distance(p, c)
		if !found || d < bestDist {
			best, bestDist, found = core.VertexID(i), d, true
		}
	}

	return best, found
}

type wayRef struct {
	nodes []osm.NodeID
	dir   int // 1 forward, -1 backward, 0 both
}

// Load reads an OSM extract from r.
func Load(ctx context.Context, r io.Reader, format Format, opts ...Option) (*Network, error) {
	o := options{procs: runtime.GOMAXPROCS(-1), logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var scanner osm.Scanner
	switch format {
	case FormatXML:
		scanner = osmxml.New(ctx, r)
	case FormatPBF:
		scanner = osmpbf.New(ctx, r, o.procs)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	defer scanner.Close()

	coords := make(map[osm.NodeID]orb.Point)
	var ways []wayRef
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			coords[obj.ID] = obj.Point()
		case *osm.Way:
			class := obj.Tags.Find("highway")
			if class == "" || (len(o.highways) > 0 && !o.highways[class]) {
				continue
			}
			ways = append(ways, wayRef{nodes: obj.Nodes.NodeIDs(), dir: direction(obj.Tags)})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("osmload: scan: %w", err)
	}
	if len(ways) == 0 {
		return nil, ErrNoWays
	}

	net := build(coords, ways, o.logger)
	o.logger.Debug("osm network loaded",
		"ways", len(ways), "vertices", net.Graph.VertexCount(), "edges", net.Graph.EdgeCount())

	return net, nil
}

// LoadFile opens path and loads it with the format implied by its extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Network, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osmload: %w", err)
	}
	defer f.Close()

	return Load(ctx, f, format, opts...)
}

func direction(tags osm.Tags) int {
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return 1
	case "-1", "reverse":
		return -1
	}
	if tags.Find("junction") == "roundabout" {
		return 1
	}

	return 0
}

func build(coords map[osm.NodeID]orb.Point, ways []wayRef, logger *slog.Logger) *Network {
	net := &Network{
		Graph: core.NewGraph(core.WithCapacity(len(coords))),
		index: make(map[osm.NodeID]core.VertexID),
	}
	vertex := func(id osm.NodeID) core.VertexID {
		if v, ok := net.index[id]; ok {
			return v
		}
		v := core.VertexID(len(net.Nodes))
		net.index[id] = v
		net.Nodes = append(net.Nodes, id)
		net.Coords = append(net.Coords, coords[id])
		return v
	}

	skipped := 0
	for _, w := range ways {
		for i := 1; i < len(w.nodes); i++ {
			a, b := w.nodes[i-1], w.nodes[i]
			pa, okA := coords[a]
			pb, okB := coords[b]
			if !okA || !okB || a == b {
				skipped++
				continue
			}
			u, v := vertex(a), vertex(b)
			d := geo.Distance(pa, pb)
			// Ids are non-negative and u != v, d is finite: AddEdge cannot fail.
			if w.dir >= 0 {
				_ = net.Graph.AddEdge(u, v, d)
			}
			if w.dir <= 0 {
				_ = net.Graph.AddEdge(v, u, d)
			}
		}
	}
	if skipped > 0 {
		logger.Warn("osm segments skipped", "count", skipped, "reason", "missing node or repeated node")
	}

	return net
}
