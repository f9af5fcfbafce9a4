// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/bidir/builder"
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/graphio"
	"github.com/katalvlaran/bidir/internal/config"
	"github.com/katalvlaran/bidir/internal/ctxlog"
	"github.com/katalvlaran/bidir/osmload"
)

// Input is a loaded graph plus the endpoints its source suggests.
type Input struct {
	Graph  *core.Graph
	Seed   int64
	Source core.VertexID
	Target core.VertexID
	Origin string
}

// LoadGraph builds the random benchmark graph or reads cfg.File.
func LoadGraph(ctx context.Context, cfg config.Graph) (*Input, error) {
	if cfg.File != "" {
		return loadFile(ctx, cfg)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	in := &Input{Seed: seed, Origin: fmt.Sprintf("random(n=%d, m=%d)", cfg.Nodes, cfg.Edges)}
	draw := 0
	observe := func(e core.Edge) {
		switch draw {
		case 0:
			in.Source = e.From
		case cfg.Nodes / 2:
			in.Target = e.To
		}
		draw++
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(cfg.Nodes)},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithUniformWeight(cfg.MinWeight, cfg.MaxWeight),
			builder.WithEdgeObserver(observe),
		},
		builder.RandomEdges(cfg.Nodes, cfg.Edges),
	)
	if err != nil {
		return nil, fmt.Errorf("bench: build graph: %w", err)
	}
	in.Graph = g
	ctxlog.FromContext(ctx).Debug("random graph built",
		"seed", seed, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return in, nil
}

func loadFile(ctx context.Context, cfg config.Graph) (*Input, error) {
	in := &Input{Origin: cfg.File}
	switch strings.ToLower(filepath.Ext(cfg.File)) {
	case ".yaml", ".yml":
		g, err := graphio.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		in.Graph = g
	default:
		net, err := osmload.LoadFile(ctx, cfg.File,
			osmload.WithHighways(cfg.Highways...),
			osmload.WithLogger(ctxlog.FromContext(ctx)))
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		in.Graph = net.Graph
	}

	if edges := in.Graph.Edges(); len(edges) > 0 {
		in.Source = edges[0].From
		in.Target = edges[len(edges)/2].To
	} else if vs := in.Graph.Vertices(); len(vs) > 0 {
		in.Source, in.Target = vs[0], vs[len(vs)/2]
	}

	return in, nil
}
