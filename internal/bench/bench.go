// SPDX-License-Identifier: MIT

package bench

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bidir/bfs"
	"github.com/katalvlaran/bidir/bidijkstra"
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/internal/config"
	"github.com/katalvlaran/bidir/internal/ctxlog"
	"github.com/katalvlaran/bidir/internal/telemetry"
)

// Algorithm names used in results, spans and metrics.
const (
	Bidirectional  = "bidirectional"
	Unidirectional = "unidirectional"
)

// agreeTolerance is the relative tolerance on path weights.
const agreeTolerance = 1e-9

// Search is the outcome of one finder on one query.
type Search struct {
	Algorithm string
	Path      []core.VertexID
	Weight    float64
	Status    bidijkstra.Status
	Elapsed   time.Duration
	Stats     bidijkstra.Stats
}

// Query is an endpoint pair.
type Query struct {
	Source core.VertexID
	Target core.VertexID
}

// Sweep summarizes the random-query agreement run.
type Sweep struct {
	Queries       int
	Agreed        int
	NoPath        int
	Disagreements []Query
	Elapsed       time.Duration
}

// Result is the full benchmark report.
type Result struct {
	Origin         string
	Seed           int64
	Vertices       int
	Edges          int
	BuildTime      time.Duration
	Source         core.VertexID
	Target         core.VertexID
	Bidirectional  Search
	Unidirectional Search
	Agree          bool
	Sweep          *Sweep
}

// Runner executes searches with shared options and instruments.
type Runner struct {
	graph *core.Graph
	opts  []bidijkstra.Option
	inst  *telemetry.Instruments
}

// NewRunner prepares searches over g tuned by cfg. inst may be nil.
func NewRunner(g *core.Graph, cfg config.Search, inst *telemetry.Instruments) *Runner {
	return &Runner{
		graph: g,
		opts: []bidijkstra.Option{
			bidijkstra.WithDegree(cfg.Degree),
			bidijkstra.WithInitialCapacity(cfg.InitialCapacity),
			bidijkstra.WithLoadFactor(cfg.LoadFactor),
			bidijkstra.WithMaxEntries(cfg.MaxEntries),
		},
		inst: inst,
	}
}

// Run builds the graph, runs both finders on the chosen endpoints and, if
// configured, the concurrent agreement sweep.
func Run(ctx context.Context, cfg config.Config, inst *telemetry.Instruments) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	tracer := telemetry.Tracer()

	bctx, span := tracer.Start(ctx, "bench.build")
	start := time.Now()
	in, err := LoadGraph(bctx, cfg.Graph)
	build := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("graph.vertices", in.Graph.VertexCount()),
		attribute.Int("graph.edges", in.Graph.EdgeCount()),
	)
	span.End()

	res := &Result{
		Origin:    in.Origin,
		Seed:      in.Seed,
		Vertices:  in.Graph.VertexCount(),
		Edges:     in.Graph.EdgeCount(),
		BuildTime: build,
		Source:    in.Source,
		Target:    in.Target,
	}
	if cfg.Bench.Source >= 0 {
		res.Source = core.VertexID(cfg.Bench.Source)
	}
	if cfg.Bench.Target >= 0 {
		res.Target = core.VertexID(cfg.Bench.Target)
	}
	logger.Info("graph ready", "origin", res.Origin, "vertices", res.Vertices, "edges", res.Edges,
		"build", build, "source", res.Source, "target", res.Target)

	r := NewRunner(in.Graph, cfg.Search, inst)
	res.Bidirectional = r.Search(ctx, Bidirectional, res.Source, res.Target)
	res.Unidirectional = r.Search(ctx, Unidirectional, res.Source, res.Target)
	res.Agree = Agree(res.Bidirectional, res.Unidirectional)

	if cfg.Bench.Queries > 0 {
		seed := in.Seed
		if seed == 0 {
			seed = cfg.Graph.Seed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		res.Sweep, err = r.Sweep(ctx, RandomQueries(in.Graph, cfg.Bench.Queries, seed+1), cfg.Bench.Workers)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Search runs one finder and never fails: errors become statuses.
func (r *Runner) Search(ctx context.Context, algorithm string, source, target core.VertexID) Search {
	var find bidijkstra.PathFinder = bidijkstra.FindShortestPath
	if algorithm == Unidirectional {
		find = bidijkstra.FindShortestPathUnidirectional
	}

	_, span := telemetry.Tracer().Start(ctx, "search."+algorithm, trace.WithAttributes(
		attribute.Int("search.source", int(source)),
		attribute.Int("search.target", int(target)),
	))
	defer span.End()

	out := Search{Algorithm: algorithm}
	opts := append(r.opts[:len(r.opts):len(r.opts)], bidijkstra.WithStats(&out.Stats))
	start := time.Now()
	path, err := find(r.graph, source, target, opts...)
	out.Elapsed = time.Since(start)
	out.Status = bidijkstra.StatusOf(err)

	if err == nil {
		out.Path = path.Slice()
		if out.Weight, err = bidijkstra.PathWeight(r.graph, path); err != nil {
			out.Status = bidijkstra.StatusUnknown
		}
	}
	if err != nil {
		span.RecordError(err)
		if !out.Status.Has(bidijkstra.StatusNoPath) {
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.SetAttributes(
		attribute.String("search.status", out.Status.String()),
		attribute.Int("search.expanded", out.Stats.Expanded()),
		attribute.Float64("search.weight", out.Weight),
	)
	r.inst.RecordSearch(ctx, algorithm, out.Status.String(), out.Elapsed, out.Stats.Expanded())

	return out
}

// Agree reports whether two outcomes describe the same optimum: both
// found a path of equal weight, or both failed with the same status.
func Agree(a, b Search) bool {
	if a.Status != b.Status {
		return false
	}
	if a.Status != bidijkstra.StatusOK {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a.Weight), math.Abs(b.Weight)))

	return math.Abs(a.Weight-b.Weight) <= agreeTolerance*scale
}

// RandomQueries draws n endpoint pairs uniformly from g's vertices.
func RandomQueries(g *core.Graph, n int, seed int64) []Query {
	vs := g.Vertices()
	if len(vs) == 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	qs := make([]Query, n)
	for i := range qs {
		qs[i] = Query{Source: vs[rng.Intn(len(vs))], Target: vs[rng.Intn(len(vs))]}
	}

	return qs
}

// Sweep runs both finders on every query using up to workers goroutines
// (GOMAXPROCS when workers <= 0). Shared NoPath verdicts are cross-checked
// with a BFS reachability walk. It stops early when ctx is canceled.
func (r *Runner) Sweep(ctx context.Context, queries []Query, workers int) (*Sweep, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ctx, span := telemetry.Tracer().Start(ctx, "bench.sweep", trace.WithAttributes(
		attribute.Int("sweep.queries", len(queries)),
		attribute.Int("sweep.workers", workers),
	))
	defer span.End()

	out := &Sweep{Queries: len(queries)}
	var mu sync.Mutex
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bi := r.Search(gctx, Bidirectional, q.Source, q.Target)
			uni := r.Search(gctx, Unidirectional, q.Source, q.Target)
			agree := Agree(bi, uni)
			noPath := bi.Status.Has(bidijkstra.StatusNoPath)
			if agree && noPath {
				// NoPath must mean unreachable, independent of weights.
				reachable, err := bfs.Reachable(r.graph, q.Source, q.Target, bfs.WithContext(gctx))
				if err != nil {
					return err
				}
				agree = !reachable
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case !agree:
				out.Disagreements = append(out.Disagreements, q)
			case noPath:
				out.Agreed++
				out.NoPath++
			default:
				out.Agreed++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bench: sweep: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bench: sweep: %w", err)
	}
	out.Elapsed = time.Since(start)
	slices.SortFunc(out.Disagreements, func(a, b Query) int {
		if c := cmp.Compare(a.Source, b.Source); c != 0 {
			return c
		}
		return cmp.Compare(a.Target, b.Target)
	})
	span.SetAttributes(attribute.Int("sweep.disagreements", len(out.Disagreements)))
	ctxlog.FromContext(ctx).Info("sweep finished", "queries", out.Queries,
		"agreed", out.Agreed, "no_path", out.NoPath, "disagreements", len(out.Disagreements))

	return out, nil
}
