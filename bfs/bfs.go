// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
)

// errFound stops a Reachable walk early.
var errFound = errors.New("bfs: target found")

type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  Options
	edges func(core.VertexID) iter.Seq2[core.VertexID, float64]
	queue *vlist.List[queueItem]
	res   *Result
}

// BFS walks g from start applying opts.
func BFS(g Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		opts:  o,
		edges: g.Children,
		queue: vlist.New[queueItem](),
		res: &Result{
			Depth:  make(map[core.VertexID]int),
			Parent: make(map[core.VertexID]core.VertexID),
		},
	}
	if o.Reverse {
		w.edges = g.Parents
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// Reachable reports whether target can be reached from source along
// edge directions. It stops as soon as target is visited.
func Reachable(g Graph, source, target core.VertexID, opts ...Option) (bool, error) {
	if isNil(g) {
		return false, ErrGraphNil
	}
	if !g.HasVertex(target) {
		return false, nil
	}
	stop := WithOnVisit(func(id core.VertexID, _ int) error {
		if id == target {
			return errFound
		}
		return nil
	})
	_, err := BFS(g, source, append(opts, stop)...)
	switch {
	case errors.Is(err, errFound):
		return true, nil
	case err != nil:
		return false, err
	}

	return false, nil
}

func (w *walker) enqueue(id core.VertexID, d int) {
	w.res.Depth[id] = d
	// The queue is unbounded, so PushBack cannot fail.
	_ = w.queue.PushBack(queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for {
		item, ok := w.queue.PopFront()
		if !ok {
			return nil
		}
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for nbr := range w.edges(item.id) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Parent[nbr] = item.id
			w.enqueue(nbr, next)
		}
	}
}

// isNil catches both a nil interface and a nil *core.Graph.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}
