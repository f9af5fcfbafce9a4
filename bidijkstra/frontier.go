// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/dheap"
	"github.com/katalvlaran/bidir/vmap"
)

// frontier is the complete state of one search direction.
type frontier struct {
	dir    Direction
	open   *dheap.Heap[core.VertexID]
	closed *vmap.Set[core.VertexID]
	dist   *vmap.Map[core.VertexID, float64]
	parent *vmap.Map[core.VertexID, core.VertexID] // root is its own parent
	edges  func(core.VertexID) iter.Seq2[core.VertexID, float64]
}

// newFrontier builds the structures of one direction and seeds it with root
// at distance 0.
func newFrontier(dir Direction, root core.VertexID, edges func(core.VertexID) iter.Seq2[core.VertexID, float64], cfg *Options) (*frontier, error) {
	mapOpts := []vmap.Option{
		vmap.WithCapacity(cfg.InitialCapacity),
		vmap.WithLoadFactor(cfg.LoadFactor),
		vmap.WithMaxEntries(cfg.MaxEntries),
	}
	f := &frontier{
		dir: dir,
		open: dheap.New[core.VertexID](
			dheap.WithDegree(cfg.Degree),
			dheap.WithCapacity(cfg.InitialCapacity),
			dheap.WithLoadFactor(cfg.LoadFactor),
			dheap.WithMaxEntries(cfg.MaxEntries),
		),
		closed: vmap.NewSet[core.VertexID](mapOpts...),
		dist:   vmap.New[core.VertexID, float64](mapOpts...),
		parent: vmap.New[core.VertexID, core.VertexID](mapOpts...),
		edges:  edges,
	}
	if err := f.discover(root, root, 0); err != nil {
		f.release()
		return nil, err
	}

	return f, nil
}

// discover records v as newly reached through parent at distance d.
func (f *frontier) discover(v, parent core.VertexID, d float64) error {
	if err := f.open.Insert(v, d); err != nil {
		return outOfMemory(err)
	}
	if err := f.dist.Put(v, d); err != nil {
		return outOfMemory(err)
	}
	if err := f.parent.Put(v, parent); err != nil {
		return outOfMemory(err)
	}

	return nil
}

// relax offers distance d to v through u and reports whether v improved.
// v must not be closed in this direction.
func (f *frontier) relax(u, v core.VertexID, d float64) (bool, error) {
	old, seen := f.dist.Lookup(v)
	if !seen {
		return true, f.discover(v, u, d)
	}
	if d >= old {
		return false, nil
	}
	f.open.DecreaseKey(v, d)
	// Overwrites of existing keys never hit the entry limit.
	_ = f.dist.Put(v, d)
	_ = f.parent.Put(v, u)

	return true, nil
}

// pop closes and returns the minimum open vertex with its final distance.
func (f *frontier) pop() (core.VertexID, float64, error) {
	u, err := f.open.ExtractMin()
	if err != nil {
		return 0, 0, err
	}
	if err = f.closed.Add(u); err != nil {
		return 0, 0, outOfMemory(err)
	}

	return u, f.dist.MustGet(u), nil
}

// minDistance returns the distance of the minimum open vertex.
func (f *frontier) minDistance() float64 {
	_, p, _ := f.open.PeekMin()
	return p
}

// size is the frontier's work measure: open plus closed vertices.
func (f *frontier) size() int { return f.open.Len() + f.closed.Len() }

// release drops every structure. Safe to call more than once.
func (f *frontier) release() {
	if f == nil || f.open == nil {
		return
	}
	f.open.Clear()
	f.closed.Clear()
	f.dist.Clear()
	f.parent.Clear()
	f.open, f.closed, f.dist, f.parent = nil, nil, nil, nil
}

func (f *frontier) released() bool { return f == nil || f.open == nil }

func outOfMemory(err error) error {
	return fmt.Errorf("%w: %w", ErrNoMemory, err)
}
