// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
)

// FindShortestPathUnidirectional is plain Dijkstra from source over outgoing
// edges, stopping the first time target is popped. It shares validation,
// options and errors with FindShortestPath and serves as its oracle.
func FindShortestPathUnidirectional(g Graph, source, target core.VertexID, opts ...Option) (*vlist.List[core.VertexID], error) {
	if err := validate(g, source, target); err != nil {
		return nil, err
	}
	cfg := resolve(opts)
	if source == target {
		return single(source, cfg)
	}

	f, err := newFrontier(Forward, source, g.Children, cfg)
	if err != nil {
		return nil, err
	}
	defer f.release()

	for f.open.Len() > 0 {
		u, du, err := f.pop()
		if err != nil {
			return nil, err
		}
		if cfg.OnExpand != nil {
			cfg.OnExpand(Forward, u)
		}
		if cfg.Stats != nil {
			cfg.Stats.ExpandedForward++
		}

		if u == target {
			path := vlist.New[core.VertexID](vlist.WithMaxLen(cfg.MaxEntries))
			if err = traceback(f.parent, target, path.PushFront); err != nil {
				return nil, err
			}
			if cfg.Stats != nil {
				cfg.Stats.Length = du
			}
			cfg.Logger.Debug("unidirectional search finished",
				"source", source, "target", target, "status", StatusOK.String(),
				"closed", f.closed.Len(), "length", du)

			return path, nil
		}

		for v, w := range f.edges(u) {
			if f.closed.Contains(v) {
				continue
			}
			improved, err := f.relax(u, v, du+w)
			if err != nil {
				return nil, err
			}
			if improved && cfg.Stats != nil {
				cfg.Stats.Relaxed++
			}
		}
	}

	cfg.Logger.Debug("unidirectional search finished",
		"source", source, "target", target, "status", StatusNoPath.String(),
		"closed", f.closed.Len())

	return nil, ErrNoPath
}
