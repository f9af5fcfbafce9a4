// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
	"github.com/katalvlaran/bidir/vmap"
)

// traceback feeds start and then each predecessor to push, stopping after
// the root (the vertex that is its own parent).
func traceback(parent *vmap.Map[core.VertexID, core.VertexID], start core.VertexID, push func(core.VertexID) error) error {
	for v := start; ; {
		if err := push(v); err != nil {
			return outOfMemory(err)
		}
		p := parent.MustGet(v)
		if p == v {
			return nil
		}
		v = p
	}
}

// single is the path of a source == target query.
func single(v core.VertexID, cfg *Options) (*vlist.List[core.VertexID], error) {
	path := vlist.New[core.VertexID](vlist.WithMaxLen(cfg.MaxEntries))
	if err := path.PushBack(v); err != nil {
		return nil, outOfMemory(err)
	}

	return path, nil
}
