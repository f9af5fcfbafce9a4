// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"errors"

	"github.com/katalvlaran/bidir/core"
)

// resolve applies opts over the defaults and resets the caller's Stats.
func resolve(opts []Option) *Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
	}

	return &cfg
}

// validate checks the graph and both endpoints before anything is allocated.
// Missing endpoints are reported together.
func validate(g Graph, source, target core.VertexID) error {
	if g == nil {
		return ErrNoGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return ErrNoGraph
	}

	var errs []error
	if !g.HasVertex(source) {
		errs = append(errs, ErrNoSourceVertex)
	}
	if !g.HasVertex(target) {
		errs = append(errs, ErrNoTargetVertex)
	}

	return errors.Join(errs...)
}
