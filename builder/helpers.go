// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - shared vertex/edge emission helpers for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bidir/core"
)

// addVertices inserts ids base..base+n-1 in ascending order.
func addVertices(g *core.Graph, method string, base, n int) error {
	for i := base; i < base+n; i++ {
		if err := g.AddVertex(core.VertexID(i)); err != nil {
			return builderErrorf(method, "AddVertex(%d): %w: %w", i, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge inserts u→v with the next configured weight and reports it to
// the observer, if any.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(core.VertexID(u), core.VertexID(v), w); err != nil {
		return builderErrorf(method, "AddEdge(%d→%d, w=%g): %w: %w", u, v, w, ErrConstructFailed, err)
	}
	if cfg.observe != nil {
		cfg.observe(core.Edge{From: core.VertexID(u), To: core.VertexID(v), Weight: w})
	}

	return nil
}

// validateMin rejects n < minimum with ErrTooFewVertices.
func validateMin(method, name string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, n, minimum, ErrTooFewVertices)
	}

	return nil
}
