// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_edges.go - RandomEdges(n, m): the uniform edge-draw benchmark model.
//
// Model:
//   - Vertices 0..n-1 are added first, so isolated vertices exist.
//   - m draws of (tail, head) uniform over [0,n); each draw adds tail→head.
//   - Self-loop draws are redrawn unless the graph allows loops.
//   - A repeated pair overwrites the earlier weight (no multigraphs), so
//     EdgeCount may be below m.
//
// Complexity: O(n + m) expected.

package builder

import "github.com/katalvlaran/bidir/core"

const (
	methodRandomEdges      = "RandomEdges"
	minRandomEdgesVertices = 1
)

// RandomEdges returns a Constructor drawing m random directed edges over n vertices.
// Requires an RNG; n == 1 without loops can only take m == 0.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomEdges, "n", n, minRandomEdgesVertices); err != nil {
			return err
		}
		if m < 0 {
			return builderErrorf(methodRandomEdges, "m=%d: %w", m, ErrInvalidDimensions)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomEdges, "rng is required: %w", ErrNeedRandSource)
		}
		if n == 1 && m > 0 && !g.Looped() {
			return builderErrorf(methodRandomEdges, "n=1 cannot hold loop-free edges: %w", ErrTooFewVertices)
		}

		if err := addVertices(g, methodRandomEdges, 0, n); err != nil {
			return err
		}
		for i := 0; i < m; i++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			for u == v && !g.Looped() {
				v = cfg.rng.Intn(n)
			}
			if err := addEdge(g, cfg, methodRandomEdges, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
