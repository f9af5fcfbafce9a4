// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p): directed Erdős–Rényi-like generator.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - RNG required when 0 < p < 1 (ErrNeedRandSource).
//   - Ordered pairs (i,j) are tried i asc, j asc; self-loops only if g.Looped().
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "github.com/katalvlaran/bidir/core"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each ordered pair with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if !(p >= probMin && p <= probMax) {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}

		if err := addVertices(g, methodRandomSparse, 0, n); err != nil {
			return err
		}
		loops := g.Looped()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				var take bool
				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
