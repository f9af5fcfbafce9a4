// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - Complete(n) and Disjoint(a, b).

package builder

import "github.com/katalvlaran/bidir/core"

const (
	methodComplete   = "Complete"
	methodDisjoint   = "Disjoint"
	minCompleteNodes = 1
	minDisjointNodes = 1
)

// Complete builds every ordered pair i→j, i≠j, over n vertices (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(g, methodComplete, 0, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Disjoint builds two unconnected forward chains: 0→…→a-1 and a→…→a+b-1
// (a, b ≥ 1). No vertex of the first reaches the second.
// Complexity: O(a+b).
func Disjoint(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodDisjoint, "a", a, minDisjointNodes); err != nil {
			return err
		}
		if err := validateMin(methodDisjoint, "b", b, minDisjointNodes); err != nil {
			return err
		}
		if err := chain(g, cfg, methodDisjoint, 0, a); err != nil {
			return err
		}

		return chain(g, cfg, methodDisjoint, a, b)
	}
}
