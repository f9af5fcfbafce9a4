// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - Path(n) and Cycle(n).

package builder

import "github.com/katalvlaran/bidir/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path builds 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		return chain(g, cfg, methodPath, 0, n)
	}
}

// Cycle builds 0→1→…→n-1→0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := chain(g, cfg, methodCycle, 0, n); err != nil {
			return err
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}

// chain adds base→base+1→…→base+n-1.
func chain(g *core.Graph, cfg builderConfig, method string, base, n int) error {
	if err := addVertices(g, method, base, n); err != nil {
		return err
	}
	for i := base; i < base+n-1; i++ {
		if err := addEdge(g, cfg, method, i, i+1); err != nil {
			return err
		}
	}

	return nil
}
