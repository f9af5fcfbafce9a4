// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice with edges in both
// directions. Vertex id of cell (r,c) is r*cols+c. Each direction of a
// neighbor pair draws its own weight, so the lattice may be asymmetric.
//
// Complexity: O(rows*cols).

package builder

import "github.com/katalvlaran/bidir/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols lattice (rows, cols ≥ 1).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d cols=%d: %w", rows, cols, ErrInvalidDimensions)
		}
		if err := addVertices(g, methodGrid, 0, rows*cols); err != nil {
			return err
		}

		id := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r, c+1)); err != nil {
						return err
					}
					if err := addEdge(g, cfg, methodGrid, id(r, c+1), id(r, c)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, id(r, c), id(r+1, c)); err != nil {
						return err
					}
					if err := addEdge(g, cfg, methodGrid, id(r+1, c), id(r, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
