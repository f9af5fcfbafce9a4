// SPDX-License-Identifier: MIT

package bidijkstra

import (
	"fmt"

	"github.com/katalvlaran/bidir/core"
	"github.com/katalvlaran/bidir/vlist"
)

// EdgeWeigher reports the weight of an existing edge. *core.Graph satisfies it.
type EdgeWeigher interface {
	EdgeWeight(from, to core.VertexID) (float64, error)
}

// PathWeight sums the edge weights along path. An empty or single-vertex
// path weighs 0. A missing edge is reported with the failing pair.
func PathWeight(g EdgeWeigher, path *vlist.List[core.VertexID]) (float64, error) {
	var total float64
	for i := 1; i < path.Len(); i++ {
		from, to := path.At(i-1), path.At(i)
		w, err := g.EdgeWeight(from, to)
		if err != nil {
			return 0, fmt.Errorf("bidijkstra: path edge %d->%d: %w", from, to, err)
		}
		total += w
	}

	return total, nil
}
