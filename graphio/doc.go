// SPDX-License-Identifier: MIT

// Package graphio reads and writes core.Graph values as YAML edge lists.
//
// Document layout:
//
//	directed: true          # false mirrors every edge
//	loops: false            # allow self-loops on Read
//	vertices: [7, 9]        # isolated vertices (optional)
//	edges:
//	  - {from: 0, to: 1, weight: 2.5}
//
// Write always emits a directed document with edges sorted by (from, to)
// and lists only vertices without incident edges.
package graphio
