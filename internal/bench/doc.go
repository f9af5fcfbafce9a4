// SPDX-License-Identifier: MIT

// Package bench runs the bidirectional and unidirectional searches side by
// side on one graph, times them and checks that they agree.
//
// The default input is the classic benchmark model: Nodes vertices and
// Edges uniformly drawn directed edges with weights in [MinWeight,
// MaxWeight). The source is the tail of the first drawn edge and the target
// the head of draw Nodes/2, unless configured. With Queries > 0 a sweep of
// random endpoint pairs runs concurrently and counts disagreements.
package bench
