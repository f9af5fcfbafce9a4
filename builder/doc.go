// SPDX-License-Identifier: MIT

// Package builder produces deterministic graph fixtures for tests, examples
// and the benchmark harness.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph, resolves builder options and applies constructors in order.
//   - Topology constructors, all directed, vertex ids 0..n-1:
//     – RandomEdges(n, m):   n vertices and m uniformly drawn directed edges
//     (the classic benchmark model; a repeated pair overwrites).
//     – RandomSparse(n, p):  each ordered pair independently with probability p.
//     – Path(n), Cycle(n):   i→i+1 chains (closed for Cycle).
//     – Grid(rows, cols):    4-neighborhood, both directions, id = r*cols+c.
//     – Complete(n):         every ordered pair.
//     – Disjoint(a, b):      two unconnected chains 0..a-1 and a..a+b-1.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, ExponentialWeightFn.
//   - Options: WithSeed, WithRand, WithWeightFn and the WithXWeight shorthands.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors wrapped with method context and never panic.
package builder
