// Package topology stores the directed, positively-weighted edge set that
// the ant-system engine traverses, and answers the neighbor queries that
// drive stochastic path construction.
//
// Design:
//
//   - Every edge carries a strictly increasing insertion identity; identity,
//     not endpoints, defines edge equality and ordering.
//   - At most one edge per ordered (from, to) pair. Parallel edges would be
//     silently dropped from pair-keyed pheromone and heuristic lookups, so
//     they are rejected at insertion instead (ErrDuplicateEdge).
//   - Neighbor lists preserve edge insertion order. The ant walk performs a
//     deterministic cumulative-probability sweep over them, so enumeration
//     order is part of the engine's observable behavior.
//   - Pair-keyed lookups (Weight, Edge) are O(1) average via an internal
//     map keyed by the ordered node pair.
//
// Errors (sentinel):
//
//   - ErrInvalidEdge    — insertion with weight ≤ 0.
//   - ErrDuplicateEdge  — insertion of an already-present ordered pair.
//
// The store performs no locking: the colony layer owns it and serializes
// mutation; walks only read it.
package topology
