// Package dijkstra computes exact shortest paths over a topology store.
//
// It exists as the deterministic baseline next to the probabilistic
// antsystem engine: tests verify that the colony converges to the true
// optimum on small graphs, and the CLI can report both results side by
// side. It is not part of the engine itself.
//
// The implementation processes nodes in order of increasing distance using
// a min-heap with the lazy-decrease-key strategy: improved distances push
// duplicate heap entries, and stale entries are skipped when popped.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E)
//
// Edge weights are guaranteed positive by the topology store, so the
// non-negativity precondition of the algorithm always holds.
package dijkstra
