// Package antsystem implements the Ant System variant of Ant Colony
// Optimization for approximating low-cost paths between two nodes of a
// directed, positively-weighted graph.
//
// The engine runs a configurable number of rounds; each round releases a
// batch of ants that independently attempt a randomized, cycle-free walk
// from the start node toward the destination. Edge selection is driven by
// a transition policy combining two signals:
//
//   - pheromone:    a shared, mutable desirability level per edge, deposited
//     proportionally to tour quality and decayed every round;
//   - desirability: the static heuristic 1/weight — cheaper edges are always
//     more attractive, especially before pheromone accumulates.
//
// After all walks of a round complete, a single atomic pheromone update is
// applied: uniform evaporation over every edge, then reinforcement of each
// edge traversed by a successful tour with quantity/tourLength. Round i+1
// observes the pheromone state exactly as left by round i.
//
// Guarantees and non-guarantees:
//
//   - Termination: each walk is bounded by the node count (strict cycle
//     rejection); a run performs exactly iterations×ants walk attempts.
//   - Determinism: one persistent base RNG seeded at construction; per-ant
//     streams are derived from it before each round's fan-out, so a fixed
//     seed reproduces identical results at any parallelism level, and
//     consecutive Route calls keep consuming the same base stream.
//   - Pheromone never goes negative: evaporation multiplies by a factor in
//     (0,1) and reinforcement only adds non-negative amounts.
//   - No optimality: the returned route is the best tour any ant completed,
//     not a proven shortest path. Pair with package dijkstra when an exact
//     baseline is needed.
//
// Concurrency: walks within one round only read the topology and pheromone
// table and may fan out across goroutines (WithParallelism); the update step
// is the sole writer and runs strictly after collection. The engine defines
// no cancellation — callers wanting early termination impose it between
// Route calls.
package antsystem
