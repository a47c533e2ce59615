// Package acopath approximates low-cost paths between two nodes of a
// directed, positively-weighted graph using the Ant System variant of
// Ant Colony Optimization.
//
// 🐜 What is acopath?
//
//	An embeddable, deterministic-by-seed computation engine:
//		• Topology store: directed weighted edges with stable identities
//		• Transition policy: pheromone^α · (1/weight)^β selection weights
//		• Ant walks: randomized, cycle-free traversal attempts
//		• Colony rounds: batches of walks + run-wide best tracking
//		• Pheromone update: global evaporation, then tour reinforcement
//
// It is not an exact shortest-path solver — repeated randomized trials
// reinforce good edges and let poor ones decay, converging toward cheap
// paths without optimality guarantees. An exact Dijkstra baseline is
// included for verification and comparison.
//
// Package map:
//
//	topology/  — edge storage and neighbor queries
//	antsystem/ — the optimization engine (colony, walks, pheromone)
//	dijkstra/  — exact non-negative shortest path over a topology store
//	topoio/    — JSON/YAML topology document decoding
//	cmd/       — the acopath CLI
//
// Quick start:
//
//	col, err := antsystem.NewFromEdges(edges, antsystem.WithSeed(42))
//	if err != nil { ... }
//	route := col.Route(0, 5)
//	fmt.Println(route.Nodes, route.Length)
package acopath
