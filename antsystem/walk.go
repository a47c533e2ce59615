// Package antsystem - the ant walk: one randomized, cycle-free traversal
// attempt from a start node toward a destination.
//
// The walk is an explicit iterative loop (no recursion) carrying the trace
// and a membership set, so call-stack depth stays constant on large graphs.
// Per step, in order:
//
//  1. cycle check   — revisiting any node fails the walk outright;
//  2. success check — standing on the destination with ≥1 preceding node
//     completes the trace;
//  3. dead-end check — no outgoing neighbors fails the walk;
//  4. selection     — one uniform draw, roulette-wheel over the neighbor
//     list in the store's stable enumeration order.
//
// There is no backtracking: a failure at any step discards the whole trace
// and the ant becomes a zero-contribution sample for the round. Termination
// is guaranteed — the finite node count and strict cycle rejection bound
// every walk to at most |V| steps.
package antsystem

import "math/rand"

// walk runs a single ant attempt from start toward end, drawing from rng.
// Returns the completed simple path (start first, end last) on success, or
// nil on failure. Reads topology and pheromone state only.
//
// Complexity: O(V·D) worst case, D = max out-degree.
func (c *Colony) walk(start, end int64, rng *rand.Rand) []int64 {
	var (
		trace   []int64
		visited = make(map[int64]struct{})
		current = start
	)

	for {
		// 1) Cycle rule: appending current must not repeat a node. Note
		//    that a walk with start == end can only terminate here — coming
		//    back around to the start trips this check before the success
		//    check ever sees a non-empty trace.
		if _, seen := visited[current]; seen {
			return nil
		}

		// 2) Success: reached the destination with at least one node before
		//    it in the path.
		if current == end && len(trace) > 0 {
			return append(trace, current)
		}

		// 3) Neighbor query in stable enumeration order.
		neighbors := c.topo.Neighbors(current)
		if len(neighbors) == 0 {
			return nil
		}

		// 4) Roulette-wheel selection; a vanished total weight means the
		//    node is not a viable source for further selection.
		next, ok := c.selectNext(current, neighbors, rng)
		if !ok {
			return nil
		}

		visited[current] = struct{}{}
		trace = append(trace, current)
		current = next
	}
}

// selectNext picks one neighbor by roulette-wheel selection: a single
// uniform draw u in [0,1), then a sweep over the neighbors accumulating
// normalized transition probabilities in enumeration order — the first
// neighbor whose cumulative sum reaches u wins (ties broken by order).
//
// Returns false when every transition weight vanishes — the policy sees no
// viable edge out of this node, so the walk treats it as a dead end.
//
// Complexity: O(D) time, O(D) scratch space, one RNG draw.
func (c *Colony) selectNext(from int64, neighbors []int64, rng *rand.Rand) (int64, bool) {
	weights := make([]float64, len(neighbors))

	var (
		total float64
		i     int
		n     int64
	)
	for i, n = range neighbors {
		weights[i] = c.policy.TransitionWeight(c, from, n)
		total += weights[i]
	}
	if total <= 0 {
		return 0, false
	}

	var (
		u   = rng.Float64()
		cum float64
	)
	for i = range weights {
		cum += weights[i] / total
		if cum >= u {
			return neighbors[i], true
		}
	}

	// Floating-point shortfall: the cumulative sum landed just below u.
	// The last neighbor owns the remainder of the interval.
	return neighbors[len(neighbors)-1], true
}
