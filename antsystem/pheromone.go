// Package antsystem - pheromone table state and the per-round update step.
//
// The table holds exactly one entry per stored edge, keyed by edge identity
// (pair → identity resolution is O(1) through the topology store). It is
// initialized to the configured quantity, reset wholesale whenever the edge
// set changes, and mutated only by updateTrails — the single writer that
// runs after all walks of a round have been collected.
//
// Update ordering is strict: evaporate every edge first, then reinforce.
// Reversing the order would decay the very deposits the round just earned.
package antsystem

// resetPheromone reinitializes the level of every stored edge to the
// configured quantity. Called at construction and after every edge-set
// mutation: inserting even one edge changes the comparison set that
// transition probabilities normalize over, so accumulated levels are no
// longer meaningful.
//
// Complexity: O(E).
func (c *Colony) resetPheromone() {
	c.phero = make(map[int64]float64, c.topo.EdgeCount())

	for _, e := range c.topo.Edges() {
		c.phero[e.ID] = c.opts.PheromoneQuantity
	}
}

// updateTrails applies one round's global pheromone update as a single
// atomic step:
//
//  1. Evaporation: every edge's level is multiplied by (1-EvaporationRate),
//     whether or not any ant used it.
//  2. Reinforcement: for every successful trace, every consecutive pair
//     (a,b) along it deposits quantity/tourLength on edge a→b. Deposits
//     from multiple traces over the same edge accumulate additively.
//
// Failed ants (traces with ≤1 node, length 0) contribute nothing.
// Levels never go negative: the evaporation factor lies in (0,1) and every
// deposit is non-negative.
//
// Complexity: O(E + Σ|trace|).
func (c *Colony) updateTrails(traces [][]int64, lengths []float64) {
	factor := 1 - c.opts.EvaporationRate

	var id int64
	for id = range c.phero {
		c.phero[id] *= factor
	}

	var (
		t     int
		trace []int64
		i     int
	)
	for t, trace = range traces {
		if len(trace) <= 1 || lengths[t] <= 0 {
			continue
		}

		diff := c.opts.PheromoneQuantity / lengths[t]
		for i = 0; i+1 < len(trace); i++ {
			// Traces are produced against the same topology they reinforce,
			// so the lookup only misses if the caller mutated state between
			// walk and update; a miss simply contributes nothing.
			if e, ok := c.topo.Edge(trace[i], trace[i+1]); ok {
				c.phero[e.ID] += diff
			}
		}
	}
}

// tourLength sums the weights of the consecutive edges along trace.
// A pair with no stored edge contributes nothing; traces the walk itself
// produced never contain one. Traces with ≤1 node have length 0.
//
// Complexity: O(|trace|).
func (c *Colony) tourLength(trace []int64) float64 {
	if len(trace) <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(trace); i++ {
		if w, ok := c.topo.Weight(trace[i], trace[i+1]); ok {
			sum += w
		}
	}

	return sum
}

// PheromoneLevel reports the current pheromone on edge from → to, or 0 when
// no such edge exists. Implements PheromoneView.
// Complexity: O(1) average.
func (c *Colony) PheromoneLevel(from, to int64) float64 {
	e, ok := c.topo.Edge(from, to)
	if !ok {
		return 0
	}

	return c.phero[e.ID]
}

// Desirability reports the static attractiveness 1/weight of edge from → to,
// or 0 when no such edge exists. Shorter edges are always more attractive,
// regardless of pheromone. Implements PheromoneView.
// Complexity: O(1) average.
func (c *Colony) Desirability(from, to int64) float64 {
	w, ok := c.topo.Weight(from, to)
	if !ok {
		return 0
	}

	return 1 / w
}
