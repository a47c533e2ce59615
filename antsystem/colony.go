// Package antsystem - the Colony: topology + pheromone ownership and the
// per-round orchestration of walks, scoring and the update step.
package antsystem

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/acopath/acopath/topology"
)

// Colony owns one engine instance: the topology store, the pheromone table
// and the persistent base RNG. The zero value is not usable; construct with
// New or NewFromEdges.
//
// Mutation model: InsertEdge and Clear mutate topology and pheromone state;
// Route mutates only pheromone state (once per round, after all walks).
// A Colony must not be shared across goroutines — parallelism lives inside
// a round, behind WithParallelism.
type Colony struct {
	topo   *topology.Store
	phero  map[int64]float64 // edge identity → pheromone level
	opts   Options
	policy TransitionPolicy
	rng    *rand.Rand // persistent base stream, seeded once at construction
}

// Compile-time check: the colony is the engine's own PheromoneView.
var _ PheromoneView = (*Colony)(nil)

// New creates a Colony over an empty topology, to be populated through
// InsertEdge. Non-positive ants/iterations in the options silently fall
// back to the documented defaults (see Options).
func New(opts ...Option) *Colony {
	cfg := DefaultOptions()

	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg = normalize(cfg)

	c := &Colony{
		topo:   topology.NewStore(),
		opts:   cfg,
		policy: cfg.Policy,
		rng:    rngFromSeed(cfg.Seed),
	}
	c.resetPheromone()

	return c
}

// NewFromEdges creates a Colony pre-populated with the given edges.
//
// Any invalid edge (non-positive weight, duplicate ordered pair) aborts
// construction and surfaces as an error naming the offending edge — a
// partially loaded topology would otherwise masquerade as a valid instance
// that simply "finds no path".
func NewFromEdges(specs []topology.EdgeSpec, opts ...Option) (*Colony, error) {
	c := New(opts...)

	var sp topology.EdgeSpec
	for _, sp = range specs {
		if _, err := c.topo.InsertEdge(sp.From, sp.To, sp.Weight); err != nil {
			return nil, fmt.Errorf("antsystem: edge %d→%d (weight %v): %w", sp.From, sp.To, sp.Weight, err)
		}
	}
	c.resetPheromone()

	return c, nil
}

// InsertEdge appends a directed edge and resets the entire pheromone table
// to the initial quantity — the comparison set for probability
// normalization changed, so previously accumulated levels no longer rank
// the surviving edges meaningfully.
//
// Returns topology.ErrInvalidEdge (weight ≤ 0) or topology.ErrDuplicateEdge;
// on failure both the topology and the pheromone table are left unchanged.
func (c *Colony) InsertEdge(from, to int64, weight float64) error {
	if _, err := c.topo.InsertEdge(from, to, weight); err != nil {
		return err
	}
	c.resetPheromone()

	return nil
}

// Clear removes all edges and all pheromone entries. The base RNG stream
// and the configured options are retained.
func (c *Colony) Clear() {
	c.topo.Clear()
	c.resetPheromone()
}

// Topology exposes read access to the underlying store (neighbor queries,
// edge enumeration). Callers must not retain it across Clear.
func (c *Colony) Topology() *topology.Store { return c.topo }

// EdgeCount reports the number of stored edges.
func (c *Colony) EdgeCount() int { return c.topo.EdgeCount() }

// Options returns the colony's effective configuration, with the documented
// fallbacks already applied.
func (c *Colony) Options() Options { return c.opts }

// Path returns the node sequence of Route(start, end); empty when no ant
// ever reached end.
func (c *Colony) Path(start, end int64) []int64 {
	return c.Route(start, end).Nodes
}

// Route runs the full configured budget (Iterations rounds of Ants walks)
// and returns the best complete tour found, with its length.
//
// Semantics:
//   - Run state (best path, best length) resets at the start of every call;
//     the pheromone table does NOT — successive calls on the same instance
//     keep refining the same trail state unless Clear is invoked.
//   - A tour becomes the new best only when its length is strictly positive
//     and strictly smaller than the best so far; ties keep the earlier find.
//   - Route(s, s) returns an empty Route: the cycle rule rejects returning
//     to the start, so no walk can complete.
//   - The pheromone update runs exactly once per round, strictly after all
//     of the round's walks have been collected.
//
// Complexity: O(Iterations · Ants · V·D) worst case.
func (c *Colony) Route(start, end int64) Route {
	var (
		best    []int64
		bestLen = math.Inf(1)
	)

	var (
		ants  = c.opts.Ants
		round int
		a     int
	)
	for round = 0; round < c.opts.Iterations; round++ {
		traces := make([][]int64, ants)
		lengths := make([]float64, ants)

		// Derive one independent RNG stream per ant up front, on a single
		// goroutine: this advances the persistent base stream and makes the
		// round's outcome independent of goroutine scheduling.
		rngs := make([]*rand.Rand, ants)
		for a = 0; a < ants; a++ {
			rngs[a] = deriveRNG(c.rng, uint64(a))
		}

		// Walk phase: topology and pheromone are read-only until g.Wait
		// returns. Each goroutine writes only its own slot.
		var g errgroup.Group
		g.SetLimit(c.opts.Parallelism)
		for ant := 0; ant < ants; ant++ {
			ant := ant
			g.Go(func() error {
				trace := c.walk(start, end, rngs[ant])
				if len(trace) > 1 && trace[0] == start && trace[len(trace)-1] == end {
					traces[ant] = trace
					lengths[ant] = c.tourLength(trace)
				}

				return nil
			})
		}
		_ = g.Wait() // walks never return errors; Wait only synchronizes

		// Scoring in ant order keeps "earlier find wins ties" deterministic
		// regardless of which goroutine finished first.
		for a = 0; a < ants; a++ {
			if traces[a] == nil {
				continue
			}
			if lengths[a] > 0 && lengths[a] < bestLen {
				bestLen = lengths[a]
				best = traces[a]
			}
		}

		// Single-writer update; round+1's walks observe exactly this state.
		c.updateTrails(traces, lengths)
	}

	if best == nil {
		return Route{}
	}

	return Route{Nodes: best, Length: bestLen}
}
