// Package antsystem - the transition policy abstraction.
//
// The policy converts the two per-edge signals (pheromone level, static
// desirability) into an unnormalized selection weight. Keeping it behind a
// small capability interface lets alternative probability laws or other ACO
// variants plug in without touching the walk or the update step.
package antsystem

import "math"

// PheromoneView is the read-only edge-signal capability handed to a
// TransitionPolicy. Both methods return 0 when no edge from → to exists.
//
// Implementations must be safe for concurrent readers for the duration of a
// round's walk phase.
type PheromoneView interface {
	// PheromoneLevel reports the current pheromone on edge from → to.
	PheromoneLevel(from, to int64) float64

	// Desirability reports the static attractiveness 1/weight of edge
	// from → to, independent of pheromone state.
	Desirability(from, to int64) float64
}

// TransitionPolicy converts edge signals into an unnormalized selection
// weight. The walk normalizes weights over the current neighbor list; a
// zero total marks the node as a dead end.
type TransitionPolicy interface {
	// TransitionWeight must return a non-negative, finite weight.
	TransitionWeight(view PheromoneView, from, to int64) float64
}

// ProportionalPolicy is the classic Ant System rule:
//
//	weight(from,to) = pheromone(from,to)^Alpha · desirability(from,to)^Beta
//
// Alpha scales pheromone importance, Beta heuristic importance. With the
// default Beta=5 the rule biases strongly toward locally cheap edges until
// pheromone differentiates the alternatives.
type ProportionalPolicy struct {
	Alpha float64
	Beta  float64
}

// Compile-time interface compliance check.
var _ TransitionPolicy = ProportionalPolicy{}

// TransitionWeight implements TransitionPolicy.
// Complexity: O(1) plus two view lookups.
func (p ProportionalPolicy) TransitionWeight(view PheromoneView, from, to int64) float64 {
	return math.Pow(view.PheromoneLevel(from, to), p.Alpha) *
		math.Pow(view.Desirability(from, to), p.Beta)
}
