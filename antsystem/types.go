// Package antsystem - configuration, result types and sentinel errors.
//
// Defaults follow the classic Ant System parameterization: pheromone
// importance α=1, heuristic importance β=5 (strong bias toward locally
// cheap edges before pheromone accumulates), evaporation ρ=0.5 and a
// deposit quantity of 100.
package antsystem

import "errors"

// Tunable defaults, all overridable through Options.
const (
	// DefaultAnts is the walk-attempt count per round used when the
	// configured value is non-positive.
	DefaultAnts = 250

	// DefaultIterations is the round count used when the configured value
	// is non-positive.
	DefaultIterations = 150

	// DefaultPheromoneQuantity is the initial pheromone level of every edge
	// and the numerator of the per-tour reinforcement quantity/tourLength.
	DefaultPheromoneQuantity = 100.0

	// DefaultEvaporationRate is the per-round uniform decay fraction.
	DefaultEvaporationRate = 0.5

	// DefaultAlpha is the pheromone-importance exponent.
	DefaultAlpha = 1.0

	// DefaultBeta is the heuristic-importance exponent.
	DefaultBeta = 5.0
)

// Sentinel errors for invalid engine configuration. Options constructors
// panic with these to surface programming errors early; non-positive
// ants/iterations are NOT errors (they fall back to defaults, see
// WithAnts/WithIterations).
var (
	// ErrBadEvaporationRate indicates an evaporation rate outside (0,1).
	// Values at or beyond the bounds would freeze or annihilate pheromone.
	ErrBadEvaporationRate = errors.New("antsystem: evaporation rate must lie in (0,1)")

	// ErrBadPheromoneQuantity indicates a non-positive deposit quantity.
	ErrBadPheromoneQuantity = errors.New("antsystem: pheromone quantity must be positive")

	// ErrBadExponent indicates a negative α or β exponent.
	ErrBadExponent = errors.New("antsystem: importance exponents must be non-negative")
)

// Route is the outcome of a colony run.
//
// Nodes is empty when no ant ever reached the destination within the
// configured budget — an expected, non-error outcome of exhausted search,
// not a failure.
type Route struct {
	// Nodes is the best (lowest-length) complete path found across the
	// whole run, start node first, destination last.
	Nodes []int64

	// Length is the sum of the edge weights along Nodes; 0 when Nodes is
	// empty.
	Length float64
}

// Options configures a Colony.
//
// Ants / Iterations  – per-round walk count and round count; non-positive
// values silently fall back to DefaultAnts/DefaultIterations (intentional
// fallback, mirroring the engine's documented construction contract).
// PheromoneQuantity  – initial level and reinforcement numerator (> 0).
// EvaporationRate    – uniform per-round decay fraction, in (0,1).
// Alpha / Beta       – pheromone/heuristic importance exponents (≥ 0).
// Seed               – base RNG seed; 0 selects a fixed default seed so
// unseeded colonies are still reproducible.
// Parallelism        – max concurrent walks per round; values < 1 mean 1.
// Policy             – transition policy; nil selects ProportionalPolicy
// with the configured exponents.
type Options struct {
	Ants              int
	Iterations        int
	PheromoneQuantity float64
	EvaporationRate   float64
	Alpha             float64
	Beta              float64
	Seed              int64
	Parallelism       int
	Policy            TransitionPolicy
}

// Option is a functional option for configuring a Colony.
type Option func(*Options)

// WithAnts sets the number of walk attempts per round.
// Non-positive values are not rejected: the colony silently falls back to
// DefaultAnts. This is a documented, intentional fallback.
func WithAnts(n int) Option {
	return func(o *Options) { o.Ants = n }
}

// WithIterations sets the number of rounds per Route call.
// Non-positive values silently fall back to DefaultIterations.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithPheromoneQuantity overrides the initial pheromone level and the
// reinforcement numerator. Panics with ErrBadPheromoneQuantity when q ≤ 0.
func WithPheromoneQuantity(q float64) Option {
	return func(o *Options) {
		if q <= 0 {
			panic(ErrBadPheromoneQuantity.Error())
		}
		o.PheromoneQuantity = q
	}
}

// WithEvaporationRate overrides the per-round decay fraction.
// Panics with ErrBadEvaporationRate when rate is outside (0,1).
func WithEvaporationRate(rate float64) Option {
	return func(o *Options) {
		if rate <= 0 || rate >= 1 {
			panic(ErrBadEvaporationRate.Error())
		}
		o.EvaporationRate = rate
	}
}

// WithAlpha overrides the pheromone-importance exponent.
// Panics with ErrBadExponent when alpha < 0.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if alpha < 0 {
			panic(ErrBadExponent.Error())
		}
		o.Alpha = alpha
	}
}

// WithBeta overrides the heuristic-importance exponent.
// Panics with ErrBadExponent when beta < 0.
func WithBeta(beta float64) Option {
	return func(o *Options) {
		if beta < 0 {
			panic(ErrBadExponent.Error())
		}
		o.Beta = beta
	}
}

// WithSeed injects the base RNG seed for deterministic runs.
// Seed 0 keeps the fixed default stream (see rng.go seed policy).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithParallelism bounds the number of concurrently executing walks within
// one round. Values < 1 are treated as 1 (sequential). Results are
// identical at any parallelism level for a fixed seed.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithPolicy injects an alternative transition policy (e.g. a different
// ACO variant's probability law). nil keeps the default ProportionalPolicy.
func WithPolicy(p TransitionPolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// DefaultOptions returns the classic Ant System parameterization.
// Use as a starting point for further functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Ants:              DefaultAnts,
		Iterations:        DefaultIterations,
		PheromoneQuantity: DefaultPheromoneQuantity,
		EvaporationRate:   DefaultEvaporationRate,
		Alpha:             DefaultAlpha,
		Beta:              DefaultBeta,
		Seed:              0,
		Parallelism:       1,
		Policy:            nil,
	}
}

// normalize applies the documented fallbacks that are deliberately not
// validation failures: non-positive ants/iterations revert to defaults,
// parallelism floors at 1, a nil policy selects the proportional rule.
func normalize(o Options) Options {
	if o.Ants <= 0 {
		o.Ants = DefaultAnts
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Parallelism < 1 {
		o.Parallelism = 1
	}
	if o.Policy == nil {
		o.Policy = ProportionalPolicy{Alpha: o.Alpha, Beta: o.Beta}
	}

	return o
}
