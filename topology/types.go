// Package topology - core types and sentinel errors for the edge store.
package topology

import "errors"

// Sentinel errors for topology mutations.
var (
	// ErrInvalidEdge indicates an insertion attempt with weight ≤ 0.
	// Zero and negative costs have no meaning for the engine's
	// inverse-weight desirability heuristic.
	ErrInvalidEdge = errors.New("topology: edge weight must be positive")

	// ErrDuplicateEdge indicates an insertion attempt for an ordered
	// (from, to) pair that already holds an edge.
	ErrDuplicateEdge = errors.New("topology: ordered node pair already present")
)

// Edge is a directed connection between two nodes.
//
// ID is the strictly increasing identity assigned at insertion; it defines
// equality, ordering and hashing of edges. Weight is the positive traversal
// cost and is immutable once inserted.
type Edge struct {
	// ID uniquely identifies this edge within its Store (insertion order).
	ID int64

	// From is the source node.
	From int64

	// To is the destination node.
	To int64

	// Weight is the positive traversal cost.
	Weight float64
}

// EdgeSpec describes an edge to be inserted: the ordered endpoints and the
// weight. Identity is assigned by the Store at insertion time.
type EdgeSpec struct {
	From   int64
	To     int64
	Weight float64
}

// pair is the ordered (from, to) key used for O(1) edge lookups.
type pair struct {
	from int64
	to   int64
}
