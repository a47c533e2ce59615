// Package topology - the Store implementation.
//
// The Store keeps three synchronized views of the same edge set:
//
//   - edges:     insertion-ordered slice (stable enumeration, identity order)
//   - byPair:    ordered (from, to) → index into edges (O(1) lookups)
//   - adjacency: from → destination list in edge insertion order
//
// All mutations go through InsertEdge/Clear so the views cannot diverge.
package topology

// Store holds the directed weighted edge set of one engine instance.
//
// Zero value is not usable; construct with NewStore.
type Store struct {
	edges     []Edge            // all edges in insertion order
	byPair    map[pair]int      // ordered pair → index into edges
	adjacency map[int64][]int64 // source node → destinations, insertion order
	nextID    int64             // next identity to assign (monotonic)
}

// NewStore creates an empty Store.
// Complexity: O(1).
func NewStore() *Store {
	return &Store{
		byPair:    make(map[pair]int),
		adjacency: make(map[int64][]int64),
	}
}

// InsertEdge appends a directed edge from → to with the given weight and a
// fresh, strictly increasing identity.
//
// Contracts:
//   - weight must be > 0            (ErrInvalidEdge otherwise).
//   - the ordered pair must be new  (ErrDuplicateEdge otherwise).
//   - on failure the Store is left unchanged.
//
// Complexity: O(1) amortized.
func (s *Store) InsertEdge(from, to int64, weight float64) (Edge, error) {
	if weight <= 0 {
		return Edge{}, ErrInvalidEdge
	}

	key := pair{from: from, to: to}
	if _, exists := s.byPair[key]; exists {
		return Edge{}, ErrDuplicateEdge
	}

	s.nextID++
	e := Edge{ID: s.nextID, From: from, To: to, Weight: weight}

	s.byPair[key] = len(s.edges)
	s.edges = append(s.edges, e)
	s.adjacency[from] = append(s.adjacency[from], to)

	return e, nil
}

// Neighbors returns the destinations reachable by exactly one outgoing edge
// from node, in the insertion order of the matching edges.
//
// The returned slice aliases internal storage and must not be modified;
// it stays valid until the next mutation. This keeps the per-step neighbor
// query allocation-free on the walk's hot path.
//
// Complexity: O(1).
func (s *Store) Neighbors(node int64) []int64 {
	return s.adjacency[node]
}

// Weight reports the weight of the edge from → to and whether it exists.
// Complexity: O(1) average.
func (s *Store) Weight(from, to int64) (float64, bool) {
	idx, ok := s.byPair[pair{from: from, to: to}]
	if !ok {
		return 0, false
	}

	return s.edges[idx].Weight, true
}

// Edge reports the full edge record for the ordered pair from → to and
// whether it exists. Identity is preserved for disambiguation.
// Complexity: O(1) average.
func (s *Store) Edge(from, to int64) (Edge, bool) {
	idx, ok := s.byPair[pair{from: from, to: to}]
	if !ok {
		return Edge{}, false
	}

	return s.edges[idx], true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E) time and space.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (s *Store) EdgeCount() int { return len(s.edges) }

// NodeCount returns the number of distinct nodes appearing as an endpoint
// of at least one edge.
// Complexity: O(E).
func (s *Store) NodeCount() int {
	seen := make(map[int64]struct{}, 2*len(s.edges))

	var e Edge
	for _, e = range s.edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}

	return len(seen)
}

// Nodes returns the distinct nodes in first-appearance order (the order in
// which each node was first seen as an endpoint of an inserted edge).
// Complexity: O(E) time and space.
func (s *Store) Nodes() []int64 {
	seen := make(map[int64]struct{}, 2*len(s.edges))
	out := make([]int64, 0, 2*len(s.edges))

	var e Edge
	for _, e = range s.edges {
		if _, ok := seen[e.From]; !ok {
			seen[e.From] = struct{}{}
			out = append(out, e.From)
		}
		if _, ok := seen[e.To]; !ok {
			seen[e.To] = struct{}{}
			out = append(out, e.To)
		}
	}

	return out
}

// Clear removes all edges. Identities are NOT reused: the next insertion
// continues the monotonic sequence, so identities stay unique across the
// lifetime of the Store.
// Complexity: O(1) amortized (old storage is released to GC).
func (s *Store) Clear() {
	s.edges = nil
	s.byPair = make(map[pair]int)
	s.adjacency = make(map[int64][]int64)
}
