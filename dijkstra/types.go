// Package dijkstra - sentinel errors for the exact shortest-path baseline.
package dijkstra

import "errors"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilStore indicates that a nil *topology.Store was passed in.
	ErrNilStore = errors.New("dijkstra: topology store is nil")

	// ErrNodeNotFound indicates that the start node does not appear as an
	// endpoint of any stored edge.
	ErrNodeNotFound = errors.New("dijkstra: node not found in topology")
)
