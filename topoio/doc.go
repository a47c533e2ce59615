// Package topoio decodes topology description documents into edge lists
// consumable by the antsystem engine.
//
// The document shape, in JSON or YAML:
//
//	{
//	  "number_of_nodes": 6,
//	  "edges": [
//	    {"nodes": [0, 1], "length": 3},
//	    {"nodes": [1, 5], "length": 2.5}
//	  ]
//	}
//
// number_of_nodes is informational and optional; the edge list alone
// defines the topology.
//
// Every malformed document or edge entry is surfaced as an error to the
// caller — a parse failure must never produce an empty, seemingly-valid
// topology. Weight validation (positive, no duplicate ordered pair) is the
// engine's responsibility at insertion time.
package topoio
