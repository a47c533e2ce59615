// Package topoio - document decoding for JSON and YAML topologies.
package topoio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/acopath/acopath/topology"
)

// Sentinel errors for document validation.
var (
	// ErrBadEdgeEntry indicates an edge entry whose "nodes" list does not
	// hold exactly two node ids.
	ErrBadEdgeEntry = errors.New("topoio: edge entry must list exactly two nodes")

	// ErrUnsupportedFormat indicates a file extension that is neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("topoio: unsupported topology file extension")
)

// document is the on-disk topology shape shared by both formats.
type document struct {
	NumberOfNodes int         `json:"number_of_nodes" yaml:"number_of_nodes"`
	Edges         []edgeEntry `json:"edges"           yaml:"edges"`
}

// edgeEntry is one directed edge: ordered endpoints plus traversal cost.
type edgeEntry struct {
	Nodes  []int64 `json:"nodes"  yaml:"nodes"`
	Length float64 `json:"length" yaml:"length"`
}

// DecodeJSON reads a JSON topology document from r.
// Decode errors and malformed edge entries are returned, never swallowed.
func DecodeJSON(r io.Reader) ([]topology.EdgeSpec, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("topoio: decode json topology: %w", err)
	}

	return specs(doc)
}

// DecodeYAML reads a YAML topology document from r.
func DecodeYAML(r io.Reader) ([]topology.EdgeSpec, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("topoio: decode yaml topology: %w", err)
	}

	return specs(doc)
}

// LoadFile opens path and decodes it according to its extension:
// .json → JSON, .yaml/.yml → YAML. Anything else is ErrUnsupportedFormat.
func LoadFile(path string) ([]topology.EdgeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("topoio: open topology file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// specs validates the decoded document and converts it to edge specs.
func specs(doc document) ([]topology.EdgeSpec, error) {
	out := make([]topology.EdgeSpec, 0, len(doc.Edges))

	var (
		i int
		e edgeEntry
	)
	for i, e = range doc.Edges {
		if len(e.Nodes) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d", ErrBadEdgeEntry, i, len(e.Nodes))
		}
		out = append(out, topology.EdgeSpec{From: e.Nodes[0], To: e.Nodes[1], Weight: e.Length})
	}

	return out, nil
}
