// Package topoio_test validates topology document decoding for both
// formats, the strict edge-entry shape, and file-extension routing.
package topoio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acopath/acopath/topoio"
	"github.com/acopath/acopath/topology"
)

const jsonDoc = `{
  "number_of_nodes": 6,
  "edges": [
    {"nodes": [0, 1], "length": 3},
    {"nodes": [1, 5], "length": 2.5}
  ]
}`

const yamlDoc = `number_of_nodes: 6
edges:
  - nodes: [0, 1]
    length: 3
  - nodes: [1, 5]
    length: 2.5
`

func wantSpecs() []topology.EdgeSpec {
	return []topology.EdgeSpec{
		{From: 0, To: 1, Weight: 3},
		{From: 1, To: 5, Weight: 2.5},
	}
}

func TestDecodeJSON_WellFormed(t *testing.T) {
	specs, err := topoio.DecodeJSON(strings.NewReader(jsonDoc))
	require.NoError(t, err)
	require.Equal(t, wantSpecs(), specs)
}

func TestDecodeYAML_WellFormed(t *testing.T) {
	specs, err := topoio.DecodeYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	require.Equal(t, wantSpecs(), specs)
}

func TestDecodeJSON_MalformedDocumentIsAnError(t *testing.T) {
	_, err := topoio.DecodeJSON(strings.NewReader(`{"edges": [`))
	require.Error(t, err)
}

func TestDecode_EdgeEntryMustHaveTwoNodes(t *testing.T) {
	_, err := topoio.DecodeJSON(strings.NewReader(
		`{"edges": [{"nodes": [0, 1, 2], "length": 1}]}`))
	require.ErrorIs(t, err, topoio.ErrBadEdgeEntry)

	_, err = topoio.DecodeYAML(strings.NewReader("edges:\n  - nodes: [4]\n    length: 1\n"))
	require.ErrorIs(t, err, topoio.ErrBadEdgeEntry)
}

func TestDecode_EmptyEdgeListIsValid(t *testing.T) {
	specs, err := topoio.DecodeJSON(strings.NewReader(`{"number_of_nodes": 0, "edges": []}`))
	require.NoError(t, err)
	require.Empty(t, specs)
}

func TestLoadFile_RoutesByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "topo.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o600))
	yamlPath := filepath.Join(dir, "topo.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o600))

	fromJSON, err := topoio.LoadFile(jsonPath)
	require.NoError(t, err)
	fromYAML, err := topoio.LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, fromJSON, fromYAML)
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topo.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

	_, err := topoio.LoadFile(path)
	require.ErrorIs(t, err, topoio.ErrUnsupportedFormat)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := topoio.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
