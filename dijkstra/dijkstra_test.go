// Package dijkstra_test validates the exact baseline: path correctness on
// directed graphs, unreachable destinations, and input contracts.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acopath/acopath/dijkstra"
	"github.com/acopath/acopath/topology"
)

func buildStore(t *testing.T, specs [][3]float64) *topology.Store {
	t.Helper()
	s := topology.NewStore()
	for _, sp := range specs {
		_, err := s.InsertEdge(int64(sp[0]), int64(sp[1]), sp[2])
		require.NoError(t, err)
	}

	return s
}

func TestShortestPath_NilStore(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, 0, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilStore)
}

func TestShortestPath_UnknownStart(t *testing.T) {
	s := buildStore(t, [][3]float64{{0, 1, 1}})
	_, _, err := dijkstra.ShortestPath(s, 9, 1)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestShortestPath_Triangle(t *testing.T) {
	// 0→1 (1), 1→2 (2), 0→2 (5): the two-hop route wins.
	s := buildStore(t, [][3]float64{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}})

	nodes, length, err := dijkstra.ShortestPath(s, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2}, nodes)
	require.Equal(t, 3.0, length)
}

func TestShortestPath_RespectsDirection(t *testing.T) {
	s := buildStore(t, [][3]float64{{0, 1, 1}, {1, 2, 1}})

	nodes, length, err := dijkstra.ShortestPath(s, 2, 0)
	require.NoError(t, err)
	require.Nil(t, nodes)
	require.True(t, math.IsInf(length, 1))
}

func TestShortestPath_UnreachableIsNotAnError(t *testing.T) {
	s := buildStore(t, [][3]float64{{0, 2, 1}, {3, 1, 1}})

	nodes, length, err := dijkstra.ShortestPath(s, 0, 1)
	require.NoError(t, err)
	require.Empty(t, nodes)
	require.True(t, math.IsInf(length, 1))
}

func TestShortestPath_StartEqualsEndIsTrivial(t *testing.T) {
	s := buildStore(t, [][3]float64{{0, 1, 1}})

	nodes, length, err := dijkstra.ShortestPath(s, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []int64{0}, nodes)
	require.Zero(t, length)
}

func TestShortestPath_PicksCheaperOfParallelRoutes(t *testing.T) {
	// Diamond: 0→1→3 costs 2, 0→2→3 costs 10.
	s := buildStore(t, [][3]float64{
		{0, 1, 1}, {1, 3, 1},
		{0, 2, 5}, {2, 3, 5},
	})

	nodes, length, err := dijkstra.ShortestPath(s, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 3}, nodes)
	require.Equal(t, 2.0, length)
}

func TestShortestPath_AgreesWithWeightSum(t *testing.T) {
	s := buildStore(t, [][3]float64{
		{0, 1, 1.5}, {1, 2, 2.5}, {2, 3, 0.5},
	})

	nodes, length, err := dijkstra.ShortestPath(s, 0, 3)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3}, nodes)
	require.InDelta(t, 4.5, length, 1e-12)
}
