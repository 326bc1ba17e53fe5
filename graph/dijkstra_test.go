package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kairos-robotics/gorunner/graph"
)

func TestShortestPathsDijkstraBasic(t *testing.T) {
	g := defaultGraph(t)
	dist, pred, err := graph.ShortestPathsDijkstra(g, 0)
	require.NoError(t, err)

	require.Equal(t, 0.0, dist[0])
	require.Equal(t, 2.0, dist[1])
	require.Equal(t, 2.0, dist[2]) // 0->3->2 costs 1+1=2, cheaper than 0->2 (3)
	require.Equal(t, 1.0, dist[3])
	require.Equal(t, 0, pred[3])
	require.Equal(t, 3, pred[2])
}

func TestShortestPathsDijkstraUnreachable(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	// vertex 2 is isolated.

	dist, pred, err := graph.ShortestPathsDijkstra(g, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(dist[2], 1))
	require.Equal(t, -1, pred[2])
}

func TestShortestPathsDijkstraBadSource(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	_, _, err = graph.ShortestPathsDijkstra(g, 9)
	require.ErrorIs(t, err, graph.ErrSourceOutOfRange)
}
