package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/planner"
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

func defaultGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(3, 2, 1))

	return g
}

// TestSpaceTimePlainShortestPath asserts that on an empty reservation
// table the space-time planner still finds the cheapest detour, 0 -> 3 -> 2.
func TestSpaceTimePlainShortestPath(t *testing.T) {
	g := defaultGraph(t)
	res := reservation.NewTable(g.Len())

	path, err := planner.SpaceTime{}.Plan(g, 0, 2, res, runner.ID(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2}, path)
}

// TestSpaceTimeDetour checks that the planner picks the globally cheapest
// route rather than a locally greedy one on a graph with several detours.
func TestSpaceTimeDetour(t *testing.T) {
	g, err := graph.New(6)
	require.NoError(t, err)
	edges := []struct {
		u, v int
		w    float64
	}{
		{0, 1, 2}, {0, 2, 1}, {1, 3, 2}, {2, 1, 2},
		{2, 3, 6}, {2, 4, 3}, {3, 4, 7}, {3, 5, 2}, {4, 5, 4},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}
	// All vertices at the same position: heuristic is 0 everywhere, which
	// is trivially admissible and lets the cheapest-cost path win cleanly.
	for v := 0; v < 6; v++ {
		require.NoError(t, g.SetPosition(v, graph.Point{}))
	}

	res := reservation.NewTable(g.Len())
	path, err := planner.SpaceTime{}.Plan(g, 0, 5, res, runner.ID(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 5}, path)
}

func TestSpaceTimeUnreachableGoal(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	// vertex 2 is isolated: unreachable.

	res := reservation.NewTable(g.Len())
	_, err = planner.SpaceTime{}.Plan(g, 0, 2, res, runner.ID(1))
	require.ErrorIs(t, err, planner.ErrNoPath)
}

// TestSpaceTimeRespectsReservation asserts that a vertex locked by another
// runner for the tick the planner would otherwise arrive forces a wait or
// detour instead of a collision.
func TestSpaceTimeRespectsReservation(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirectionalEdge(0, 1, 1))
	require.NoError(t, g.AddBidirectionalEdge(1, 2, 1))

	res := reservation.NewTable(g.Len())
	// Runner 2 holds vertex 1 for tick [1,2): runner 1 cannot step onto it
	// at tick 1 and must wait one tick before moving.
	require.True(t, res.LockVertex(1, runner.ID(2), 1, 2))

	path, err := planner.SpaceTime{}.Plan(g, 0, 2, res, runner.ID(1))
	require.NoError(t, err)
	require.Equal(t, graph.Vertex(0), path[0])
	require.Equal(t, graph.Vertex(2), path[len(path)-1])
	// The path must avoid occupying vertex 1 during tick [1,2).
	for tick, v := range path {
		if v == 1 {
			require.NotEqual(t, int64(1), int64(tick))
		}
	}
}

func TestSpaceTimeStartEqualsGoal(t *testing.T) {
	g := defaultGraph(t)
	res := reservation.NewTable(g.Len())
	path, err := planner.SpaceTime{}.Plan(g, 2, 2, res, runner.ID(1))
	require.NoError(t, err)
	require.Equal(t, []int{2}, path)
}

func TestDijkstraShimIgnoresReservations(t *testing.T) {
	g := defaultGraph(t)
	res := reservation.NewTable(g.Len())
	require.True(t, res.LockVertex(3, runner.ID(9), 0, reservation.Forever))

	path, err := planner.DijkstraShim{}.Plan(g, 0, 2, res, runner.ID(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 2}, path)
}
