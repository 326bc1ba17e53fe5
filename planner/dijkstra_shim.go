// File: dijkstra_shim.go
// Role: DijkstraShim adapts the single-agent baseline to the Planner
// interface by ignoring reservations and runnerID.
package planner

import (
	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

// DijkstraShim is a thin single-agent planner: it computes the plain
// shortest path from start to goal and never consults the reservation
// table, making it unsuitable for multi-runner scenarios but useful as a
// baseline for tests and single-agent benchmarks.
type DijkstraShim struct{}

// Plan implements Planner. res and runnerID are accepted only to satisfy
// the interface and are otherwise unused.
func (DijkstraShim) Plan(g *graph.Graph, start, goal graph.Vertex, _ *reservation.Table, _ runner.ID) ([]graph.Vertex, error) {
	_, pred, err := graph.ShortestPathsDijkstra(g, start)
	if err != nil {
		return nil, err
	}
	if pred[goal] == -1 && start != goal {
		return nil, ErrNoPath
	}

	path := []graph.Vertex{goal}
	cur := goal
	for cur != start {
		cur = pred[cur]
		if cur == -1 {
			return nil, ErrNoPath
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
