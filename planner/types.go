// File: types.go
// Role: Planner interface and the ErrNoPath sentinel.
package planner

import (
	"errors"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

// ErrNoPath indicates no route exists from start to goal given the current
// reservation table.
var ErrNoPath = errors.New("planner: no path found")

// Planner computes a collision-free timed path for runnerID from start to
// goal, consulting res for currently held vertices. Implementations must
// treat g and res as read-only.
type Planner interface {
	Plan(g *graph.Graph, start, goal graph.Vertex, res *reservation.Table, runnerID runner.ID) ([]graph.Vertex, error)
}
