// File: types.go
// Role: ID type, sentinel errors, Runner struct and the New constructor.
package runner

import (
	"errors"

	"github.com/kairos-robotics/gorunner/graph"
)

// ErrTrajectoryStartMismatch is returned by Travel when the trajectory's
// first vertex does not match the runner's current position and the caller
// did not allow teleportation.
var ErrTrajectoryStartMismatch = errors.New("runner: trajectory start does not match current position")

// ID uniquely identifies a Runner. The counter that hands these out is
// owned by the scheduler that constructs the runner pool, not by a
// package-level global.
type ID uint64

// Runner tracks one agent's assigned path and progress along it.
//
// Invariants:
//   - 0 <= i < len(path) whenever path is non-empty.
//   - IsInDestination() == (lastVisited == destination).
//   - IsTraveling() == !IsInDestination().
type Runner struct {
	id          ID
	path        []graph.Vertex
	i           int
	position    graph.Point
	destination graph.Vertex
	lastVisited graph.Vertex
}

// New creates a Runner with the given id, parked at initial with no
// assigned path (Idle/InDestination at initial).
//
// Complexity: O(1).
func New(g *graph.Graph, id ID, initial graph.Vertex) *Runner {
	pos, _ := g.Position(initial)

	return &Runner{
		id:          id,
		path:        nil,
		i:           0,
		position:    pos,
		destination: initial,
		lastVisited: initial,
	}
}

// ID returns the runner's identifier.
func (r *Runner) ID() ID { return r.id }

// Position returns the runner's cached planar position.
func (r *Runner) Position() graph.Point { return r.position }

// LastVisited returns the last vertex the runner actually occupied.
func (r *Runner) LastVisited() graph.Vertex { return r.lastVisited }

// Destination returns the final vertex of the runner's current trajectory,
// or its current vertex if no trajectory is assigned.
func (r *Runner) Destination() graph.Vertex { return r.destination }

// Path returns the runner's full assigned trajectory (may be nil/empty).
func (r *Runner) Path() []graph.Vertex { return r.path }

// IsInDestination reports whether the runner has reached its destination.
func (r *Runner) IsInDestination() bool { return r.lastVisited == r.destination }

// IsTraveling reports whether the runner has not yet reached its destination.
func (r *Runner) IsTraveling() bool { return !r.IsInDestination() }
