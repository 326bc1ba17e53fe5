// File: methods.go
// Role: Travel, Advance, NextVertex, RemainingPath — the state transitions
// of the runner state machine.
package runner

import "github.com/kairos-robotics/gorunner/graph"

// Travel installs trajectory as the runner's new assigned path.
//
// If trajectory is empty, the runner's assignment is cleared: it stays put
// and is immediately InDestination at its current vertex.
//
// Otherwise the destination becomes trajectory's last vertex and the
// progress index resets to 0. If trajectory[0] differs from the runner's
// last visited vertex:
//   - allowTeleport == true forcibly relocates the runner there (updating
//     position and lastVisited), which is how the scheduler teleports a
//     runner to a freshly assigned job's start vertex.
//   - allowTeleport == false returns ErrTrajectoryStartMismatch and leaves
//     the runner's state untouched.
//
// Complexity: O(1).
func (r *Runner) Travel(trajectory []graph.Vertex, allowTeleport bool, g *graph.Graph) error {
	if len(trajectory) == 0 {
		r.path = nil
		r.i = 0
		r.destination = r.lastVisited

		return nil
	}

	if trajectory[0] != r.lastVisited {
		if !allowTeleport {
			return ErrTrajectoryStartMismatch
		}
		r.lastVisited = trajectory[0]
		if pos, ok := g.Position(trajectory[0]); ok {
			r.position = pos
		}
	}

	r.path = trajectory
	r.i = 0
	r.destination = trajectory[len(trajectory)-1]

	return nil
}

// Advance moves the runner one step further along its assigned path,
// updating lastVisited and position. It is a no-op once the runner has
// reached its destination (idempotent).
//
// Complexity: O(1).
func (r *Runner) Advance(g *graph.Graph) {
	if r.i+1 > len(r.path)-1 {
		return
	}
	r.i++
	r.lastVisited = r.path[r.i]
	if pos, ok := g.Position(r.lastVisited); ok {
		r.position = pos
	}
}

// NextVertex returns the vertex the runner wants to occupy next: the
// following path entry if one exists, or its current vertex otherwise (a
// runner at rest "wants" to stay put).
//
// Complexity: O(1).
func (r *Runner) NextVertex() graph.Vertex {
	if r.i+1 <= len(r.path)-1 {
		return r.path[r.i+1]
	}

	return r.lastVisited
}

// RemainingPath returns the unvisited suffix of the runner's path,
// including the current vertex.
//
// Complexity: O(1) (shares the underlying array).
func (r *Runner) RemainingPath() []graph.Vertex {
	if r.path == nil {
		return nil
	}

	return r.path[r.i:]
}
