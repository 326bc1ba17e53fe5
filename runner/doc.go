// Package runner implements the per-agent state machine: an Idle runner at
// some vertex accepts a trajectory via Travel, becomes Traveling, advances
// one vertex per tick via Advance, and becomes InDestination (== Idle at the
// destination) once the trajectory is exhausted.
//
// A Runner never locks a reservation table itself; package scheduler owns
// that coordination: it hands a runner its trajectory via Travel and then
// reserves that trajectory, and it calls Advance only after locking the
// vertex the runner is about to step onto.
package runner
