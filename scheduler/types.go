// File: types.go
// Role: JobRequest, functional Options, Scheduler struct and New
// constructor.
package scheduler

import (
	"errors"
	"log"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/planner"
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

// Sentinel errors for scheduler invariant violations. DoubleAssignment and
// MissingAssignmentOnFinish indicate scheduler misuse. ErrDoubleAssignment
// is returned by the assign phase, and Advance aborts the tick and returns
// it to the caller. No code path returns ErrMissingAssignmentOnFinish: the
// finish phase skips runners without an assignment.
var (
	// ErrDoubleAssignment indicates an attempt to assign a job to a runner
	// that already has one.
	ErrDoubleAssignment = errors.New("scheduler: runner already has an assignment")

	// ErrMissingAssignmentOnFinish indicates an attempt to finish a job on
	// a runner that has none.
	ErrMissingAssignmentOnFinish = errors.New("scheduler: runner has no assignment to finish")
)

// JobRequest is an immutable (start, goal) pair awaiting a runner.
type JobRequest struct {
	Start graph.Vertex
	Goal  graph.Vertex
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithDeadlockThreshold sets the number of consecutive no-move ticks
// required before IsDeadlock reports true. A single stalled tick is a
// common, harmless occurrence when two planned trajectories briefly
// contend for the same vertex, so the default is |V|+1; pass 1 to treat
// any single stalled tick as a reportable deadlock (see WithStrictDeadlock).
func WithDeadlockThreshold(k int) Option {
	return func(s *Scheduler) {
		if k > 0 {
			s.deadlockThreshold = k
		}
	}
}

// WithStrictDeadlock restores the original single-tick deadlock rule:
// is_deadlock becomes true the moment one full tick passes with no runner
// movement. Equivalent to WithDeadlockThreshold(1).
func WithStrictDeadlock() Option {
	return WithDeadlockThreshold(1)
}

// WithLogger attaches a logger used to report PathReservationConflict
// events and deadlock detection. A nil logger (the default) disables
// reporting; callers that want visibility into stalled assignments should
// supply one.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// Scheduler owns the runner pool, reservation table, and job queues for one
// simulation run.
type Scheduler struct {
	g       *graph.Graph
	res     *reservation.Table
	planner planner.Planner
	logger  *log.Logger

	runners     []*runner.Runner
	nextRunnerID runner.ID

	// newJobs is kept in reverse order: the tail is the next job to pop,
	// so that popping from the back realises FIFO order on the original
	// input slice.
	newJobs []JobRequest

	assignments  map[runner.ID]JobRequest
	finishedJobs []JobRequest

	time              int64
	noMoveStreak      int
	deadlockThreshold int
}

// New constructs a Scheduler with numberOfRunners runners, each starting
// idle at vertex 0, and the given initial job queue.
//
// Complexity: O(numberOfRunners + len(jobs)).
func New(jobs []JobRequest, g *graph.Graph, numberOfRunners int, p planner.Planner, opts ...Option) *Scheduler {
	s := &Scheduler{
		g:                 g,
		res:               reservation.NewTable(g.Len()),
		planner:           p,
		assignments:       make(map[runner.ID]JobRequest, numberOfRunners),
		deadlockThreshold: g.Len() + 1,
	}

	s.newJobs = make([]JobRequest, len(jobs))
	for i, j := range jobs {
		s.newJobs[len(jobs)-1-i] = j
	}

	s.runners = make([]*runner.Runner, numberOfRunners)
	for i := 0; i < numberOfRunners; i++ {
		id := s.nextRunnerID
		s.nextRunnerID++
		s.runners[i] = runner.New(g, id, 0)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
