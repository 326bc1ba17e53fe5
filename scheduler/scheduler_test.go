package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/planner"
	"github.com/kairos-robotics/gorunner/scheduler"
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

// runUntil advances s up to maxTicks times, stopping early once done reports
// true, and fails the test if done never became true in time.
func runUntil(t *testing.T, s *scheduler.Scheduler, maxTicks int, done func() bool) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if done() {
			return
		}
		require.NoError(t, s.Advance())
	}
	require.True(t, done(), "condition not reached within %d ticks", maxTicks)
}

// TestSchedulerTwoDisjointGoalsFinish checks that two runners with
// disjoint goals on the default graph both reach their destinations, no
// deadlock is ever reported, and both jobs retire.
func TestSchedulerTwoDisjointGoalsFinish(t *testing.T) {
	g := defaultGraph(t)
	jobs := []scheduler.JobRequest{{Start: 0, Goal: 2}, {Start: 0, Goal: 3}}
	s := scheduler.New(jobs, g, 2, planner.SpaceTime{})

	runUntil(t, s, 4*g.Len(), s.IsFinished)

	require.False(t, s.IsDeadlock())
	require.True(t, s.IsFinished())
	require.Len(t, s.FinishedJobs(), 2)
	require.ElementsMatch(t, jobs, s.FinishedJobs())
	require.Empty(t, s.NewJobs())
	require.Empty(t, s.Assignments())
}

// TestSchedulerNoCollisionDuringRun asserts that no two travelling runners
// ever occupy the same vertex at the same tick, for the full run of the
// two-disjoint-goals scenario above.
func TestSchedulerNoCollisionDuringRun(t *testing.T) {
	g := defaultGraph(t)
	jobs := []scheduler.JobRequest{{Start: 0, Goal: 2}, {Start: 0, Goal: 3}}
	s := scheduler.New(jobs, g, 2, planner.SpaceTime{})

	for i := 0; i < 4*g.Len() && !s.IsFinished(); i++ {
		require.NoError(t, s.Advance())

		seen := make(map[graph.Vertex]bool)
		for _, r := range s.Runners() {
			v := r.LastVisited()
			if r.IsInDestination() {
				// A runner resting at its destination may legitimately
				// coexist with another runner that also terminated there
				// in an earlier tick; only runners still actively en route
				// are checked against each other below.
				continue
			}
			require.False(t, seen[v], "two travelling runners both at vertex %d", v)
			seen[v] = true
		}
	}
	require.True(t, s.IsFinished())
}

// TestSchedulerSwapDeadlock covers the classic swap deadlock: two runners
// on a two-vertex chain assigned to swap places. Neither can step onto the
// other's vertex, and since neither ever finishes nor vacates, this is a
// stable deadlock rather than a one-tick stall.
func TestSchedulerSwapDeadlock(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirectionalEdge(0, 1, 1))

	jobs := []scheduler.JobRequest{{Start: 0, Goal: 1}, {Start: 1, Goal: 0}}
	s := scheduler.New(jobs, g, 2, planner.SpaceTime{}, scheduler.WithStrictDeadlock())

	require.NoError(t, s.Advance())
	require.False(t, s.IsFinished())
	require.True(t, s.IsDeadlock())

	// The deadlock persists: another tick changes nothing.
	require.NoError(t, s.Advance())
	require.False(t, s.IsFinished())
	require.True(t, s.IsDeadlock())
}

// TestSchedulerDefaultDeadlockThresholdTolerantOfBriefStalls shows that the
// default |V|+1 threshold does not fire on a single stalled tick, only on a
// genuinely sustained one.
func TestSchedulerDefaultDeadlockThresholdTolerantOfBriefStalls(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddBidirectionalEdge(0, 1, 1))

	jobs := []scheduler.JobRequest{{Start: 0, Goal: 1}, {Start: 1, Goal: 0}}
	s := scheduler.New(jobs, g, 2, planner.SpaceTime{})

	require.NoError(t, s.Advance())
	require.False(t, s.IsDeadlock(), "a single stalled tick must not trip the default threshold")

	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())
	require.True(t, s.IsDeadlock())
}

// TestSchedulerIdleWithNoJobsIsFinished covers the degenerate case of an
// empty job queue: every runner starts and stays at its destination.
// ErrDoubleAssignment and ErrMissingAssignmentOnFinish are not exercised
// here or anywhere else: Advance's own assign/finish guards make both
// conditions unreachable through the public tick API (see DESIGN.md).
func TestSchedulerIdleWithNoJobsIsFinished(t *testing.T) {
	g := defaultGraph(t)
	s := scheduler.New(nil, g, 1, planner.DijkstraShim{})

	require.True(t, s.IsFinished())
	require.NoError(t, s.Advance())
	require.True(t, s.IsFinished())
	require.False(t, s.IsDeadlock())
}

// TestSchedulerUnreachableJobNeverReportsDeadlock covers a job whose goal is
// unreachable: assignJob's planner call fails every tick and requeues the
// job without ever handing it to a runner, so no runner ever holds an
// assignment and none ever moves. That must read as a planning failure, not
// a deadlock, however many ticks accumulate.
func TestSchedulerUnreachableJobNeverReportsDeadlock(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	jobs := []scheduler.JobRequest{{Start: 0, Goal: 1}}
	s := scheduler.New(jobs, g, 1, planner.DijkstraShim{}, scheduler.WithStrictDeadlock())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Advance())
		require.False(t, s.IsDeadlock())
		require.Empty(t, s.Assignments())
	}
	require.False(t, s.IsFinished())
}

func TestSchedulerQueryCopiesAreIndependent(t *testing.T) {
	g := defaultGraph(t)
	jobs := []scheduler.JobRequest{{Start: 0, Goal: 2}}
	s := scheduler.New(jobs, g, 1, planner.SpaceTime{})

	nj := s.NewJobs()
	require.Len(t, nj, 1)
	nj[0] = scheduler.JobRequest{Start: 9, Goal: 9}
	require.Equal(t, jobs, s.NewJobs())

	runUntil(t, s, 4*g.Len(), s.IsFinished)
	fj := s.FinishedJobs()
	fj[0] = scheduler.JobRequest{Start: 9, Goal: 9}
	require.Equal(t, jobs, s.FinishedJobs())
}
