// File: queries.go
// Role: Read-only observers of simulation state: the public scheduler API
// for the deadlock and completion predicates.
package scheduler

import "github.com/kairos-robotics/gorunner/runner"

// Time returns the current tick count.
func (s *Scheduler) Time() int64 { return s.time }

// IsFinished reports whether the queue is drained and every runner has
// reached its destination with no outstanding assignment.
func (s *Scheduler) IsFinished() bool {
	if len(s.newJobs) != 0 || len(s.assignments) != 0 {
		return false
	}
	for _, r := range s.runners {
		if !r.IsInDestination() {
			return false
		}
	}

	return true
}

// IsDeadlock reports whether the simulation has gone deadlockThreshold
// consecutive ticks with no runner movement while at least one runner still
// holds a live assignment. The threshold defaults to |V|+1 and can be tuned
// via WithDeadlockThreshold/WithStrictDeadlock.
//
// A job that repeatedly fails to plan (ErrNoPath) is requeued without ever
// being assigned to a runner, so a queue stuck entirely on unreachable jobs
// produces no movement and no assignment at all — that is a planning
// failure, not a deadlock, and must not report one: reporting deadlock
// requires len(s.assignments) > 0, not just a non-empty queue.
func (s *Scheduler) IsDeadlock() bool {
	if s.IsFinished() {
		return false
	}
	if len(s.assignments) == 0 {
		return false
	}

	return s.noMoveStreak >= s.deadlockThreshold
}

// NewJobs returns the still-queued jobs, in their original FIFO order.
func (s *Scheduler) NewJobs() []JobRequest {
	out := make([]JobRequest, len(s.newJobs))
	for i, j := range s.newJobs {
		out[len(s.newJobs)-1-i] = j
	}

	return out
}

// Assignments returns a snapshot of the current runner->job assignments.
func (s *Scheduler) Assignments() map[runner.ID]JobRequest {
	out := make(map[runner.ID]JobRequest, len(s.assignments))
	for k, v := range s.assignments {
		out[k] = v
	}

	return out
}

// FinishedJobs returns the jobs retired so far, in completion order.
func (s *Scheduler) FinishedJobs() []JobRequest {
	out := make([]JobRequest, len(s.finishedJobs))
	copy(out, s.finishedJobs)

	return out
}

// Runners returns the runner pool in construction order.
func (s *Scheduler) Runners() []*runner.Runner {
	out := make([]*runner.Runner, len(s.runners))
	copy(out, s.runners)

	return out
}
