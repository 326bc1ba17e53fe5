// File: methods.go
// Role: Advance and its three phases (assign, move, finish), the per-tick
// simulation protocol.
package scheduler

import (
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

func (s *Scheduler) popJob() (JobRequest, bool) {
	n := len(s.newJobs)
	if n == 0 {
		return JobRequest{}, false
	}
	job := s.newJobs[n-1]
	s.newJobs = s.newJobs[:n-1]

	return job, true
}

// requeue puts a job back at the next-to-pop position of the FIFO queue,
// used when planning fails for this tick and the job deserves another
// attempt once the reservation table has changed.
func (s *Scheduler) requeue(job JobRequest) {
	s.newJobs = append(s.newJobs, job)
}

func (s *Scheduler) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Advance executes exactly one tick of the simulation: assign idle runners
// to queued jobs, move every runner one step under lock acquisition, retire
// finished jobs, then increment the time counter.
//
// Returns ErrDoubleAssignment if the assign phase is asked to give a job to
// a runner that already has one, or the runner's Travel error; these are
// programmer errors and abort the tick without incrementing time. The
// finish phase skips runners without an assignment and never returns
// ErrMissingAssignmentOnFinish. A planner failure (ErrNoPath) is not
// fatal: it is logged, the job is requeued and the runner stays idle this
// tick. A lock denial while reserving the planned trajectory
// (PathReservationConflict) is not fatal either: it is logged, and the
// runner keeps its assignment and path, advancing whenever the move
// phase's lock on its next vertex is granted.
func (s *Scheduler) Advance() error {
	wasDeadlock := s.IsDeadlock()

	if err := s.assign(); err != nil {
		return err
	}

	moved, err := s.move()
	if err != nil {
		return err
	}

	if err := s.finish(); err != nil {
		return err
	}

	if moved {
		s.noMoveStreak = 0
	} else {
		s.noMoveStreak++
	}
	s.time++

	if !wasDeadlock && s.IsDeadlock() {
		s.logf("scheduler: deadlock detected at tick %d after %d ticks without movement", s.time, s.noMoveStreak)
	}

	return nil
}

// assign pairs every idle (unassigned) runner with the next queued job, in
// runner-index order, and reserves the entire planned trajectory upfront.
func (s *Scheduler) assign() error {
	for _, r := range s.runners {
		if _, has := s.assignments[r.ID()]; has {
			continue
		}
		job, ok := s.popJob()
		if !ok {
			break
		}
		if err := s.assignJob(r, job); err != nil {
			return err
		}
	}

	return nil
}

// assignJob plans a path for job, installs it on r via a teleporting
// Travel, and reserves the planned trajectory one tick per vertex starting
// at the current time. If planning fails the job is requeued for a later
// tick and the runner remains idle this tick (not a fatal condition).
func (s *Scheduler) assignJob(r *runner.Runner, job JobRequest) error {
	if _, has := s.assignments[r.ID()]; has {
		return ErrDoubleAssignment
	}

	path, err := s.planner.Plan(s.g, job.Start, job.Goal, s.res, r.ID())
	if err != nil {
		s.logf("scheduler: no path for runner %d (%d->%d): %v", r.ID(), job.Start, job.Goal, err)
		s.requeue(job)

		return nil
	}

	// Release whatever the runner currently holds on its own vertex from
	// this moment forward, before teleporting it to the plan's start.
	s.res.UnlockVertex(r.LastVisited(), r.ID(), s.time, reservation.Forever)

	if err := r.Travel(path, true, s.g); err != nil {
		// allowTeleport is always true here, so a mismatch cannot occur;
		// surfacing it would indicate a broken invariant elsewhere.
		return err
	}

	for i, v := range path {
		start := s.time + int64(i)
		if !s.res.LockVertex(v, r.ID(), start, start+1) {
			s.logf("scheduler: path reservation conflict for runner %d at vertex %d, tick %d", r.ID(), v, start)
		}
	}

	s.assignments[r.ID()] = job

	return nil
}

// move traverses runners in index order, attempting to lock each one's
// desired next vertex for the current tick. A granted lock advances the
// runner one step; a denial leaves it in place for this tick. Returns
// whether any runner's last-visited vertex changed.
//
// Before any runner attempts to step forward, every runner first re-claims
// its own current vertex for this tick. Without that first pass, a runner
// stalled past the tick its upfront reservation covered would hold no lock
// at all for the tick it is actually still standing on, letting a second
// runner lock that same vertex out from under it. Claiming current position
// first closes that gap and is what turns a head-on, no-detour encounter
// into a genuine, stable deadlock rather than a one-tick stall.
func (s *Scheduler) move() (bool, error) {
	for _, r := range s.runners {
		s.res.LockVertex(r.LastVisited(), r.ID(), s.time, s.time+1)
	}

	moved := false
	for _, r := range s.runners {
		before := r.LastVisited()
		next := r.NextVertex()
		if s.res.LockVertex(next, r.ID(), s.time, s.time+1) {
			r.Advance(s.g)
		}
		if r.LastVisited() != before {
			moved = true
		}
	}

	return moved, nil
}

// finish retires the assignment of every runner that has reached its
// destination, moving the job from assignments to finishedJobs.
func (s *Scheduler) finish() error {
	for _, r := range s.runners {
		if !r.IsInDestination() {
			continue
		}
		job, has := s.assignments[r.ID()]
		if !has {
			continue
		}
		delete(s.assignments, r.ID())
		s.finishedJobs = append(s.finishedJobs, job)
	}

	return nil
}
