// Package scheduler implements the tick-driven simulation loop: it owns the
// runner pool and reservation table, assigns queued jobs to idle runners,
// advances runners one vertex per tick under lock acquisition, retires
// finished jobs, and detects deadlock.
//
// The scheduler runs single-threaded and cooperative: each call to Advance
// executes exactly one tick of the protocol — assign, move, finish, then
// the time counter increments. No method on Scheduler is safe to call
// concurrently with another.
package scheduler
