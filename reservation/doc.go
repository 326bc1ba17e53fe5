// Package reservation implements the interval-based reservation table
// ("constraints") that the space-time planner and simulation scheduler
// consult to keep runners from colliding.
//
// For each vertex, the table keeps an ordered, non-overlapping-per-runner
// set of half-open time intervals [start, end) mapped to the runner
// currently holding the vertex over that window. Two distinct runners can
// never hold overlapping intervals on the same vertex; adjacent or
// overlapping intervals held by the same runner are coalesced into one.
//
// Grounded on core/types.go's locking discipline (a single sync.RWMutex
// guarding the mutable state): a sorted slice of (start, end, runner)
// records per vertex, with binary search for point queries, suffices for
// the expected sizes.
package reservation
