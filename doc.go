// Package gorunner is a cooperative multi-agent motion layer: it plans and
// simulates many agents moving across a shared weighted graph without ever
// colliding in space or time.
//
// Under the hood it is organized as:
//
//	graph/       — dense integer-indexed weighted graph with planar positions
//	reservation/ — interval-keyed per-vertex reservation table
//	runner/      — per-agent travel state machine
//	planner/     — space-time A* and a single-agent Dijkstra baseline
//	scheduler/   — tick-driven simulation loop tying the above together
//	builder/     — in-memory scenario constructors (grids, warehouses, jobs)
//
// A typical run constructs a graph, builds a job queue, creates a
// scheduler.Scheduler with a chosen planner, and calls Advance in a loop
// until IsFinished or IsDeadlock.
package gorunner
