// Package planner computes collision-free timed paths for a single runner
// against a shared reservation table.
//
// SpaceTime implements the cooperative planner: it searches the product
// space Vertex x Time, treating a reservation table as a dynamic obstacle
// course that forbids occupying a vertex during any interval another
// runner already holds. DijkstraShim adapts the single-agent baseline
// (package graph's Dijkstra) to the same Planner interface by ignoring the
// reservation table entirely, giving callers a pluggable choice of planner
// strategy.
package planner
