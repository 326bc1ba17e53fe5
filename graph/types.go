// File: types.go
// Role: Graph, Point, Vertex types, sentinel errors, and the New constructor.
// Concurrency:
//   - mu guards pos and adj. Callers should treat a *Graph as read-only once
//     built; AddEdge/AddBidirectionalEdge are provided for scenario
//     construction, not for steady-state mutation during a simulation.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrVertexOutOfRange indicates a vertex index is negative or >= Len().
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrBadSize indicates a non-positive vertex count was passed to New.
	ErrBadSize = errors.New("graph: vertex count must be positive")
)

// Vertex identifies a node by its dense 0-based index.
type Vertex = int

// Point is a planar position used by the space-time planner's heuristic.
type Point struct {
	X, Y float64
}

// Graph is a directed, weighted graph over a dense set of vertices
// 0..Len()-1, each carrying a planar Point. Self-loops are permitted but
// never produced by the builders in this module.
//
// adj[v] maps a neighbour vertex to the outgoing edge weight u->neighbour.
// A bidirectional grid edge is represented as two directed entries.
type Graph struct {
	mu  sync.RWMutex
	pos []Point
	adj []map[Vertex]float64
}

// New allocates a Graph with n vertices, all positioned at the origin until
// SetPosition is called. Returns ErrBadSize if n <= 0.
//
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	g := &Graph{
		pos: make([]Point, n),
		adj: make([]map[Vertex]float64, n),
	}
	for i := range g.adj {
		g.adj[i] = make(map[Vertex]float64)
	}

	return g, nil
}

// Len returns the number of vertices in the graph.
//
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pos)
}

func (g *Graph) inRange(v Vertex) bool {
	return v >= 0 && v < len(g.pos)
}
