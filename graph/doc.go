// Package graph provides the dense, integer-indexed directed weighted graph
// that underlies the cooperative motion layer: vertices are plain 0-based
// indices, edges carry non-negative weights, and each vertex carries a planar
// position used by the space-time planner's heuristic.
//
// The graph is built once by a scenario loader (see package builder) and
// treated as shared, read-only state by every planner and scheduler tick
// afterwards. Mutation after construction is supported for test fixtures but
// is not expected once a scheduler starts ticking against the graph.
//
//	g, _ := graph.New(4)
//	g.SetPosition(0, graph.Point{X: 0, Y: 0})
//	g.AddBidirectionalEdge(0, 1, 2)
//
// Complexity notes for every exported method are documented alongside the
// method itself.
package graph
