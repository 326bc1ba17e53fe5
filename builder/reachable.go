// File: reachable.go
// Role: Reachable, a breadth-first connectivity check, adapted from
// bfs/bfs.go's traversal loop to graph.Graph's int-indexed adjacency.
package builder

import "github.com/kairos-robotics/gorunner/graph"

// Reachable reports whether goal is reachable from start by following
// directed edges of g. start == goal is always reachable.
//
// Complexity: O(V+E).
func Reachable(g *graph.Graph, start, goal graph.Vertex) bool {
	if start == goal {
		return true
	}

	visited := make(map[graph.Vertex]bool, g.Len())
	queue := []graph.Vertex{start}
	visited[start] = true

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(v) {
			if visited[n] {
				continue
			}
			if n == goal {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return false
}
