// File: pathops.go
// Role: Path-level helpers shared by baseline planners and tests:
// PathLength and Intersection, small path-level utilities built on top of
// the adjacency model.
package graph

import "sort"

// PathLength sums edge weights along consecutive pairs of path. A pair with
// no edge between them (including a wait, where the two vertices are equal)
// contributes 0.
//
// Complexity: O(len(path)).
func PathLength(g *Graph, path []Vertex) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		if w, ok := g.Weight(path[i], path[i+1]); ok {
			total += w
		}
	}

	return total
}

// Intersection returns the sorted, duplicate-free set of vertices that
// appear in both p1 and p2.
//
// Complexity: O(n log n) where n = len(p1) + len(p2).
func Intersection(p1, p2 []Vertex) []Vertex {
	set1 := make(map[Vertex]struct{}, len(p1))
	for _, v := range p1 {
		set1[v] = struct{}{}
	}

	seen := make(map[Vertex]struct{})
	out := make([]Vertex, 0)
	for _, v := range p2 {
		if _, ok := set1[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
