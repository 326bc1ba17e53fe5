// File: dijkstra.go
// Role: Single-source Dijkstra over w, used only by tests and the
// single-agent baseline planner (planner.DijkstraShim) — never by the
// cooperative space-time planner.
//
// Grounded on dijkstra/dijkstra.go's lazy-decrease-key min-heap, adapted
// from string vertex IDs to dense integer indices.
package graph

import (
	"container/heap"
	"errors"
	"math"
)

// ErrSourceOutOfRange indicates the requested source vertex is invalid.
var ErrSourceOutOfRange = errors.New("graph: source vertex out of range")

// ShortestPathsDijkstra computes shortest distances and predecessors from s
// to every vertex reachable in g. Unreachable vertices get dist ==
// math.Inf(1) and pred == -1.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func ShortestPathsDijkstra(g *Graph, s Vertex) (dist []float64, pred []Vertex, err error) {
	if !g.inRange(s) {
		return nil, nil, ErrSourceOutOfRange
	}

	n := g.Len()
	dist = make([]float64, n)
	pred = make([]Vertex, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[s] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{vertex: s, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, v := range g.Neighbors(u) {
			w, _ := g.Weight(u, v)
			newDist := dist[u] + w
			if newDist < dist[v] {
				dist[v] = newDist
				pred[v] = u
				heap.Push(&pq, &nodeItem{vertex: v, dist: newDist})
			}
		}
	}

	return dist, pred, nil
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	vertex Vertex
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy-decrease-key strategy as dijkstra.nodePQ: stale entries are
// skipped via the visited slice instead of being removed from the heap.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
