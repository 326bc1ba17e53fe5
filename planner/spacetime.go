// File: spacetime.go
// Role: SpaceTime, the cooperative space-time A* planner.
//
// Grounded on dijkstra/dijkstra.go's container/heap min-priority-queue
// pattern, generalized from a plain Vertex key to a (vertex, time) product
// state, plus a hash map of best-known g-cost per state to avoid redundant
// expansion.
package planner

import (
	"container/heap"
	"math"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/reservation"
	"github.com/kairos-robotics/gorunner/runner"
)

// SpaceTime is the default cooperative planner: A* over Vertex x Time with
// a wait self-edge, guarded by the reservation table.
type SpaceTime struct{}

// stateKey packs a (vertex, time) pair into a single comparable map key.
type stateKey struct {
	vertex graph.Vertex
	time   int64
}

// spaceTimeItem is one entry in the planner's open set.
type spaceTimeItem struct {
	vertex graph.Vertex
	time   int64
	g      float64
	f      float64
	seq    int // insertion order, used to break ties deterministically
	prev   graph.Vertex
	hasPrev bool
}

type openSet []*spaceTimeItem

func (pq openSet) Len() int { return len(pq) }
func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}
func (pq openSet) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*spaceTimeItem)) }
func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Plan implements Planner. The returned path starts at start (tick 0
// relative to the caller's base) and ends at goal; consecutive vertices are
// either a graph edge or a wait (equal vertex). It returns ErrNoPath if the
// goal is unreachable within the safety cap of 10*|V| ticks.
//
// Complexity: O(b^d log b^d) in the worst case for branching factor b and
// search depth d, bounded by the 10*|V| tick safety cap.
func (SpaceTime) Plan(g *graph.Graph, start, goal graph.Vertex, res *reservation.Table, runnerID runner.ID) ([]graph.Vertex, error) {
	if start == goal {
		return []graph.Vertex{start}, nil
	}

	goalPos, _ := g.Position(goal)
	h := func(v graph.Vertex) float64 {
		p, _ := g.Position(v)
		dx := p.X - goalPos.X
		dy := p.Y - goalPos.Y

		return math.Sqrt(dx*dx + dy*dy)
	}

	cap64 := int64(10 * g.Len())
	bestG := make(map[stateKey]float64)
	predVertex := make(map[stateKey]graph.Vertex)

	var seq int
	open := make(openSet, 0, 64)
	heap.Init(&open)

	push := func(v graph.Vertex, t int64, gCost, penalty float64, prev graph.Vertex) {
		key := stateKey{v, t}
		if existing, ok := bestG[key]; ok && existing <= gCost {
			return
		}
		bestG[key] = gCost
		predVertex[key] = prev
		seq++
		heap.Push(&open, &spaceTimeItem{
			vertex: v, time: t, g: gCost,
			f: gCost + h(v) + penalty, seq: seq,
			prev: prev, hasPrev: true,
		})
	}

	bestG[stateKey{start, 0}] = 0
	seq++
	heap.Push(&open, &spaceTimeItem{vertex: start, time: 0, g: 0, f: h(start), seq: seq})

	var goalState stateKey
	found := false

	for open.Len() > 0 {
		item := heap.Pop(&open).(*spaceTimeItem)
		key := stateKey{item.vertex, item.time}
		// Stale entry: a cheaper path to this state was already processed.
		if g, ok := bestG[key]; ok && item.g > g {
			continue
		}
		// Drop this single over-long state rather than aborting the whole
		// search: another queued state may still reach goal within the cap.
		if item.time > cap64 {
			continue
		}
		if item.vertex == goal {
			goalState = key
			found = true

			break
		}

		nextTime := item.time + 1
		for _, u := range g.Neighbors(item.vertex) {
			w, _ := g.Weight(item.vertex, u)
			if res.IsVertexFreeFor(u, runnerID, nextTime, nextTime+1) {
				push(u, nextTime, item.g+w, 0, item.vertex)
			}
		}
		// Wait in place: penalized by current time to discourage
		// indefinite waiting over an otherwise-equal-cost move.
		if res.IsVertexFreeFor(item.vertex, runnerID, nextTime, nextTime+1) {
			push(item.vertex, nextTime, item.g, float64(item.time), item.vertex)
		}
	}

	if !found {
		return nil, ErrNoPath
	}

	return reconstruct(predVertex, goalState), nil
}

// reconstruct walks predVertex pointers from goalState back to (start, 0),
// decrementing time by one at each step (a wait step keeps the vertex the
// same while doing so), and returns the vertex sequence in forward order.
func reconstruct(predVertex map[stateKey]graph.Vertex, goalState stateKey) []graph.Vertex {
	path := make([]graph.Vertex, 0, goalState.time+1)
	cur := goalState
	path = append(path, cur.vertex)
	for cur.time > 0 {
		prev := predVertex[cur]
		cur = stateKey{prev, cur.time - 1}
		path = append(path, cur.vertex)
	}
	// Reverse into forward order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
