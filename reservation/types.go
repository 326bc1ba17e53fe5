// File: types.go
// Role: held-interval record, Table struct, and the NewTable constructor.
package reservation

import (
	"math"
	"sync"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/runner"
)

// Forever is the conventional "no upper bound" end-of-time value used by
// is-free/lock/unlock calls that want to reason about "at any time".
const Forever int64 = math.MaxInt64

// held records one runner's claim on a vertex over a half-open interval.
type held struct {
	start, end int64
	by         runner.ID
}

func (h held) overlaps(s, e int64) bool {
	return h.start < e && s < h.end
}

func (h held) touches(s, e int64) bool {
	// Adjacent (touching but not overlapping) counts as mergeable for
	// same-runner coalescing.
	return h.start <= e && s <= h.end
}

// Table is the per-vertex interval map tracking which runner, if any, holds
// each vertex during a given half-open time window. It is sized to the
// graph's vertex count at construction and mutated exclusively by the
// scheduler that owns it.
type Table struct {
	mu       sync.RWMutex
	byVertex [][]held // byVertex[v] kept sorted by start ascending
}

// NewTable allocates a reservation table for numVertices vertices, all
// initially free.
//
// Complexity: O(numVertices).
func NewTable(numVertices int) *Table {
	return &Table{byVertex: make([][]held, numVertices)}
}

func (t *Table) inRange(v graph.Vertex) bool {
	return v >= 0 && v < len(t.byVertex)
}
