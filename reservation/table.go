// File: table.go
// Role: IsVertexFreeFor, LockVertex, UnlockVertex, VertexLock — the
// reservation table's public contract, plus coalescing and splitting
// helpers.
package reservation

import (
	"sort"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/runner"
)

// IsVertexFreeFor reports whether every interval currently held on v that
// intersects [s,e) belongs to r. An empty or absent vertex history answers
// true. Use Forever for e to ask "is this free forever from s".
//
// Complexity: O(k) in the worst case, where k is the number of intervals on
// v: they are scanned in start order up to the first one starting at or
// after e.
func (t *Table) IsVertexFreeFor(v graph.Vertex, r runner.ID, s, e int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.inRange(v) {
		return false
	}
	if s >= e {
		return true // an empty query window is vacuously free
	}

	for _, h := range t.byVertex[v] {
		if h.start >= e {
			break
		}
		if h.overlaps(s, e) && h.by != r {
			return false
		}
	}

	return true
}

// LockVertex attempts to claim v for r over [s,e). If the window is free
// for r (per IsVertexFreeFor), the interval is inserted — coalesced with
// any adjacent or overlapping interval already held by r on v — and true is
// returned. Otherwise the table is left unchanged and false is returned.
// A malformed window (s >= e) always returns false.
//
// Complexity: O(k) where k is the number of intervals currently held on v.
func (t *Table) LockVertex(v graph.Vertex, r runner.ID, s, e int64) bool {
	if s >= e {
		return false
	}
	if !t.inRange(v) {
		return false
	}
	if !t.IsVertexFreeFor(v, r, s, e) {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	existing := t.byVertex[v]
	merged := held{start: s, end: e, by: r}
	rest := make([]held, 0, len(existing)+1)
	for _, h := range existing {
		if h.by == r && h.touches(merged.start, merged.end) {
			if h.start < merged.start {
				merged.start = h.start
			}
			if h.end > merged.end {
				merged.end = h.end
			}

			continue
		}
		rest = append(rest, h)
	}
	rest = append(rest, merged)
	sort.Slice(rest, func(i, j int) bool { return rest[i].start < rest[j].start })
	t.byVertex[v] = rest

	return true
}

// UnlockVertex removes the portion of r's holdings on v that overlaps
// [s,e). If the removal cuts a single interval into two pieces, both
// pieces are kept. Calling this on a vertex r does not hold, or with a
// malformed window, is a no-op.
//
// Complexity: O(k).
func (t *Table) UnlockVertex(v graph.Vertex, r runner.ID, s, e int64) {
	if s >= e || !t.inRange(v) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	existing := t.byVertex[v]
	out := make([]held, 0, len(existing)+1)
	for _, h := range existing {
		if h.by != r || !h.overlaps(s, e) {
			out = append(out, h)

			continue
		}
		// h belongs to r and overlaps [s,e): remove the overlapping slice,
		// keeping whatever remains on either side.
		if h.start < s {
			out = append(out, held{start: h.start, end: s, by: r})
		}
		if h.end > e {
			out = append(out, held{start: e, end: h.end, by: r})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	t.byVertex[v] = out
}

// VertexLock returns the runner holding v at instant t, if any. Table
// invariants guarantee at most one holder can match.
//
// Complexity: O(log k) via binary search over the sorted interval slice.
func (t *Table) VertexLock(v graph.Vertex, at int64) (runner.ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.inRange(v) {
		return 0, false
	}

	intervals := t.byVertex[v]
	// intervals are sorted and non-overlapping across runners, so a
	// binary search on start suffices: find the last interval whose
	// start <= at, then check it actually covers at.
	idx := sort.Search(len(intervals), func(i int) bool { return intervals[i].start > at }) - 1
	if idx < 0 || idx >= len(intervals) {
		return 0, false
	}
	h := intervals[idx]
	if at >= h.start && at < h.end {
		return h.by, true
	}

	return 0, false
}
