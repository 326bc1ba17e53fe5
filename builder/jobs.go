// File: jobs.go
// Role: RandomJobs, a stochastic scenario generator following this
// package's Random*-constructor conventions: an injected *rand.Rand is
// required (ErrNeedRandSource), and all parameters are validated before
// any sampling begins.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/kairos-robotics/gorunner/graph"
	"github.com/kairos-robotics/gorunner/scheduler"
)

const minRandomJobsCount = 1

// RandomJobs samples n job requests over g, each a (start, goal) pair with
// goal reachable from start and start != goal. Requires a non-nil rng.
//
// Complexity: O(n * (V+E)) in the worst case, since each candidate goal is
// reachability-checked against start.
func RandomJobs(g *graph.Graph, n int, rng *rand.Rand) ([]scheduler.JobRequest, error) {
	if n < minRandomJobsCount {
		return nil, fmt.Errorf("RandomJobs: n=%d < min=%d: %w", n, minRandomJobsCount, ErrTooFewVertices)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomJobs: %w", ErrNeedRandSource)
	}
	if g.Len() < 2 {
		return nil, fmt.Errorf("RandomJobs: graph has %d vertices, need at least 2: %w", g.Len(), ErrTooFewVertices)
	}

	const maxAttemptsPerJob = 1000

	jobs := make([]scheduler.JobRequest, 0, n)
	for len(jobs) < n {
		found := false
		for attempt := 0; attempt < maxAttemptsPerJob; attempt++ {
			start := graph.Vertex(rng.Intn(g.Len()))
			goal := graph.Vertex(rng.Intn(g.Len()))
			if start == goal || !Reachable(g, start, goal) {
				continue
			}
			jobs = append(jobs, scheduler.JobRequest{Start: start, Goal: goal})
			found = true

			break
		}
		if !found {
			return nil, fmt.Errorf("RandomJobs: no reachable (start,goal) pair found after %d attempts: %w", maxAttemptsPerJob, ErrConstructFailed)
		}
	}

	return jobs, nil
}
