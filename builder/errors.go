// File: errors.go
// Role: sentinel errors for the builder package. Package-level sentinels
// only, checked with errors.Is, never stringified at the definition site.
package builder

import "errors"

// ErrTooFewVertices indicates a numeric parameter (rows, cols, n) is smaller
// than the minimum the requested constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor (RandomJobs) requires
// a non-nil *rand.Rand and none was supplied.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a stochastic constructor exhausted its
// sampling attempts without satisfying its contract.
var ErrConstructFailed = errors.New("builder: construction failed")
