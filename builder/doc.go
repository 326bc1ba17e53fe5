// Package builder constructs graph.Graph instances for common warehouse
// topologies and derives scheduler job requests and reachability checks
// from them.
//
// The package offers:
//
//   - Topology constructors: Grid, Warehouse.
//   - Scenario generation: RandomJobs.
//   - Validation: Reachable.
//   - Configuration primitives: BuilderOption, WeightFn, and their
//     constructors, adapted from the constructors' functional-options
//     pattern to an int-indexed, always-weighted graph.Graph.
package builder
