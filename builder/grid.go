// File: grid.go
// Role: Grid and Warehouse constructors over graph.Graph's dense
// int-vertex model.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors
//     per cell), vertices numbered in row-major order: vertex r*cols+c.
//   - Edges are bidirectional: each grid neighbour relationship is two
//     opposite directed edges.
//   - Weight policy: cfg.weightFn(cfg.rng) for every edge (DefaultWeightFn
//     yields a constant 1 if unconfigured).
//
// Determinism: stable vertex order (row-major), stable edge order (Right
// then Bottom per cell), deterministic weights for a fixed cfg.rng.
//
// Complexity: O(rows*cols) vertices and edges.
package builder

import (
	"fmt"

	"github.com/kairos-robotics/gorunner/graph"
)

const minGridDim = 1

// cell maps a (row, col) pair to its row-major vertex index.
func cell(cols, r, c int) graph.Vertex { return graph.Vertex(r*cols + c) }

// Grid returns a rows x cols orthogonal grid graph with 4-neighborhood
// connectivity. Vertex positions are set to their (col, row) planar
// coordinates so that planners using a Euclidean heuristic behave sanely.
//
// Returns ErrTooFewVertices if rows or cols is below minGridDim.
func Grid(rows, cols int, opts ...BuilderOption) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)

	g, err := graph.New(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.SetPosition(cell(cols, r, c), graph.Point{X: float64(c), Y: float64(r)}); err != nil {
				return nil, fmt.Errorf("Grid: SetPosition(%d,%d): %w", r, c, err)
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := cell(cols, r, c)
			if c+1 < cols {
				if err := g.AddBidirectionalEdge(u, cell(cols, r, c+1), cfg.weightFn(cfg.rng)); err != nil {
					return nil, fmt.Errorf("Grid: AddBidirectionalEdge right of (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if err := g.AddBidirectionalEdge(u, cell(cols, r+1, c), cfg.weightFn(cfg.rng)); err != nil {
					return nil, fmt.Errorf("Grid: AddBidirectionalEdge below (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return g, nil
}

// Warehouse builds a rows x cols grid modeling storage racks separated by
// periodic cross-aisles: vertical movement (along a shelf row) is always
// possible, but horizontal movement between shelf rows (crossing to a
// different rack) is only possible on every aisleSpacing-th row.
// aisleSpacing <= 1 degenerates to a plain Grid.
func Warehouse(rows, cols, aisleSpacing int, opts ...BuilderOption) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Warehouse: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}
	if aisleSpacing <= 1 {
		return Grid(rows, cols, opts...)
	}
	cfg := newBuilderConfig(opts...)

	g, err := graph.New(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("Warehouse: %w", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.SetPosition(cell(cols, r, c), graph.Point{X: float64(c), Y: float64(r)}); err != nil {
				return nil, fmt.Errorf("Warehouse: SetPosition(%d,%d): %w", r, c, err)
			}
		}
	}

	// Runners can always walk the length of a shelf row (vertical moves).
	// Crossing between shelf rows (horizontal moves) is only possible on
	// a cross-aisle row, every aisleSpacing-th row.
	isAisleRow := func(row int) bool { return row%aisleSpacing == 0 }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := cell(cols, r, c)
			if c+1 < cols && isAisleRow(r) {
				if err := g.AddBidirectionalEdge(u, cell(cols, r, c+1), cfg.weightFn(cfg.rng)); err != nil {
					return nil, fmt.Errorf("Warehouse: AddBidirectionalEdge right of (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if err := g.AddBidirectionalEdge(u, cell(cols, r+1, c), cfg.weightFn(cfg.rng)); err != nil {
					return nil, fmt.Errorf("Warehouse: AddBidirectionalEdge below (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return g, nil
}
