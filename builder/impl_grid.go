// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 4-neighbourhood lattice; cell (r,c) sits r·spacing north and c·spacing
//     east of the origin.
//   • Point IDs use the fixed scheme "#r,c" (row-major), not cfg.idFn,
//     to keep coordinates readable in test failures.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewPoints).
//   • For each (r,c) in row-major order: route East, then route North, where present.
//
// Complexity:
//   • Time: O(rows*cols) points + O(2*rows*cols) routes.
//   • Space: O(rows*cols) for the placed points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewPoints)
		}

		// fixed coordinate scheme overrides cfg.idFn for this constructor
		cellCfg := cfg
		cellCfg.idFn = func(idx int) string {
			return fmt.Sprintf(gridIDFmt, idx/cols, idx%cols)
		}

		cells := make([]core.Point, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p, err := addPoint(g, cellCfg, methodGrid, r*cols+c, float64(r), float64(c))
				if err != nil {
					return err
				}
				cells[r*cols+c] = p
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
