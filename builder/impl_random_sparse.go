// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// impl_random_sparse.go — Erdős–Rényi-like random map.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewPoints); p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required unless p ∈ {0,1} (else ErrNeedRandSource). Without
//     an rng points are placed on a diagonal.
//   • Points are placed at random cells of an n×n lattice box, IDs via cfg.idFn.
//   • Unordered pairs {i,j}, i<j, are sampled in (i asc, j asc) order.
//
// Complexity:
//   • Time: O(n^2) pair checks.
//   • Space: O(n) for the placed points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	minRandomSparsePoints = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that samples a random map over n points
// with independent route probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparsePoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparsePoints, ErrTooFewPoints)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		rng := cfg.rng
		pts := make([]core.Point, n)
		for i := 0; i < n; i++ {
			row, col := float64(i), float64(i)
			if rng != nil {
				row, col = float64(rng.Intn(n)), float64(rng.Intn(n))
			}
			pt, err := addPoint(g, cfg, methodRandomSparse, i, row, col)
			if err != nil {
				return err
			}
			pts[i] = pt
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng == nil {
					if p != probMax {
						continue
					}
				} else if rng.Float64() > p {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, pts[i], pts[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
