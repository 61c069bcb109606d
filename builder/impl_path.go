// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// impl_path.go - implementation of Line(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewPoints).
//   - Point i sits at (origin lat, origin lon + i·spacing), IDs via cfg.idFn.
//   - Routes (i-1)–i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) points + O(n-1) routes.
//   - Space: O(n) for the placed points.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

const (
	methodLine    = "Line"
	minLinePoints = 2
)

// Line returns a Constructor that builds a chain of n points.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLinePoints {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLinePoints, ErrTooFewPoints)
		}

		pts := make([]core.Point, n)
		for i := 0; i < n; i++ {
			p, err := addPoint(g, cfg, methodLine, i, 0, float64(i))
			if err != nil {
				return err
			}
			pts[i] = p
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodLine, pts[i-1], pts[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
