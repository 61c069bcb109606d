// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// api.go - public entry point for fixture maps.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors place points on a degree lattice anchored at cfg origin and
//     connect them with routes no shorter than the great-circle distance, so
//     the default A* heuristic stays admissible on every fixture.
//   - Determinism: same options, seed and constructor order give identical maps.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Line places n points eastwards along the origin parallel and joins
// neighbours: P_n.
// Complexity: O(n) points + O(n-1) routes.
//func Line(n int) Constructor

// Grid places rows×cols points with IDs "#r,c" and joins each to its east
// and north neighbour.
// Complexity: O(R*C) points + O(2*R*C) routes.
//func Grid(rows, cols int) Constructor

// RandomSparse scatters n points over an n×n lattice box and joins each
// unordered pair with probability p. Requires a seeded RNG for 0 < p < 1.
// Complexity: O(n^2) pair checks.
//func RandomSparse(n int, p float64) Constructor
