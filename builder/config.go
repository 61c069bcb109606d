// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("#0","#1","#2",...)
//   • rng      = nil                (pure/deterministic unless seeded)
//   • detourFn = ExactDetour        (route length == great-circle distance)
//   • spacing  = 0.1 degrees        (≈11 km at the equator)
//   • origin   = (0, 0)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Point ID strategy: index -> ID body; the '#' marker is prepended.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Detour factor generator: route length = great-circle distance × factor.
	detourFn DetourFn

	// Lattice step in degrees and the lattice anchor.
	spacing   float64
	originLat float64
	originLon float64
}

const (
	defaultSpacing = 0.1
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		detourFn: ExactDetour,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
