// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the point ID generator. A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDetourFn overrides the route length factor generator. Panics on nil.
func WithDetourFn(fn DetourFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDetourFn(nil)")
	}
	return func(c *builderConfig) {
		c.detourFn = fn
	}
}

// WithSpacing sets the lattice step in degrees. Panics unless 0 < deg <= 10.
func WithSpacing(deg float64) BuilderOption {
	if deg <= 0 || deg > 10 {
		panic(fmt.Sprintf("builder: WithSpacing(%g) out of (0,10]", deg))
	}
	return func(c *builderConfig) {
		c.spacing = deg
	}
}

// WithOrigin anchors the lattice at (lat, lon). Panics outside the valid
// coordinate ranges.
func WithOrigin(lat, lon float64) BuilderOption {
	if lat < -90 || lat > 90 || lon <= -180 || lon > 180 {
		panic(fmt.Sprintf("builder: WithOrigin(%g,%g) out of range", lat, lon))
	}
	return func(c *builderConfig) {
		c.originLat, c.originLon = lat, lon
	}
}
