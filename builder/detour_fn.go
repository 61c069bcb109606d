// Package builder provides the route length policy for fixture constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/geo"
)

// DetourFn returns the factor (≥ 1) by which a route is longer than the
// great-circle distance between its endpoints.
type DetourFn func(rng *rand.Rand) float64

// ExactDetour makes every route exactly as long as the great-circle distance.
func ExactDetour(_ *rand.Rand) float64 { return 1 }

// ConstantDetour returns a DetourFn that always yields f. Panics if f < 1.
func ConstantDetour(f float64) DetourFn {
	if f < 1 {
		panic(fmt.Sprintf("ConstantDetour: factor must be ≥ 1, got %g", f))
	}

	return func(_ *rand.Rand) float64 { return f }
}

// UniformDetour samples factors uniformly in [min, max). With a nil rng it
// yields min. Panics unless 1 ≤ min ≤ max.
func UniformDetour(min, max float64) DetourFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformDetour: require 1 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// addPoint inserts the idx-th point at lattice cell (row, col).
func addPoint(g *core.Graph, cfg builderConfig, method string, idx int, row, col float64) (core.Point, error) {
	p := core.Point{
		ID:        cfg.pointID(idx),
		Latitude:  cfg.originLat + row*cfg.spacing,
		Longitude: cfg.originLon + col*cfg.spacing,
	}
	p.Name = "P" + p.ID.String()[1:]
	if err := g.AddPoint(p); err != nil {
		return core.Point{}, fmt.Errorf("%s: AddPoint(%s): %w: %w", method, p.ID, ErrConstructFailed, err)
	}

	return p, nil
}

// connect adds a route a–b whose length is the great-circle distance
// stretched by cfg.detourFn. Route IDs are "&R1", "&R2", ... in map order.
func connect(g *core.Graph, cfg builderConfig, method string, a, b core.Point) error {
	r := core.Route{
		ID:        core.RouteID(fmt.Sprintf("%cR%d", core.RouteMarker, g.RouteCount()+1)),
		Name:      a.Name + "-" + b.Name,
		Endpoints: [2]core.PointID{a.ID, b.ID},
		Length:    geo.Haversine(a, b) * cfg.detourFn(cfg.rng),
	}
	if err := g.AddRoute(r); err != nil {
		return fmt.Errorf("%s: AddRoute(%s→%s): %w: %w", method, a.ID, b.ID, ErrConstructFailed, err)
	}

	return nil
}
