// Package planner owns the loaded map and answers route queries over it.
//
// A Planner is safe for concurrent use: queries take a read lock and run on
// the current graph, Load and Clear swap it under the write lock. A failed
// Load leaves the current graph in place.
package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/bfs"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/dfs"
	"github.com/katalvlaran/routeplan/dijkstra"
	"github.com/katalvlaran/routeplan/loader"
)

// ErrUnknownPoint indicates a query for a point that is not on the map.
var ErrUnknownPoint = errors.New("planner: unknown point")

// Planner holds one map and the search options applied to every Plan.
type Planner struct {
	mu   sync.RWMutex
	g    *core.Graph
	opts []astar.Option
}

// New returns a Planner with an empty map. opts are passed to every search.
func New(opts ...astar.Option) *Planner {
	return &Planner{g: core.NewGraph(), opts: opts}
}

// Load replaces the map with the contents of the two files.
func (p *Planner) Load(pointsPath, routesPath string) error {
	g, err := loader.Load(pointsPath, routesPath)
	if err != nil {
		return fmt.Errorf("planner: load: %w", err)
	}
	p.swap(g)

	return nil
}

// LoadFrom is Load over already opened inputs.
func (p *Planner) LoadFrom(points, routes io.Reader) error {
	g, err := loader.Read(points, routes)
	if err != nil {
		return fmt.Errorf("planner: load: %w", err)
	}
	p.swap(g)

	return nil
}

// Use replaces the map with g.
func (p *Planner) Use(g *core.Graph) {
	if g == nil {
		g = core.NewGraph()
	}
	p.swap(g)
}

func (p *Planner) swap(g *core.Graph) {
	p.mu.Lock()
	p.g = g
	p.mu.Unlock()
}

// Graph returns the current map. Callers must not mutate it.
func (p *Planner) Graph() *core.Graph {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.g
}

// IsEmpty reports whether the map has no points.
func (p *Planner) IsEmpty() bool { return p.Graph().IsEmpty() }

// Clear drops every point and route.
func (p *Planner) Clear() { p.swap(core.NewGraph()) }

// Plan finds the shortest path between two point IDs given as strings.
// Malformed IDs behave like unknown ones.
func (p *Planner) Plan(origin, destination string) (astar.Result, error) {
	return p.PlanContext(context.Background(), origin, destination)
}

// PlanContext is Plan with cancellation.
func (p *Planner) PlanContext(ctx context.Context, origin, destination string) (astar.Result, error) {
	opts := append([]astar.Option{astar.WithContext(ctx)}, p.opts...)

	return astar.FindPath(p.Graph(), core.NewPointID(origin), core.NewPointID(destination), opts...)
}

// Component lists the points reachable from id, id first.
func (p *Planner) Component(id string) ([]core.PointID, error) {
	pts, err := bfs.Reachable(p.Graph(), core.NewPointID(id))
	if errors.Is(err, bfs.ErrStartPointNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, id)
	}

	return pts, err
}

// Islands partitions the map into connected components. Searches between
// points of different islands always end with astar.ErrNoPath.
func (p *Planner) Islands() ([][]core.PointID, error) {
	return dfs.Components(p.Graph())
}

// Distances returns the shortest distance from id to every reachable point.
func (p *Planner) Distances(id string) (map[core.PointID]float64, error) {
	dist, err := dijkstra.Distances(p.Graph(), core.NewPointID(id))
	if errors.Is(err, dijkstra.ErrPointNotFound) || errors.Is(err, dijkstra.ErrEmptySource) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPoint, id)
	}

	return dist, err
}
