// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only surface consumed by the search packages.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter takes the read lock and returns copies, never internal slices.

package core

// Store is the read-only view of a map that search algorithms depend on.
//
// Implementations must be safe for concurrent readers and must not change
// while a search is running. *Graph implements Store; alternative indexes
// can be swapped in without touching the algorithms.
type Store interface {
	// Point returns the stored point with the given ID. ok is false if the
	// ID is invalid or absent.
	Point(id PointID) (p Point, ok bool)

	// Route returns the stored route with the given ID. ok is false if the
	// ID is invalid or absent.
	Route(id RouteID) (r Route, ok bool)

	// IsEmpty reports whether no point is stored.
	IsEmpty() bool

	// IncidentRoutes returns every route touching id, in insertion order.
	IncidentRoutes(id PointID) []Route
}

var _ Store = (*Graph)(nil)

// IsEmpty reports whether the graph holds no points.
// Complexity: O(1)
func (g *Graph) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.points) == 0
}

// PointCount returns the number of stored points.
// Complexity: O(1)
func (g *Graph) PointCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.points)
}

// RouteCount returns the number of stored routes.
// Complexity: O(1)
func (g *Graph) RouteCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.routes)
}

// Points returns a copy of all points in insertion order.
// Complexity: O(V)
func (g *Graph) Points() []Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Point, len(g.points))
	copy(out, g.points)

	return out
}

// Routes returns a copy of all routes in insertion order.
// Complexity: O(E)
func (g *Graph) Routes() []Route {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Route, len(g.routes))
	copy(out, g.routes)

	return out
}

// Clear removes every point and route.
// Complexity: O(1)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.points = nil
	g.routes = nil
	g.pointIdx = make(map[PointID]int)
	g.routeIdx = make(map[RouteID]int)
	g.incidence = make(map[PointID][]RouteID)
}
