// File: methods_edges.go
// Role: Route insertion & lookup.
//
// Determinism:
//   - Routes() and IncidentRoutes() follow route insertion order.
//
// Concurrency:
//   - All methods take g.mu (write lock for AddRoute, read lock otherwise).
package core

import "fmt"

// AddRoute stores r and indexes it under both endpoints.
//
// Implementation:
//   - Stage 1: Reject an invalid identifier or a negative length.
//   - Stage 2: Under the write lock, reject a duplicate ID and unknown endpoints.
//   - Stage 3: Append to the catalog and register incidence for each distinct endpoint.
//
// Behavior highlights:
//   - Parallel routes between the same two points are kept as distinct routes.
//   - A self-loop (both endpoints equal) is indexed once for its point.
//
// Errors:
//   - ErrInvalidRouteID, ErrNegativeLength, ErrDuplicateRoute, ErrPointNotFound
//     (wrapped with the offending identifier).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddRoute(r Route) error {
	if !r.Valid() {
		return fmt.Errorf("AddRoute(%q): %w", r.ID, ErrInvalidRouteID)
	}
	if r.Length < 0 {
		return fmt.Errorf("AddRoute(%s): length=%g: %w", r.ID, r.Length, ErrNegativeLength)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.routeIdx[r.ID]; exists {
		return fmt.Errorf("AddRoute(%s): %w", r.ID, ErrDuplicateRoute)
	}
	for _, end := range r.Endpoints {
		if _, ok := g.pointIdx[end]; !ok {
			return fmt.Errorf("AddRoute(%s): endpoint %q: %w", r.ID, end, ErrPointNotFound)
		}
	}

	g.routeIdx[r.ID] = len(g.routes)
	g.routes = append(g.routes, r)
	g.link(r)

	return nil
}

// HasRoute reports whether a route with the given ID is stored.
// Complexity: O(1)
func (g *Graph) HasRoute(id RouteID) bool {
	if !id.Valid() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.routeIdx[id]

	return ok
}

// Route returns the stored route with the given ID.
// ok is false if id is invalid or absent; r is then the zero Route.
// Complexity: O(1)
func (g *Graph) Route(id RouteID) (Route, bool) {
	if !id.Valid() {
		return Route{}, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.routeIdx[id]
	if !ok {
		return Route{}, false
	}

	return g.routes[i], true
}

// IncidentRoutes returns every route with id as an endpoint, in route
// insertion order. It returns nil for an invalid or unknown id.
// Complexity: O(deg(id))
func (g *Graph) IncidentRoutes(id PointID) []Route {
	if !id.Valid() {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.incidence[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Route, len(ids))
	for i, rid := range ids {
		out[i] = g.routes[g.routeIdx[rid]]
	}

	return out
}
