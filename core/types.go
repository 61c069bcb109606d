// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Identifier newtypes, Point/Route records, Path, the Graph store and sentinel errors.
// Policy:
//   - Identifiers never fail to construct: invalid input normalizes to the empty sentinel.
//   - Identity of Point/Route is the identifier alone (names and coordinates are payload).
//   - Graph keeps insertion order for points and routes; iteration is reproducible.

package core

import (
	"errors"
	"sync"
)

// Identifier markers and the minimum identifier length.
const (
	PointMarker = '#'
	RouteMarker = '&'
	MinIDLength = 2
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidPointID indicates a point whose identifier is not valid.
	ErrInvalidPointID = errors.New("core: invalid point ID")

	// ErrInvalidRouteID indicates a route whose identifier is not valid.
	ErrInvalidRouteID = errors.New("core: invalid route ID")

	// ErrDuplicatePoint indicates a point ID that is already stored.
	ErrDuplicatePoint = errors.New("core: duplicate point ID")

	// ErrDuplicateRoute indicates a route ID that is already stored.
	ErrDuplicateRoute = errors.New("core: duplicate route ID")

	// ErrPointNotFound indicates a route endpoint that does not reference a stored point.
	ErrPointNotFound = errors.New("core: point not found")

	// ErrNegativeLength indicates a route with a negative length.
	ErrNegativeLength = errors.New("core: negative route length")
)

// PointID identifies a point. Valid values start with PointMarker and have
// at least MinIDLength bytes; the zero value "" is the invalid sentinel.
type PointID string

// NewPointID returns s as a PointID, or the invalid sentinel if s is malformed.
func NewPointID(s string) PointID {
	if !validID(s, PointMarker) {
		return ""
	}

	return PointID(s)
}

// Valid reports whether id satisfies the point identifier format.
func (id PointID) Valid() bool { return validID(string(id), PointMarker) }

// String returns the raw identifier.
func (id PointID) String() string { return string(id) }

// RouteID identifies a route. Valid values start with RouteMarker and have
// at least MinIDLength bytes; the zero value "" is the invalid sentinel.
type RouteID string

// NewRouteID returns s as a RouteID, or the invalid sentinel if s is malformed.
func NewRouteID(s string) RouteID {
	if !validID(s, RouteMarker) {
		return ""
	}

	return RouteID(s)
}

// Valid reports whether id satisfies the route identifier format.
func (id RouteID) Valid() bool { return validID(string(id), RouteMarker) }

// String returns the raw identifier.
func (id RouteID) String() string { return string(id) }

func validID(s string, marker byte) bool {
	return len(s) >= MinIDLength && s[0] == marker
}

// Point is a named location on the map.
//
// Latitude is in degrees in [-90, 90]; Longitude in degrees in (-180, 180],
// positive east of Greenwich.
type Point struct {
	ID        PointID `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point carries a valid identifier.
func (p Point) Valid() bool { return p.ID.Valid() }

// Equal reports whether p and o have the same identifier.
func (p Point) Equal(o Point) bool { return p.ID == o.ID }

// Route is a named undirected connection between two points.
type Route struct {
	ID        RouteID    `json:"id"`
	Name      string     `json:"name"`
	Endpoints [2]PointID `json:"endpoints"`
	Length    float64    `json:"length_km"`
}

// Valid reports whether the route carries a valid identifier.
func (r Route) Valid() bool { return r.ID.Valid() }

// Equal reports whether r and o have the same identifier.
func (r Route) Equal(o Route) bool { return r.ID == o.ID }

// Touches reports whether p is one of the route's endpoints.
func (r Route) Touches(p PointID) bool {
	return r.Endpoints[0] == p || r.Endpoints[1] == p
}

// Other returns the endpoint opposite to p. For a self-loop both endpoints
// are p, so p is returned. If p is not an endpoint, Endpoints[0] is returned.
func (r Route) Other(p PointID) PointID {
	if r.Endpoints[0] == p {
		return r.Endpoints[1]
	}

	return r.Endpoints[0]
}

// Step is one element of a Path: the route taken and the point it arrives at.
// The first step of a non-empty Path has an invalid Route and the origin Point.
type Step struct {
	Route RouteID `json:"route"`
	Point PointID `json:"point"`
}

// Path is an ordered origin→destination sequence of steps.
type Path []Step

// Points returns the point IDs visited by the path, in order.
func (p Path) Points() []PointID {
	out := make([]PointID, len(p))
	for i, s := range p {
		out[i] = s.Point
	}

	return out
}

// Routes returns the route IDs traversed by the path (the first step's
// invalid route is skipped).
func (p Path) Routes() []RouteID {
	if len(p) < 2 {
		return nil
	}
	out := make([]RouteID, 0, len(p)-1)
	for _, s := range p[1:] {
		out = append(out, s.Route)
	}

	return out
}

// Graph is the in-memory map of points and routes.
//
// mu guards every field. points/routes keep insertion order; pointIdx/routeIdx
// map identifiers to positions in those slices; incidence[p] lists the IDs of
// routes touching p in route insertion order (a self-loop is listed once).
type Graph struct {
	mu sync.RWMutex

	points   []Point
	routes   []Route
	pointIdx map[PointID]int
	routeIdx map[RouteID]int

	incidence map[PointID][]RouteID
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		pointIdx:  make(map[PointID]int),
		routeIdx:  make(map[RouteID]int),
		incidence: make(map[PointID][]RouteID),
	}
}
