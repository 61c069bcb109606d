// Package core defines the map data model of routeplan: point and route
// identifiers, Point and Route records, the Path returned by searches, and
// the thread-safe in-memory Graph that stores them.
//
// Identifiers:
//
//	PointID – "#" followed by at least one byte, e.g. "#CAMPUS".
//	RouteID – "&" followed by at least one byte, e.g. "&BR101".
//
// NewPointID/NewRouteID never fail: malformed input becomes the empty,
// invalid identifier. Stores reject invalid identifiers on insertion, and
// lookups with an invalid identifier always miss.
//
// Graph:
//
//   - Points and routes are kept in insertion order (Points, Routes,
//     IncidentRoutes are all reproducible).
//   - Routes are undirected: a route joins Endpoints[0] and Endpoints[1]
//     symmetrically. Parallel routes and self-loops are allowed.
//   - Every route endpoint must already be stored (ErrPointNotFound).
//   - A single sync.RWMutex guards the graph; any number of searches may
//     read concurrently while nobody mutates it.
//
// Store is the read-only interface that search packages (astar, dijkstra,
// bfs) consume, so an index-backed implementation can replace *Graph.
//
// Errors:
//
//	ErrInvalidPointID  – point with a malformed identifier.
//	ErrInvalidRouteID  – route with a malformed identifier.
//	ErrDuplicatePoint  – point identifier already stored.
//	ErrDuplicateRoute  – route identifier already stored.
//	ErrPointNotFound   – route endpoint not stored.
//	ErrNegativeLength  – route length below zero.
package core
