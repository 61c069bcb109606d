// Package dijkstra computes exact shortest distances between points of a
// core.Store.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("#A"), dijkstra.WithReturnPath())
//
// Options:
//
//	– Source:      starting point ID (valid and stored).
//	– ReturnPath:  also return point → incoming route.
//	– MaxDistance: stop settling points beyond this many km.
//
// Errors (sentinel):
//
//	– ErrEmptySource     source ID missing or malformed.
//	– ErrNilGraph        store is nil.
//	– ErrPointNotFound   source not stored.
//	– ErrNegativeLength  a reachable route has a negative length.
//	– ErrBadMaxDistance  (panic) WithMaxDistance(x) with x < 0.
package dijkstra
