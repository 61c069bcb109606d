// Package bfs explores the connected component of a point in a core.Store.
//
// Points are visited in non-decreasing hop count (routes, not kilometers)
// from the start. Neighbours are discovered in route insertion order, so
// the visit sequence is reproducible.
//
// Reachable is the shorthand used by the planner to report the component a
// failed search was confined to: when A* finds no path, its closed set is
// exactly that component.
//
// Hooks and limits:
//
//   - WithOnVisit(fn)   – called per visited point; an error aborts the walk.
//   - WithMaxDepth(d)   – do not go past d routes from the start.
//   - WithContext(ctx)  – cancellation, checked once per dequeued point.
package bfs
