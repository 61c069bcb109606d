// Package dfs explores a route map depth-first.
//
// DFS(g, start, opts...) walks the component of start, or the whole map with
// WithFullTraversal, following routes in insertion order. It records
// post-order, depth, the discovering route of every point and, in forest
// mode, which tree (component) each point belongs to.
//
// Components(g) is the forest walk summarized: one slice of point IDs per
// connected component. The planner uses it to report islands, which are the
// pairs for which every search ends without a path.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked per discovered point.
//   - WithOnVisit(fn)      pre-order hook; an error aborts.
//   - WithOnExit(fn)       post-order hook; an error aborts.
//   - WithMaxDepth(limit)  do not recurse past limit routes.
//   - WithFullTraversal()  visit every component.
package dfs
