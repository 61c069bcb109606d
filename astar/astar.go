// Package astar implements A* shortest-path search between two points of a
// core.Store, using great-circle distance as the heuristic.
//
// Complexity:
//
//   - Time:  O(V·(V + d)) worst case with V expanded points and degree d:
//     the open set is an ordered slice (O(V) insertion shift, O(V) lookup).
//   - Space: O(V) for the open and closed sets.
//
// Notes on implementation choices:
//
//   - The open set is an ordered slice with upper-bound insertion, so ties in
//     f are resolved in insertion order (a heap would reorder them).
//   - Closed nodes are never reopened, even if a cheaper route to them shows up
//     later. With a consistent heuristic this does not affect optimality.
//   - Every node stores the closed-set position of its predecessor; the path is
//     rebuilt by following those positions.
package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// FindPath computes the shortest path by total route length from origin to
// destination in g.
//
// Returns:
//
//   - On success: Result{Length, Path, Open, Closed} and a nil error.
//   - On invalid input (nil or empty store, origin or destination not a stored
//     point, bad option): Length -1, nil Path, Open = Closed = -1 and an error
//     matching ErrInvalidInput (or ErrOptionViolation).
//   - When no path exists: Length -1, nil Path, the real set sizes (Open is 0)
//     and an error matching ErrNoPath.
//   - When the context is cancelled or the expansion budget is spent: Length -1,
//     nil Path, the set sizes so far and the context error or ErrBudgetExceeded.
//
// Preconditions and validation (in order):
//  1. Options are valid (ErrOptionViolation).
//  2. g is non-nil and holds at least one point (ErrEmptyGraph).
//  3. origin resolves to a stored point (ErrOriginNotFound).
//  4. destination resolves to a stored point (ErrDestinationNotFound).
//
// FindPath panics if the predecessor chain of the destination is broken or a
// route references a point missing from g; both mean g violated its contract.
func FindPath(g core.Store, origin, destination core.PointID, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return invalidResult(), cfg.err
	}

	// 2) Validate the store
	if g == nil || g.IsEmpty() {
		return invalidResult(), fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyGraph)
	}

	// 3) Resolve both endpoints
	from, ok := g.Point(origin)
	if !ok || !from.Valid() {
		return invalidResult(), fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrOriginNotFound, origin)
	}
	to, ok := g.Point(destination)
	if !ok || !to.Valid() {
		return invalidResult(), fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrDestinationNotFound, destination)
	}

	r := &runner{
		g:         g,
		opts:      cfg,
		ctx:       cfg.Ctx,
		goal:      to,
		closedIdx: make(map[core.PointID]int),
	}

	return r.run(from)
}

// runner holds the mutable state of a single search.
type runner struct {
	g    core.Store
	opts Options
	ctx  context.Context
	goal core.Point

	open      openSet
	closed    []node
	closedIdx map[core.PointID]int // point → position in closed
}

// run executes the main loop from the origin point and packages the result.
func (r *runner) run(from core.Point) (Result, error) {
	current := node{
		point:  from.ID,
		route:  "",
		g:      0,
		h:      r.opts.Heuristic(from, r.goal),
		parent: -1,
	}
	r.open = openSet{current}

	expansions := 0
	for len(r.open) > 0 && current.point != r.goal.ID {
		// cancellation check (once per expansion)
		select {
		case <-r.ctx.Done():
			return r.stopped(), fmt.Errorf("astar: search cancelled: %w", r.ctx.Err())
		default:
		}
		if r.opts.MaxExpansions > 0 && expansions >= r.opts.MaxExpansions {
			return r.stopped(), fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, expansions)
		}

		// a) lowest f leaves the open set
		current = r.open.popFront()
		// b) and joins the closed set
		r.closedIdx[current.point] = len(r.closed)
		r.closed = append(r.closed, current)
		expansions++
		r.opts.OnExpand(r.visit(current))

		// c) the destination is never expanded
		if current.point == r.goal.ID {
			break
		}

		// d) generate successors
		r.expand(current, len(r.closed)-1)
	}

	if current.point != r.goal.ID {
		return r.stopped(), fmt.Errorf("%w: %s → %s", ErrNoPath, r.closed[0].point, r.goal.ID)
	}

	return Result{
		Length: current.g,
		Path:   r.reconstruct(current),
		Open:   len(r.open),
		Closed: len(r.closed),
	}, nil
}

// expand relaxes every route incident to cur. The routes are collected into
// a local slice first, so open/closed mutation never touches the iteration.
func (r *runner) expand(cur node, curIdx int) {
	routes := r.g.IncidentRoutes(cur.point)
	for _, rt := range routes {
		next := rt.Other(cur.point)
		pt, ok := r.g.Point(next)
		if !ok {
			panic(fmt.Sprintf("astar: route %s references unknown point %q", rt.ID, next))
		}
		succ := node{
			point:  next,
			route:  rt.ID,
			g:      cur.g + rt.Length,
			h:      r.opts.Heuristic(pt, r.goal),
			parent: curIdx,
		}

		// closed nodes are final
		if _, done := r.closedIdx[succ.point]; done {
			continue
		}
		// an open duplicate survives unless succ is strictly cheaper
		if i := r.open.find(succ.point); i >= 0 {
			if succ.f() >= r.open[i].f() {
				continue
			}
			r.open.remove(i)
		}

		r.open.insert(succ)
		r.opts.OnEnqueue(r.visit(succ))
	}
}

// reconstruct walks predecessor positions back from the destination node.
func (r *runner) reconstruct(dest node) core.Path {
	rev := make(core.Path, 0, len(r.closed))
	n := dest
	for n.route.Valid() {
		rev = append(rev, core.Step{Route: n.route, Point: n.point})
		if n.parent < 0 || n.parent >= len(r.closed) {
			panic(fmt.Sprintf("astar: broken predecessor chain at %s (parent %d, closed %d)",
				n.point, n.parent, len(r.closed)))
		}
		n = r.closed[n.parent]
	}
	rev = append(rev, core.Step{Route: n.route, Point: n.point})

	// reverse to get origin → destination
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// stopped is the result for a search that ran but produced no path.
func (r *runner) stopped() Result {
	return Result{Length: -1, Path: nil, Open: len(r.open), Closed: len(r.closed)}
}

func (r *runner) visit(n node) Visit {
	return Visit{
		Point:  n.point,
		Route:  n.route,
		G:      n.g,
		H:      n.h,
		Open:   len(r.open),
		Closed: len(r.closed),
	}
}
