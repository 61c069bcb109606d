// Package dfs implements depth‑first search (single‑source and forest) over a
// map of points and routes, and derives its connected components.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus the cost of hooks.
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartPointNotFound     if the start point is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Map
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth‑first search on g. With WithFullTraversal it covers
// every component in map order and start is ignored; otherwise it explores
// the component of start only. Neighbours are followed in route insertion order.
func DFS(g Map, start core.PointID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal {
		if _, ok := g.Point(start); !ok {
			return nil, fmt.Errorf("%w: %q", ErrStartPointNotFound, start)
		}
	}

	points := g.Points()
	res := &DFSResult{
		Order:  make([]core.PointID, 0, len(points)),
		Depth:  make(map[core.PointID]int, len(points)),
		Parent: make(map[core.PointID]core.Route, len(points)),
		Tree:   make(map[core.PointID]int, len(points)),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if !dopts.FullTraversal {
		return res, walker.root(start)
	}
	for _, p := range points {
		if _, seen := res.Tree[p.ID]; seen {
			continue
		}
		if err := walker.root(p.ID); err != nil {
			return res, err
		}
	}

	return res, nil
}

func (w *dfsWalker) root(id core.PointID) error {
	w.res.Roots = append(w.res.Roots, id)

	return w.traverse(id, 0)
}

// traverse visits id at the given depth, recursing to neighbours.
func (w *dfsWalker) traverse(id core.PointID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Tree[id] = len(w.res.Roots) - 1
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, rt := range w.graph.IncidentRoutes(id) {
			nid := rt.Other(id)
			if _, seen := w.res.Tree[nid]; seen {
				continue
			}
			w.res.Parent[nid] = rt
			if err := w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
