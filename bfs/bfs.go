// Package bfs provides breadth-first search over a core.Store, returning
// visit order, hop depth and the route each point was first reached by.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// queueItem pairs a point with its BFS depth.
type queueItem struct {
	id    core.PointID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Store
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.PointID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartPointNotFound, ErrOptionViolation, the
// context error, or any error returned by OnVisit.
func BFS(g core.Store, start core.PointID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.Point(start); !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartPointNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[core.PointID]bool),
		res: &BFSResult{
			Depth:  make(map[core.PointID]int),
			Parent: make(map[core.PointID]core.Route),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Reachable returns every point connected to start (start included), in
// BFS order.
func Reachable(g core.Store, start core.PointID) ([]core.PointID, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.PointID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, rt := range w.graph.IncidentRoutes(item.id) {
			nbr := rt.Other(item.id)
			if w.visited[nbr] {
				continue
			}
			w.res.Parent[nbr] = rt
			w.enqueue(nbr, next)
		}
	}

	return nil
}
