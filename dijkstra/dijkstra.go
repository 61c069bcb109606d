// Package dijkstra implements Dijkstra's shortest-distance algorithm over a
// core.Store with non-negative route lengths.
//
// It is the exact reference for the A* search: both must agree on the
// length of every shortest path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// Dijkstra computes the shortest distance from Options.Source to every
// point reachable from it.
//
// Returns:
//
//   - dist: point ID → shortest distance in km. Unreachable points are absent.
//   - prev: if ReturnPath, point ID → route used to reach it (origin absent); nil otherwise.
//   - err:  ErrEmptySource, ErrNilGraph, ErrPointNotFound or ErrNegativeLength.
func Dijkstra(g core.Store, opts ...Option) (map[core.PointID]float64, map[core.PointID]core.Route, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input in a fixed order
	if !cfg.Source.Valid() {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if _, ok := g.Point(cfg.Source); !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrPointNotFound, cfg.Source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.PointID]float64),
		prev:    make(map[core.PointID]core.Route),
		visited: make(map[core.PointID]bool),
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// Distances is a shorthand for Dijkstra(g, Source(source)).
func Distances(g core.Store, source core.PointID) (map[core.PointID]float64, error) {
	dist, _, err := Dijkstra(g, Source(source))

	return dist, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.Store
	options Options
	dist    map[core.PointID]float64
	prev    map[core.PointID]core.Route
	visited map[core.PointID]bool
	pq      nodePQ
}

// process settles points in order of increasing distance until the heap is
// empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u.
func (r *runner) relax(u core.PointID) error {
	for _, rt := range r.g.IncidentRoutes(u) {
		if rt.Length < 0 {
			return fmt.Errorf("%w: route %s length=%g", ErrNegativeLength, rt.ID, rt.Length)
		}
		v := rt.Other(u)
		nd := r.dist[u] + rt.Length
		if nd > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = rt
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a point and its tentative distance from the source.
type nodeItem struct {
	id   core.PointID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
