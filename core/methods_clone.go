// File: methods_clone.go
// Role: Deep copies of a Graph.
// Concurrency:
//   - Read lock on the source for the snapshot; the clone is unshared.

package core

// Clone returns a deep copy of the graph: points, routes and incidence index.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		points:    make([]Point, len(g.points)),
		routes:    make([]Route, len(g.routes)),
		pointIdx:  make(map[PointID]int, len(g.pointIdx)),
		routeIdx:  make(map[RouteID]int, len(g.routeIdx)),
		incidence: make(map[PointID][]RouteID, len(g.incidence)),
	}
	copy(clone.points, g.points)
	copy(clone.routes, g.routes)
	for id, i := range g.pointIdx {
		clone.pointIdx[id] = i
	}
	for id, i := range g.routeIdx {
		clone.routeIdx[id] = i
	}
	for id, rids := range g.incidence {
		clone.incidence[id] = append([]RouteID(nil), rids...)
	}

	return clone
}
