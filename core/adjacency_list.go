package core

// link registers r in the incidence index of each distinct endpoint.
// Caller must hold g.mu for writing.
func (g *Graph) link(r Route) {
	a, b := r.Endpoints[0], r.Endpoints[1]
	g.incidence[a] = append(g.incidence[a], r.ID)
	if b != a {
		g.incidence[b] = append(g.incidence[b], r.ID)
	}
}

// Degree returns the number of routes touching id (a self-loop counts once).
// Complexity: O(1)
func (g *Graph) Degree(id PointID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incidence[id])
}

// AdjacencyList returns, for every point, the IDs of its neighbours in
// route insertion order. Parallel routes repeat the neighbour.
// Complexity: O(V + E)
func (g *Graph) AdjacencyList() map[PointID][]PointID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[PointID][]PointID, len(g.points))
	for _, p := range g.points {
		ids := g.incidence[p.ID]
		nbrs := make([]PointID, 0, len(ids))
		for _, rid := range ids {
			nbrs = append(nbrs, g.routes[g.routeIdx[rid]].Other(p.ID))
		}
		out[p.ID] = nbrs
	}

	return out
}
