package dfs

import (
	"github.com/katalvlaran/routeplan/core"
)

// Components partitions the map into connected components.
// Components appear in the map order of their first point; within a
// component points keep map order too.
// Complexity: O(V + E).
func Components(g Map) ([][]core.PointID, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	out := make([][]core.PointID, len(res.Roots))
	for _, p := range g.Points() {
		i := res.Tree[p.ID]
		out[i] = append(out[i], p.ID)
	}

	return out, nil
}
