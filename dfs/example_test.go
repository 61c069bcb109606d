package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/dfs"
)

// ExampleComponents finds the islands of a small map.
func ExampleComponents() {
	g := core.NewGraph()
	for _, id := range []core.PointID{"#NAT", "#JPA", "#FEN"} {
		_ = g.AddPoint(core.Point{ID: id})
	}
	_ = g.AddRoute(core.Route{ID: "&BR101", Endpoints: [2]core.PointID{"#NAT", "#JPA"}, Length: 185})

	comps, _ := dfs.Components(g)
	for _, c := range comps {
		fmt.Println(c)
	}

	// Output:
	// [#NAT #JPA]
	// [#FEN]
}
