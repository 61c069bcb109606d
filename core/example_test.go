package core_test

import (
	"fmt"

	"github.com/katalvlaran/routeplan/core"
)

// ExampleGraph demonstrates building a map and querying it.
func ExampleGraph() {
	// 1) Create an empty map and add two points.
	g := core.NewGraph()
	_ = g.AddPoint(core.Point{ID: "#NAT", Name: "Natal", Latitude: -5.79, Longitude: -35.21})
	_ = g.AddPoint(core.Point{ID: "#JPA", Name: "Joao Pessoa", Latitude: -7.12, Longitude: -34.86})

	// 2) Join them with a route.
	_ = g.AddRoute(core.Route{ID: "&BR101", Name: "BR-101", Endpoints: [2]core.PointID{"#NAT", "#JPA"}, Length: 185})

	// 3) Query.
	p, _ := g.Point("#JPA")
	fmt.Println(p.Name)
	for _, r := range g.IncidentRoutes("#NAT") {
		fmt.Println(r.ID, "->", r.Other("#NAT"), r.Length)
	}

	// Output:
	// Joao Pessoa
	// &BR101 -> #JPA 185
}

// ExampleNewPointID shows identifier normalization.
func ExampleNewPointID() {
	fmt.Printf("%q %q %q\n", core.NewPointID("#A"), core.NewPointID("A"), core.NewPointID("#"))

	// Output:
	// "#A" "" ""
}
