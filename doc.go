// Package routeplan is a small geographic route planner: named points with
// latitude/longitude joined by named routes of known length, searched with
// A* under a great-circle heuristic.
//
// 🚀 What is in the box?
//
//	• core/:          PointID/RouteID newtypes, Point, Route, Path and the thread-safe Graph store
//	• geo/:           great-circle distance (spherical law of cosines, clamped)
//	• astar/:         the search engine: ordered open set, closed set, parent-index reconstruction
//	• dijkstra/:      single-source distances, used as the optimality oracle
//	• bfs/:           reachable component of a point
//	• dfs/:           depth-first forest walk and connected components
//	• builder/:       deterministic fixture maps (line, grid, random) for tests and benchmarks
//	• loader/:        the ';'-separated points/routes file format
//	• planner/:       owns a map, plans trips, prints points, routes and paths
//	• server/:        HTTP API with JSON, GeoJSON and Prometheus metrics
//	• cmd/routeplan:  command line front end
//
// ✨ Search contract
//
//   - FindPath returns the length, the path and the final open/closed set sizes.
//   - Invalid input (empty map, unknown origin or destination) yields length −1,
//     no path and both counters −1; a search that runs dry yields length −1, no
//     path and the real counters.
//   - Ties in f are expanded in insertion order, closed points are never reopened.
//
// Quick start:
//
//	p := planner.New()
//	if err := p.Load("pontos.csv", "rotas.csv"); err != nil {
//		log.Fatal(err)
//	}
//	res, err := p.Plan("#NAT", "#REC")
//	_ = planner.WritePath(os.Stdout, res)
package routeplan
