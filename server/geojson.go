package server

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/core"
)

// pathGeoJSON renders a found path as a FeatureCollection: one LineString
// through every point of the path followed by one Point feature per stop.
func pathGeoJSON(g core.Store, res astar.Result) ([]byte, error) {
	line := make(orb.LineString, 0, len(res.Path))
	stops := make([]*geojson.Feature, 0, len(res.Path))
	for _, st := range res.Path {
		pt, ok := g.Point(st.Point)
		if !ok {
			return nil, fmt.Errorf("server: path point %s left the map", st.Point)
		}
		coord := orb.Point{pt.Longitude, pt.Latitude}
		line = append(line, coord)

		f := geojson.NewFeature(coord)
		f.Properties["id"] = pt.ID.String()
		f.Properties["name"] = pt.Name
		if st.Route.Valid() {
			f.Properties["route"] = st.Route.String()
		}
		stops = append(stops, f)
	}

	fc := geojson.NewFeatureCollection()
	path := geojson.NewFeature(line)
	path.Properties["length_km"] = res.Length
	path.Properties["open"] = res.Open
	path.Properties["closed"] = res.Closed
	fc.Append(path)
	for _, f := range stops {
		fc.Append(f)
	}

	return fc.MarshalJSON()
}
