// Package geo computes great-circle distances between map points.
//
// Distances use the spherical law of cosines on a sphere of radius
// EarthRadiusKm. The cosine term is clamped to [-1, 1] before acos, so
// rounding such as 1.0000000001 never turns into NaN.
package geo

import (
	"math"

	"github.com/katalvlaran/routeplan/core"
)

// EarthRadiusKm is the mean Earth radius used by all distance functions.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180.0

// Haversine returns the great-circle distance in kilometers between a and b.
// Points with the same identifier are at distance exactly 0.
func Haversine(a, b core.Point) float64 {
	if a.ID == b.ID {
		return 0.0
	}

	return Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// Distance returns the great-circle distance in kilometers between two
// coordinates given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	lambda1 := lon1 * degToRad
	lambda2 := lon2 * degToRad

	cosine := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(lambda1-lambda2)

	return EarthRadiusKm * math.Acos(clamp(cosine, -1, 1))
}

func clamp(x, lo, hi float64) float64 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}

	return x
}
