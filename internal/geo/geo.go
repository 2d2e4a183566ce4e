// Package geo holds the great-circle math shared by the landmark tables,
// the district resolver and the valuation scorers. Points follow the orb
// convention: index 0 is longitude, index 1 is latitude.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the sphere radius the valuation model was calibrated
// against. Not the WGS84 value orb/geo uses.
const earthRadiusKm = 6371.0

// Point builds an orb.Point from a latitude/longitude pair.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceKm returns the Haversine great-circle distance between two points
// in kilometers.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := a[1] * math.Pi / 180
	lat2 := b[1] * math.Pi / 180
	dLat := (b[1] - a[1]) * math.Pi / 180
	dLng := (b[0] - a[0]) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}
