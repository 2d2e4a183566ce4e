package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"bkkland/server/config"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
)

const (
	circleSegments = 64
	coverageRadius = 5.0 // km
	earthRadiusKm  = 6371.0
)

// CircleRing approximates a geodesic circle around center as a closed ring.
// Radius is in kilometers. Good enough at Bangkok latitudes for map display.
func CircleRing(center orb.Point, radiusKm float64) orb.Ring {
	lat := center[1] * math.Pi / 180
	dLat := radiusKm / earthRadiusKm * 180 / math.Pi
	dLng := dLat / math.Cos(lat)

	ring := make(orb.Ring, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		ring = append(ring, orb.Point{
			center[0] + dLng*math.Cos(theta),
			center[1] + dLat*math.Sin(theta),
		})
	}
	return ring
}

// DistrictCentersCollection builds a FeatureCollection of the canonical
// district centers, annotated with stats from the current store when a
// district has records.
func DistrictCentersCollection(store *stats.Store) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, center := range config.DistrictCenters {
		feature := geojson.NewFeature(center.Center)
		feature.Properties = geojson.Properties{
			"district": center.Name,
			"type":     "district_center",
		}

		if store != nil {
			if record, ok := store.Get(center.Name); ok {
				feature.Properties["avg_price_per_wah"] = record.AvgPricePerWah
				feature.Properties["property_count"] = record.PropertyCount
				feature.Properties["detailed"] = record.HasDetailedData
			}
		}

		fc.Append(feature)
	}

	return fc
}

// ValuationCollection renders a valuation result as a map overlay: the
// valuation point itself plus its nearby landmarks and a coverage circle.
func ValuationCollection(location orb.Point, result *models.ValuationResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	marker := geojson.NewFeature(location)
	marker.Properties = geojson.Properties{
		"type":       "valuation",
		"low":        result.Low,
		"high":       result.High,
		"confidence": result.Confidence,
	}
	if result.District != nil {
		marker.Properties["district"] = result.District.DistrictName
	}
	fc.Append(marker)

	circle := geojson.NewFeature(orb.Polygon{CircleRing(location, coverageRadius)})
	circle.Properties = geojson.Properties{
		"type":      "coverage",
		"radius_km": coverageRadius,
	}
	fc.Append(circle)

	if result.Proximity == nil {
		return fc
	}

	for _, landmark := range result.Proximity.NearbyLandmarks {
		feature := geojson.NewFeature(orb.Point{landmark.Longitude, landmark.Latitude})
		feature.Properties = geojson.Properties{
			"type":        "landmark",
			"name":        landmark.Name,
			"category":    landmark.Category,
			"distance_km": landmark.DistanceKm,
		}
		fc.Append(feature)
	}

	return fc
}
