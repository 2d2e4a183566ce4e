package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkkland/server/config"
	"bkkland/server/internal/geo"
	"bkkland/server/internal/models"
)

func TestCircleRing(t *testing.T) {
	ring := CircleRing(config.BangkokCenter, 5.0)

	require.Len(t, ring, circleSegments+1)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	for _, p := range ring {
		assert.InDelta(t, 5.0, geo.DistanceKm(config.BangkokCenter, p), 0.05)
	}
}

func TestDistrictCentersCollection(t *testing.T) {
	fc := DistrictCentersCollection(nil)
	require.Len(t, fc.Features, len(config.DistrictCenters))

	first := fc.Features[0]
	assert.Equal(t, "district_center", first.Properties["type"])
	assert.Equal(t, config.DistrictCenters[0].Name, first.Properties["district"])
}

func TestValuationCollection(t *testing.T) {
	location := geo.Point(13.7373, 100.5608)
	result := &models.ValuationResult{
		Low:        1000000,
		High:       1500000,
		Confidence: models.ConfidenceMedium,
		District:   &models.DistrictMatch{DistrictName: "Watthana"},
		Proximity: &models.ProximityResult{
			NearbyLandmarks: []models.NearbyLandmark{
				{Name: "BTS Asok", Category: "transportation", Latitude: 13.7373, Longitude: 100.5608, DistanceKm: 0.01},
			},
		},
	}

	fc := ValuationCollection(location, result)

	// Marker, coverage circle and one landmark.
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "valuation", fc.Features[0].Properties["type"])
	assert.Equal(t, "Watthana", fc.Features[0].Properties["district"])
	assert.Equal(t, "coverage", fc.Features[1].Properties["type"])
	assert.Equal(t, "landmark", fc.Features[2].Properties["type"])
	assert.Equal(t, "BTS Asok", fc.Features[2].Properties["name"])
}
