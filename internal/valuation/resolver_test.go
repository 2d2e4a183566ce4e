package valuation

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkkland/server/config"
	"bkkland/server/internal/dataset"
	"bkkland/server/internal/geo"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
)

func resolverStore(t *testing.T, prices map[string]float64) *stats.Store {
	t.Helper()
	averages := make(map[models.DistrictKey]dataset.AveragePrice, len(prices))
	for name, price := range prices {
		averages[models.NormalizeDistrict(name)] = dataset.AveragePrice{Name: name, PricePerWah: price}
	}
	return stats.BuildStore(&dataset.Sources{Averages: averages}, logrus.New())
}

func TestResolver_ExactQueryMatch(t *testing.T) {
	store := resolverStore(t, map[string]float64{
		"Watthana":     1325936,
		"Phra Khanong": 240000,
		"Sathon":       605047,
	})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	for _, query := range []string{"Watthana", "watthana", "  WATTHANA "} {
		match, ok := resolver.Resolve(geo.Point(13.7563, 100.5018), query)
		require.True(t, ok, query)
		assert.Equal(t, "Watthana", match.DistrictName)
		assert.Equal(t, "query", match.MatchType)
		require.NotNil(t, match.Record)
		assert.Equal(t, 1325936.0, match.Record.AvgPricePerWah)
	}
}

func TestResolver_SubstringMatch(t *testing.T) {
	store := resolverStore(t, map[string]float64{
		"Watthana":     1325936,
		"Phra Khanong": 240000,
		"Sathon":       605047,
	})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	// Query contained in a district name.
	match, ok := resolver.Resolve(geo.Point(13.7563, 100.5018), "phra")
	require.True(t, ok)
	assert.Equal(t, "Phra Khanong", match.DistrictName)

	// District name contained in the query.
	match, ok = resolver.Resolve(geo.Point(13.7563, 100.5018), "sathon district")
	require.True(t, ok)
	assert.Equal(t, "Sathon", match.DistrictName)
}

func TestResolver_ProximityFallback(t *testing.T) {
	store := resolverStore(t, map[string]float64{
		"Watthana": 1325936,
		"Sai Mai":  55055,
	})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	// No query and a point at the Watthana center resolves by proximity.
	match, ok := resolver.Resolve(geo.Point(13.7373, 100.5608), "")
	require.True(t, ok)
	assert.Equal(t, "Watthana", match.DistrictName)
	assert.Equal(t, "proximity", match.MatchType)
	assert.InDelta(t, 0.0, match.DistanceKm, 0.01)
}

func TestResolver_ProximitySkipsCentersWithoutRecords(t *testing.T) {
	// Only Sai Mai has data, so even a downtown point must land there.
	store := resolverStore(t, map[string]float64{"Sai Mai": 55055})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	match, ok := resolver.Resolve(geo.Point(13.7373, 100.5608), "")
	require.True(t, ok)
	assert.Equal(t, "Sai Mai", match.DistrictName)
	assert.Greater(t, match.DistanceKm, 0.0)
}

func TestResolver_NearestCenterForSamplePoints(t *testing.T) {
	store := resolverStore(t, map[string]float64{
		"Watthana":    1325936,
		"Don Mueang":  95000,
		"Sai Mai":     55055,
		"Lat Krabang": 65000,
	})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	tests := []struct {
		name     string
		lat, lng float64
		expected string
	}{
		{"asok area", 13.7373, 100.5608, "Watthana"},
		{"northern airport area", 13.9234, 100.5534, "Don Mueang"},
		{"northwest edge", 13.9234, 100.3534, "Sai Mai"},
		{"eastern outskirts", 13.7000, 100.6000, "Lat Krabang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, ok := resolver.Resolve(geo.Point(tt.lat, tt.lng), "")
			require.True(t, ok)
			assert.Equal(t, tt.expected, match.DistrictName)
			assert.Equal(t, "proximity", match.MatchType)
		})
	}
}

func TestResolver_UnknownQueryFallsBackToProximity(t *testing.T) {
	store := resolverStore(t, map[string]float64{"Watthana": 1325936})
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	match, ok := resolver.Resolve(geo.Point(13.7373, 100.5608), "Chiang Mai")
	require.True(t, ok)
	assert.Equal(t, "proximity", match.MatchType)
}

func TestResolver_EmptyStore(t *testing.T) {
	store := stats.BuildStore(&dataset.Sources{}, logrus.New())
	resolver := NewResolver(store, config.DistrictCenters, logrus.New())

	_, ok := resolver.Resolve(geo.Point(13.7563, 100.5018), "Watthana")
	assert.False(t, ok)
}
