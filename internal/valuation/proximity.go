// Package valuation implements the scoring pipeline: proximity premium,
// five-factor adjustment, district resolution and the orchestrator that
// composes them into a price range with an explanation.
package valuation

import (
	"sort"

	"github.com/paulmach/orb"

	"bkkland/server/internal/geo"
	"bkkland/server/internal/landmarks"
	"bkkland/server/internal/models"
)

// proximityCap limits the combined location premium to +50%.
const proximityCap = 1.5

// bandedMultiplier maps a distance to a share of the category premium:
// full within 0.5 km, then 70%, 40% and 10% bands out to 5 km.
func bandedMultiplier(distanceKm, maxMultiplier float64) float64 {
	premium := maxMultiplier - 1
	switch {
	case distanceKm <= 0.5:
		return maxMultiplier
	case distanceKm <= 1.0:
		return 1 + premium*0.7
	case distanceKm <= 2.0:
		return 1 + premium*0.4
	case distanceKm <= 5.0:
		return 1 + premium*0.1
	default:
		return 1.0
	}
}

// ScoreProximity computes the location-premium multiplier for a coordinate
// from the weighted landmark table. Landmarks beyond 5 km contribute nothing
// and are excluded from the output list.
func ScoreProximity(location orb.Point) *models.ProximityResult {
	var totalScore float64
	var nearby []models.NearbyLandmark
	breakdown := make(map[string]int)

	for _, landmark := range landmarks.ProximityLandmarks {
		category, ok := landmarks.ProximityCategories[landmark.Category]
		if !ok {
			continue
		}

		distance := geo.DistanceKm(location, landmark.Location)
		multiplier := bandedMultiplier(distance, category.MaxMultiplier)
		if multiplier <= 1.0 {
			continue
		}

		nearby = append(nearby, models.NearbyLandmark{
			Name:       landmark.Name,
			Category:   landmark.Category,
			Latitude:   landmark.Location[1],
			Longitude:  landmark.Location[0],
			DistanceKm: distance,
			Multiplier: multiplier,
			Weight:     category.Weight,
		})
		breakdown[landmark.Category]++
		totalScore += (multiplier - 1) * category.Weight
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	multiplier := 1 + totalScore
	if multiplier > proximityCap {
		multiplier = proximityCap
	}

	return &models.ProximityResult{
		Multiplier:        multiplier,
		NearbyLandmarks:   nearby,
		CategoryBreakdown: breakdown,
	}
}
