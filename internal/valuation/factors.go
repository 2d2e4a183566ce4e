package valuation

import (
	"github.com/paulmach/orb"

	"bkkland/server/internal/geo"
	"bkkland/server/internal/landmarks"
	"bkkland/server/internal/models"
)

// Amenity factor ranges and premium ceilings.
const (
	transportRangeKm = 1.0
	shoppingRangeKm  = 2.0
	educationRangeKm = 1.5

	transportPremium = 0.30
	shoppingPremium  = 0.20
	educationPremium = 0.25
)

// Hard floors on the adjusted price and the low bound (fractions of the base
// price). Both can bind at once.
const (
	adjustedFloor = 0.5
	lowFloor      = 0.4

	bandVolatility = 0.10
)

// FactorEngine runs the five-factor adjustment model. All inputs are the
// fixed landmark and zone tables; the flood zones may come from a shapefile.
type FactorEngine struct {
	stations   []landmarks.Landmark
	centers    []landmarks.Landmark
	schools    []landmarks.Landmark
	floodZones []landmarks.FloodZone
	cityCenter orb.Point
}

// NewFactorEngine builds an engine over the default tables with the given
// flood zones (nil selects the built-in table).
func NewFactorEngine(floodZones []landmarks.FloodZone, cityCenter orb.Point) *FactorEngine {
	if floodZones == nil {
		floodZones = landmarks.DefaultFloodZones
	}
	return &FactorEngine{
		stations:   landmarks.TransitStations,
		centers:    landmarks.ShoppingCenters,
		schools:    landmarks.Schools,
		floodZones: floodZones,
		cityCenter: cityCenter,
	}
}

// amenityFactor averages the distance-linear score over every landmark
// within range. No landmark in range means score 0 and multiplier 1.
func amenityFactor(location orb.Point, table []landmarks.Landmark, rangeKm, premium float64) models.AmenityFactor {
	var total float64
	var count int
	for _, landmark := range table {
		distance := geo.DistanceKm(location, landmark.Location)
		if distance > rangeKm {
			continue
		}
		score := 1 - distance/rangeKm
		if score < 0 {
			score = 0
		}
		total += score
		count++
	}

	var avg float64
	if count > 0 {
		avg = total / float64(count)
	}
	return models.AmenityFactor{
		Score:       avg,
		Multiplier:  1 + avg*premium,
		NearbyCount: count,
	}
}

var riskSeverity = map[string]int{
	landmarks.RiskLow:    1,
	landmarks.RiskMedium: 2,
	landmarks.RiskHigh:   3,
}

var riskMultiplier = map[string]float64{
	landmarks.RiskLow:    0.97,
	landmarks.RiskMedium: 0.92,
	landmarks.RiskHigh:   0.85,
}

// floodRiskFactor applies a point-in-circle test against every zone. When
// overlapping zones match, the highest risk tier wins, so the discount is
// never understated. Outside every zone the multiplier is exactly 1.
func (e *FactorEngine) floodRiskFactor(location orb.Point) models.FloodRiskFactor {
	maxSeverity := 0
	matched := landmarks.RiskLow
	for _, zone := range e.floodZones {
		if geo.DistanceKm(location, zone.Center) > zone.RadiusKm {
			continue
		}
		if riskSeverity[zone.Risk] > maxSeverity {
			maxSeverity = riskSeverity[zone.Risk]
			matched = zone.Risk
		}
	}

	if maxSeverity == 0 {
		return models.FloodRiskFactor{RiskLevel: landmarks.RiskLow, Multiplier: 1.0}
	}
	return models.FloodRiskFactor{RiskLevel: matched, Multiplier: riskMultiplier[matched]}
}

// zoningFactor derives the zone type purely from distance to the city
// center. Height restrictions are attached for display only.
func (e *FactorEngine) zoningFactor(location orb.Point) models.ZoningFactor {
	distance := geo.DistanceKm(location, e.cityCenter)

	zoneType := landmarks.ZoneResidential
	if distance <= 0.5 {
		zoneType = landmarks.ZoneCommercial
	} else if distance <= 1.0 {
		zoneType = landmarks.ZoneMixed
	}

	return models.ZoningFactor{
		ZoneType:          zoneType,
		Multiplier:        landmarks.ZoningMultipliers[zoneType],
		HeightRestriction: landmarks.HeightRestrictions[zoneType],
	}
}

// Analyze runs all five sub-scorers and combines them multiplicatively.
// The adjusted price never drops below half the base; the low bound never
// drops below 40% of the base.
func (e *FactorEngine) Analyze(location orb.Point, basePrice float64) *models.FactorAnalysis {
	transport := amenityFactor(location, e.stations, transportRangeKm, transportPremium)
	shopping := amenityFactor(location, e.centers, shoppingRangeKm, shoppingPremium)
	education := amenityFactor(location, e.schools, educationRangeKm, educationPremium)
	flood := e.floodRiskFactor(location)
	zoning := e.zoningFactor(location)

	total := transport.Multiplier * shopping.Multiplier * education.Multiplier *
		flood.Multiplier * zoning.Multiplier

	adjusted := basePrice * total
	if floor := basePrice * adjustedFloor; adjusted < floor {
		adjusted = floor
	}

	low := adjusted * (1 - bandVolatility)
	if floor := basePrice * lowFloor; low < floor {
		low = floor
	}
	high := adjusted * (1 + bandVolatility)

	score := 0
	if transport.NearbyCount > 0 {
		score += 2
	}
	if shopping.NearbyCount > 0 {
		score++
	}
	if education.NearbyCount > 0 {
		score++
	}

	confidence := models.ConfidenceLow
	if score >= 4 {
		confidence = models.ConfidenceHigh
	} else if score >= 2 {
		confidence = models.ConfidenceMedium
	}

	return &models.FactorAnalysis{
		BasePrice:       basePrice,
		AdjustedPrice:   adjusted,
		LowPrice:        low,
		HighPrice:       high,
		TotalMultiplier: total,
		Transport:       transport,
		Shopping:        shopping,
		Education:       education,
		FloodRisk:       flood,
		Zoning:          zoning,
		SignalScore:     score,
		Confidence:      confidence,
	}
}
