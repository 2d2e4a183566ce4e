package models

// ComparableProperty is a recent sale or listing supplied alongside a
// valuation request, or fetched from the parcel database when the caller
// omits them.
type ComparableProperty struct {
	District    string  `json:"district,omitempty"`
	Price       float64 `json:"price"`
	SizeSqm     float64 `json:"size_sqm"`
	PricePerWah float64 `json:"price_per_wah,omitempty"`
}

// NearbyLandmark is one landmark that contributed to the proximity premium.
type NearbyLandmark struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Multiplier float64 `json:"multiplier"`
	Weight     float64 `json:"weight"`
}

// ProximityResult is the location-premium breakdown for a coordinate.
type ProximityResult struct {
	Multiplier        float64          `json:"multiplier"`
	NearbyLandmarks   []NearbyLandmark `json:"nearby_landmarks"`
	CategoryBreakdown map[string]int   `json:"category_breakdown"`
}

// AmenityFactor is the proximity score for one amenity class (transport,
// shopping or education).
type AmenityFactor struct {
	Score       float64 `json:"score"`
	Multiplier  float64 `json:"multiplier"`
	NearbyCount int     `json:"nearby_count"`
}

// FloodRiskFactor is the flood-zone discount for a coordinate.
type FloodRiskFactor struct {
	RiskLevel  string  `json:"risk_level"`
	Multiplier float64 `json:"multiplier"`
}

// HeightRestriction is display-only zoning metadata.
type HeightRestriction struct {
	MaxHeightM int     `json:"max_height_m"`
	Multiplier float64 `json:"multiplier"`
}

// ZoningFactor is the zone-type multiplier for a coordinate.
type ZoningFactor struct {
	ZoneType          string            `json:"zone_type"`
	Multiplier        float64           `json:"multiplier"`
	HeightRestriction HeightRestriction `json:"height_restriction"`
}

// FactorAnalysis is the five-factor adjustment applied on top of the base
// district price. TotalMultiplier is the exact product of the five factor
// multipliers; AdjustedPrice is floored at half the base price.
type FactorAnalysis struct {
	BasePrice       float64         `json:"base_price"`
	AdjustedPrice   float64         `json:"adjusted_price"`
	LowPrice        float64         `json:"low_price"`
	HighPrice       float64         `json:"high_price"`
	TotalMultiplier float64         `json:"total_multiplier"`
	Transport       AmenityFactor   `json:"transport"`
	Shopping        AmenityFactor   `json:"shopping"`
	Education       AmenityFactor   `json:"education"`
	FloodRisk       FloodRiskFactor `json:"flood_risk"`
	Zoning          ZoningFactor    `json:"zoning"`

	// SignalScore counts amenity signals (0-4): +2 any station, +1 any
	// shopping center, +1 any school.
	SignalScore int    `json:"signal_score"`
	Confidence  string `json:"confidence"`
}

// Confidence labels.
const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// DistrictMatch is the resolver output: the best district for a query or
// coordinate pair.
type DistrictMatch struct {
	DistrictName string          `json:"district_name"`
	Record       *DistrictRecord `json:"record"`
	MatchType    string          `json:"match_type"` // "query" or "proximity"
	DistanceKm   float64         `json:"distance_km,omitempty"`
}

// MarketAnalysis bundles the market context included with a valuation.
type MarketAnalysis struct {
	Trends  MarketTrends    `json:"trends"`
	Ranking DistrictRanking `json:"ranking"`
	Stats   MarketStats     `json:"stats"`
}

// ValuationResult is the complete answer for one valuation request. It is
// always well-formed; missing data is replaced by defaults upstream.
type ValuationResult struct {
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Confidence string  `json:"confidence"`
	Reasoning  string  `json:"reasoning"`

	Factors []string `json:"factors"`

	District       *DistrictMatch   `json:"district_data"`
	Proximity      *ProximityResult `json:"proximity_data"`
	FactorAnalysis *FactorAnalysis  `json:"factor_analysis"`
	MarketAnalysis *MarketAnalysis  `json:"market_analysis"`
}
