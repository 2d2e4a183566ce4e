package models

import "strings"

// DistrictKey is the normalized join key for district identity. All lookups
// across the statistics store, the parcel database and the canonical center
// table go through this type so the three sources cannot drift apart on
// casing or stray whitespace.
type DistrictKey string

// NormalizeDistrict lower-cases a district name and collapses internal
// whitespace runs to single spaces.
func NormalizeDistrict(name string) DistrictKey {
	fields := strings.Fields(strings.ToLower(name))
	return DistrictKey(strings.Join(fields, " "))
}

// DistrictRecord holds the merged market statistics for one district.
// Records are built once by the stats package and are read-only afterwards.
type DistrictRecord struct {
	Name          string  `json:"name"`
	PropertyCount int     `json:"property_count"`
	AvgPrice      float64 `json:"avg_price"`
	MedianPrice   float64 `json:"median_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`

	// Sizes in square meters and square wah (1 wah = 4 sqm).
	AvgSize    float64 `json:"avg_size"`
	AvgSizeWah float64 `json:"avg_size_wah"`

	AvgPricePerSqm float64 `json:"avg_price_per_sqm"`
	AvgPricePerWah float64 `json:"avg_price_per_wah"`
	MinPricePerWah float64 `json:"min_price_per_wah"`
	MaxPricePerWah float64 `json:"max_price_per_wah"`

	// PriceVolatility is (max - min) / avg of the raw sale prices.
	PriceVolatility float64 `json:"price_volatility"`

	HasDetailedData bool `json:"has_detailed_data"`
	HasAverageData  bool `json:"has_average_data"`
}

// PriceQuartiles are index-based (value at floor(n*p), no interpolation).
type PriceQuartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// MarketStats aggregates avg-price-per-wah across every district record.
type MarketStats struct {
	CityAverage    float64        `json:"city_average"`
	CityMedian     float64        `json:"city_median"`
	CityMin        float64        `json:"city_min"`
	CityMax        float64        `json:"city_max"`
	TotalDistricts int            `json:"total_districts"`
	PriceQuartiles PriceQuartiles `json:"price_quartiles"`
}

// DistrictRanking places one district inside the city-wide price order.
// Rank 1 is the most expensive district; equal prices collapse onto the
// first matching rank.
type DistrictRanking struct {
	PriceRank      int     `json:"price_rank"`
	TotalDistricts int     `json:"total_districts"`
	Percentile     float64 `json:"percentile"`
}

// Price categories assigned from the city quartiles (strict > comparisons).
const (
	CategoryPremium    = "Premium"
	CategoryMidRange   = "Mid-Range"
	CategoryAffordable = "Affordable"
	CategoryBudget     = "Budget"
)

// MarketTrends positions a district against the city-wide statistics.
type MarketTrends struct {
	VsCityAverage  float64 `json:"vs_city_average"`
	VsCityMedian   float64 `json:"vs_city_median"`
	MarketPosition string  `json:"market_position"`
	PriceCategory  string  `json:"price_category"`
}
