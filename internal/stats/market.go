package stats

import "bkkland/server/internal/models"

// MarketStats aggregates average price per wah across all districts.
// Median and quartiles are index-based on the sorted sequence (value at
// floor(n*p)), no interpolation between ranks.
func (s *Store) MarketStats() models.MarketStats {
	n := len(s.sortedPrices)
	if n == 0 {
		return models.MarketStats{}
	}

	var sum float64
	for _, p := range s.sortedPrices {
		sum += p
	}

	return models.MarketStats{
		CityAverage:    sum / float64(n),
		CityMedian:     s.sortedPrices[n/2],
		CityMin:        s.sortedPrices[0],
		CityMax:        s.sortedPrices[n-1],
		TotalDistricts: n,
		PriceQuartiles: models.PriceQuartiles{
			Q1: s.sortedPrices[n*25/100],
			Q2: s.sortedPrices[n*50/100],
			Q3: s.sortedPrices[n*75/100],
		},
	}
}

// DistrictRanking places a district in the descending price order. Rank 1 is
// the most expensive district. Districts sharing an identical price per wah
// collapse onto the first matching rank.
func (s *Store) DistrictRanking(name string) (models.DistrictRanking, bool) {
	record, ok := s.Get(name)
	if !ok {
		return models.DistrictRanking{}, false
	}

	n := len(s.sortedPrices)
	rank := 1
	for i := n - 1; i >= 0; i-- {
		if s.sortedPrices[i] == record.AvgPricePerWah {
			rank = n - i
			break
		}
	}

	return models.DistrictRanking{
		PriceRank:      rank,
		TotalDistricts: n,
		Percentile:     float64(n-rank+1) / float64(n) * 100,
	}, true
}

// MarketTrends positions one district record against the city statistics.
// Price categories use strict comparisons, so a price exactly at Q3 is
// Mid-Range, not Premium.
func (s *Store) MarketTrends(record *models.DistrictRecord) models.MarketTrends {
	market := s.MarketStats()
	price := record.AvgPricePerWah

	trends := models.MarketTrends{
		MarketPosition: "Below Average",
		PriceCategory:  models.CategoryBudget,
	}
	if market.CityAverage > 0 {
		trends.VsCityAverage = (price - market.CityAverage) / market.CityAverage * 100
	}
	if market.CityMedian > 0 {
		trends.VsCityMedian = (price - market.CityMedian) / market.CityMedian * 100
	}
	if price > market.CityAverage {
		trends.MarketPosition = "Above Average"
	}

	switch {
	case price > market.PriceQuartiles.Q3:
		trends.PriceCategory = models.CategoryPremium
	case price > market.PriceQuartiles.Q2:
		trends.PriceCategory = models.CategoryMidRange
	case price > market.PriceQuartiles.Q1:
		trends.PriceCategory = models.CategoryAffordable
	}

	return trends
}
