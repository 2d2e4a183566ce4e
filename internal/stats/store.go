// Package stats builds and serves the district statistics store: the merged,
// immutable lookup table every valuation reads from. The store is built once
// from the two data feeds (or the placeholder) and swapped atomically behind
// a Holder, so valuation requests never observe a partially built table.
package stats

import (
	"sort"

	"github.com/sirupsen/logrus"

	"bkkland/server/internal/dataset"
	"bkkland/server/internal/models"
)

// Store is the read-only district statistics table plus the precomputed
// ascending price-per-wah sequence the market analytics index into.
type Store struct {
	records      map[models.DistrictKey]*models.DistrictRecord
	sortedPrices []float64
	placeholder  bool
}

type aggregate struct {
	name         string
	prices       []float64
	sizes        []float64
	sizesWah     []float64
	pricesPerWah []float64
	pricesPerSqm []float64
}

// BuildStore merges both feeds into one record per district. A district
// appearing in either feed always yields a record; the pre-aggregated
// average, when present, overrides the computed mean price per wah.
func BuildStore(src *dataset.Sources, logger *logrus.Logger) *Store {
	groups := make(map[models.DistrictKey]*aggregate)
	for _, parcel := range src.Parcels {
		key := models.DistrictKey(parcel.DistrictKey)
		group, ok := groups[key]
		if !ok {
			group = &aggregate{name: parcel.District}
			groups[key] = group
		}
		group.prices = append(group.prices, parcel.Price)
		group.sizes = append(group.sizes, parcel.SizeSqm)
		group.sizesWah = append(group.sizesWah, parcel.SizeWah)
		group.pricesPerWah = append(group.pricesPerWah, parcel.PricePerWah)
		group.pricesPerSqm = append(group.pricesPerSqm, parcel.PricePerSqm)
	}

	records := make(map[models.DistrictKey]*models.DistrictRecord, len(groups))
	for key, group := range groups {
		avg, ok := src.Averages[key]
		record := group.record()
		if ok {
			record.AvgPricePerWah = avg.PricePerWah
			record.HasAverageData = true
		}
		records[key] = record
	}

	// Districts present only in the pre-aggregated feed get a synthesized
	// record with the fixed estimation ratios.
	synthesized := 0
	for key, avg := range src.Averages {
		if _, ok := records[key]; ok {
			continue
		}
		records[key] = synthesizeRecord(avg)
		synthesized++
	}
	if synthesized > 0 {
		logger.Infof("Synthesized %d districts from the average feed alone", synthesized)
	}

	prices := make([]float64, 0, len(records))
	for _, record := range records {
		prices = append(prices, record.AvgPricePerWah)
	}
	sort.Float64s(prices)

	logger.WithFields(logrus.Fields{
		"districts":   len(records),
		"placeholder": src.Placeholder,
	}).Info("District statistics store built")

	return &Store{records: records, sortedPrices: prices, placeholder: src.Placeholder}
}

func (a *aggregate) record() *models.DistrictRecord {
	n := len(a.prices)

	sorted := append([]float64(nil), a.prices...)
	sort.Float64s(sorted)
	minPrice, maxPrice := sorted[0], sorted[n-1]
	medianPrice := sorted[n/2]

	avgPrice := mean(a.prices)
	perWahSorted := append([]float64(nil), a.pricesPerWah...)
	sort.Float64s(perWahSorted)

	return &models.DistrictRecord{
		Name:            a.name,
		PropertyCount:   n,
		AvgPrice:        avgPrice,
		MedianPrice:     medianPrice,
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		AvgSize:         mean(a.sizes),
		AvgSizeWah:      mean(a.sizesWah),
		AvgPricePerSqm:  mean(a.pricesPerSqm),
		AvgPricePerWah:  mean(a.pricesPerWah),
		MinPricePerWah:  perWahSorted[0],
		MaxPricePerWah:  perWahSorted[n-1],
		PriceVolatility: (maxPrice - minPrice) / avgPrice,
		HasDetailedData: true,
	}
}

// synthesizeRecord estimates a full record from the average price alone:
// 100 wah default size, min/max at ±20%, volatility 0.2.
func synthesizeRecord(avg dataset.AveragePrice) *models.DistrictRecord {
	perWah := avg.PricePerWah
	return &models.DistrictRecord{
		Name:            avg.Name,
		PropertyCount:   1,
		AvgPrice:        perWah * 100,
		MedianPrice:     perWah * 100,
		MinPrice:        perWah * 80,
		MaxPrice:        perWah * 120,
		AvgSize:         400,
		AvgSizeWah:      100,
		AvgPricePerSqm:  perWah / 4,
		AvgPricePerWah:  perWah,
		MinPricePerWah:  perWah * 0.8,
		MaxPricePerWah:  perWah * 1.2,
		PriceVolatility: 0.2,
		HasDetailedData: false,
		HasAverageData:  true,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Get looks up a district record by display name or normalized key.
func (s *Store) Get(name string) (*models.DistrictRecord, bool) {
	record, ok := s.records[models.NormalizeDistrict(name)]
	return record, ok
}

// Districts returns all records sorted by descending average price per wah,
// name as the tie break.
func (s *Store) Districts() []*models.DistrictRecord {
	out := make([]*models.DistrictRecord, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgPricePerWah != out[j].AvgPricePerWah {
			return out[i].AvgPricePerWah > out[j].AvgPricePerWah
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of district records.
func (s *Store) Len() int {
	return len(s.records)
}

// IsPlaceholder reports whether the store was built from the embedded
// fallback dataset.
func (s *Store) IsPlaceholder() bool {
	return s.placeholder
}
