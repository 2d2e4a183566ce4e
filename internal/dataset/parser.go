// Package dataset loads the two static data feeds: the detailed per-parcel
// listing file and the pre-aggregated district average file. Malformed rows
// are dropped without failing the load; only a missing or unreadable file is
// an error, and the caller falls back to the placeholder dataset.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"bkkland/server/internal/models"
)

// AveragePrice is one row of the pre-aggregated feed.
type AveragePrice struct {
	Name        string
	PricePerWah float64
}

// Sources bundles both parsed feeds for the store build.
type Sources struct {
	Parcels  []*models.ParcelRecord
	Averages map[models.DistrictKey]AveragePrice

	// Placeholder marks the embedded fallback dataset.
	Placeholder bool
}

// Loader reads the data feeds from disk.
type Loader struct {
	parcelPath  string
	averagePath string
	logger      *logrus.Logger
}

func NewLoader(dataDir, parcelFile, averageFile string, logger *logrus.Logger) *Loader {
	return &Loader{
		parcelPath:  filepath.Join(dataDir, parcelFile),
		averagePath: filepath.Join(dataDir, averageFile),
		logger:      logger,
	}
}

// Load parses both feeds. The average feed is optional; the detailed feed is
// not.
func (l *Loader) Load() (*Sources, error) {
	parcelFile, err := os.Open(l.parcelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parcel file: %w", err)
	}
	defer parcelFile.Close()

	parcels, err := ParseParcels(parcelFile, l.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parcel file: %w", err)
	}

	averages := map[models.DistrictKey]AveragePrice{}
	averageFile, err := os.Open(l.averagePath)
	if err != nil {
		l.logger.WithError(err).Warn("Average price file unavailable, using computed averages only")
	} else {
		defer averageFile.Close()
		averages, err = ParseAveragePrices(averageFile, l.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to parse average price file: %w", err)
		}
	}

	l.logger.Infof("Loaded %d parcels and %d district averages", len(parcels), len(averages))
	return &Sources{Parcels: parcels, Averages: averages}, nil
}

// parseAmount strips quoting and thousands separators before converting.
func parseAmount(s string) float64 {
	clean := strings.NewReplacer(",", "", "\"", "", " ", "").Replace(s)
	if clean == "" {
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseParcels reads the detailed listing feed: district, price, size in
// sqm, price per sqm. Rows with a missing district or non-positive price or
// size are skipped.
func ParseParcels(r io.Reader, logger *logrus.Logger) ([]*models.ParcelRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var parcels []*models.ParcelRecord
	var skipped, line int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parcel feed line %d: %w", line+1, err)
		}
		line++
		if line == 1 {
			// header
			continue
		}
		if len(row) < 3 {
			skipped++
			continue
		}

		district := strings.TrimSpace(row[0])
		price := parseAmount(row[1])
		size := parseAmount(row[2])
		var pricePerSqm float64
		if len(row) > 3 {
			pricePerSqm = parseAmount(row[3])
		}

		if district == "" || price <= 0 || size <= 0 {
			skipped++
			continue
		}

		sizeWah := size / 4
		parcels = append(parcels, &models.ParcelRecord{
			District:    district,
			DistrictKey: string(models.NormalizeDistrict(district)),
			Price:       price,
			SizeSqm:     size,
			SizeWah:     sizeWah,
			PricePerSqm: pricePerSqm,
			PricePerWah: price / sizeWah,
		})
	}

	if skipped > 0 {
		logger.Warnf("Skipped %d malformed parcel rows", skipped)
	}
	return parcels, nil
}

// ParseAveragePrices reads the pre-aggregated feed: district, average price
// per wah.
func ParseAveragePrices(r io.Reader, logger *logrus.Logger) (map[models.DistrictKey]AveragePrice, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	averages := make(map[models.DistrictKey]AveragePrice)
	var skipped, line int
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("average feed line %d: %w", line+1, err)
		}
		line++
		if line == 1 {
			continue
		}
		if len(row) < 2 {
			skipped++
			continue
		}

		district := strings.TrimSpace(row[0])
		price := parseAmount(row[1])
		if district == "" || price <= 0 {
			skipped++
			continue
		}

		averages[models.NormalizeDistrict(district)] = AveragePrice{
			Name:        district,
			PricePerWah: price,
		}
	}

	if skipped > 0 {
		logger.Warnf("Skipped %d malformed average price rows", skipped)
	}
	return averages, nil
}
