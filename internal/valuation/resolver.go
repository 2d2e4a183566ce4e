package valuation

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"bkkland/server/config"
	"bkkland/server/internal/geo"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
)

// Resolver maps a free-text query and/or coordinate pair onto the single
// best district record. Text matches are deterministic: exact normalized
// equality first, then the longest district name with a bidirectional
// substring match, ties broken lexicographically.
type Resolver struct {
	store   *stats.Store
	centers []config.DistrictCenter
	logger  *logrus.Logger
}

func NewResolver(store *stats.Store, centers []config.DistrictCenter, logger *logrus.Logger) *Resolver {
	return &Resolver{store: store, centers: centers, logger: logger}
}

// Resolve returns the best district match, or false when the store is empty
// or no district could be paired with the input.
func (r *Resolver) Resolve(location orb.Point, query string) (*models.DistrictMatch, bool) {
	if r.store == nil || r.store.Len() == 0 {
		return nil, false
	}

	if match := r.matchByQuery(query); match != nil {
		return match, true
	}
	return r.matchByProximity(location)
}

func (r *Resolver) matchByQuery(query string) *models.DistrictMatch {
	needle := string(models.NormalizeDistrict(query))
	if needle == "" {
		return nil
	}

	var best *models.DistrictRecord
	for _, record := range r.store.Districts() {
		key := string(models.NormalizeDistrict(record.Name))
		if key == needle {
			return &models.DistrictMatch{
				DistrictName: record.Name,
				Record:       record,
				MatchType:    "query",
			}
		}
		if !strings.Contains(key, needle) && !strings.Contains(needle, key) {
			continue
		}
		if best == nil ||
			len(record.Name) > len(best.Name) ||
			(len(record.Name) == len(best.Name) && record.Name < best.Name) {
			best = record
		}
	}

	if best == nil {
		return nil
	}
	return &models.DistrictMatch{
		DistrictName: best.Name,
		Record:       best,
		MatchType:    "query",
	}
}

// matchByProximity returns the nearest canonical district center that has a
// record in the store. Centers whose district is missing from the store are
// logged and skipped rather than returned without data.
func (r *Resolver) matchByProximity(location orb.Point) (*models.DistrictMatch, bool) {
	var best *models.DistrictMatch
	minDistance := math.Inf(1)

	for _, dc := range r.centers {
		distance := geo.DistanceKm(location, dc.Center)
		if distance >= minDistance {
			continue
		}

		record, ok := r.store.Get(dc.Name)
		if !ok {
			r.logger.Warnf("District center %q has no statistics record, skipping", dc.Name)
			continue
		}

		minDistance = distance
		best = &models.DistrictMatch{
			DistrictName: record.Name,
			Record:       record,
			MatchType:    "proximity",
			DistanceKm:   distance,
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}
