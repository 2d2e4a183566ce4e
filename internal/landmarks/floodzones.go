package landmarks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// LoadFloodZones reads flood-risk zones from a point shapefile carrying
// "radius_km" and "risk" attributes. Rows with an unknown risk tier or a
// non-positive radius are skipped with a warning. An empty file yields the
// built-in table so the factor engine never runs without zones.
func LoadFloodZones(path string, logger *logrus.Logger) ([]FloodZone, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flood zone shapefile: %w", err)
	}
	defer reader.Close()

	radiusIdx, riskIdx := -1, -1
	for i, field := range reader.Fields() {
		switch strings.ToLower(field.String()) {
		case "radius_km":
			radiusIdx = i
		case "risk":
			riskIdx = i
		}
	}
	if radiusIdx < 0 || riskIdx < 0 {
		return nil, fmt.Errorf("shapefile %s is missing radius_km/risk attributes", path)
	}

	var zones []FloodZone
	for reader.Next() {
		n, shape := reader.Shape()
		point, ok := shape.(*shp.Point)
		if !ok {
			logger.Warnf("Flood zone shape %d is not a point, skipping", n)
			continue
		}

		radius, err := strconv.ParseFloat(strings.TrimSpace(reader.ReadAttribute(n, radiusIdx)), 64)
		if err != nil || radius <= 0 {
			logger.Warnf("Flood zone shape %d has invalid radius, skipping", n)
			continue
		}

		risk := strings.ToLower(strings.TrimSpace(reader.ReadAttribute(n, riskIdx)))
		switch risk {
		case RiskLow, RiskMedium, RiskHigh:
		default:
			logger.Warnf("Flood zone shape %d has unknown risk tier %q, skipping", n, risk)
			continue
		}

		zones = append(zones, FloodZone{
			Center:   orb.Point{point.X, point.Y},
			RadiusKm: radius,
			Risk:     risk,
		})
	}

	if len(zones) == 0 {
		logger.Warnf("Flood zone shapefile %s contained no usable zones, keeping built-in table", path)
		return DefaultFloodZones, nil
	}

	logger.Infof("Loaded %d flood zones from %s", len(zones), path)
	return zones, nil
}
