package valuation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"bkkland/server/config"
	"bkkland/server/internal/geo"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
)

// defaultBasePrice is used when the resolved record carries no usable price
// per wah signal.
const defaultBasePrice = 50000

// Fixed degraded-mode estimate returned when district resolution fails
// entirely. This is a documented output, not an error.
const (
	fallbackLow  = 120000
	fallbackHigh = 180000
)

// Request is one valuation call. Coordinates default to the Bangkok center
// upstream when the caller has none.
type Request struct {
	Lat         float64
	Lng         float64
	Query       string
	Comparables []models.ComparableProperty
}

// Engine is the top-level valuation orchestrator. It never fails: missing
// data is replaced by defaults and every fallback taken is logged.
type Engine struct {
	holder  *stats.Holder
	factors *FactorEngine
	centers []config.DistrictCenter
	logger  *logrus.Logger
}

func NewEngine(holder *stats.Holder, factors *FactorEngine, logger *logrus.Logger) *Engine {
	return &Engine{
		holder:  holder,
		factors: factors,
		centers: config.DistrictCenters,
		logger:  logger,
	}
}

// Valuate resolves the district, scores proximity and the five factors, and
// assembles the price range with its explanation.
func (e *Engine) Valuate(req Request) *models.ValuationResult {
	location := geo.Point(req.Lat, req.Lng)
	store := e.holder.Get()
	if store == nil || store.Len() == 0 {
		e.logger.Warn("Statistics store empty, returning fixed fallback estimate")
		return fallbackResult()
	}

	resolver := NewResolver(store, e.centers, e.logger)
	match, ok := resolver.Resolve(location, req.Query)
	if !ok {
		e.logger.WithField("query", req.Query).Warn("District resolution failed, returning fixed fallback estimate")
		return fallbackResult()
	}

	proximity := ScoreProximity(location)

	basePrice := float64(defaultBasePrice)
	if match.Record != nil && match.Record.AvgPricePerWah > 0 {
		basePrice = match.Record.AvgPricePerWah
	} else {
		e.logger.WithField("district", match.DistrictName).Warn("District record missing price per wah, using default base price")
	}

	// The proximity premium scales the district base before the factor
	// model runs, so the factor floors bind against the premium-adjusted
	// base.
	analysis := e.factors.Analyze(location, basePrice*proximity.Multiplier)

	score := scoreConfidence(analysis, match.Record, req.Comparables, proximity)
	confidence := confidenceLabel(score)

	trends := store.MarketTrends(match.Record)
	ranking, _ := store.DistrictRanking(match.DistrictName)
	market := store.MarketStats()

	return &models.ValuationResult{
		Low:            analysis.LowPrice,
		High:           analysis.HighPrice,
		Confidence:     confidence,
		Reasoning:      buildReasoning(match, ranking, trends, proximity, basePrice),
		Factors:        buildFactors(match, ranking, trends, proximity, analysis, req.Comparables, basePrice),
		District:       match,
		Proximity:      proximity,
		FactorAnalysis: analysis,
		MarketAnalysis: &models.MarketAnalysis{
			Trends:  trends,
			Ranking: ranking,
			Stats:   market,
		},
	}
}

func fallbackResult() *models.ValuationResult {
	return &models.ValuationResult{
		Low:        fallbackLow,
		High:       fallbackHigh,
		Confidence: models.ConfidenceLow,
		Reasoning:  "No district data available. Using estimated market rates.",
		Factors:    []string{"Estimated market rates", "Location analysis", "General area pricing"},
	}
}

// scoreConfidence is the single confidence computation: amenity signal
// points from the factor engine plus data-quality points from the district
// record, the comparables and the proximity landmarks.
func scoreConfidence(analysis *models.FactorAnalysis, record *models.DistrictRecord, comparables []models.ComparableProperty, proximity *models.ProximityResult) int {
	score := analysis.SignalScore

	switch n := len(comparables); {
	case n >= 10:
		score += 3
	case n >= 5:
		score += 2
	case n >= 2:
		score++
	}
	if len(comparables) > 0 {
		score++
	}

	if record != nil {
		consistency := 1 - record.PriceVolatility
		if consistency > 0.8 {
			score += 2
		} else if consistency > 0.6 {
			score++
		}
	}

	if len(proximity.NearbyLandmarks) > 0 {
		score++
	}
	return score
}

func confidenceLabel(score int) string {
	switch {
	case score >= 6:
		return models.ConfidenceHigh
	case score >= 3:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func buildReasoning(match *models.DistrictMatch, ranking models.DistrictRanking, trends models.MarketTrends, proximity *models.ProximityResult, basePrice float64) string {
	var b strings.Builder

	count := 0
	if match.Record != nil {
		count = match.Record.PropertyCount
	}
	fmt.Fprintf(&b, "Analysis of %d properties in %s (%d/%d by price). ",
		count, match.DistrictName, ranking.PriceRank, ranking.TotalDistricts)

	direction := "above"
	if trends.VsCityAverage < 0 {
		direction = "below"
	}
	fmt.Fprintf(&b, "Average: %s/wah (%.1f%% %s city average). ",
		formatCurrency(basePrice), trends.VsCityAverage, direction)
	fmt.Fprintf(&b, "Price category: %s. ", trends.PriceCategory)

	if proximity.Multiplier > 1.0 {
		fmt.Fprintf(&b, "Location premium: %.0f%% due to nearby landmarks.",
			(proximity.Multiplier-1)*100)
	} else {
		b.WriteString("Standard district pricing applied.")
	}
	return b.String()
}

func buildFactors(match *models.DistrictMatch, ranking models.DistrictRanking, trends models.MarketTrends, proximity *models.ProximityResult, analysis *models.FactorAnalysis, comparables []models.ComparableProperty, basePrice float64) []string {
	factors := []string{
		fmt.Sprintf("%d properties in %s", recordCount(match), match.DistrictName),
		fmt.Sprintf("Average: %s/wah", formatCurrency(basePrice)),
	}
	if match.Record != nil {
		factors = append(factors,
			fmt.Sprintf("Median: %s", formatCurrency(match.Record.MedianPrice)),
			fmt.Sprintf("Size: %.0f sq.wah avg", match.Record.AvgSizeWah),
		)
	}
	factors = append(factors,
		fmt.Sprintf("Market: %s (%.1f%% vs city)", trends.MarketPosition, trends.VsCityAverage),
		fmt.Sprintf("Rank: #%d of %d", ranking.PriceRank, ranking.TotalDistricts),
		fmt.Sprintf("Factor adjustment: %.1f%% (transport %.2f, shopping %.2f, education %.2f, flood %.2f, zoning %.2f)",
			(analysis.TotalMultiplier-1)*100,
			analysis.Transport.Multiplier, analysis.Shopping.Multiplier,
			analysis.Education.Multiplier, analysis.FloodRisk.Multiplier,
			analysis.Zoning.Multiplier),
		fmt.Sprintf("Zoning: %s (%dm max height)",
			analysis.Zoning.ZoneType, analysis.Zoning.HeightRestriction.MaxHeightM),
		fmt.Sprintf("Flood risk: %s", analysis.FloodRisk.RiskLevel),
	)

	if len(proximity.NearbyLandmarks) > 0 {
		top := proximity.NearbyLandmarks
		if len(top) > 3 {
			top = top[:3]
		}
		parts := make([]string, len(top))
		for i, lm := range top {
			parts[i] = fmt.Sprintf("%s (%.2fkm)", lm.Name, lm.DistanceKm)
		}
		factors = append(factors, fmt.Sprintf("Location premium: %s", strings.Join(parts, ", ")))

		var breakdown []string
		for category, n := range proximity.CategoryBreakdown {
			breakdown = append(breakdown, fmt.Sprintf("%d %s", n, category))
		}
		sort.Strings(breakdown)
		factors = append(factors, fmt.Sprintf("Nearby amenities: %s", strings.Join(breakdown, ", ")))
	}

	if len(comparables) > 0 {
		factors = append(factors, fmt.Sprintf("Recent market activity: %d comparable sales", len(comparables)))
	}
	return factors
}

func recordCount(match *models.DistrictMatch) int {
	if match.Record == nil {
		return 0
	}
	return match.Record.PropertyCount
}
