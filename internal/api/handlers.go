package api

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bkkland/server/internal/database"
	"bkkland/server/internal/geo"
	"bkkland/server/internal/geocoding"
	"bkkland/server/internal/geometry"
	"bkkland/server/internal/landmarks"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
	"bkkland/server/internal/valuation"
)

type Handler struct {
	db       *database.Database
	holder   *stats.Holder
	engine   *valuation.Engine
	geocoder *geocoding.Geocoder
	logger   *logrus.Logger
}

// ValuationRequest is the POST /api/valuations body. Coordinates are
// optional; a missing location falls back to geocoding the query, then to
// the Bangkok center.
type ValuationRequest struct {
	Lat         *float64                    `json:"lat"`
	Lng         *float64                    `json:"lng"`
	Query       string                      `json:"query"`
	Comparables []models.ComparableProperty `json:"comparables"`
}

func NewHandler(db *database.Database, holder *stats.Holder, engine *valuation.Engine, geocoder *geocoding.Geocoder, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:       db,
		holder:   holder,
		engine:   engine,
		geocoder: geocoder,
		logger:   logger,
	}
}

// CreateValuation runs the full valuation pipeline for one location.
func (h *Handler) CreateValuation(c *gin.Context) {
	var req ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse valuation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	if req.Query == "" && (req.Lat == nil || req.Lng == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either coordinates or a query is required"})
		return
	}

	var lat, lng float64
	if req.Lat != nil && req.Lng != nil {
		lat, lng = *req.Lat, *req.Lng
	} else {
		point, _ := h.geocoder.GeocodeQuery(req.Query)
		lng, lat = point[0], point[1]
	}

	comparables := req.Comparables
	if len(comparables) == 0 && req.Query != "" && h.db != nil {
		fetched, err := h.db.GetComparables(models.NormalizeDistrict(req.Query), 10)
		if err != nil {
			h.logger.WithError(err).Warn("Failed to fetch comparables, continuing without them")
		} else {
			comparables = fetched
		}
	}

	result := h.engine.Valuate(valuation.Request{
		Lat:         lat,
		Lng:         lng,
		Query:       req.Query,
		Comparables: comparables,
	})

	if c.Query("geojson") == "true" {
		c.JSON(http.StatusOK, gin.H{
			"result":  result,
			"geojson": geometry.ValuationCollection(geo.Point(lat, lng), result),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDistricts lists all district records sorted by average price per wah.
func (h *Handler) GetDistricts(c *gin.Context) {
	store := h.holder.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Statistics store not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"districts":   store.Districts(),
		"count":       store.Len(),
		"placeholder": store.IsPlaceholder(),
	})
}

// GetDistrict returns one district's record with its ranking and trends.
func (h *Handler) GetDistrict(c *gin.Context) {
	store := h.holder.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Statistics store not ready"})
		return
	}

	name := c.Param("name")
	record, ok := store.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown district"})
		return
	}

	ranking, _ := store.DistrictRanking(record.Name)
	c.JSON(http.StatusOK, gin.H{
		"record":  record,
		"ranking": ranking,
		"trends":  store.MarketTrends(record),
	})
}

// GetMarketStats returns the city-wide quartile summary.
func (h *Handler) GetMarketStats(c *gin.Context) {
	store := h.holder.Get()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Statistics store not ready"})
		return
	}

	c.JSON(http.StatusOK, store.MarketStats())
}

// GetDistrictGeoJSON exports the district centers as a FeatureCollection,
// annotated with stats from the current store.
func (h *Handler) GetDistrictGeoJSON(c *gin.Context) {
	c.JSON(http.StatusOK, geometry.DistrictCentersCollection(h.holder.Get()))
}

// GetLandmarks returns the static landmark tables the scorers read.
func (h *Handler) GetLandmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"proximity":        landmarks.ProximityLandmarks,
		"transit_stations": landmarks.TransitStations,
		"shopping_centers": landmarks.ShoppingCenters,
		"schools":          landmarks.Schools,
	})
}

// GetComparables returns recent parcels for a district from the database.
func (h *Handler) GetComparables(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	comparables, err := h.db.GetComparables(models.NormalizeDistrict(c.Param("name")), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get comparables")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comparables"})
		return
	}

	c.JSON(http.StatusOK, comparables)
}

// HealthCheck reports readiness. The service is ready once the first store
// build has been swapped in.
func (h *Handler) HealthCheck(c *gin.Context) {
	if !h.holder.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}

	store := h.holder.Get()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"districts":   store.Len(),
		"placeholder": store.IsPlaceholder(),
	})
}
