package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bkkland/server/config"
	"bkkland/server/internal/dataset"
	"bkkland/server/internal/geocoding"
	"bkkland/server/internal/models"
	"bkkland/server/internal/stats"
	"bkkland/server/internal/valuation"
)

func testRouter(t *testing.T, seeded bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	holder := stats.NewHolder()
	if seeded {
		src := &dataset.Sources{
			Averages: map[models.DistrictKey]dataset.AveragePrice{
				models.NormalizeDistrict("Watthana"): {Name: "Watthana", PricePerWah: 1325936},
				models.NormalizeDistrict("Sathon"):   {Name: "Sathon", PricePerWah: 605047},
				models.NormalizeDistrict("Sai Mai"):  {Name: "Sai Mai", PricePerWah: 55055},
			},
		}
		holder.Swap(stats.BuildStore(src, logger))
	}

	factors := valuation.NewFactorEngine(nil, config.BangkokCenter)
	engine := valuation.NewEngine(holder, factors, logger)
	geocoder := geocoding.NewGeocoder(logger, filepath.Join(t.TempDir(), "geocode"))

	router := gin.New()
	SetupRoutes(router, NewHandler(nil, holder, engine, geocoder, logger))
	return router
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	router = testRouter(t, true)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["districts"])
}

func TestCreateValuation(t *testing.T) {
	router := testRouter(t, true)

	payload := `{"lat": 13.7373, "lng": 100.5608, "query": "Watthana"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/valuations", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, w.Code)

	var result models.ValuationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Greater(t, result.High, result.Low)
	require.NotNil(t, result.District)
	assert.Equal(t, "Watthana", result.District.DistrictName)
}

func TestCreateValuation_MissingInput(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/valuations", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/valuations", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateValuation_GeoJSONOverlay(t *testing.T) {
	router := testRouter(t, true)

	payload := `{"lat": 13.7373, "lng": 100.5608}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/valuations?geojson=true", strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "result")
	assert.Contains(t, body, "geojson")
}

func TestGetDistricts(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/districts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Districts []models.DistrictRecord `json:"districts"`
		Count     int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "Watthana", body.Districts[0].Name)
}

func TestGetDistrict(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/districts/Watthana", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/districts/Nonthaburi", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMarketStats(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/market/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var market models.MarketStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &market))
	assert.Equal(t, 3, market.TotalDistricts)
	assert.Equal(t, 1325936.0, market.CityMax)
}

func TestGetLandmarks(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/landmarks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "proximity")
	assert.Contains(t, body, "transit_stations")
}

func TestGetDistrictGeoJSON(t *testing.T) {
	router := testRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/districts/geojson", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, len(config.DistrictCenters))
}
