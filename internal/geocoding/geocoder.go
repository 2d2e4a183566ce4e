package geocoding

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"bkkland/server/config"
)

// Geocoder resolves free-text place queries to coordinates through
// Nominatim, with an on-disk JSON cache. Lookups never fail hard: any miss
// or transport error yields the Bangkok center so a valuation can proceed.
type Geocoder struct {
	logger    *logrus.Logger
	cacheDir  string
	cache     map[string][]float64
	cacheLock sync.RWMutex
	client    *http.Client
}

func NewGeocoder(logger *logrus.Logger, cacheDir string) *Geocoder {
	os.MkdirAll(cacheDir, 0755)

	g := &Geocoder{
		logger:   logger,
		cacheDir: cacheDir,
		cache:    make(map[string][]float64),
		client:   &http.Client{Timeout: 10 * time.Second},
	}

	g.loadCache()
	return g
}

func (g *Geocoder) loadCache() {
	cacheFile := filepath.Join(g.cacheDir, "geocode_cache.json")
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		g.logger.Warnf("Could not load geocode cache: %v", err)
		return
	}

	err = json.Unmarshal(data, &g.cache)
	if err != nil {
		g.logger.Errorf("Failed to parse geocode cache: %v", err)
		return
	}

	g.logger.Infof("Loaded %d cached queries", len(g.cache))
}

func (g *Geocoder) saveCache() {
	g.cacheLock.RLock()
	defer g.cacheLock.RUnlock()

	cacheFile := filepath.Join(g.cacheDir, "geocode_cache.json")
	data, err := json.Marshal(g.cache)
	if err != nil {
		g.logger.Errorf("Failed to marshal geocode cache: %v", err)
		return
	}

	err = os.WriteFile(cacheFile, data, 0644)
	if err != nil {
		g.logger.Errorf("Failed to save geocode cache: %v", err)
		return
	}

	g.logger.Info("Saved geocode cache to disk")
}

type nominatimResponse []struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// GeocodeQuery resolves a district or place query within Bangkok. The
// second return reports whether the location came from the geocoder; when
// false the Bangkok center is returned as a usable default.
func (g *Geocoder) GeocodeQuery(query string) (orb.Point, bool) {
	cacheKey := strings.ToLower(strings.TrimSpace(query))
	if cacheKey == "" {
		return config.BangkokCenter, false
	}
	fullQuery := fmt.Sprintf("%s, Bangkok, Thailand", strings.TrimSpace(query))

	g.cacheLock.RLock()
	if coords, ok := g.cache[cacheKey]; ok {
		g.cacheLock.RUnlock()
		if len(coords) == 2 {
			return orb.Point{coords[1], coords[0]}, true
		}
		return config.BangkokCenter, false
	}
	g.cacheLock.RUnlock()

	g.logger.WithField("query", fullQuery).Info("Geocoding query with Nominatim")

	// Respect Nominatim's usage policy
	time.Sleep(time.Second)

	params := url.Values{
		"q":            []string{fullQuery},
		"format":       []string{"json"},
		"limit":        []string{"1"},
		"countrycodes": []string{"th"},
	}

	req, err := http.NewRequest("GET", "https://nominatim.openstreetmap.org/search", nil)
	if err != nil {
		g.logger.WithError(err).Error("Failed to create geocoding request")
		return config.BangkokCenter, false
	}

	req.URL.RawQuery = params.Encode()
	req.Header.Set("User-Agent", "BKKLand Valuation/1.0")
	req.Header.Set("Accept-Language", "th-TH,th;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithError(err).WithField("query", fullQuery).Error("Geocoding request failed")
		return config.BangkokCenter, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.WithError(err).WithField("query", fullQuery).Error("Failed to read geocoding response")
		return config.BangkokCenter, false
	}

	var result nominatimResponse
	if err := json.Unmarshal(body, &result); err != nil {
		g.logger.WithError(err).WithField("query", fullQuery).Error("Failed to parse geocoding response")
		return config.BangkokCenter, false
	}

	if len(result) == 0 {
		g.logger.WithField("query", fullQuery).Warn("No geocoding results, using Bangkok center")
		return config.BangkokCenter, false
	}

	var lat, lon float64
	fmt.Sscanf(result[0].Lat, "%f", &lat)
	fmt.Sscanf(result[0].Lon, "%f", &lon)

	g.logger.WithFields(logrus.Fields{
		"query":     fullQuery,
		"latitude":  lat,
		"longitude": lon,
	}).Info("Successfully geocoded query")

	g.cacheLock.Lock()
	g.cache[cacheKey] = []float64{lat, lon}
	g.cacheLock.Unlock()

	go g.saveCache()

	return orb.Point{lon, lat}, true
}
