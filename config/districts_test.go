package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bkkland/server/internal/models"
)

func TestGetDistrictCenter(t *testing.T) {
	assert.Equal(t, DistrictCenters[1].Center, GetDistrictCenter("Watthana"))
	assert.Equal(t, DistrictCenters[1].Center, GetDistrictCenter("  watthana  "))
	assert.Equal(t, BangkokCenter, GetDistrictCenter("Chiang Mai"))
	assert.Equal(t, BangkokCenter, GetDistrictCenter(""))
}

func TestDistrictCenters_UniqueNames(t *testing.T) {
	seen := make(map[models.DistrictKey]bool)
	for _, dc := range DistrictCenters {
		key := models.NormalizeDistrict(dc.Name)
		assert.False(t, seen[key], "duplicate district %q", dc.Name)
		seen[key] = true
	}
}

func TestDistrictCenters_WithinBangkokBounds(t *testing.T) {
	for _, dc := range DistrictCenters {
		assert.InDelta(t, 13.75, dc.Center[1], 0.25, dc.Name)
		assert.InDelta(t, 100.55, dc.Center[0], 0.25, dc.Name)
	}
}
