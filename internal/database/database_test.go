package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bkkland/server/internal/models"
)

func openTestDatabase(t *testing.T) (*Database, *gorm.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, gormDB
}

func seedParcels(t *testing.T, gormDB *gorm.DB) {
	t.Helper()
	parcels := []*models.ParcelRecord{
		{District: "Watthana", DistrictKey: "watthana", Price: 12000000, SizeSqm: 400, SizeWah: 100, PricePerWah: 120000},
		{District: "Watthana", DistrictKey: "watthana", Price: 16000000, SizeSqm: 400, SizeWah: 100, PricePerWah: 160000},
		{District: "Sathon", DistrictKey: "sathon", Price: 9000000, SizeSqm: 300, SizeWah: 75, PricePerWah: 120000},
	}
	require.NoError(t, gormDB.Transaction(func(tx *gorm.DB) error {
		return InsertParcels(tx, parcels)
	}))
}

func TestGetComparables(t *testing.T) {
	db, gormDB := openTestDatabase(t)
	seedParcels(t, gormDB)

	comparables, err := db.GetComparables(models.NormalizeDistrict("Watthana"), 10)
	require.NoError(t, err)
	require.Len(t, comparables, 2)

	for _, c := range comparables {
		assert.Equal(t, "Watthana", c.District)
		assert.Greater(t, c.Price, 0.0)
		assert.Greater(t, c.PricePerWah, 0.0)
	}
}

func TestGetComparables_LimitAndMiss(t *testing.T) {
	db, gormDB := openTestDatabase(t)
	seedParcels(t, gormDB)

	comparables, err := db.GetComparables("watthana", 1)
	require.NoError(t, err)
	assert.Len(t, comparables, 1)

	comparables, err = db.GetComparables(models.NormalizeDistrict("Bang Na"), 10)
	require.NoError(t, err)
	assert.Empty(t, comparables)
}

func TestCountParcels(t *testing.T) {
	db, gormDB := openTestDatabase(t)
	seedParcels(t, gormDB)

	count, err := db.CountParcels()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	counts, err := db.CountByDistrict()
	require.NoError(t, err)
	assert.Equal(t, 2, counts["watthana"])
	assert.Equal(t, 1, counts["sathon"])
}

func TestResetParcels(t *testing.T) {
	db, gormDB := openTestDatabase(t)
	seedParcels(t, gormDB)

	require.NoError(t, ResetParcels(gormDB))

	count, err := db.CountParcels()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
