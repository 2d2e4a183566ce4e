package database

import (
	"fmt"

	"gorm.io/gorm"

	"bkkland/server/internal/models"
)

// InsertParcels appends a batch of parcels inside the caller's transaction.
func InsertParcels(tx *gorm.DB, parcels []*models.ParcelRecord) error {
	if len(parcels) == 0 {
		return nil
	}
	if err := tx.Create(parcels).Error; err != nil {
		return fmt.Errorf("failed to insert parcels: %w", err)
	}
	return nil
}

// ResetParcels clears the parcel table before a dataset (re)ingest so a
// refresh never duplicates rows.
func ResetParcels(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ParcelRecord{}).Error; err != nil {
		return fmt.Errorf("failed to reset parcels: %w", err)
	}
	return nil
}
