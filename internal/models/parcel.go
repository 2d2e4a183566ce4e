package models

import "time"

// ParcelRecord is one raw land listing ingested from the detailed CSV and
// persisted to sqlite. The valuation pipeline reads parcels back as
// comparables; the statistics store is built from the same rows in memory.
type ParcelRecord struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	District    string    `json:"district" gorm:"column:district;index:idx_parcels_district_key,priority:2"`
	DistrictKey string    `json:"-" gorm:"column:district_key;index:idx_parcels_district_key,priority:1"`
	Price       float64   `json:"price" gorm:"column:price"`
	SizeSqm     float64   `json:"size_sqm" gorm:"column:size_sqm"`
	SizeWah     float64   `json:"size_wah" gorm:"column:size_wah"`
	PricePerSqm float64   `json:"price_per_sqm" gorm:"column:price_per_sqm"`
	PricePerWah float64   `json:"price_per_wah" gorm:"column:price_per_wah"`
	IngestedAt  time.Time `json:"ingested_at" gorm:"column:ingested_at;autoCreateTime"`
}

// TableName keeps gorm on the same table the read path queries.
func (ParcelRecord) TableName() string {
	return "parcels"
}
