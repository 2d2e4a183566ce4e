package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"bkkland/server/internal/models"
)

// Database is the sqlite read path over ingested parcels. Writes go through
// the gorm batch upsert in upsert.go; this side only queries.
type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// GetComparables returns recent parcels for a district, used as comparable
// sales when a valuation request supplies none.
func (d *Database) GetComparables(district models.DistrictKey, limit int) ([]models.ComparableProperty, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := d.db.Query(`
        SELECT district, price, size_sqm, price_per_wah
        FROM parcels
        WHERE district_key = ?
        ORDER BY ingested_at DESC, price DESC
        LIMIT ?
    `, string(district), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparables: %w", err)
	}
	defer rows.Close()

	var comparables []models.ComparableProperty
	for rows.Next() {
		var c models.ComparableProperty
		var name sql.NullString
		var price, size, perWah sql.NullFloat64

		if err := rows.Scan(&name, &price, &size, &perWah); err != nil {
			return nil, fmt.Errorf("failed to scan comparable: %w", err)
		}
		if name.Valid {
			c.District = name.String
		}
		if price.Valid {
			c.Price = price.Float64
		}
		if size.Valid {
			c.SizeSqm = size.Float64
		}
		if perWah.Valid {
			c.PricePerWah = perWah.Float64
		}
		comparables = append(comparables, c)
	}
	return comparables, rows.Err()
}

// CountParcels returns the total number of ingested parcels.
func (d *Database) CountParcels() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM parcels").Scan(&count)
	return count, err
}

// CountByDistrict returns per-district parcel counts keyed by normalized
// district key.
func (d *Database) CountByDistrict() (map[models.DistrictKey]int, error) {
	rows, err := d.db.Query(`
        SELECT district_key, COUNT(*)
        FROM parcels
        GROUP BY district_key
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query district counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.DistrictKey]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan district count: %w", err)
		}
		counts[models.DistrictKey(key)] = count
	}
	return counts, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}
