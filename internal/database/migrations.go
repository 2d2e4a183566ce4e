package database

import "fmt"

func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS parcels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			district TEXT NOT NULL,
			district_key TEXT NOT NULL,
			price REAL NOT NULL,
			size_sqm REAL NOT NULL,
			size_wah REAL NOT NULL,
			price_per_sqm REAL,
			price_per_wah REAL,
			ingested_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create parcels table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_parcels_district_key
		ON parcels(district_key, district);
	`)
	if err != nil {
		return fmt.Errorf("failed to create parcels index: %v", err)
	}

	return nil
}
