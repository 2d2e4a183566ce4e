package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// HTTP server port
	Port string `env:"PORT" envDefault:"5260"`

	// Directory holding the static data files
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	// Detailed per-parcel listings (district, price, size sqm, price per sqm)
	ParcelFile string `env:"PARCEL_FILE" envDefault:"clean_land.csv"`

	// Pre-aggregated district averages (district, avg price per wah)
	AveragePriceFile string `env:"AVG_PRICE_FILE" envDefault:"avgprice_perwah.csv"`

	// Optional flood-zone point shapefile overriding the built-in table
	FloodZoneShapefile string `env:"FLOOD_ZONE_SHP" envDefault:""`

	// Sqlite database holding ingested parcels
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/bkkland.db"`

	// Ingestion configuration
	Ingest struct {
		// Maximum number of parcels per ingest batch
		BatchSize int `env:"INGEST_BATCH_SIZE" envDefault:"100"`

		// Queue capacity in batches
		QueueSize int `env:"INGEST_QUEUE_SIZE" envDefault:"50"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"INGEST_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"INGEST_RETRY_DELAY" envDefault:"5"`
	}

	// Dataset refresh interval in hours (0 disables the scheduler)
	RefreshHours int `env:"REFRESH_HOURS" envDefault:"24"`

	// Directory for the geocoder response cache
	GeocodeCacheDir string `env:"GEOCODE_CACHE_DIR" envDefault:""`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
