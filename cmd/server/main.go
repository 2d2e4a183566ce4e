package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bkkland/server/config"
	"bkkland/server/internal/api"
	"bkkland/server/internal/database"
	"bkkland/server/internal/dataset"
	"bkkland/server/internal/geocoding"
	"bkkland/server/internal/landmarks"
	"bkkland/server/internal/processor"
	"bkkland/server/internal/queue"
	"bkkland/server/internal/scheduler"
	"bkkland/server/internal/stats"
	"bkkland/server/internal/valuation"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.DatabasePath)

	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	gormDB, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open ingest database connection")
	}

	// Build the first store before the server accepts traffic. A missing or
	// unreadable parcel feed degrades to the embedded placeholder averages.
	loader := dataset.NewLoader(cfg.DataDir, cfg.ParcelFile, cfg.AveragePriceFile, logger)
	src, err := loader.Load()
	if err != nil {
		logger.WithError(err).Warn("Data feeds unavailable, using placeholder averages")
		src = dataset.Placeholder()
	}

	holder := stats.NewHolder()
	holder.Swap(stats.BuildStore(src, logger))

	// Ingest the parcel feed into sqlite through the batch pipeline so
	// comparables can be served per district.
	parcelQueue := queue.NewParcelQueue(cfg.Ingest.QueueSize, logger)
	batchProcessor := processor.NewBatchProcessor(gormDB, parcelQueue, cfg, logger)
	batchProcessor.Start()
	parcelQueue.Start()

	if len(src.Parcels) > 0 {
		if err := database.ResetParcels(gormDB); err != nil {
			logger.WithError(err).Error("Failed to clear previous parcels")
		}
		go func() {
			for start := 0; start < len(src.Parcels); start += cfg.Ingest.BatchSize {
				end := start + cfg.Ingest.BatchSize
				if end > len(src.Parcels) {
					end = len(src.Parcels)
				}
				if err := parcelQueue.Push(src.Parcels[start:end]); err != nil {
					logger.WithError(err).Error("Failed to enqueue parcel batch")
					return
				}
			}
			logger.Infof("Enqueued %d parcels for ingestion", len(src.Parcels))
		}()
	}

	floodZones := landmarks.DefaultFloodZones
	if cfg.FloodZoneShapefile != "" {
		loaded, err := landmarks.LoadFloodZones(cfg.FloodZoneShapefile, logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to load flood zone shapefile, using built-in zones")
		} else {
			floodZones = loaded
		}
	}

	factors := valuation.NewFactorEngine(floodZones, config.BangkokCenter)
	engine := valuation.NewEngine(holder, factors, logger)

	cacheDir := cfg.GeocodeCacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "bkkland", "geocode_cache")
	}
	geocoder := geocoding.NewGeocoder(logger, cacheDir)

	if cfg.RefreshHours > 0 {
		refresher := scheduler.NewScheduler(loader, holder, logger, time.Duration(cfg.RefreshHours)*time.Hour)
		refresher.Start()
		defer refresher.Stop()
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handler := api.NewHandler(db, holder, engine, geocoder, logger)
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
