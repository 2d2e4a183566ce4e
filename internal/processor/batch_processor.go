package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bkkland/server/config"
	"bkkland/server/internal/database"
	"bkkland/server/internal/models"
	"bkkland/server/internal/queue"
)

// BatchProcessor drains the parcel queue into sqlite, one transaction per
// batch with bounded retries.
type BatchProcessor struct {
	db        *gorm.DB
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.ParcelQueue
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewBatchProcessor creates a new batch processor instance.
func NewBatchProcessor(db *gorm.DB, queue *queue.ParcelQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes the processor to the queue.
func (p *BatchProcessor) Start() {
	p.waitGroup.Add(1)
	go p.processLoop()
}

// Stop gracefully shuts down the processor.
func (p *BatchProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

func (p *BatchProcessor) processLoop() {
	defer p.waitGroup.Done()

	p.queue.Subscribe(func(batch []*models.ParcelRecord) error {
		return p.processBatch(batch)
	})
}

// processBatch handles a single batch of parcels with transaction and retry
// logic.
func (p *BatchProcessor) processBatch(batch []*models.ParcelRecord) error {
	var err error
	for attempt := 1; attempt <= p.config.Ingest.MaxRetries; attempt++ {
		if attempt > 1 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, p.config.Ingest.MaxRetries)
			time.Sleep(time.Duration(p.config.Ingest.RetryDelay) * time.Second)
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.InsertParcels(tx, batch); err != nil {
				return fmt.Errorf("failed to insert parcel batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.Infof("Successfully processed batch of %d parcels", len(batch))
			return nil
		}

		p.logger.Errorf("Batch processing failed: %v", err)
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", p.config.Ingest.MaxRetries, err)
}
