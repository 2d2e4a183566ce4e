package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"bkkland/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// ParcelQueue is the in-memory queue between the dataset loader and the
// batch writer. Items are whole batches of parsed parcels.
type ParcelQueue struct {
	items    chan []*models.ParcelRecord
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func([]*models.ParcelRecord) error
}

// NewParcelQueue creates a queue buffering up to bufferSize batches.
func NewParcelQueue(bufferSize int, logger *logrus.Logger) *ParcelQueue {
	return &ParcelQueue{
		items:    make(chan []*models.ParcelRecord, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func([]*models.ParcelRecord) error, 0),
	}
}

// Push adds a batch of parcels to the queue.
func (q *ParcelQueue) Push(parcels []*models.ParcelRecord) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	// Non-blocking send to prevent deadlocks
	select {
	case q.items <- parcels:
		q.logger.WithField("batch_size", len(parcels)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each batch.
func (q *ParcelQueue) Subscribe(handler func([]*models.ParcelRecord) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue.
func (q *ParcelQueue) Start() {
	go q.process()
}

func (q *ParcelQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case batch := <-q.items:
			q.processBatch(batch)
		}
	}
}

func (q *ParcelQueue) processBatch(batch []*models.ParcelRecord) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops the queue and prevents new items from being added.
func (q *ParcelQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len returns the current number of batches in the queue.
func (q *ParcelQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed.
func (q *ParcelQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
