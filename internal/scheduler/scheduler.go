// Package scheduler reloads the data feeds on a fixed interval and swaps
// the rebuilt statistics store in atomically. A reload that fails leaves
// the previous store serving.
package scheduler

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"bkkland/server/internal/dataset"
	"bkkland/server/internal/stats"
)

// Scheduler manages the periodic dataset refresh.
type Scheduler struct {
	loader   *dataset.Loader
	holder   *stats.Holder
	logger   *logrus.Logger
	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
	jobMutex sync.Mutex // Ensures sequential refresh execution
}

// NewScheduler creates a scheduler that rebuilds the store from the loader
// every interval.
func NewScheduler(loader *dataset.Loader, holder *stats.Holder, logger *logrus.Logger, interval time.Duration) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		loader:   loader,
		holder:   holder,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the refresh loop. The initial store build happens at startup
// before Start is called, so the first tick fires one full interval in.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.runScheduler()
}

func (s *Scheduler) runScheduler() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.Refresh()
		}
	}
}

// Refresh reloads both feeds and swaps the rebuilt store in. When the reload
// fails the current store stays in place.
func (s *Scheduler) Refresh() {
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	s.logger.Info("Starting scheduled dataset refresh")
	started := time.Now()

	src, err := s.loader.Load()
	if err != nil {
		s.logger.WithError(err).Error("Dataset refresh failed, keeping current store")
		return
	}

	store := stats.BuildStore(src, s.logger)
	s.holder.Swap(store)

	s.logger.WithFields(logrus.Fields{
		"districts":   store.Len(),
		"placeholder": store.IsPlaceholder(),
		"duration":    time.Since(started).String(),
	}).Info("Dataset refresh completed")
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
