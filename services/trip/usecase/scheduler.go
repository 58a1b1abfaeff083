package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	"github.com/piresc/rideorchestrator/services/trip"
)

// FlushScheduler enqueues one periodic flush job per interval slot and runs the trip-ledger queue.
// Instances sharing Redis enqueue the same slot id, so each slot is flushed once.
type FlushScheduler struct {
	ledger   trip.LedgerUC
	queue    queue.Queue
	interval time.Duration
	now      func() time.Time
}

// NewFlushScheduler clamps the flush interval to the configured minimum
func NewFlushScheduler(cfg models.TrackingConfig, ledger trip.LedgerUC, q queue.Queue) *FlushScheduler {
	interval := cfg.FlushInterval
	if interval < cfg.MinFlushInterval {
		interval = cfg.MinFlushInterval
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &FlushScheduler{ledger: ledger, queue: q, interval: interval, now: time.Now}
}

// Interval returns the effective flush interval
func (s *FlushScheduler) Interval() time.Duration {
	return s.interval
}

// Run blocks until ctx is canceled
func (s *FlushScheduler) Run(ctx context.Context) {
	logger.Info("Starting trip ledger flush scheduler", logger.Duration("interval", s.interval))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.queue.Consume(ctx, constants.QueueTripLedger, s.Handle); err != nil {
			logger.Error("Trip ledger consumer stopped", logger.Err(err))
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			logger.Info("Trip ledger flush scheduler stopped")
			return
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				logger.Warn("Failed to schedule ledger flush", logger.Err(err))
			}
		}
	}
}

// Tick enqueues the flush job of the current slot; a job already queued for the slot is not an error
func (s *FlushScheduler) Tick(ctx context.Context) error {
	slot := s.now().UnixNano() / int64(s.interval)
	jobID := fmt.Sprintf(constants.JobLedgerFlush, slot)

	err := s.queue.Enqueue(ctx, constants.QueueTripLedger, jobID, models.LedgerFlushJob{})
	if err != nil && !queue.IsDuplicate(err) {
		return err
	}
	return nil
}

// Handle runs one trip-ledger job
func (s *FlushScheduler) Handle(ctx context.Context, job queue.Job) (interface{}, error) {
	var payload models.LedgerFlushJob
	if err := job.Decode(&payload); err != nil {
		return nil, err
	}

	if payload.RideID != nil {
		return s.ledger.FlushRide(ctx, *payload.RideID)
	}

	results, err := s.ledger.FlushAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) > 0 {
		logger.Debug("Trip ledger flushed", logger.Int("rides", len(results)))
	}
	return results, nil
}
