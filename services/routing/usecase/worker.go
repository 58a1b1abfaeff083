package usecase

import (
	"context"
	"sync"

	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	"github.com/piresc/rideorchestrator/services/routing"
)

// Worker consumes route estimation jobs
type Worker struct {
	queue     queue.Queue
	estimator routing.RouteEstimator
	workers   int
}

// NewWorker creates a worker pool of the given size
func NewWorker(q queue.Queue, estimator routing.RouteEstimator, workers int) *Worker {
	if workers <= 0 {
		workers = 1
	}
	return &Worker{queue: q, estimator: estimator, workers: workers}
}

// Run blocks until ctx is canceled and every consumer has returned
func (w *Worker) Run(ctx context.Context) {
	logger.Info("Starting route estimation workers", logger.Int("workers", w.workers))

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.queue.Consume(ctx, constants.QueueRouteEstimation, w.handle); err != nil {
				logger.Error("Route estimation consumer stopped", logger.Err(err))
			}
		}()
	}
	wg.Wait()

	logger.Info("Route estimation workers stopped")
}

func (w *Worker) handle(ctx context.Context, job queue.Job) (interface{}, error) {
	var req models.RouteEstimateRequest
	if err := job.Decode(&req); err != nil {
		return nil, err
	}

	estimate, err := w.estimator.EstimateRoute(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Route estimated",
		logger.String("ride_id", req.RideID.String()),
		logger.String("provider", estimate.Provider),
		logger.Float64("distance_km", estimate.DistanceKm))
	return estimate, nil
}
