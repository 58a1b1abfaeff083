package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
)

// RouteClient implements routing.RouteClient on the job queue
type RouteClient struct {
	queue   queue.Queue
	timeout time.Duration
}

// NewRouteClient creates a client that waits up to timeout for each estimate
func NewRouteClient(q queue.Queue, timeout time.Duration) *RouteClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RouteClient{queue: q, timeout: timeout}
}

// Request enqueues ride-{id}-route-estimation and waits for the worker's answer
func (c *RouteClient) Request(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error) {
	jobID := routeJobID(req.RideID)
	start := time.Now()

	err := c.queue.Enqueue(ctx, constants.QueueRouteEstimation, jobID, req)
	if queue.IsDuplicate(err) {
		// leftover job of an earlier attempt for the same ride
		if err := c.queue.Remove(ctx, constants.QueueRouteEstimation, jobID); err != nil {
			return nil, err
		}
		err = c.queue.Enqueue(ctx, constants.QueueRouteEstimation, jobID, req)
	}
	if err != nil {
		observe("enqueue_error", start)
		return nil, fmt.Errorf("failed to enqueue route estimation: %w", err)
	}

	result, err := c.queue.Wait(ctx, jobID, c.timeout)
	if err != nil {
		if errors.Is(err, queue.ErrJobTimeout) {
			observe("timeout", start)
		} else {
			observe("error", start)
		}
		return nil, err
	}
	if err := result.Err(); err != nil {
		observe("failed", start)
		return nil, err
	}

	var estimate models.RouteEstimate
	if err := result.Decode(&estimate); err != nil {
		observe("error", start)
		return nil, err
	}

	observe("ok", start)
	return &estimate, nil
}

// Cancel removes the ride's estimation job
func (c *RouteClient) Cancel(ctx context.Context, rideID uuid.UUID) error {
	return c.queue.Remove(ctx, constants.QueueRouteEstimation, routeJobID(rideID))
}

func routeJobID(rideID uuid.UUID) string {
	return fmt.Sprintf(constants.JobRouteEstimation, rideID)
}

func observe(result string, start time.Time) {
	metrics.RouteEstimationDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
