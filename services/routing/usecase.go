package routing

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideorchestrator/services/routing RouteEstimator,RouteClient

// RouteEstimator computes a route estimate in-process
type RouteEstimator interface {
	EstimateRoute(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error)
}

// RouteClient requests estimates from the route estimation workers
type RouteClient interface {
	// Request enqueues the ride's estimation job and waits for its result
	Request(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error)
	// Cancel drops the ride's pending estimation job
	Cancel(ctx context.Context, rideID uuid.UUID) error
}
