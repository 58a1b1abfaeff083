package routing

import (
	"context"

	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/rideorchestrator/services/routing RouteProvider

// RouteProvider estimates driving distance and duration between two points
type RouteProvider interface {
	Name() string
	Estimate(ctx context.Context, pickup, dropoff models.Location) (*models.RouteEstimate, error)
}
