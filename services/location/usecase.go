package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideorchestrator/services/location LocationUC

// LocationUC defines the location business logic
type LocationUC interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location) error
	SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool) error
	GetNearbyDrivers(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.NearbyDriver, error)
}
