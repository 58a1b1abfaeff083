package location

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/rideorchestrator/services/location LocationRepo

// LocationRepo defines the driver location index
type LocationRepo interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location models.Location, availabilityTTL time.Duration) error
	SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool, ttl time.Duration) error
	GetNearbyDrivers(ctx context.Context, location models.Location, radiusMeters float64, limit int) ([]models.NearbyDriver, error)
}
