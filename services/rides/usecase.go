package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideorchestrator/services/rides RideUC

// RideUC defines the ride orchestration business logic
type RideUC interface {
	CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID, requester models.Requester) (*models.Ride, error)
	GetRideHistory(ctx context.Context, rideID uuid.UUID, requester models.Requester) ([]models.RideStatusHistory, error)
	DeleteRide(ctx context.Context, rideID uuid.UUID) error

	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error)
	DeclineRide(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.Ride, error)
	ConfirmDriver(ctx context.Context, rideID, riderID uuid.UUID) (*models.Ride, error)
	RejectDriver(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error)

	StartRide(ctx context.Context, rideID, driverID uuid.UUID, driverLocation models.Location) (*models.Ride, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, driverLocation models.Location, discountAmount *float64) (*models.RideCompletion, error)
	RecordTripLocation(ctx context.Context, rideID uuid.UUID, requester models.Requester, location models.Location) (*models.TripLocationEvent, error)
}
