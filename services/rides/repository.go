package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/rideorchestrator/services/rides RideRepo,CandidateRepo

// RideRepo defines the ride data access operations
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	DeleteRide(ctx context.Context, rideID uuid.UUID) error
	SoftDeleteRide(ctx context.Context, rideID uuid.UUID) error
	TransitionStatus(ctx context.Context, transition models.StatusTransition) (*models.TransitionResult, error)
	UpdateRouteEstimate(ctx context.Context, rideID uuid.UUID, update models.RouteEstimateUpdate) error
	ListStatusHistory(ctx context.Context, rideID uuid.UUID) ([]models.RideStatusHistory, error)
}

// CandidateRepo defines the driver candidate data access operations
type CandidateRepo interface {
	CreateCandidates(ctx context.Context, candidates []models.RideDriverCandidate) error
	GetCandidate(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideDriverCandidate, error)
	UpdateCandidateStatus(ctx context.Context, rideID uuid.UUID, change models.CandidateChange) error
	ListCandidates(ctx context.Context, rideID uuid.UUID) ([]models.RideDriverCandidate, error)
}
