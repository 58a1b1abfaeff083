package trip

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/rideorchestrator/services/trip LedgerUC

// LedgerUC is the distance ledger used by the ride orchestrator
type LedgerUC interface {
	RecordLocation(ctx context.Context, rideID, participantID uuid.UUID, role models.ParticipantRole, location models.Location) (*models.TripLocationEvent, error)
	GetSnapshot(ctx context.Context, rideID uuid.UUID) (*models.LedgerSnapshot, error)
	// MarkCompleted flags the ride so the flush that drains it also purges its ledger
	MarkCompleted(ctx context.Context, rideID uuid.UUID) error
	FlushRide(ctx context.Context, rideID uuid.UUID) (*models.FlushResult, error)
	FlushAll(ctx context.Context) ([]models.FlushResult, error)
}
