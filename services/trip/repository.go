package trip

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/rideorchestrator/services/trip LedgerRepo,TrackRepo

// LedgerRepo is the ephemeral per-ride distance ledger
type LedgerRepo interface {
	// RecordLocation appends an event and, for drivers, adds the distance from their previous position
	RecordLocation(ctx context.Context, rideID, participantID uuid.UUID, role models.ParticipantRole, location models.Location, ttl time.Duration) (*models.TripLocationEvent, error)
	GetSnapshot(ctx context.Context, rideID uuid.UUID) (*models.LedgerSnapshot, error)
	MarkCompleted(ctx context.Context, rideID uuid.UUID, ttl time.Duration) error
	ActiveRides(ctx context.Context) ([]uuid.UUID, error)
	// PeekEvents returns up to limit of the oldest unflushed events
	PeekEvents(ctx context.Context, rideID uuid.UUID, limit int) ([]models.TripLocationEvent, error)
	// TrimEvents drops the count oldest events once they are persisted
	TrimEvents(ctx context.Context, rideID uuid.UUID, count int) error
	// PurgeIfDrained deletes the ledger of a completed ride whose event log is empty
	PurgeIfDrained(ctx context.Context, rideID uuid.UUID) (bool, error)
}

// TrackRepo persists flushed ledger events
type TrackRepo interface {
	SaveTracks(ctx context.Context, tracks []models.TripTrack, summaries []models.TripTrackSummary) error
	ListTracks(ctx context.Context, rideID uuid.UUID) ([]models.TripTrack, error)
	ListSummaries(ctx context.Context, rideID uuid.UUID) ([]models.TripTrackSummary, error)
}
