package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/trip"
)

// LedgerUC implements trip.LedgerUC
type LedgerUC struct {
	cfg        models.TrackingConfig
	ledgerRepo trip.LedgerRepo
	trackRepo  trip.TrackRepo
	queue      queue.Queue
}

// NewLedgerUC creates the distance ledger use case
func NewLedgerUC(cfg models.TrackingConfig, ledgerRepo trip.LedgerRepo, trackRepo trip.TrackRepo, q queue.Queue) *LedgerUC {
	if cfg.FlushBatchSize <= 0 {
		cfg.FlushBatchSize = 500
	}
	return &LedgerUC{
		cfg:        cfg,
		ledgerRepo: ledgerRepo,
		trackRepo:  trackRepo,
		queue:      q,
	}
}

// RecordLocation writes one participant position into the ledger
func (uc *LedgerUC) RecordLocation(ctx context.Context, rideID, participantID uuid.UUID, role models.ParticipantRole, loc models.Location) (*models.TripLocationEvent, error) {
	if !utils.ValidCoordinates(loc) {
		return nil, apperrors.BadRequest("invalid coordinates")
	}
	if role != models.ParticipantDriver && role != models.ParticipantRider {
		return nil, apperrors.BadRequest("unsupported participant role")
	}

	return uc.ledgerRepo.RecordLocation(ctx, rideID, participantID, role, loc, uc.cfg.StateTTL)
}

// GetSnapshot returns the live ledger state of a ride
func (uc *LedgerUC) GetSnapshot(ctx context.Context, rideID uuid.UUID) (*models.LedgerSnapshot, error) {
	return uc.ledgerRepo.GetSnapshot(ctx, rideID)
}

// MarkCompleted flags the ride and enqueues its flush
func (uc *LedgerUC) MarkCompleted(ctx context.Context, rideID uuid.UUID) error {
	if err := uc.ledgerRepo.MarkCompleted(ctx, rideID, uc.cfg.StateTTL); err != nil {
		return err
	}

	jobID := fmt.Sprintf(constants.JobLedgerFlushForRide, rideID)
	err := uc.queue.Enqueue(ctx, constants.QueueTripLedger, jobID, models.LedgerFlushJob{RideID: &rideID})
	if err != nil && !queue.IsDuplicate(err) {
		// the periodic flush still picks the ride up
		logger.WarnCtx(ctx, "Failed to enqueue ride ledger flush",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}
	return nil
}

// FlushRide persists every pending event of a ride, then purges the ledger of a drained completed ride
func (uc *LedgerUC) FlushRide(ctx context.Context, rideID uuid.UUID) (*models.FlushResult, error) {
	result := &models.FlushResult{RideID: rideID}

	for {
		events, err := uc.ledgerRepo.PeekEvents(ctx, rideID, uc.cfg.FlushBatchSize)
		if err != nil {
			return result, err
		}
		if len(events) == 0 {
			break
		}

		tracks, summaries := buildTracks(events)
		if err := uc.trackRepo.SaveTracks(ctx, tracks, summaries); err != nil {
			return result, err
		}
		if err := uc.ledgerRepo.TrimEvents(ctx, rideID, len(events)); err != nil {
			return result, err
		}

		result.TracksWritten += len(tracks)
		metrics.LedgerFlushedTracks.Add(float64(len(tracks)))

		if len(events) < uc.cfg.FlushBatchSize {
			break
		}
	}

	purged, err := uc.ledgerRepo.PurgeIfDrained(ctx, rideID)
	if err != nil {
		return result, err
	}
	if purged {
		result.Purged = true
		metrics.LedgerPurgedRides.Inc()
	}

	return result, nil
}

// FlushAll flushes every active ride; one failing ride does not stop the others
func (uc *LedgerUC) FlushAll(ctx context.Context) ([]models.FlushResult, error) {
	rides, err := uc.ledgerRepo.ActiveRides(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]models.FlushResult, 0, len(rides))
	for _, rideID := range rides {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		result, err := uc.FlushRide(ctx, rideID)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to flush ride ledger",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
			continue
		}
		results = append(results, *result)
	}

	return results, nil
}

// buildTracks converts events into rows plus one summary per participant role
func buildTracks(events []models.TripLocationEvent) ([]models.TripTrack, []models.TripTrackSummary) {
	tracks := make([]models.TripTrack, 0, len(events))
	byRole := map[models.ParticipantRole]*models.TripTrackSummary{}
	order := []models.ParticipantRole{}

	for _, e := range events {
		tracks = append(tracks, models.TripTrack{
			ID:                  uuid.New(),
			RideID:              e.RideID,
			ParticipantID:       e.ParticipantID,
			ParticipantRole:     e.ParticipantRole,
			Latitude:            e.Latitude,
			Longitude:           e.Longitude,
			Geohash:             utils.EncodeLocation(models.Location{Latitude: e.Latitude, Longitude: e.Longitude}, utils.DefaultGeohashPrecision),
			DistanceDeltaMeters: e.DistanceDeltaMeters,
			TotalDistanceMeters: e.TotalDistanceMeters,
			RecordedAt:          e.RecordedAt,
		})

		summary, ok := byRole[e.ParticipantRole]
		if !ok {
			summary = &models.TripTrackSummary{RideID: e.RideID, ParticipantRole: e.ParticipantRole}
			byRole[e.ParticipantRole] = summary
			order = append(order, e.ParticipantRole)
		}
		summary.ParticipantID = e.ParticipantID
		summary.PointsCount++
		summary.TotalDistanceMeters += e.DistanceDeltaMeters
		summary.LastLatitude = e.Latitude
		summary.LastLongitude = e.Longitude
		summary.LastRecordedAt = e.RecordedAt
	}

	summaries := make([]models.TripTrackSummary, 0, len(order))
	for _, role := range order {
		summaries = append(summaries, *byRole[role])
	}
	return tracks, summaries
}
