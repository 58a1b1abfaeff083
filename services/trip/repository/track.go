package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/trip"
)

type trackRepo struct {
	db *sqlx.DB
}

// NewTrackRepository creates the Postgres store for flushed trip tracks
func NewTrackRepository(db *sqlx.DB) trip.TrackRepo {
	return &trackRepo{db: db}
}

const insertTrackQuery = `
	INSERT INTO trip_tracks (
		id, ride_id, participant_id, participant_role, latitude, longitude, geohash,
		distance_delta_meters, total_distance_meters, recorded_at
	) VALUES (
		:id, :ride_id, :participant_id, :participant_role, :latitude, :longitude, :geohash,
		:distance_delta_meters, :total_distance_meters, :recorded_at
	)`

// Counters accumulate across flushes; the last position always comes from the newest batch.
const upsertSummaryQuery = `
	INSERT INTO trip_track_summaries (
		ride_id, participant_role, participant_id, points_count, total_distance_meters,
		last_latitude, last_longitude, last_recorded_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	ON CONFLICT (ride_id, participant_role) DO UPDATE SET
		participant_id = EXCLUDED.participant_id,
		points_count = trip_track_summaries.points_count + EXCLUDED.points_count,
		total_distance_meters = trip_track_summaries.total_distance_meters + EXCLUDED.total_distance_meters,
		last_latitude = EXCLUDED.last_latitude,
		last_longitude = EXCLUDED.last_longitude,
		last_recorded_at = EXCLUDED.last_recorded_at,
		updated_at = NOW()`

// SaveTracks inserts tracks and upserts summaries in one transaction
func (r *trackRepo) SaveTracks(ctx context.Context, tracks []models.TripTrack, summaries []models.TripTrackSummary) error {
	if len(tracks) == 0 && len(summaries) == 0 {
		return nil
	}

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if len(tracks) > 0 {
			if _, err := tx.NamedExecContext(ctx, insertTrackQuery, tracks); err != nil {
				return fmt.Errorf("failed to insert trip tracks: %w", err)
			}
		}

		for _, s := range summaries {
			if _, err := tx.ExecContext(ctx, upsertSummaryQuery,
				s.RideID, s.ParticipantRole, s.ParticipantID, s.PointsCount, s.TotalDistanceMeters,
				s.LastLatitude, s.LastLongitude, s.LastRecordedAt,
			); err != nil {
				return fmt.Errorf("failed to upsert trip summary: %w", err)
			}
		}
		return nil
	})
}

// ListTracks returns a ride's flushed tracks in recording order
func (r *trackRepo) ListTracks(ctx context.Context, rideID uuid.UUID) ([]models.TripTrack, error) {
	query := `
		SELECT id, ride_id, participant_id, participant_role, latitude, longitude, geohash,
			distance_delta_meters, total_distance_meters, recorded_at
		FROM trip_tracks
		WHERE ride_id = $1
		ORDER BY recorded_at ASC`

	tracks := []models.TripTrack{}
	if err := r.db.SelectContext(ctx, &tracks, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list trip tracks: %w", err)
	}
	return tracks, nil
}

// ListSummaries returns the per-role summaries of a ride
func (r *trackRepo) ListSummaries(ctx context.Context, rideID uuid.UUID) ([]models.TripTrackSummary, error) {
	query := `
		SELECT ride_id, participant_role, participant_id, points_count, total_distance_meters,
			last_latitude, last_longitude, last_recorded_at
		FROM trip_track_summaries
		WHERE ride_id = $1
		ORDER BY participant_role`

	summaries := []models.TripTrackSummary{}
	if err := r.db.SelectContext(ctx, &summaries, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list trip summaries: %w", err)
	}
	return summaries, nil
}
