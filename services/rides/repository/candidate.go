package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/rides"
)

const candidateColumns = `id, ride_id, driver_id, status, distance_meters, reason, responded_at, created_at, updated_at`

type candidateRepo struct {
	db *sqlx.DB
}

// NewCandidateRepository creates the Postgres driver candidate store
func NewCandidateRepository(db *sqlx.DB) rides.CandidateRepo {
	return &candidateRepo{db: db}
}

// CreateCandidates inserts all invitations of a ride or none of them
func (r *candidateRepo) CreateCandidates(ctx context.Context, candidates []models.RideDriverCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	query := `
		INSERT INTO ride_driver_candidates (
			id, ride_id, driver_id, status, distance_meters, created_at, updated_at
		) VALUES (
			:id, :ride_id, :driver_id, :status, :distance_meters, :created_at, :updated_at
		)
		ON CONFLICT (ride_id, driver_id) DO NOTHING`

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, candidates); err != nil {
			return fmt.Errorf("failed to create candidates: %w", err)
		}
		return nil
	})
}

// GetCandidate returns nil when the driver was never invited to the ride
func (r *candidateRepo) GetCandidate(ctx context.Context, rideID, driverID uuid.UUID) (*models.RideDriverCandidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM ride_driver_candidates WHERE ride_id = $1 AND driver_id = $2`

	var candidate models.RideDriverCandidate
	if err := r.db.GetContext(ctx, &candidate, query, rideID, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &candidate, nil
}

// UpdateCandidateStatus records a driver's or rider's response to an invitation
func (r *candidateRepo) UpdateCandidateStatus(ctx context.Context, rideID uuid.UUID, change models.CandidateChange) error {
	return moveCandidate(ctx, r.db, rideID, change)
}

// moveCandidate applies change to one invitation; an invitation outside change.From is a conflict
func moveCandidate(ctx context.Context, db sqlx.ExecerContext, rideID uuid.UUID, change models.CandidateChange) error {
	query := `
		UPDATE ride_driver_candidates
		SET status = $3, reason = $4, responded_at = NOW(), updated_at = NOW()
		WHERE ride_id = $1 AND driver_id = $2 AND status = ANY($5)`

	result, err := db.ExecContext(ctx, query, rideID, change.DriverID, change.To, change.Reason, candidateStatusArray(change.From))
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update candidate status: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("ride invitation is no longer active")
	}
	return nil
}

// sweepCandidates cancels the active invitations a sweep covers and returns their drivers
func sweepCandidates(ctx context.Context, db sqlx.QueryerContext, rideID uuid.UUID, sweep models.CandidateSweep) ([]uuid.UUID, error) {
	query := `
		UPDATE ride_driver_candidates
		SET status = $2, reason = $3, updated_at = NOW()
		WHERE ride_id = $1 AND status = ANY($4)`
	args := []interface{}{rideID, models.CandidateStatusCanceled, sweep.Reason, candidateStatusArray(models.ActiveCandidateStatuses)}
	if sweep.KeepDriverID != nil {
		args = append(args, *sweep.KeepDriverID)
		query += ` AND driver_id <> $5`
	}
	query += ` RETURNING driver_id`

	drivers := []uuid.UUID{}
	if err := sqlx.SelectContext(ctx, db, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to cancel candidates: %w", err)
	}
	return drivers, nil
}

// ListCandidates returns a ride's invitations nearest first
func (r *candidateRepo) ListCandidates(ctx context.Context, rideID uuid.UUID) ([]models.RideDriverCandidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM ride_driver_candidates WHERE ride_id = $1 ORDER BY distance_meters ASC`

	candidates := []models.RideDriverCandidate{}
	if err := r.db.SelectContext(ctx, &candidates, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func candidateStatusArray(statuses []models.CandidateStatus) interface{} {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	return pq.Array(values)
}
