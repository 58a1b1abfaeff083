package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/database"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/rides"
)

const rideColumns = `id, rider_id, driver_id, pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	note, status, fare_estimated, fare_final, distance_estimated_km, distance_actual_km, duration_estimated_seconds,
	discount_amount, app_fee_amount, payment_status, payment_url, cancel_reason,
	created_at, updated_at, started_at, completed_at, canceled_at, deleted_at`

type rideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates the Postgres ride store
func NewRideRepository(db *sqlx.DB) rides.RideRepo {
	return &rideRepo{db: db}
}

// CreateRide inserts the ride and its first history row
func (r *rideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		INSERT INTO rides (
			id, rider_id, pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			note, status, created_at, updated_at
		) VALUES (
			:id, :rider_id, :pickup_latitude, :pickup_longitude, :dropoff_latitude, :dropoff_longitude,
			:note, :status, :created_at, :updated_at
		)`

	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, ride); err != nil {
			return fmt.Errorf("failed to create ride: %w", err)
		}
		return insertHistory(ctx, tx, ride.ID, nil, ride.Status, constants.ContextRideCreated)
	})
}

// GetRide returns nil when the ride does not exist or was soft deleted
func (r *rideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 AND deleted_at IS NULL`

	var ride models.Ride
	if err := r.db.GetContext(ctx, &ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// DeleteRide removes a ride with its candidates and history; only creation rollback uses it
func (r *rideRepo) DeleteRide(ctx context.Context, rideID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, rideID); err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	return nil
}

// SoftDeleteRide hides a ride from every read
func (r *rideRepo) SoftDeleteRide(ctx context.Context, rideID uuid.UUID) error {
	query := `UPDATE rides SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, rideID)
	if err != nil {
		return fmt.Errorf("failed to soft delete ride: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to soft delete ride: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ride not found")
	}
	return nil
}

// TransitionStatus locks the ride and, when the transition applies, writes the status, the
// driver claim, the candidate changes and every history row in one transaction.
func (r *rideRepo) TransitionStatus(ctx context.Context, t models.StatusTransition) (*models.TransitionResult, error) {
	var (
		ride   models.Ride
		result models.TransitionResult
	)

	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		lockQuery := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`
		if err := tx.GetContext(ctx, &ride, lockQuery, t.RideID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound("ride not found")
			}
			return fmt.Errorf("failed to lock ride: %w", err)
		}

		if !t.Applies(&ride) {
			return nil
		}

		previous := ride
		from := ride.Status
		query, args := buildTransitionUpdate(t)
		if err := tx.GetContext(ctx, &ride, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// status or driver guard no longer holds
				return nil
			}
			return fmt.Errorf("failed to update ride status: %w", err)
		}

		if t.Candidate != nil {
			if err := moveCandidate(ctx, tx, t.RideID, *t.Candidate); err != nil {
				return err
			}
		}
		if t.Sweep != nil {
			drivers, err := sweepCandidates(ctx, tx, t.RideID, *t.Sweep)
			if err != nil {
				return err
			}
			result.CanceledDrivers = drivers
		}

		prev := from
		for _, step := range t.Via {
			if err := insertHistory(ctx, tx, t.RideID, &prev, step.Status, step.Context); err != nil {
				return err
			}
			prev = step.Status
		}
		if err := insertHistory(ctx, tx, t.RideID, &prev, t.To, t.Context); err != nil {
			return err
		}
		result.Changed = true
		result.Previous = &previous
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Ride = &ride
	return &result, nil
}

func buildTransitionUpdate(t models.StatusTransition) (string, []interface{}) {
	sets := []string{"status = $2", "updated_at = NOW()"}
	where := []string{"id = $1", "status = ANY($3)", "deleted_at IS NULL"}
	args := []interface{}{t.RideID, t.To, rideStatusArray(t.From)}

	next := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	switch {
	case t.ClaimDriverID != nil:
		next("driver_id", *t.ClaimDriverID)
		where = append(where, "driver_id IS NULL")
	case t.ClearsDriver():
		sets = append(sets, "driver_id = NULL")
	}
	if t.HeldBy != nil {
		args = append(args, *t.HeldBy)
		where = append(where, fmt.Sprintf("driver_id = $%d", len(args)))
	}

	switch t.To {
	case models.RideStatusTripStarted:
		sets = append(sets, "started_at = NOW()")
	case models.RideStatusCompleted:
		sets = append(sets, "completed_at = NOW()")
		if c := t.Completion; c != nil {
			next("distance_actual_km", c.DistanceActualKm)
			next("discount_amount", c.DiscountAmount)
			next("fare_final", c.FareFinal)
			next("app_fee_amount", c.AppFeeAmount)
			next("payment_status", models.PaymentStatusPending)
			sets = append(sets, "payment_url = NULL")
		}
	case models.RideStatusCanceled:
		sets = append(sets, "canceled_at = NOW()", "fare_final = 0")
		if t.CancelReason != nil {
			next("cancel_reason", *t.CancelReason)
		}
	}

	query := `UPDATE rides SET ` + strings.Join(sets, ", ") +
		` WHERE ` + strings.Join(where, " AND ") + ` RETURNING ` + rideColumns
	return query, args
}

func rideStatusArray(statuses []models.RideStatus) interface{} {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}
	return pq.Array(values)
}

func insertHistory(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID, from *models.RideStatus, to models.RideStatus, reason string) error {
	query := `
		INSERT INTO ride_status_history (id, ride_id, from_status, to_status, context, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	var historyContext *string
	if reason != "" {
		historyContext = &reason
	}
	if _, err := tx.ExecContext(ctx, query, uuid.New(), rideID, from, to, historyContext); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}
	return nil
}

// UpdateRouteEstimate stores the route values of a freshly created ride
func (r *rideRepo) UpdateRouteEstimate(ctx context.Context, rideID uuid.UUID, update models.RouteEstimateUpdate) error {
	query := `
		UPDATE rides
		SET distance_estimated_km = $2, duration_estimated_seconds = $3, fare_estimated = $4, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, rideID, update.DistanceEstimatedKm, update.DurationEstimatedSeconds, update.FareEstimated)
	if err != nil {
		return fmt.Errorf("failed to update route estimate: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update route estimate: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ride not found")
	}
	return nil
}

// ListStatusHistory returns the audit trail oldest first
func (r *rideRepo) ListStatusHistory(ctx context.Context, rideID uuid.UUID) ([]models.RideStatusHistory, error) {
	query := `
		SELECT id, ride_id, from_status, to_status, context, created_at
		FROM ride_status_history
		WHERE ride_id = $1
		ORDER BY created_at ASC`

	history := []models.RideStatusHistory{}
	if err := r.db.SelectContext(ctx, &history, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	return history, nil
}
