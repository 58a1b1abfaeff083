package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var candidateColumnNames = []string{"id", "ride_id", "driver_id", "status", "distance_meters", "reason", "responded_at", "created_at", "updated_at"}

func TestCreateCandidates(t *testing.T) {
	rideID := uuid.New()
	now := time.Now().UTC()
	candidates := []models.RideDriverCandidate{
		{ID: uuid.New(), RideID: rideID, DriverID: uuid.New(), Status: models.CandidateStatusInvited, DistanceMeters: 120, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), RideID: rideID, DriverID: uuid.New(), Status: models.CandidateStatusInvited, DistanceMeters: 340, CreatedAt: now, UpdatedAt: now},
	}

	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_driver_candidates")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, repo.CreateCandidates(context.Background(), candidates))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure Rolls Back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_driver_candidates")).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.CreateCandidates(context.Background(), candidates)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create candidates")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Is A Noop", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)

		assert.NoError(t, repo.CreateCandidates(context.Background(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetCandidate(t *testing.T) {
	rideID, driverID := uuid.New(), uuid.New()

	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)
		now := time.Now().UTC()

		rows := sqlmock.NewRows(candidateColumnNames).
			AddRow(uuid.New().String(), rideID.String(), driverID.String(), "ACCEPTED", 250.5, nil, now, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM ride_driver_candidates WHERE ride_id = $1 AND driver_id = $2")).
			WithArgs(rideID, driverID).
			WillReturnRows(rows)

		candidate, err := repo.GetCandidate(context.Background(), rideID, driverID)
		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, models.CandidateStatusAccepted, candidate.Status)
		assert.Equal(t, 250.5, candidate.DistanceMeters)
		assert.NotNil(t, candidate.RespondedAt)
	})

	t.Run("Not Invited", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM ride_driver_candidates")).
			WithArgs(rideID, driverID).
			WillReturnRows(sqlmock.NewRows(candidateColumnNames))

		candidate, err := repo.GetCandidate(context.Background(), rideID, driverID)
		assert.NoError(t, err)
		assert.Nil(t, candidate)
	})
}

func TestUpdateCandidateStatus(t *testing.T) {
	reason := models.ReasonAnotherDriverAccepted

	t.Run("Moves Active Invitation", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)
		rideID, driverID := uuid.New(), uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_driver_candidates")).
			WithArgs(rideID, driverID, "CANCELED", reason, pq.Array([]string{"INVITED", "ACCEPTED"})).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateCandidateStatus(context.Background(), rideID, models.CandidateChange{
			DriverID: driverID,
			From:     models.ActiveCandidateStatuses,
			To:       models.CandidateStatusCanceled,
			Reason:   &reason,
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Invitation Already Moved", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCandidateRepository(db)
		rideID, driverID := uuid.New(), uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE ride_driver_candidates")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateCandidateStatus(context.Background(), rideID, models.CandidateChange{
			DriverID: driverID,
			From:     []models.CandidateStatus{models.CandidateStatusInvited},
			To:       models.CandidateStatusDeclined,
		})
		assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	})
}

func TestSweepCandidates(t *testing.T) {
	t.Run("Keeps One Driver", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rideID, keep := uuid.New(), uuid.New()
		canceled := []uuid.UUID{uuid.New(), uuid.New()}

		rows := sqlmock.NewRows([]string{"driver_id"}).
			AddRow(canceled[0].String()).
			AddRow(canceled[1].String())
		mock.ExpectQuery(regexp.QuoteMeta("status = ANY($4) AND driver_id <> $5")).
			WithArgs(rideID, "CANCELED", models.ReasonConfirmedAnother, pq.Array([]string{"INVITED", "ACCEPTED"}), keep).
			WillReturnRows(rows)

		drivers, err := sweepCandidates(context.Background(), db, rideID, models.CandidateSweep{
			KeepDriverID: &keep,
			Reason:       models.ReasonConfirmedAnother,
		})
		require.NoError(t, err)
		assert.Equal(t, canceled, drivers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rideID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE ride_driver_candidates")).
			WillReturnError(errors.New("database error"))

		drivers, err := sweepCandidates(context.Background(), db, rideID, models.CandidateSweep{Reason: models.ReasonRideCanceled})
		assert.Nil(t, drivers)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to cancel candidates")
	})
}

func TestListCandidates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCandidateRepository(db)
	rideID := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(candidateColumnNames).
		AddRow(uuid.New().String(), rideID.String(), uuid.New().String(), "DECLINED", 100.0, "busy", now, now, now).
		AddRow(uuid.New().String(), rideID.String(), uuid.New().String(), "INVITED", 200.0, nil, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY distance_meters ASC")).WithArgs(rideID).WillReturnRows(rows)

	candidates, err := repo.ListCandidates(context.Background(), rideID)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.NotNil(t, candidates[0].Reason)
	assert.Equal(t, "busy", *candidates[0].Reason)
	assert.True(t, candidates[1].Status.IsActive())
	assert.Nil(t, candidates[1].RespondedAt)
}
