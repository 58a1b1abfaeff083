package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTrackRepoTest(t *testing.T) (*trackRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return &trackRepo{db: sqlxDB}, mock, func() { sqlxDB.Close() }
}

func sampleTracks(rideID uuid.UUID) ([]models.TripTrack, []models.TripTrackSummary) {
	driverID := uuid.New()
	recordedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tracks := []models.TripTrack{
		{ID: uuid.New(), RideID: rideID, ParticipantID: driverID, ParticipantRole: models.ParticipantDriver, Latitude: 1, Longitude: 1, Geohash: "s00twy0", RecordedAt: recordedAt},
		{ID: uuid.New(), RideID: rideID, ParticipantID: driverID, ParticipantRole: models.ParticipantDriver, Latitude: 2, Longitude: 2, Geohash: "s01mtw2", DistanceDeltaMeters: 157249, TotalDistanceMeters: 157249, RecordedAt: recordedAt.Add(time.Second)},
	}
	summaries := []models.TripTrackSummary{
		{RideID: rideID, ParticipantRole: models.ParticipantDriver, ParticipantID: driverID, PointsCount: 2, TotalDistanceMeters: 157249, LastLatitude: 2, LastLongitude: 2, LastRecordedAt: recordedAt.Add(time.Second)},
	}
	return tracks, summaries
}

func TestSaveTracks(t *testing.T) {
	rideID := uuid.New()
	tracks, summaries := sampleTracks(rideID)

	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   string
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO trip_tracks").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO trip_track_summaries").
					WithArgs(rideID, models.ParticipantDriver, summaries[0].ParticipantID, 2, 157249.0, 2.0, 2.0, summaries[0].LastRecordedAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Insert Error Rolls Back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO trip_tracks").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			wantErr: "failed to insert trip tracks",
		},
		{
			name: "Summary Error Rolls Back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO trip_tracks").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("INSERT INTO trip_track_summaries").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			wantErr: "failed to upsert trip summary",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTrackRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.SaveTracks(context.Background(), tracks, summaries)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSaveTracks_EmptyIsNoop(t *testing.T) {
	repo, mock, cleanup := setupTrackRepoTest(t)
	defer cleanup()

	assert.NoError(t, repo.SaveTracks(context.Background(), nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSummaries(t *testing.T) {
	repo, mock, cleanup := setupTrackRepoTest(t)
	defer cleanup()

	rideID, driverID := uuid.New(), uuid.New()
	recordedAt := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"ride_id", "participant_role", "participant_id", "points_count", "total_distance_meters",
		"last_latitude", "last_longitude", "last_recorded_at",
	}).AddRow(rideID, "DRIVER", driverID, 4, 1200.5, -6.2, 106.8, recordedAt)
	mock.ExpectQuery("FROM trip_track_summaries").WithArgs(rideID).WillReturnRows(rows)

	summaries, err := repo.ListSummaries(context.Background(), rideID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, models.ParticipantDriver, summaries[0].ParticipantRole)
	assert.Equal(t, 4, summaries[0].PointsCount)
	assert.Equal(t, 1200.5, summaries[0].TotalDistanceMeters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTracks_Error(t *testing.T) {
	repo, mock, cleanup := setupTrackRepoTest(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery("FROM trip_tracks").WithArgs(rideID).WillReturnError(errors.New("database error"))

	tracks, err := repo.ListTracks(context.Background(), rideID)
	assert.Nil(t, tracks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list trip tracks")
}
