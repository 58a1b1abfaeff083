package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/queue"
	"github.com/piresc/rideorchestrator/services/trip/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQueue(t *testing.T) (*miniredis.Miniredis, *queue.RedisQueue) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, queue.NewRedisQueue(client, models.QueueConfig{Prefix: "test", JobTTL: time.Minute, ResultTTL: time.Minute})
}

func trackingConfig() models.TrackingConfig {
	return models.TrackingConfig{
		FlushInterval:    30 * time.Second,
		MinFlushInterval: 5 * time.Second,
		FlushBatchSize:   2,
		StateTTL:         time.Hour,
	}
}

func driverEvents(rideID uuid.UUID, n int) []models.TripLocationEvent {
	driverID := uuid.New()
	events := make([]models.TripLocationEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, models.TripLocationEvent{
			RideID:              rideID,
			ParticipantID:       driverID,
			ParticipantRole:     models.ParticipantDriver,
			Latitude:            -6.2 + float64(i)*0.001,
			Longitude:           106.8,
			DistanceDeltaMeters: 100,
			TotalDistanceMeters: float64(i+1) * 100,
			RecordedAt:          time.Now().UTC(),
		})
	}
	return events
}

func TestLedgerUC_RecordLocation_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLedgerUC(trackingConfig(), mocks.NewMockLedgerRepo(ctrl), mocks.NewMockTrackRepo(ctrl), nil)

	_, err := uc.RecordLocation(context.Background(), uuid.New(), uuid.New(), models.ParticipantDriver, models.Location{Latitude: 91, Longitude: 0})
	assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))

	_, err = uc.RecordLocation(context.Background(), uuid.New(), uuid.New(), models.ParticipantRole("ADMIN"), models.Location{Latitude: 1, Longitude: 1})
	assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
}

func TestLedgerUC_RecordLocation_UsesStateTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(trackingConfig(), ledgerRepo, mocks.NewMockTrackRepo(ctrl), nil)
	rideID, driverID := uuid.New(), uuid.New()
	loc := models.Location{Latitude: 1, Longitude: 1}

	ledgerRepo.EXPECT().
		RecordLocation(gomock.Any(), rideID, driverID, models.ParticipantDriver, loc, time.Hour).
		Return(&models.TripLocationEvent{RideID: rideID}, nil)

	event, err := uc.RecordLocation(context.Background(), rideID, driverID, models.ParticipantDriver, loc)
	require.NoError(t, err)
	assert.Equal(t, rideID, event.RideID)
}

func TestLedgerUC_MarkCompleted_EnqueuesFlushOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, q := setupQueue(t)
	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(trackingConfig(), ledgerRepo, mocks.NewMockTrackRepo(ctrl), q)
	rideID := uuid.New()

	ledgerRepo.EXPECT().MarkCompleted(gomock.Any(), rideID, time.Hour).Return(nil).Times(2)

	require.NoError(t, uc.MarkCompleted(context.Background(), rideID))
	require.NoError(t, uc.MarkCompleted(context.Background(), rideID))

	assert.True(t, mr.Exists("test:job:"+fmt.Sprintf(constants.JobLedgerFlushForRide, rideID)))
	pending, err := q.Pending(context.Background(), constants.QueueTripLedger)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestLedgerUC_MarkCompleted_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	uc := NewLedgerUC(trackingConfig(), ledgerRepo, mocks.NewMockTrackRepo(ctrl), nil)
	rideID := uuid.New()

	ledgerRepo.EXPECT().MarkCompleted(gomock.Any(), rideID, time.Hour).Return(errors.New("redis down"))

	assert.Error(t, uc.MarkCompleted(context.Background(), rideID))
}

func TestLedgerUC_FlushRide(t *testing.T) {
	rideID := uuid.New()

	testCases := []struct {
		name       string
		setup      func(ledgerRepo *mocks.MockLedgerRepo, trackRepo *mocks.MockTrackRepo)
		wantErr    bool
		wantTracks int
		wantPurged bool
	}{
		{
			name: "Flushes In Batches Then Purges",
			setup: func(ledgerRepo *mocks.MockLedgerRepo, trackRepo *mocks.MockTrackRepo) {
				events := driverEvents(rideID, 3)
				gomock.InOrder(
					ledgerRepo.EXPECT().PeekEvents(gomock.Any(), rideID, 2).Return(events[:2], nil),
					trackRepo.EXPECT().SaveTracks(gomock.Any(), gomock.Len(2), gomock.Len(1)).Return(nil),
					ledgerRepo.EXPECT().TrimEvents(gomock.Any(), rideID, 2).Return(nil),
					ledgerRepo.EXPECT().PeekEvents(gomock.Any(), rideID, 2).Return(events[2:], nil),
					trackRepo.EXPECT().SaveTracks(gomock.Any(), gomock.Len(1), gomock.Len(1)).Return(nil),
					ledgerRepo.EXPECT().TrimEvents(gomock.Any(), rideID, 1).Return(nil),
					ledgerRepo.EXPECT().PurgeIfDrained(gomock.Any(), rideID).Return(true, nil),
				)
			},
			wantTracks: 3,
			wantPurged: true,
		},
		{
			name: "Nothing Pending On A Live Ride",
			setup: func(ledgerRepo *mocks.MockLedgerRepo, trackRepo *mocks.MockTrackRepo) {
				ledgerRepo.EXPECT().PeekEvents(gomock.Any(), rideID, 2).Return(nil, nil)
				ledgerRepo.EXPECT().PurgeIfDrained(gomock.Any(), rideID).Return(false, nil)
			},
		},
		{
			name: "Save Failure Keeps Events",
			setup: func(ledgerRepo *mocks.MockLedgerRepo, trackRepo *mocks.MockTrackRepo) {
				ledgerRepo.EXPECT().PeekEvents(gomock.Any(), rideID, 2).Return(driverEvents(rideID, 1), nil)
				trackRepo.EXPECT().SaveTracks(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
			trackRepo := mocks.NewMockTrackRepo(ctrl)
			tc.setup(ledgerRepo, trackRepo)

			uc := NewLedgerUC(trackingConfig(), ledgerRepo, trackRepo, nil)
			result, err := uc.FlushRide(context.Background(), rideID)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTracks, result.TracksWritten)
			assert.Equal(t, tc.wantPurged, result.Purged)
		})
	}
}

func TestLedgerUC_FlushAll_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerRepo := mocks.NewMockLedgerRepo(ctrl)
	trackRepo := mocks.NewMockTrackRepo(ctrl)
	broken, healthy := uuid.New(), uuid.New()

	ledgerRepo.EXPECT().ActiveRides(gomock.Any()).Return([]uuid.UUID{broken, healthy}, nil)
	ledgerRepo.EXPECT().PeekEvents(gomock.Any(), broken, 2).Return(nil, errors.New("redis timeout"))
	ledgerRepo.EXPECT().PeekEvents(gomock.Any(), healthy, 2).Return(nil, nil)
	ledgerRepo.EXPECT().PurgeIfDrained(gomock.Any(), healthy).Return(true, nil)

	uc := NewLedgerUC(trackingConfig(), ledgerRepo, trackRepo, nil)
	results, err := uc.FlushAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, healthy, results[0].RideID)
	assert.True(t, results[0].Purged)
}

func TestBuildTracks(t *testing.T) {
	rideID, driverID, riderID := uuid.New(), uuid.New(), uuid.New()
	events := []models.TripLocationEvent{
		{RideID: rideID, ParticipantID: driverID, ParticipantRole: models.ParticipantDriver, Latitude: -6.175392, Longitude: 106.827153},
		{RideID: rideID, ParticipantID: riderID, ParticipantRole: models.ParticipantRider, Latitude: -6.175392, Longitude: 106.827153},
		{RideID: rideID, ParticipantID: driverID, ParticipantRole: models.ParticipantDriver, Latitude: -6.176, Longitude: 106.828, DistanceDeltaMeters: 120, TotalDistanceMeters: 120},
	}

	tracks, summaries := buildTracks(events)
	require.Len(t, tracks, 3)
	require.Len(t, summaries, 2)

	assert.NotEmpty(t, tracks[0].Geohash)
	assert.NotEqual(t, uuid.Nil, tracks[0].ID)

	assert.Equal(t, models.ParticipantDriver, summaries[0].ParticipantRole)
	assert.Equal(t, 2, summaries[0].PointsCount)
	assert.Equal(t, 120.0, summaries[0].TotalDistanceMeters)
	assert.Equal(t, -6.176, summaries[0].LastLatitude)

	assert.Equal(t, models.ParticipantRider, summaries[1].ParticipantRole)
	assert.Equal(t, 1, summaries[1].PointsCount)
	assert.Zero(t, summaries[1].TotalDistanceMeters)
}
