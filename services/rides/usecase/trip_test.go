package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offset moves a location north by roughly meters
func offset(loc models.Location, meters float64) models.Location {
	return models.Location{Latitude: loc.Latitude + meters/111320, Longitude: loc.Longitude}
}

func riderAt(ride *models.Ride, loc models.Location) *models.LedgerSnapshot {
	return &models.LedgerSnapshot{RideID: ride.ID, LastRiderLocation: &loc}
}

func TestStartRide_Success(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := withDriver(sampleRide(models.RideStatusEnroute), driverID)
	driverLoc := offset(testPickup, 5)

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, offset(testPickup, -5)), nil)
	f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), ride.ID, driverID, models.ParticipantDriver, driverLoc).
		Return(&models.TripLocationEvent{RideID: ride.ID}, nil)
	f.expectTransitions(ride)
	f.notifier.EXPECT().Emit(gomock.Any(), models.TargetRider, ride.RiderID, constants.EventRideStarted, gomock.Any()).Return(true, nil)
	f.notifier.EXPECT().Emit(gomock.Any(), models.TargetDriver, driverID, constants.EventRideStarted, gomock.Any()).Return(true, nil)
	f.events.EXPECT().PublishRideEvent(gomock.Any(), constants.SubjectRideStarted, gomock.Any()).Return(nil)

	got, err := f.uc.StartRide(context.Background(), ride.ID, driverID, driverLoc)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusTripStarted, got.Status)
}

func TestStartRide_ParticipantsApart(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := withDriver(sampleRide(models.RideStatusEnroute), driverID)

	// each is 15m from pickup but 30m from the other
	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, offset(testPickup, -15)), nil)

	_, err := f.uc.StartRide(context.Background(), ride.ID, driverID, offset(testPickup, 15))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	assert.Contains(t, apperrors.Message(err), "of each other")
}

func TestStartRide_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		status   models.RideStatus
		snapshot func(ride *models.Ride) *models.LedgerSnapshot
		driver   models.Location
		message  string
	}{
		{
			name:     "Rider Location Missing",
			status:   models.RideStatusEnroute,
			snapshot: func(ride *models.Ride) *models.LedgerSnapshot { return &models.LedgerSnapshot{RideID: ride.ID} },
			driver:   testPickup,
			message:  "rider location",
		},
		{
			name:     "Driver Far From Pickup",
			status:   models.RideStatusEnroute,
			snapshot: func(ride *models.Ride) *models.LedgerSnapshot { return riderAt(ride, testPickup) },
			driver:   offset(testPickup, 200),
			message:  "driver must be within",
		},
		{
			name:     "Rider Far From Pickup",
			status:   models.RideStatusEnroute,
			snapshot: func(ride *models.Ride) *models.LedgerSnapshot { return riderAt(ride, offset(testPickup, 50)) },
			driver:   testPickup,
			message:  "rider must be within",
		},
		{
			name:    "Not Confirmed",
			status:  models.RideStatusAccepted,
			driver:  testPickup,
			message: "cannot be started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			driverID := uuid.New()
			ride := withDriver(sampleRide(tt.status), driverID)
			f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
			if tt.snapshot != nil {
				f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(tt.snapshot(ride), nil)
			}

			_, err := f.uc.StartRide(context.Background(), ride.ID, driverID, tt.driver)
			assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
			assert.Contains(t, apperrors.Message(err), tt.message)
		})
	}
}

func TestStartRide_WrongDriver(t *testing.T) {
	f := newFixture(t)
	ride := withDriver(sampleRide(models.RideStatusEnroute), uuid.New())
	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := f.uc.StartRide(context.Background(), ride.ID, uuid.New(), testPickup)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestStartRide_NoNotificationWithoutChange(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := withDriver(sampleRide(models.RideStatusEnroute), driverID)
	raced := *ride
	raced.Status = models.RideStatusTripStarted

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, testPickup), nil)
	f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TripLocationEvent{}, nil)
	f.rideRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).Return(&models.TransitionResult{Ride: &raced}, nil)

	got, err := f.uc.StartRide(context.Background(), ride.ID, driverID, testPickup)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusTripStarted, got.Status)
}

func TestCompleteRide_Success(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := withDriver(sampleRide(models.RideStatusTripStarted), driverID)

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, testDropoff), nil)
	f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), ride.ID, driverID, models.ParticipantDriver, testDropoff).
		Return(&models.TripLocationEvent{TotalDistanceMeters: 5123.4}, nil)
	f.rideRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.StatusTransition) (*models.TransitionResult, error) {
			assert.Equal(t, models.RideStatusCompleted, tr.To)
			require.NotNil(t, tr.HeldBy)
			assert.Equal(t, driverID, *tr.HeldBy)
			require.NotNil(t, tr.Completion)
			assert.Equal(t, 5.123, tr.Completion.DistanceActualKm)
			assert.Equal(t, 500.0, tr.Completion.DiscountAmount)
			assert.InDelta(t, 14869.0, tr.Completion.FareFinal-tr.Completion.AppFeeAmount, 0.001)

			completed := *ride
			completed.Status = tr.To
			pending := models.PaymentStatusPending
			completed.PaymentStatus = &pending
			return &models.TransitionResult{Ride: &completed, Changed: true, Previous: ride}, nil
		})
	f.ledgerUC.EXPECT().MarkCompleted(gomock.Any(), ride.ID).Return(nil)
	f.notifier.EXPECT().Emit(gomock.Any(), models.TargetRider, ride.RiderID, constants.EventRideCompleted, gomock.Any()).Return(true, nil)
	f.notifier.EXPECT().Emit(gomock.Any(), models.TargetDriver, driverID, constants.EventRideCompleted, gomock.Any()).Return(true, nil)
	f.events.EXPECT().PublishRideEvent(gomock.Any(), constants.SubjectRideCompleted, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event models.RideEvent) error {
			require.NotNil(t, event.Fare)
			require.NotNil(t, event.PaymentStatus)
			assert.Equal(t, models.PaymentStatusPending, *event.PaymentStatus)
			return nil
		})

	discount := 500.0
	result, err := f.uc.CompleteRide(context.Background(), ride.ID, driverID, testDropoff, &discount)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, result.Ride.Status)
	assert.Equal(t, 5.123, result.Fare.DistanceKm)
	assert.Equal(t, "IDR", result.Fare.Currency)
}

func TestCompleteRide_FallsBackToEstimate(t *testing.T) {
	f := newFixture(t)
	driverID := uuid.New()
	ride := withDriver(sampleRide(models.RideStatusTripStarted), driverID)
	estimated := 4.0
	ride.DistanceEstimatedKm = &estimated

	f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, testDropoff), nil)
	f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TripLocationEvent{TotalDistanceMeters: 0}, nil)
	f.rideRepo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.StatusTransition) (*models.TransitionResult, error) {
			assert.Equal(t, 4.0, tr.Completion.DistanceActualKm)
			// 12000 is above the threshold so the percentage fee applies
			assert.Equal(t, 12600.0, tr.Completion.FareFinal)
			completed := *ride
			completed.Status = tr.To
			return &models.TransitionResult{Ride: &completed, Changed: true, Previous: ride}, nil
		})
	f.ledgerUC.EXPECT().MarkCompleted(gomock.Any(), ride.ID).Return(nil)
	f.allowSideEffects()

	result, err := f.uc.CompleteRide(context.Background(), ride.ID, driverID, testDropoff, nil)
	require.NoError(t, err)
	assert.Equal(t, 600.0, result.Fare.AppFee)
}

func TestCompleteRide_Rejections(t *testing.T) {
	t.Run("Not Started", func(t *testing.T) {
		f := newFixture(t)
		driverID := uuid.New()
		ride := withDriver(sampleRide(models.RideStatusEnroute), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := f.uc.CompleteRide(context.Background(), ride.ID, driverID, testDropoff, nil)
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	})

	t.Run("Away From Dropoff", func(t *testing.T) {
		f := newFixture(t)
		driverID := uuid.New()
		ride := withDriver(sampleRide(models.RideStatusTripStarted), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, testDropoff), nil)

		_, err := f.uc.CompleteRide(context.Background(), ride.ID, driverID, testPickup, nil)
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
		assert.Contains(t, apperrors.Message(err), "dropoff")
	})

	t.Run("Discount Too Large", func(t *testing.T) {
		f := newFixture(t)
		driverID := uuid.New()
		ride := withDriver(sampleRide(models.RideStatusTripStarted), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.ledgerUC.EXPECT().GetSnapshot(gomock.Any(), ride.ID).Return(riderAt(ride, testDropoff), nil)
		f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.TripLocationEvent{TotalDistanceMeters: 1000}, nil)

		discount := 1e6
		_, err := f.uc.CompleteRide(context.Background(), ride.ID, driverID, testDropoff, &discount)
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	})
}

func TestBillableDistanceKm(t *testing.T) {
	actual, estimated, nan := 7.5, 4.0, math.NaN()

	tests := []struct {
		name   string
		ride   *models.Ride
		ledger float64
		want   float64
	}{
		{"Ledger", &models.Ride{DistanceEstimatedKm: &estimated}, 2500, 2.5},
		{"Ledger NaN Uses Actual", &models.Ride{DistanceActualKm: &actual, DistanceEstimatedKm: &estimated}, math.NaN(), 7.5},
		{"Ledger Zero Uses Estimate", &models.Ride{DistanceEstimatedKm: &estimated}, 0, 4},
		{"Infinite Ledger And NaN Estimate", &models.Ride{DistanceEstimatedKm: &nan}, math.Inf(1), 0},
		{"Nothing Known", &models.Ride{}, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billableDistanceKm(tt.ride, tt.ledger))
		})
	}
}

func TestRecordTripLocation(t *testing.T) {
	driverID := uuid.New()
	loc := offset(testPickup, 100)

	t.Run("Driver", func(t *testing.T) {
		f := newFixture(t)
		ride := withDriver(sampleRide(models.RideStatusTripStarted), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), ride.ID, driverID, models.ParticipantDriver, loc).
			Return(&models.TripLocationEvent{RideID: ride.ID, TotalDistanceMeters: 100}, nil)

		event, err := f.uc.RecordTripLocation(context.Background(), ride.ID, models.Requester{ID: driverID, Role: models.RoleDriver}, loc)
		require.NoError(t, err)
		assert.Equal(t, 100.0, event.TotalDistanceMeters)
	})

	t.Run("Rider", func(t *testing.T) {
		f := newFixture(t)
		ride := withDriver(sampleRide(models.RideStatusEnroute), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
		f.ledgerUC.EXPECT().RecordLocation(gomock.Any(), ride.ID, ride.RiderID, models.ParticipantRider, loc).
			Return(&models.TripLocationEvent{RideID: ride.ID}, nil)

		_, err := f.uc.RecordTripLocation(context.Background(), ride.ID, models.Requester{ID: ride.RiderID, Role: models.RoleRider}, loc)
		assert.NoError(t, err)
	})

	t.Run("Foreign Rider", func(t *testing.T) {
		f := newFixture(t)
		ride := sampleRide(models.RideStatusEnroute)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := f.uc.RecordTripLocation(context.Background(), ride.ID, models.Requester{ID: uuid.New(), Role: models.RoleRider}, loc)
		assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	})

	t.Run("Admin Role", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.RecordTripLocation(context.Background(), uuid.New(), models.Requester{ID: uuid.New(), Role: models.RoleAdmin}, loc)
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	})

	t.Run("Finished Ride", func(t *testing.T) {
		f := newFixture(t)
		ride := withDriver(sampleRide(models.RideStatusCompleted), driverID)
		f.rideRepo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

		_, err := f.uc.RecordTripLocation(context.Background(), ride.ID, models.Requester{ID: driverID, Role: models.RoleDriver}, loc)
		assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
	})
}
