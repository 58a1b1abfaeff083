package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/circuitbreaker"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/routing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routingConfig() models.RoutingConfig {
	return models.RoutingConfig{
		MaxRetries:          1,
		RetryBaseDelay:      time.Millisecond,
		BreakerFailures:     2,
		BreakerOpenDuration: time.Minute,
	}
}

func estimateRequest() models.RouteEstimateRequest {
	return models.RouteEstimateRequest{
		RideID:  uuid.New(),
		Pickup:  models.Location{Latitude: -6.175392, Longitude: 106.827153},
		Dropoff: models.Location{Latitude: -6.2, Longitude: 106.85},
	}
}

func TestEstimator_PrimarySuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockRouteProvider(ctrl)
	fallback := mocks.NewMockRouteProvider(ctrl)
	req := estimateRequest()

	expected := &models.RouteEstimate{DistanceKm: 5.1, DurationSeconds: 600, Provider: "google_maps"}
	primary.EXPECT().Estimate(gomock.Any(), req.Pickup, req.Dropoff).Return(expected, nil)
	primary.EXPECT().Name().Return("google_maps").AnyTimes()

	estimate, err := NewEstimator(routingConfig(), primary, fallback).EstimateRoute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, expected, estimate)
}

func TestEstimator_FallsBackAfterRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockRouteProvider(ctrl)
	fallback := mocks.NewMockRouteProvider(ctrl)
	req := estimateRequest()

	primary.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("OVER_QUERY_LIMIT")).Times(2)
	primary.EXPECT().Name().Return("google_maps").AnyTimes()
	fallback.EXPECT().Estimate(gomock.Any(), req.Pickup, req.Dropoff).
		Return(&models.RouteEstimate{DistanceKm: 3.7, DurationSeconds: 444, Provider: "haversine"}, nil)
	fallback.EXPECT().Name().Return("haversine").AnyTimes()

	estimate, err := NewEstimator(routingConfig(), primary, fallback).EstimateRoute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "haversine", estimate.Provider)
}

func TestEstimator_OpenBreakerSkipsPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockRouteProvider(ctrl)
	fallback := mocks.NewMockRouteProvider(ctrl)

	cfg := routingConfig()
	cfg.MaxRetries = 0
	cfg.BreakerFailures = 1
	estimator := NewEstimator(cfg, primary, fallback)

	primary.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)
	primary.EXPECT().Name().Return("google_maps").AnyTimes()
	fallback.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RouteEstimate{Provider: "haversine"}, nil).Times(2)
	fallback.EXPECT().Name().Return("haversine").AnyTimes()

	_, err := estimator.EstimateRoute(context.Background(), estimateRequest())
	require.NoError(t, err)
	assert.Equal(t, circuitbreaker.StateOpen, estimator.breaker.State())

	_, err = estimator.EstimateRoute(context.Background(), estimateRequest())
	require.NoError(t, err)
}

func TestEstimator_NoPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fallback := mocks.NewMockRouteProvider(ctrl)
	fallback.EXPECT().Estimate(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.RouteEstimate{Provider: "haversine"}, nil)
	fallback.EXPECT().Name().Return("haversine").AnyTimes()

	estimate, err := NewEstimator(routingConfig(), nil, fallback).EstimateRoute(context.Background(), estimateRequest())
	require.NoError(t, err)
	assert.Equal(t, "haversine", estimate.Provider)
}

func TestEstimator_InvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := estimateRequest()
	req.Dropoff.Longitude = 181

	_, err := NewEstimator(routingConfig(), nil, mocks.NewMockRouteProvider(ctrl)).EstimateRoute(context.Background(), req)
	assert.True(t, apperrors.Is(err, apperrors.KindBadRequest))
}
