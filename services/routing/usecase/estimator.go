package usecase

import (
	"context"
	"errors"

	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/circuitbreaker"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/pkg/retry"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/routing"
)

// Estimator asks the primary provider through retry and a circuit breaker,
// and answers from the fallback provider when that fails.
type Estimator struct {
	primary  routing.RouteProvider
	fallback routing.RouteProvider
	retrier  *retry.Retrier
	breaker  *circuitbreaker.CircuitBreaker
}

// NewEstimator creates an estimator. primary may be nil, in which case only the fallback is used.
func NewEstimator(cfg models.RoutingConfig, primary, fallback routing.RouteProvider) *Estimator {
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = cfg.MaxRetries
	retryConfig.BaseDelay = cfg.RetryBaseDelay
	retryConfig.RetryableFunc = func(err error) bool {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}

	breakerConfig := circuitbreaker.DefaultConfig("route-provider")
	breakerConfig.FailureThreshold = cfg.BreakerFailures
	breakerConfig.OpenDuration = cfg.BreakerOpenDuration

	return &Estimator{
		primary:  primary,
		fallback: fallback,
		retrier:  retry.New("route-provider", retryConfig),
		breaker:  circuitbreaker.New(breakerConfig),
	}
}

// EstimateRoute implements routing.RouteEstimator
func (e *Estimator) EstimateRoute(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error) {
	if !utils.ValidCoordinates(req.Pickup) || !utils.ValidCoordinates(req.Dropoff) {
		return nil, apperrors.BadRequest("invalid coordinates")
	}

	if e.primary != nil {
		estimate, err := e.estimatePrimary(ctx, req)
		if err == nil {
			metrics.RouteEstimations.WithLabelValues(e.primary.Name(), "ok").Inc()
			return estimate, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		metrics.RouteEstimations.WithLabelValues(e.primary.Name(), "error").Inc()
		logger.WarnCtx(ctx, "Route provider failed, using fallback",
			logger.String("ride_id", req.RideID.String()),
			logger.String("provider", e.primary.Name()),
			logger.String("breaker_state", e.breaker.State().String()),
			logger.Err(err))
	}

	estimate, err := e.fallback.Estimate(ctx, req.Pickup, req.Dropoff)
	if err != nil {
		metrics.RouteEstimations.WithLabelValues(e.fallback.Name(), "error").Inc()
		return nil, err
	}
	metrics.RouteEstimations.WithLabelValues(e.fallback.Name(), "ok").Inc()
	return estimate, nil
}

func (e *Estimator) estimatePrimary(ctx context.Context, req models.RouteEstimateRequest) (*models.RouteEstimate, error) {
	var estimate *models.RouteEstimate
	err := e.breaker.Execute(ctx, func(ctx context.Context) error {
		return e.retrier.Execute(ctx, func(ctx context.Context) error {
			result, err := e.primary.Estimate(ctx, req.Pickup, req.Dropoff)
			if err != nil {
				return err
			}
			estimate = result
			return nil
		})
	})
	return estimate, err
}
