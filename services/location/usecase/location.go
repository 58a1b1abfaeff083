package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/location"
)

// LocationUC implements location.LocationUC
type LocationUC struct {
	cfg          *models.Config
	locationRepo location.LocationRepo
}

// NewLocationUC creates a new location use case
func NewLocationUC(cfg *models.Config, locationRepo location.LocationRepo) *LocationUC {
	return &LocationUC{
		cfg:          cfg,
		locationRepo: locationRepo,
	}
}

// UpdateDriverLocation records a driver position in the geo index
func (uc *LocationUC) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) error {
	if driverID == uuid.Nil {
		return apperrors.BadRequest("driver id is required")
	}
	if !utils.ValidCoordinates(loc) {
		return apperrors.BadRequest("invalid coordinates")
	}

	if err := uc.locationRepo.UpdateDriverLocation(ctx, driverID, loc, uc.cfg.Rides.AvailabilityTTL); err != nil {
		logger.ErrorCtx(ctx, "Failed to update driver location",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return err
	}

	return nil
}

// SetDriverAvailability toggles whether the driver is offered new rides
func (uc *LocationUC) SetDriverAvailability(ctx context.Context, driverID uuid.UUID, available bool) error {
	if driverID == uuid.Nil {
		return apperrors.BadRequest("driver id is required")
	}

	if err := uc.locationRepo.SetDriverAvailability(ctx, driverID, available, uc.cfg.Rides.AvailabilityTTL); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Driver availability changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("available", available))
	return nil
}

// GetNearbyDrivers returns up to limit available drivers around loc, nearest first
func (uc *LocationUC) GetNearbyDrivers(ctx context.Context, loc models.Location, radiusMeters float64, limit int) ([]models.NearbyDriver, error) {
	if !utils.ValidCoordinates(loc) {
		return nil, apperrors.BadRequest("invalid coordinates")
	}
	if limit <= 0 {
		return nil, apperrors.BadRequest("limit must be positive")
	}
	if radiusMeters <= 0 {
		radiusMeters = uc.cfg.Rides.SearchRadiusMeters
	}

	return uc.locationRepo.GetNearbyDrivers(ctx, loc, radiusMeters, limit)
}
