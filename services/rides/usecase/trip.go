package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
)

// StartRide begins the trip once driver and rider are together at the pickup point
func (uc *RideUC) StartRide(ctx context.Context, rideID, driverID uuid.UUID, driverLocation models.Location) (*models.Ride, error) {
	ride, err := uc.loadDriverRide(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status == models.RideStatusTripStarted {
		return ride, nil
	}
	if ride.Status != models.RideStatusEnroute {
		return nil, apperrors.BadRequest("ride cannot be started in status %s", ride.Status)
	}
	if err := uc.ensureTogetherAt(ctx, ride, driverLocation, ride.Pickup(), "pickup"); err != nil {
		return nil, err
	}

	if _, err := uc.ledgerUC.RecordLocation(ctx, rideID, driverID, models.ParticipantDriver, driverLocation); err != nil {
		return nil, err
	}

	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:  rideID,
		From:    []models.RideStatus{models.RideStatusEnroute},
		To:      models.RideStatusTripStarted,
		Context: constants.ContextTripStarted,
		HeldBy:  &driverID,
	})
	if err != nil {
		return nil, err
	}
	started := result.Ride
	if !result.Changed {
		return started, nil
	}

	payload := models.RideUpdatePayload{RideID: rideID, Status: started.Status, DriverID: started.DriverID}
	uc.notify(ctx, models.TargetRider, started.RiderID, constants.EventRideStarted, payload)
	uc.notify(ctx, models.TargetDriver, driverID, constants.EventRideStarted, payload)
	uc.publish(ctx, constants.SubjectRideStarted, started, nil, "")

	return started, nil
}

// CompleteRide ends the trip at the dropoff point and bills the distance the driver covered
func (uc *RideUC) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID, driverLocation models.Location, discountAmount *float64) (*models.RideCompletion, error) {
	ride, err := uc.loadDriverRide(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusTripStarted {
		return nil, apperrors.BadRequest("ride cannot be completed in status %s", ride.Status)
	}
	if err := uc.ensureTogetherAt(ctx, ride, driverLocation, ride.Dropoff(), "dropoff"); err != nil {
		return nil, err
	}

	event, err := uc.ledgerUC.RecordLocation(ctx, rideID, driverID, models.ParticipantDriver, driverLocation)
	if err != nil {
		return nil, err
	}

	distanceKm := billableDistanceKm(ride, event.TotalDistanceMeters)
	fare, err := uc.fareUC.CalculateFare(distanceKm, discountAmount)
	if err != nil {
		return nil, err
	}

	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:  rideID,
		From:    []models.RideStatus{models.RideStatusTripStarted},
		To:      models.RideStatusCompleted,
		Context: constants.ContextTripCompleted,
		HeldBy:  &driverID,
		Completion: &models.CompletionUpdate{
			DistanceActualKm: fare.DistanceKm,
			DiscountAmount:   fare.DiscountAmount,
			FareFinal:        fare.FinalFare,
			AppFeeAmount:     fare.AppFee,
		},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.Conflict("ride changed while completing the trip")
	}
	completed := result.Ride

	if err := uc.ledgerUC.MarkCompleted(ctx, rideID); err != nil {
		logger.WarnCtx(ctx, "Failed to mark trip ledger completed",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Trip completed",
		logger.String("ride_id", rideID.String()),
		logger.Float64("distance_km", fare.DistanceKm),
		logger.Float64("final_fare", fare.FinalFare))

	payload := models.RideUpdatePayload{RideID: rideID, Status: completed.Status, DriverID: completed.DriverID, Fare: fare}
	uc.notify(ctx, models.TargetRider, completed.RiderID, constants.EventRideCompleted, payload)
	uc.notify(ctx, models.TargetDriver, driverID, constants.EventRideCompleted, payload)
	uc.publish(ctx, constants.SubjectRideCompleted, completed, fare, "")

	return &models.RideCompletion{Ride: completed, Fare: *fare}, nil
}

// billableDistanceKm prefers the ledger total and falls back to what the ride already knows
func billableDistanceKm(ride *models.Ride, ledgerMeters float64) float64 {
	if finite(ledgerMeters) && ledgerMeters > 0 {
		return ledgerMeters / 1000
	}
	if ride.DistanceActualKm != nil && finite(*ride.DistanceActualKm) && *ride.DistanceActualKm > 0 {
		return *ride.DistanceActualKm
	}
	if ride.DistanceEstimatedKm != nil && finite(*ride.DistanceEstimatedKm) && *ride.DistanceEstimatedKm > 0 {
		return *ride.DistanceEstimatedKm
	}
	return 0
}

// RecordTripLocation writes a participant's position into the ride's distance ledger
func (uc *RideUC) RecordTripLocation(ctx context.Context, rideID uuid.UUID, requester models.Requester, location models.Location) (*models.TripLocationEvent, error) {
	if !utils.ValidCoordinates(location) {
		return nil, apperrors.BadRequest("invalid coordinates")
	}

	var role models.ParticipantRole
	switch requester.Role {
	case models.RoleDriver:
		role = models.ParticipantDriver
	case models.RoleRider:
		role = models.ParticipantRider
	default:
		return nil, apperrors.BadRequest("only the ride's driver or rider can record trip locations")
	}

	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := ensureRequesterCanAccessRide(ride, requester); err != nil {
		return nil, err
	}
	if ride.Status.IsTerminal() {
		return nil, apperrors.BadRequest("ride is already %s", ride.Status)
	}

	return uc.ledgerUC.RecordLocation(ctx, rideID, requester.ID, role, location)
}

// ensureTogetherAt checks driver and rider are each near the point and near one another
func (uc *RideUC) ensureTogetherAt(ctx context.Context, ride *models.Ride, driverLocation, point models.Location, name string) error {
	if !utils.ValidCoordinates(driverLocation) {
		return apperrors.BadRequest("invalid coordinates")
	}

	snapshot, err := uc.ledgerUC.GetSnapshot(ctx, ride.ID)
	if err != nil {
		return err
	}
	if snapshot == nil || snapshot.LastRiderLocation == nil {
		return apperrors.BadRequest("rider location has not been recorded for this ride")
	}
	riderLocation := *snapshot.LastRiderLocation

	radius := uc.cfg.Rides.ProximityRadiusMeters
	if radius <= 0 {
		radius = 20
	}
	if !utils.WithinRadius(driverLocation, point, radius) {
		return apperrors.BadRequest("driver must be within %.0fm of the %s point", radius, name)
	}
	if !utils.WithinRadius(riderLocation, point, radius) {
		return apperrors.BadRequest("rider must be within %.0fm of the %s point", radius, name)
	}
	if !utils.WithinRadius(driverLocation, riderLocation, radius) {
		return apperrors.BadRequest("driver and rider must be within %.0fm of each other", radius)
	}
	return nil
}

func (uc *RideUC) loadDriverRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := ensureRequesterCanAccessRide(ride, models.Requester{ID: driverID, Role: models.RoleDriver}); err != nil {
		return nil, err
	}
	return ride, nil
}
