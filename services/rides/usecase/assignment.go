package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

// AcceptRide lets an invited driver claim the ride. Only one driver can ever hold the claim;
// every other contender gets a Conflict and loses its invitation.
func (uc *RideUC) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, error) {
	ride, candidate, err := uc.loadInvitation(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	if ride.HasDriver(driverID) &&
		(candidate.Status == models.CandidateStatusAccepted || candidate.Status == models.CandidateStatusConfirmed) {
		return ride, nil
	}
	if !candidate.Status.IsActive() {
		return nil, apperrors.Conflict("ride invitation is no longer active")
	}
	if ride.DriverID != nil {
		return nil, uc.supersede(ctx, rideID, driverID)
	}
	if ride.Status != models.RideStatusRequested && ride.Status != models.RideStatusCandidatesComputed {
		return nil, apperrors.BadRequest("ride cannot be accepted in status %s", ride.Status)
	}

	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:        rideID,
		From:          []models.RideStatus{models.RideStatusRequested, models.RideStatusCandidatesComputed},
		Via:           []models.TransitionStep{{Status: models.RideStatusAssigned, Context: constants.ContextDriverClaimed}},
		To:            models.RideStatusAccepted,
		Context:       constants.ContextDriverAccepted,
		ClaimDriverID: &driverID,
		Candidate: &models.CandidateChange{
			DriverID: driverID,
			From:     models.ActiveCandidateStatuses,
			To:       models.CandidateStatusAccepted,
		},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		current := result.Ride
		if current.HasDriver(driverID) {
			return current, nil
		}
		if current.DriverID == nil {
			return nil, apperrors.Conflict("ride can no longer be accepted in status %s", current.Status)
		}
		metrics.DriverClaims.WithLabelValues("lost").Inc()
		return nil, uc.supersede(ctx, rideID, driverID)
	}
	metrics.DriverClaims.WithLabelValues("won").Inc()
	accepted := result.Ride

	logger.InfoCtx(ctx, "Driver accepted ride",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))

	uc.notify(ctx, models.TargetRider, accepted.RiderID, constants.EventRideAccepted, models.RideUpdatePayload{
		RideID:   rideID,
		Status:   accepted.Status,
		DriverID: accepted.DriverID,
	})
	uc.publish(ctx, constants.SubjectRideAccepted, accepted, nil, "")

	return accepted, nil
}

// supersede cancels the invitation of a driver that lost the claim
func (uc *RideUC) supersede(ctx context.Context, rideID, driverID uuid.UUID) error {
	reason := models.ReasonAnotherDriverAccepted
	err := uc.candidateRepo.UpdateCandidateStatus(ctx, rideID, models.CandidateChange{
		DriverID: driverID,
		From:     models.ActiveCandidateStatuses,
		To:       models.CandidateStatusCanceled,
		Reason:   &reason,
	})
	if err != nil && !apperrors.Is(err, apperrors.KindConflict) {
		return err
	}
	logger.InfoCtx(ctx, "Driver lost ride claim",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))
	return apperrors.Conflict("%s", reason)
}

// DeclineRide records a driver's refusal. A driver holding the claim releases it, and
// the ride is canceled once no invitation is left.
func (uc *RideUC) DeclineRide(ctx context.Context, rideID, driverID uuid.UUID, reason string) (*models.Ride, error) {
	ride, candidate, err := uc.loadInvitation(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if candidate.Status == models.CandidateStatusDeclined {
		return ride, nil
	}
	if ride.Status.IsTerminal() || ride.Status == models.RideStatusTripStarted {
		return nil, apperrors.BadRequest("ride cannot be declined in status %s", ride.Status)
	}
	if candidate.Status == models.CandidateStatusCanceled {
		return nil, apperrors.Conflict("ride invitation is no longer active")
	}

	change := models.CandidateChange{
		DriverID: driverID,
		From:     []models.CandidateStatus{models.CandidateStatusInvited},
		To:       models.CandidateStatusDeclined,
	}
	if reason != "" {
		change.Reason = &reason
	}

	if ride.HasDriver(driverID) {
		change.From = []models.CandidateStatus{models.CandidateStatusAccepted, models.CandidateStatusConfirmed}
		result, err := uc.transition(ctx, models.StatusTransition{
			RideID:      rideID,
			From:        []models.RideStatus{models.RideStatusAssigned, models.RideStatusAccepted, models.RideStatusEnroute},
			To:          models.RideStatusCandidatesComputed,
			Context:     constants.ContextDriverDeclined,
			HeldBy:      &driverID,
			ClearDriver: true,
			Candidate:   &change,
		})
		if err != nil {
			return nil, err
		}
		if !result.Changed {
			return nil, apperrors.Conflict("ride changed while declining")
		}
		ride = result.Ride
		uc.notify(ctx, models.TargetRider, ride.RiderID, constants.EventRideDeclined, models.RideUpdatePayload{
			RideID: rideID,
			Status: ride.Status,
			Reason: reason,
		})
	} else if err := uc.candidateRepo.UpdateCandidateStatus(ctx, rideID, change); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver declined ride",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driverID.String()))

	return uc.cancelIfUnmatched(ctx, ride)
}

// cancelIfUnmatched cancels a ride whose invitations are all spent without a confirmation
func (uc *RideUC) cancelIfUnmatched(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if ride.DriverID != nil {
		return ride, nil
	}

	candidates, err := uc.candidateRepo.ListCandidates(ctx, ride.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if c.Status.IsActive() || c.Status == models.CandidateStatusConfirmed {
			return ride, nil
		}
	}

	reason := models.ReasonNoDriversAccepted
	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:       ride.ID,
		From:         []models.RideStatus{models.RideStatusRequested, models.RideStatusCandidatesComputed},
		To:           models.RideStatusCanceled,
		Context:      constants.ContextNoDriversAccepted,
		ClearDriver:  true,
		CancelReason: &reason,
	})
	if err != nil {
		return nil, err
	}
	canceled := result.Ride
	if result.Changed {
		uc.notify(ctx, models.TargetRider, canceled.RiderID, constants.EventRideCanceled, models.RideUpdatePayload{
			RideID: ride.ID,
			Status: canceled.Status,
			Reason: reason,
		})
		uc.publish(ctx, constants.SubjectRideCanceled, canceled, nil, reason)
	}
	return canceled, nil
}

// ConfirmDriver is the rider's approval of the accepted driver; every other invitation is canceled
func (uc *RideUC) ConfirmDriver(ctx context.Context, rideID, riderID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRiderRide(ctx, rideID, riderID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil {
		return nil, apperrors.BadRequest("no driver has accepted this ride")
	}
	driverID := *ride.DriverID

	candidate, err := uc.candidateRepo.GetCandidate(ctx, rideID, driverID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperrors.NotFound("candidate not found")
	}
	if ride.Status == models.RideStatusEnroute && candidate.Status == models.CandidateStatusConfirmed {
		return ride, nil
	}
	if ride.Status != models.RideStatusAccepted {
		return nil, apperrors.BadRequest("ride cannot be confirmed in status %s", ride.Status)
	}
	if candidate.Status != models.CandidateStatusAccepted {
		return nil, apperrors.BadRequest("driver has not accepted this ride")
	}

	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:  rideID,
		From:    []models.RideStatus{models.RideStatusAccepted},
		To:      models.RideStatusEnroute,
		Context: constants.ContextRiderConfirmed,
		HeldBy:  &driverID,
		Candidate: &models.CandidateChange{
			DriverID: driverID,
			From:     []models.CandidateStatus{models.CandidateStatusAccepted},
			To:       models.CandidateStatusConfirmed,
		},
		Sweep: &models.CandidateSweep{KeepDriverID: &driverID, Reason: models.ReasonConfirmedAnother},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.Conflict("ride changed while confirming the driver")
	}
	confirmed := result.Ride

	uc.notifyOffersCanceled(ctx, rideID, result.CanceledDrivers, models.ReasonConfirmedAnother)
	uc.notify(ctx, models.TargetDriver, driverID, constants.EventRideConfirmed, models.RideUpdatePayload{
		RideID:   rideID,
		Status:   confirmed.Status,
		DriverID: confirmed.DriverID,
	})

	return confirmed, nil
}

// RejectDriver sends the accepted driver away and puts the ride back into matching
func (uc *RideUC) RejectDriver(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error) {
	ride, err := uc.loadRiderRide(ctx, rideID, riderID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil {
		return nil, apperrors.BadRequest("no driver has accepted this ride")
	}
	if ride.Status != models.RideStatusAccepted && ride.Status != models.RideStatusAssigned {
		return nil, apperrors.BadRequest("driver cannot be rejected in status %s", ride.Status)
	}
	driverID := *ride.DriverID
	if reason == "" {
		reason = models.ReasonRiderRejected
	}

	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:      rideID,
		From:        []models.RideStatus{models.RideStatusAccepted, models.RideStatusAssigned},
		To:          models.RideStatusCandidatesComputed,
		Context:     constants.ContextRiderRejected,
		HeldBy:      &driverID,
		ClearDriver: true,
		Candidate: &models.CandidateChange{
			DriverID: driverID,
			From:     models.ActiveCandidateStatuses,
			To:       models.CandidateStatusCanceled,
			Reason:   &reason,
		},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.Conflict("ride changed while rejecting the driver")
	}
	reverted := result.Ride

	uc.notify(ctx, models.TargetDriver, driverID, constants.EventRideRejected, models.RideUpdatePayload{
		RideID: rideID,
		Status: reverted.Status,
		Reason: reason,
	})

	return uc.cancelIfUnmatched(ctx, reverted)
}

// CancelRide is the rider's cancellation from any status before completion
func (uc *RideUC) CancelRide(ctx context.Context, rideID, riderID uuid.UUID, reason string) (*models.Ride, error) {
	ride, err := uc.loadRiderRide(ctx, rideID, riderID)
	if err != nil {
		return nil, err
	}
	switch ride.Status {
	case models.RideStatusCanceled:
		return ride, nil
	case models.RideStatusCompleted:
		return nil, apperrors.BadRequest("completed rides cannot be canceled")
	}

	if reason == "" {
		reason = models.ReasonRideCanceled
	}
	result, err := uc.transition(ctx, models.StatusTransition{
		RideID:       rideID,
		From:         models.NonTerminalRideStatuses,
		To:           models.RideStatusCanceled,
		Context:      constants.ContextRiderCanceled,
		ClearDriver:  true,
		CancelReason: &reason,
		Sweep:        &models.CandidateSweep{Reason: models.ReasonRideCanceled},
	})
	if err != nil {
		return nil, err
	}
	canceled := result.Ride
	if !result.Changed {
		if canceled.Status == models.RideStatusCanceled {
			return canceled, nil
		}
		return nil, apperrors.BadRequest("ride cannot be canceled in status %s", canceled.Status)
	}
	previous := result.Previous

	uc.cancelRouteJob(ctx, rideID)
	if previous.Status == models.RideStatusTripStarted {
		if err := uc.ledgerUC.MarkCompleted(ctx, rideID); err != nil {
			logger.WarnCtx(ctx, "Failed to mark trip ledger completed",
				logger.String("ride_id", rideID.String()),
				logger.Err(err))
		}
	}

	offers := make([]uuid.UUID, 0, len(result.CanceledDrivers))
	for _, driverID := range result.CanceledDrivers {
		if !previous.HasDriver(driverID) {
			offers = append(offers, driverID)
		}
	}
	uc.notifyOffersCanceled(ctx, rideID, offers, models.ReasonRideCanceled)
	if previous.DriverID != nil {
		uc.notify(ctx, models.TargetDriver, *previous.DriverID, constants.EventRideCanceled, models.RideUpdatePayload{
			RideID: rideID,
			Status: canceled.Status,
			Reason: reason,
		})
	}
	uc.publish(ctx, constants.SubjectRideCanceled, canceled, nil, reason)

	logger.InfoCtx(ctx, "Ride canceled by rider",
		logger.String("ride_id", rideID.String()),
		logger.String("previous_status", string(previous.Status)))

	return canceled, nil
}

func (uc *RideUC) notifyOffersCanceled(ctx context.Context, rideID uuid.UUID, drivers []uuid.UUID, reason string) {
	for _, driverID := range drivers {
		uc.notify(ctx, models.TargetDriver, driverID, constants.EventRideOfferCanceled, models.RideUpdatePayload{
			RideID: rideID,
			Status: models.RideStatusCanceled,
			Reason: reason,
		})
	}
}

// loadInvitation returns the ride and the driver's invitation; a driver never invited sees not found
func (uc *RideUC) loadInvitation(ctx context.Context, rideID, driverID uuid.UUID) (*models.Ride, *models.RideDriverCandidate, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, nil, err
	}
	candidate, err := uc.candidateRepo.GetCandidate(ctx, rideID, driverID)
	if err != nil {
		return nil, nil, err
	}
	if candidate == nil {
		return nil, nil, errRideNotFound
	}
	return ride, candidate, nil
}

func (uc *RideUC) loadRiderRide(ctx context.Context, rideID, riderID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := ensureRequesterCanAccessRide(ride, models.Requester{ID: riderID, Role: models.RoleRider}); err != nil {
		return nil, err
	}
	return ride, nil
}
