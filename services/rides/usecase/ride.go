package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/constants"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/metrics"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/billing"
	"github.com/piresc/rideorchestrator/services/location"
	"github.com/piresc/rideorchestrator/services/rides"
	"github.com/piresc/rideorchestrator/services/routing"
	"github.com/piresc/rideorchestrator/services/trip"
)

var errRideNotFound = apperrors.NotFound("ride not found")

// RideUC implements rides.RideUC
type RideUC struct {
	cfg           *models.Config
	rideRepo      rides.RideRepo
	candidateRepo rides.CandidateRepo
	locationUC    location.LocationUC
	routeClient   routing.RouteClient
	fareUC        billing.FareUC
	ledgerUC      trip.LedgerUC
	notifier      rides.Notifier
	events        rides.EventPublisher
	now           func() time.Time
}

// NewRideUC creates the ride orchestrator
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	candidateRepo rides.CandidateRepo,
	locationUC location.LocationUC,
	routeClient routing.RouteClient,
	fareUC billing.FareUC,
	ledgerUC trip.LedgerUC,
	notifier rides.Notifier,
	events rides.EventPublisher,
) *RideUC {
	return &RideUC{
		cfg:           cfg,
		rideRepo:      rideRepo,
		candidateRepo: candidateRepo,
		locationUC:    locationUC,
		routeClient:   routeClient,
		fareUC:        fareUC,
		ledgerUC:      ledgerUC,
		notifier:      notifier,
		events:        events,
		now:           time.Now,
	}
}

// CreateRide persists a ride, estimates its route and invites nearby drivers.
// Any failure before the candidates are notified removes the ride again.
func (uc *RideUC) CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error) {
	if !utils.ValidCoordinates(req.Pickup) || !utils.ValidCoordinates(req.Dropoff) {
		return nil, apperrors.BadRequest("invalid pickup or dropoff coordinates")
	}

	now := uc.now().UTC()
	ride := &models.Ride{
		ID:               uuid.New(),
		RiderID:          req.RiderID,
		PickupLatitude:   req.Pickup.Latitude,
		PickupLongitude:  req.Pickup.Longitude,
		DropoffLatitude:  req.Dropoff.Latitude,
		DropoffLongitude: req.Dropoff.Longitude,
		Note:             req.Note,
		Status:           models.RideStatusRequested,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ride requested",
		logger.String("ride_id", ride.ID.String()),
		logger.String("rider_id", ride.RiderID.String()))

	route, err := uc.routeClient.Request(ctx, models.RouteEstimateRequest{
		RideID:  ride.ID,
		Pickup:  req.Pickup,
		Dropoff: req.Dropoff,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Route estimation failed, rolling back ride",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		uc.rollbackRide(ctx, ride.ID)
		return nil, apperrors.Unavailable("route estimation unavailable, please try again later", err)
	}

	distance := route.DistanceKm
	fareEstimated := uc.fareUC.CalculateEstimatedFare(&distance)
	if err := uc.rideRepo.UpdateRouteEstimate(ctx, ride.ID, models.RouteEstimateUpdate{
		DistanceEstimatedKm:      route.DistanceKm,
		DurationEstimatedSeconds: route.DurationSeconds,
		FareEstimated:            fareEstimated,
	}); err != nil {
		uc.rollbackRide(ctx, ride.ID)
		return nil, err
	}

	drivers, err := uc.locationUC.GetNearbyDrivers(ctx, req.Pickup, uc.cfg.Rides.SearchRadiusMeters, uc.candidateLimit(req.MaxDrivers))
	if err != nil {
		uc.rollbackRide(ctx, ride.ID)
		return nil, err
	}
	drivers = uniqueDrivers(drivers, req.RiderID)
	if len(drivers) == 0 {
		logger.InfoCtx(ctx, "No available drivers near pickup", logger.String("ride_id", ride.ID.String()))
		uc.rollbackRide(ctx, ride.ID)
		return nil, apperrors.BadRequest("unable to find driver")
	}

	candidates := make([]models.RideDriverCandidate, 0, len(drivers))
	for _, d := range drivers {
		candidates = append(candidates, models.RideDriverCandidate{
			ID:             uuid.New(),
			RideID:         ride.ID,
			DriverID:       d.DriverID,
			Status:         models.CandidateStatusInvited,
			DistanceMeters: d.DistanceMeters,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	if err := uc.candidateRepo.CreateCandidates(ctx, candidates); err != nil {
		uc.rollbackRide(ctx, ride.ID)
		return nil, err
	}

	computed, err := uc.transition(ctx, models.StatusTransition{
		RideID:  ride.ID,
		From:    []models.RideStatus{models.RideStatusRequested},
		To:      models.RideStatusCandidatesComputed,
		Context: constants.ContextCandidatesComputed,
	})
	if err != nil {
		uc.rollbackRide(ctx, ride.ID)
		return nil, err
	}
	updated := computed.Ride

	pickupGeohash := utils.EncodeLocation(req.Pickup, utils.DefaultGeohashPrecision)
	for _, c := range candidates {
		uc.notify(ctx, models.TargetDriver, c.DriverID, constants.EventRideOffer, models.RideOfferPayload{
			RideID:          ride.ID,
			Pickup:          req.Pickup,
			Dropoff:         req.Dropoff,
			PickupGeohash:   pickupGeohash,
			DistanceMeters:  c.DistanceMeters,
			Route:           route,
			FareEstimated:   fareEstimated,
			CandidateStatus: string(c.Status),
		})
	}
	uc.notify(ctx, models.TargetRider, ride.RiderID, constants.EventRideMatching, models.RideUpdatePayload{
		RideID: ride.ID,
		Status: updated.Status,
	})
	uc.publish(ctx, constants.SubjectRideCreated, updated, nil, "")

	logger.InfoCtx(ctx, "Ride candidates invited",
		logger.String("ride_id", ride.ID.String()),
		logger.Int("candidates", len(candidates)),
		logger.Float64("distance_km", route.DistanceKm))

	return updated, nil
}

// rollbackRide is the compensation of a failed creation; errors are logged because the caller already fails
func (uc *RideUC) rollbackRide(ctx context.Context, rideID uuid.UUID) {
	if err := uc.rideRepo.DeleteRide(ctx, rideID); err != nil {
		logger.ErrorCtx(ctx, "Failed to roll back ride",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}
	uc.cancelRouteJob(ctx, rideID)
}

func (uc *RideUC) cancelRouteJob(ctx context.Context, rideID uuid.UUID) {
	if err := uc.routeClient.Cancel(ctx, rideID); err != nil {
		logger.WarnCtx(ctx, "Failed to remove route estimation job",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}
}

// candidateLimit resolves the requested driver count against the configured bounds
func (uc *RideUC) candidateLimit(requested *int) int {
	limit := uc.cfg.Rides.DefaultCandidateLimit
	if requested != nil && *requested > 0 {
		limit = *requested
	}
	if maxLimit := uc.cfg.Rides.MaxCandidateLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if limit <= 0 {
		limit = 10
	}
	return limit
}

func uniqueDrivers(drivers []models.NearbyDriver, riderID uuid.UUID) []models.NearbyDriver {
	seen := make(map[uuid.UUID]struct{}, len(drivers))
	unique := make([]models.NearbyDriver, 0, len(drivers))
	for _, d := range drivers {
		if d.DriverID == riderID {
			continue
		}
		if _, ok := seen[d.DriverID]; ok {
			continue
		}
		seen[d.DriverID] = struct{}{}
		unique = append(unique, d)
	}
	return unique
}

// GetRide returns a ride the requester may see
func (uc *RideUC) GetRide(ctx context.Context, rideID uuid.UUID, requester models.Requester) (*models.Ride, error) {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := ensureRequesterCanAccessRide(ride, requester); err != nil {
		return nil, err
	}
	return ride, nil
}

// GetRideHistory returns the status audit trail of a ride the requester may see
func (uc *RideUC) GetRideHistory(ctx context.Context, rideID uuid.UUID, requester models.Requester) ([]models.RideStatusHistory, error) {
	if _, err := uc.GetRide(ctx, rideID, requester); err != nil {
		return nil, err
	}
	return uc.rideRepo.ListStatusHistory(ctx, rideID)
}

// DeleteRide soft deletes a finished ride
func (uc *RideUC) DeleteRide(ctx context.Context, rideID uuid.UUID) error {
	ride, err := uc.loadRide(ctx, rideID)
	if err != nil {
		return err
	}
	if !ride.Status.IsTerminal() {
		return apperrors.BadRequest("only completed or canceled rides can be deleted")
	}
	return uc.rideRepo.SoftDeleteRide(ctx, rideID)
}

func (uc *RideUC) loadRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, errRideNotFound
	}
	return ride, nil
}

// ensureRequesterCanAccessRide reports a mismatch as not found so ride ids cannot be enumerated
func ensureRequesterCanAccessRide(ride *models.Ride, requester models.Requester) error {
	if requester.IsInternal() {
		return nil
	}
	switch requester.Role {
	case models.RoleRider:
		if ride.RiderID == requester.ID {
			return nil
		}
	case models.RoleDriver:
		if ride.HasDriver(requester.ID) {
			return nil
		}
	}
	return errRideNotFound
}

// transition is the only place ride status changes
func (uc *RideUC) transition(ctx context.Context, t models.StatusTransition) (*models.TransitionResult, error) {
	result, err := uc.rideRepo.TransitionStatus(ctx, t)
	if err != nil {
		return nil, err
	}
	if result.Changed {
		metrics.RideTransitions.WithLabelValues(statusLabel(t.From), string(t.To)).Inc()
		logger.InfoCtx(ctx, "Ride status changed",
			logger.String("ride_id", t.RideID.String()),
			logger.String("status", string(t.To)),
			logger.String("context", t.Context))
	}
	return result, nil
}

func statusLabel(from []models.RideStatus) string {
	if len(from) == 1 {
		return string(from[0])
	}
	return "ANY"
}

// notify emits a notification; nobody listening is not an error
func (uc *RideUC) notify(ctx context.Context, target models.NotificationTarget, targetID uuid.UUID, event string, payload interface{}) {
	delivered, err := uc.notifier.Emit(ctx, target, targetID, event, payload)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to emit notification",
			logger.String("event", event),
			logger.String("target", string(target)),
			logger.String("target_id", targetID.String()),
			logger.Err(err))
		return
	}
	if !delivered {
		logger.WarnCtx(ctx, "Notification had no subscriber",
			logger.String("event", event),
			logger.String("target", string(target)),
			logger.String("target_id", targetID.String()))
	}
}

func (uc *RideUC) publish(ctx context.Context, subject string, ride *models.Ride, fare *models.FareBreakdown, reason string) {
	event := models.RideEvent{
		RideID:        ride.ID,
		RiderID:       ride.RiderID,
		DriverID:      ride.DriverID,
		Status:        ride.Status,
		Fare:          fare,
		PaymentStatus: ride.PaymentStatus,
		Reason:        reason,
		OccurredAt:    uc.now().UTC(),
	}
	if err := uc.events.PublishRideEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish ride event",
			logger.String("subject", subject),
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
