package constants

// Notification event names
const (
	EventRideOffer         = "ride.offer"
	EventRideMatching      = "ride.matching"
	EventRideAccepted      = "ride.accepted"
	EventRideConfirmed     = "ride.confirmed"
	EventRideRejected      = "ride.rejected"
	EventRideDeclined      = "ride.declined"
	EventRideCanceled      = "ride.canceled"
	EventRideOfferCanceled = "ride.offer_canceled"
	EventRideStarted       = "ride.started"
	EventRideCompleted     = "ride.completed"
)

// Queue names and job id formats
const (
	QueueRouteEstimation = "route-estimation"
	QueueTripLedger      = "trip-ledger"

	JobRouteEstimation    = "ride-%s-route-estimation" // Format: ride-{ride_id}-route-estimation
	JobLedgerFlush        = "trip-ledger-flush-%d"     // Format: trip-ledger-flush-{interval_slot}
	JobLedgerFlushForRide = "trip-ledger-flush-%s"     // Format: trip-ledger-flush-{ride_id}
)

// Status history contexts
const (
	ContextRideCreated        = "ride_created"
	ContextCandidatesComputed = "candidates_computed"
	ContextDriverClaimed      = "driver_claimed"
	ContextDriverAccepted     = "driver_accepted"
	ContextRiderConfirmed     = "rider_confirmed"
	ContextRiderRejected      = "rider_rejected_driver"
	ContextDriverDeclined     = "driver_declined"
	ContextRiderCanceled      = "rider_canceled"
	ContextNoDriversAccepted  = "no_drivers_accepted"
	ContextTripStarted        = "trip_started"
	ContextTripCompleted      = "trip_completed"
)
