package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusRequested          RideStatus = "REQUESTED"
	RideStatusCandidatesComputed RideStatus = "CANDIDATES_COMPUTED"
	RideStatusAssigned           RideStatus = "ASSIGNED"
	RideStatusAccepted           RideStatus = "ACCEPTED"
	RideStatusEnroute            RideStatus = "ENROUTE"
	RideStatusTripStarted        RideStatus = "TRIP_STARTED"
	RideStatusCompleted          RideStatus = "COMPLETED"
	RideStatusCanceled           RideStatus = "CANCELED"
)

// IsTerminal reports whether no further transition can leave the status
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCanceled
}

// NonTerminalRideStatuses lists every status CANCELED can be reached from
var NonTerminalRideStatuses = []RideStatus{
	RideStatusRequested,
	RideStatusCandidatesComputed,
	RideStatusAssigned,
	RideStatusAccepted,
	RideStatusEnroute,
	RideStatusTripStarted,
}

// PaymentStatus represents the payment state of a completed ride
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Ride represents a ride record
type Ride struct {
	ID                       uuid.UUID      `json:"id" db:"id"`
	RiderID                  uuid.UUID      `json:"rider_id" db:"rider_id"`
	DriverID                 *uuid.UUID     `json:"driver_id,omitempty" db:"driver_id"`
	PickupLatitude           float64        `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude          float64        `json:"pickup_longitude" db:"pickup_longitude"`
	DropoffLatitude          float64        `json:"dropoff_latitude" db:"dropoff_latitude"`
	DropoffLongitude         float64        `json:"dropoff_longitude" db:"dropoff_longitude"`
	Note                     *string        `json:"note,omitempty" db:"note"`
	Status                   RideStatus     `json:"status" db:"status"`
	FareEstimated            *float64       `json:"fare_estimated,omitempty" db:"fare_estimated"`
	FareFinal                *float64       `json:"fare_final,omitempty" db:"fare_final"`
	DistanceEstimatedKm      *float64       `json:"distance_estimated_km,omitempty" db:"distance_estimated_km"`
	DistanceActualKm         *float64       `json:"distance_actual_km,omitempty" db:"distance_actual_km"`
	DurationEstimatedSeconds *int64         `json:"duration_estimated_seconds,omitempty" db:"duration_estimated_seconds"`
	DiscountAmount           *float64       `json:"discount_amount,omitempty" db:"discount_amount"`
	AppFeeAmount             *float64       `json:"app_fee_amount,omitempty" db:"app_fee_amount"`
	PaymentStatus            *PaymentStatus `json:"payment_status,omitempty" db:"payment_status"`
	PaymentURL               *string        `json:"payment_url,omitempty" db:"payment_url"`
	CancelReason             *string        `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt                time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time      `json:"updated_at" db:"updated_at"`
	StartedAt                *time.Time     `json:"started_at,omitempty" db:"started_at"`
	CompletedAt              *time.Time     `json:"completed_at,omitempty" db:"completed_at"`
	CanceledAt               *time.Time     `json:"canceled_at,omitempty" db:"canceled_at"`
	DeletedAt                *time.Time     `json:"-" db:"deleted_at"`
}

// Pickup returns the pickup point
func (r *Ride) Pickup() Location {
	return Location{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude}
}

// Dropoff returns the dropoff point
func (r *Ride) Dropoff() Location {
	return Location{Latitude: r.DropoffLatitude, Longitude: r.DropoffLongitude}
}

// HasDriver reports whether driverID currently holds the ride
func (r *Ride) HasDriver(driverID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

// RideStatusHistory is one append-only audit row per status change
type RideStatusHistory struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	RideID     uuid.UUID   `json:"ride_id" db:"ride_id"`
	FromStatus *RideStatus `json:"from_status,omitempty" db:"from_status"`
	ToStatus   RideStatus  `json:"to_status" db:"to_status"`
	Context    *string     `json:"context,omitempty" db:"context"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}

// CreateRideRequest carries a rider's ride request
type CreateRideRequest struct {
	RiderID    uuid.UUID `json:"-"`
	Pickup     Location  `json:"pickup"`
	Dropoff    Location  `json:"dropoff"`
	Note       *string   `json:"note,omitempty"`
	MaxDrivers *int      `json:"max_drivers,omitempty"`
}

// CancelRideRequest carries a rider's cancellation
type CancelRideRequest struct {
	Reason string `json:"reason"`
}

// DeclineRideRequest carries a driver's decline or a rider's rejection reason
type DeclineRideRequest struct {
	Reason string `json:"reason"`
}

// CompletionUpdate holds the values written onto a ride when it completes
type CompletionUpdate struct {
	DistanceActualKm float64
	DiscountAmount   float64
	FareFinal        float64
	AppFeeAmount     float64
}

// RouteEstimateUpdate holds the route values written onto a freshly created ride
type RouteEstimateUpdate struct {
	DistanceEstimatedKm      float64
	DurationEstimatedSeconds int64
	FareEstimated            *float64
}

// RideEvent is published on the event bus for downstream subsystems
type RideEvent struct {
	RideID        uuid.UUID      `json:"ride_id"`
	RiderID       uuid.UUID      `json:"rider_id"`
	DriverID      *uuid.UUID     `json:"driver_id,omitempty"`
	Status        RideStatus     `json:"status"`
	Fare          *FareBreakdown `json:"fare,omitempty"`
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	Reason        string         `json:"reason,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

// StatusTransition describes one guarded status change. Everything it carries is written
// in one transaction with the status and its history rows, or nothing is.
type StatusTransition struct {
	RideID  uuid.UUID
	From    []RideStatus
	To      RideStatus
	Context string
	// Via are intermediate statuses recorded in history between the current status and To
	Via []TransitionStep
	// ClaimDriverID claims the ride for a driver; the transition applies only while no driver is set
	ClaimDriverID *uuid.UUID
	// HeldBy restricts the transition to a ride held by this driver
	HeldBy       *uuid.UUID
	ClearDriver  bool
	Completion   *CompletionUpdate
	CancelReason *string
	Candidate    *CandidateChange
	Sweep        *CandidateSweep
}

// TransitionStep is one intermediate history entry of a transition
type TransitionStep struct {
	Status  RideStatus
	Context string
}

// CandidateChange moves one invitation. The transition fails with a conflict when the
// invitation is not in one of From.
type CandidateChange struct {
	DriverID uuid.UUID
	From     []CandidateStatus
	To       CandidateStatus
	Reason   *string
}

// CandidateSweep cancels every active invitation except KeepDriverID's
type CandidateSweep struct {
	KeepDriverID *uuid.UUID
	Reason       string
}

// TransitionResult is the ride as stored after a transition attempt
type TransitionResult struct {
	Ride    *Ride
	Changed bool
	// Previous is the ride as it was locked before a change
	Previous *Ride
	// CanceledDrivers are the drivers whose invitations the sweep canceled
	CanceledDrivers []uuid.UUID
}

// Allows reports whether the transition may leave status
func (t StatusTransition) Allows(status RideStatus) bool {
	for _, from := range t.From {
		if from == status {
			return true
		}
	}
	return false
}

// Applies reports whether the transition may change ride as it currently is
func (t StatusTransition) Applies(ride *Ride) bool {
	if ride.Status == t.To || !t.Allows(ride.Status) {
		return false
	}
	if t.ClaimDriverID != nil && ride.DriverID != nil {
		return false
	}
	if t.HeldBy != nil && !ride.HasDriver(*t.HeldBy) {
		return false
	}
	return true
}

// ClearsDriver reports whether the stored ride loses its driver. Canceled rides never keep one.
func (t StatusTransition) ClearsDriver() bool {
	return t.ClearDriver || t.To == RideStatusCanceled
}

// Allows reports whether an invitation in status may be moved by the change
func (c CandidateChange) Allows(status CandidateStatus) bool {
	for _, from := range c.From {
		if from == status {
			return true
		}
	}
	return false
}

// TripActionRequest is the body of start, complete and location calls
type TripActionRequest struct {
	Location       Location `json:"location"`
	DiscountAmount *float64 `json:"discount_amount,omitempty"`
}

// RideCompletion is returned when a trip completes
type RideCompletion struct {
	Ride *Ride         `json:"ride"`
	Fare FareBreakdown `json:"fare"`
}
