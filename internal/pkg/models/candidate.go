package models

import (
	"time"

	"github.com/google/uuid"
)

// CandidateStatus represents the state of a driver's offer for a ride
type CandidateStatus string

const (
	CandidateStatusInvited   CandidateStatus = "INVITED"
	CandidateStatusAccepted  CandidateStatus = "ACCEPTED"
	CandidateStatusDeclined  CandidateStatus = "DECLINED"
	CandidateStatusConfirmed CandidateStatus = "CONFIRMED"
	CandidateStatusCanceled  CandidateStatus = "CANCELED"
)

// ActiveCandidateStatuses are the statuses that can still be moved
var ActiveCandidateStatuses = []CandidateStatus{
	CandidateStatusInvited,
	CandidateStatusAccepted,
}

// IsActive reports whether the candidate can still accept or be confirmed
func (s CandidateStatus) IsActive() bool {
	return s == CandidateStatusInvited || s == CandidateStatusAccepted
}

// Candidate reasons
const (
	ReasonAnotherDriverAccepted = "Another driver already accepted"
	ReasonConfirmedAnother      = "Ride confirmed with another driver"
	ReasonRiderRejected         = "Rider rejected driver"
	ReasonRideCanceled          = "Ride canceled by rider"
	ReasonNoDriversAccepted     = "No drivers accepted"
)

// RideDriverCandidate is one invited driver for a ride
type RideDriverCandidate struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	RideID         uuid.UUID       `json:"ride_id" db:"ride_id"`
	DriverID       uuid.UUID       `json:"driver_id" db:"driver_id"`
	Status         CandidateStatus `json:"status" db:"status"`
	DistanceMeters float64         `json:"distance_meters" db:"distance_meters"`
	Reason         *string         `json:"reason,omitempty" db:"reason"`
	RespondedAt    *time.Time      `json:"responded_at,omitempty" db:"responded_at"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// NearbyDriver is a driver returned by the location index
type NearbyDriver struct {
	DriverID       uuid.UUID `json:"driver_id"`
	DistanceMeters float64   `json:"distance_meters"`
}
