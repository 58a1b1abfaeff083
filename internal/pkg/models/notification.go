package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTarget is the audience of a notification
type NotificationTarget string

const (
	TargetDriver NotificationTarget = "driver"
	TargetRider  NotificationTarget = "rider"
)

// Notification is the envelope published to a target channel
type Notification struct {
	Event     string             `json:"event"`
	Target    NotificationTarget `json:"target"`
	TargetID  uuid.UUID          `json:"target_id"`
	Payload   interface{}        `json:"payload,omitempty"`
	EmittedAt time.Time          `json:"emitted_at"`
}

// RideOfferPayload is sent to every invited candidate
type RideOfferPayload struct {
	RideID          uuid.UUID      `json:"ride_id"`
	Pickup          Location       `json:"pickup"`
	Dropoff         Location       `json:"dropoff"`
	PickupGeohash   string         `json:"pickup_geohash"`
	DistanceMeters  float64        `json:"distance_meters"`
	Route           *RouteEstimate `json:"route,omitempty"`
	FareEstimated   *float64       `json:"fare_estimated,omitempty"`
	CandidateStatus string         `json:"candidate_status"`
}

// RideUpdatePayload is sent on every lifecycle change
type RideUpdatePayload struct {
	RideID   uuid.UUID      `json:"ride_id"`
	Status   RideStatus     `json:"status"`
	DriverID *uuid.UUID     `json:"driver_id,omitempty"`
	Reason   string         `json:"reason,omitempty"`
	Fare     *FareBreakdown `json:"fare,omitempty"`
}
