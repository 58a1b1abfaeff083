package models

import "github.com/google/uuid"

// RouteEstimateRequest is the route estimation job payload
type RouteEstimateRequest struct {
	RideID  uuid.UUID `json:"ride_id"`
	Pickup  Location  `json:"pickup"`
	Dropoff Location  `json:"dropoff"`
}

// RouteEstimate is the route estimation job result
type RouteEstimate struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds int64   `json:"duration_seconds"`
	Provider        string  `json:"provider,omitempty"`
}
