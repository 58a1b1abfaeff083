package models

import "time"

// Location represents a geographic location
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// DriverLocationUpdate is a driver position reported to the location index
type DriverLocationUpdate struct {
	Location
}

// DriverAvailabilityUpdate toggles whether a driver receives offers
type DriverAvailabilityUpdate struct {
	Available bool `json:"available"`
}
