package models

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantRole identifies who recorded a trip location
type ParticipantRole string

const (
	ParticipantDriver ParticipantRole = "DRIVER"
	ParticipantRider  ParticipantRole = "RIDER"
)

// TripLocationEvent is one immutable entry in a ride's ledger event log
type TripLocationEvent struct {
	RideID              uuid.UUID       `json:"ride_id"`
	ParticipantID       uuid.UUID       `json:"participant_id"`
	ParticipantRole     ParticipantRole `json:"participant_role"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	DistanceDeltaMeters float64         `json:"distance_delta_meters"`
	TotalDistanceMeters float64         `json:"total_distance_meters"`
	RecordedAt          time.Time       `json:"recorded_at"`
}

// TripTrack is a flushed ledger event
type TripTrack struct {
	ID                  uuid.UUID       `json:"id" db:"id"`
	RideID              uuid.UUID       `json:"ride_id" db:"ride_id"`
	ParticipantID       uuid.UUID       `json:"participant_id" db:"participant_id"`
	ParticipantRole     ParticipantRole `json:"participant_role" db:"participant_role"`
	Latitude            float64         `json:"latitude" db:"latitude"`
	Longitude           float64         `json:"longitude" db:"longitude"`
	Geohash             string          `json:"geohash" db:"geohash"`
	DistanceDeltaMeters float64         `json:"distance_delta_meters" db:"distance_delta_meters"`
	TotalDistanceMeters float64         `json:"total_distance_meters" db:"total_distance_meters"`
	RecordedAt          time.Time       `json:"recorded_at" db:"recorded_at"`
}

// TripTrackSummary aggregates flushed tracks per ride and role
type TripTrackSummary struct {
	RideID              uuid.UUID       `json:"ride_id" db:"ride_id"`
	ParticipantRole     ParticipantRole `json:"participant_role" db:"participant_role"`
	ParticipantID       uuid.UUID       `json:"participant_id" db:"participant_id"`
	PointsCount         int             `json:"points_count" db:"points_count"`
	TotalDistanceMeters float64         `json:"total_distance_meters" db:"total_distance_meters"`
	LastLatitude        float64         `json:"last_latitude" db:"last_latitude"`
	LastLongitude       float64         `json:"last_longitude" db:"last_longitude"`
	LastRecordedAt      time.Time       `json:"last_recorded_at" db:"last_recorded_at"`
}

// LedgerSnapshot is the live ledger state of a ride
type LedgerSnapshot struct {
	RideID              uuid.UUID `json:"ride_id"`
	LastDriverLocation  *Location `json:"last_driver_location,omitempty"`
	LastRiderLocation   *Location `json:"last_rider_location,omitempty"`
	TotalDistanceMeters float64   `json:"total_distance_meters"`
	Completed           bool      `json:"completed"`
}

// FlushResult reports what a ledger flush persisted for one ride
type FlushResult struct {
	RideID        uuid.UUID `json:"ride_id"`
	TracksWritten int       `json:"tracks_written"`
	Purged        bool      `json:"purged"`
}

// LedgerFlushJob is the trip-ledger queue payload; a nil RideID flushes every active ride
type LedgerFlushJob struct {
	RideID *uuid.UUID `json:"ride_id,omitempty"`
}
