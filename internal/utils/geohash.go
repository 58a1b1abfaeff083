package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
)

// DefaultGeohashPrecision gives cells of roughly 150m x 150m
const DefaultGeohashPrecision uint = 7

const earthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to the center latitude and longitude of its cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.DecodeCenter(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceMeters is the great-circle distance between two locations in meters
func DistanceMeters(a, b models.Location) float64 {
	return CalculateDistance(GeoPointFromLocation(a), GeoPointFromLocation(b)) * 1000
}

// WithinRadius reports whether two locations are at most radiusMeters apart
func WithinRadius(a, b models.Location, radiusMeters float64) bool {
	return DistanceMeters(a, b) <= radiusMeters
}

// ValidCoordinates reports whether the location is a real point on earth
func ValidCoordinates(location models.Location) bool {
	if math.IsNaN(location.Latitude) || math.IsNaN(location.Longitude) {
		return false
	}
	return location.Latitude >= -90 && location.Latitude <= 90 &&
		location.Longitude >= -180 && location.Longitude <= 180
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
