package gateway

import (
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/routing"
)

// NewProviders returns the Directions API provider when an API key is configured (nil otherwise)
// and the haversine fallback
func NewProviders(cfg models.RoutingConfig) (primary, fallback routing.RouteProvider, err error) {
	fallback = NewHaversineProvider(cfg.AverageSpeedKmh)
	if cfg.GoogleMapsAPIKey == "" {
		return nil, fallback, nil
	}

	directions, err := NewGoogleMapsProvider(cfg.GoogleMapsAPIKey)
	if err != nil {
		return nil, nil, err
	}
	return directions, fallback, nil
}
