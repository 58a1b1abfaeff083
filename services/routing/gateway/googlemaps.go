package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/rideorchestrator/internal/pkg/models"
	nrpkg "github.com/piresc/rideorchestrator/internal/pkg/newrelic"
	"googlemaps.github.io/maps"
)

const ProviderGoogleMaps = "google_maps"

// ErrNoRoute is returned when the directions API finds no drivable route
var ErrNoRoute = errors.New("no route found")

// GoogleMapsProvider estimates routes with the Directions API
type GoogleMapsProvider struct {
	client *maps.Client
}

// NewGoogleMapsProvider creates a provider; extra options are appended after the API key
func NewGoogleMapsProvider(apiKey string, opts ...maps.ClientOption) (*GoogleMapsProvider, error) {
	options := append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(nrpkg.HTTPClient(nil)),
	}, opts...)

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleMapsProvider{client: client}, nil
}

// Name returns the provider label used in metrics
func (p *GoogleMapsProvider) Name() string {
	return ProviderGoogleMaps
}

// Estimate returns the first route's first leg
func (p *GoogleMapsProvider) Estimate(ctx context.Context, pickup, dropoff models.Location) (*models.RouteEstimate, error) {
	defer nrpkg.StartSegment(ctx, "GoogleMaps.Directions")()

	routes, _, err := p.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLng(pickup),
		Destination: latLng(dropoff),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return &models.RouteEstimate{
		DistanceKm:      float64(leg.Distance.Meters) / 1000,
		DurationSeconds: int64(leg.Duration.Seconds()),
		Provider:        ProviderGoogleMaps,
	}, nil
}

func latLng(loc models.Location) string {
	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude)
}
