package gateway

import (
	"context"
	"math"

	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
)

const ProviderHaversine = "haversine"

// HaversineProvider estimates a straight-line route at a constant speed
type HaversineProvider struct {
	speedKmh float64
}

// NewHaversineProvider creates the offline fallback provider
func NewHaversineProvider(speedKmh float64) *HaversineProvider {
	if speedKmh <= 0 {
		speedKmh = 30
	}
	return &HaversineProvider{speedKmh: speedKmh}
}

// Name returns the provider label used in metrics
func (p *HaversineProvider) Name() string {
	return ProviderHaversine
}

// Estimate never fails
func (p *HaversineProvider) Estimate(_ context.Context, pickup, dropoff models.Location) (*models.RouteEstimate, error) {
	distanceKm := utils.CalculateDistance(utils.GeoPointFromLocation(pickup), utils.GeoPointFromLocation(dropoff))

	return &models.RouteEstimate{
		DistanceKm:      math.Round(distanceKm*1000) / 1000,
		DurationSeconds: int64(math.Round(distanceKm / p.speedKmh * 3600)),
		Provider:        ProviderHaversine,
	}, nil
}
