package billing

import "github.com/piresc/rideorchestrator/internal/pkg/models"

// FareUC computes ride fares from distance and discount
type FareUC interface {
	CalculateFare(distanceKm float64, discountAmount *float64) (*models.FareBreakdown, error)
	CalculateEstimatedFare(distanceKm *float64) *float64
}
