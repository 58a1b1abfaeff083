package usecase

import (
	"math"

	"github.com/piresc/rideorchestrator/internal/pkg/apperrors"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/billing"
)

// fareUC implements billing.FareUC with the configured pricing rules
type fareUC struct {
	pricing models.PricingConfig
}

// NewFareUC creates a fare calculator
func NewFareUC(pricing models.PricingConfig) billing.FareUC {
	return &fareUC{pricing: pricing}
}

// CalculateFare computes the full breakdown:
// base = distance x rate, minus discount, plus app fee (minimum fee below the threshold).
func (uc *fareUC) CalculateFare(distanceKm float64, discountAmount *float64) (*models.FareBreakdown, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return nil, apperrors.BadRequest("invalid distance")
	}

	distance := round(distanceKm, 3)
	baseFare := math.Max(0, distance*uc.pricing.RatePerKm)

	discount := 0.0
	if discountAmount != nil {
		discount = *discountAmount
	}
	if math.IsNaN(discount) || discount < 0 {
		return nil, apperrors.BadRequest("discount must not be negative")
	}
	if discount > baseFare {
		return nil, apperrors.BadRequest("discount exceeds base fare")
	}

	fareAfterDiscount := baseFare - discount

	discountPercent := 0.0
	if baseFare > 0 {
		discountPercent = clamp(discount/baseFare*100, 0, 100)
	}

	appFee := uc.pricing.MinimumAppFee
	if fareAfterDiscount > 0 && fareAfterDiscount >= uc.pricing.MinimumFareThreshold {
		appFee = fareAfterDiscount * uc.pricing.AppFeePercent / 100
	}

	return &models.FareBreakdown{
		DistanceKm:        distance,
		BaseFare:          money(baseFare),
		DiscountAmount:    money(discount),
		DiscountPercent:   round(discountPercent, 2),
		FareAfterDiscount: money(fareAfterDiscount),
		AppFee:            money(appFee),
		FinalFare:         money(fareAfterDiscount + appFee),
		Currency:          uc.pricing.Currency,
	}, nil
}

// CalculateEstimatedFare projects distance x rate for a fresh ride; nil when distance is unknown
func (uc *fareUC) CalculateEstimatedFare(distanceKm *float64) *float64 {
	if distanceKm == nil || math.IsNaN(*distanceKm) || math.IsInf(*distanceKm, 0) {
		return nil
	}
	estimate := money(round(*distanceKm, 3) * uc.pricing.RatePerKm)
	return &estimate
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// money rounds to cents and floors at zero
func money(value float64) float64 {
	return math.Max(0, round(value, 2))
}

func clamp(value, min, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}
