package models

// FareBreakdown is the result of a fare calculation
type FareBreakdown struct {
	DistanceKm        float64 `json:"distance_km"`
	BaseFare          float64 `json:"base_fare"`
	DiscountAmount    float64 `json:"discount_amount"`
	DiscountPercent   float64 `json:"discount_percent"`
	FareAfterDiscount float64 `json:"fare_after_discount"`
	AppFee            float64 `json:"app_fee"`
	FinalFare         float64 `json:"final_fare"`
	Currency          string  `json:"currency"`
}
