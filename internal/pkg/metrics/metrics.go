package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RideTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ride_status_transitions_total",
		Help: "Ride status transitions that changed state.",
	}, []string{"from", "to"})

	DriverClaims = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ride_driver_claims_total",
		Help: "Driver claim attempts grouped by outcome.",
	}, []string{"result"})

	RouteEstimations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "route_estimations_total",
		Help: "Route estimation jobs grouped by provider and outcome.",
	}, []string{"provider", "result"})

	RouteEstimationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "route_estimation_duration_seconds",
		Help:    "Time from enqueueing a route estimation job to receiving its result.",
		Buckets: prometheus.DefBuckets,
	}, []string{"result"})

	LedgerFlushedTracks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trip_ledger_flushed_tracks_total",
		Help: "Trip track rows persisted by ledger flushes.",
	})

	LedgerPurgedRides = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trip_ledger_purged_rides_total",
		Help: "Completed rides whose ledger state was deleted.",
	})

	NotificationsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ride_notifications_total",
		Help: "Notifications emitted grouped by target and delivery.",
	}, []string{"target", "delivered"})
)

// Register mounts the Prometheus scrape endpoint
func Register(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
