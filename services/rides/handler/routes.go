package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/middleware"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/rides"
	httpHandler "github.com/piresc/rideorchestrator/services/rides/handler/http"
)

// HTTPHandler combines all handlers for the rides service
type HTTPHandler struct {
	rideHTTP *httpHandler.RideHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(rideUC rides.RideUC) *HTTPHandler {
	return &HTTPHandler{
		rideHTTP: httpHandler.NewRideHandler(rideUC),
	}
}

// RegisterRoutes registers the ride lifecycle routes behind auth and the maintenance routes behind internalAuth
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, auth, internalAuth echo.MiddlewareFunc) {
	rider := middleware.RequireRole(models.RoleRider)
	driver := middleware.RequireRole(models.RoleDriver)

	ridesGroup := e.Group("/rides", auth)
	ridesGroup.POST("", h.rideHTTP.CreateRide, rider)
	ridesGroup.GET("/:rideID", h.rideHTTP.GetRide)
	ridesGroup.GET("/:rideID/history", h.rideHTTP.GetRideHistory)

	ridesGroup.POST("/:rideID/accept", h.rideHTTP.AcceptRide, driver)
	ridesGroup.POST("/:rideID/decline", h.rideHTTP.DeclineRide, driver)
	ridesGroup.POST("/:rideID/confirm", h.rideHTTP.ConfirmDriver, rider)
	ridesGroup.POST("/:rideID/reject-driver", h.rideHTTP.RejectDriver, rider)
	ridesGroup.POST("/:rideID/cancel", h.rideHTTP.CancelRide, rider)

	ridesGroup.POST("/:rideID/start", h.rideHTTP.StartRide, driver)
	ridesGroup.POST("/:rideID/complete", h.rideHTTP.CompleteRide, driver)
	ridesGroup.POST("/:rideID/locations", h.rideHTTP.RecordTripLocation, middleware.RequireRole(models.RoleDriver, models.RoleRider))

	internal := e.Group("/internal", internalAuth)
	internal.GET("/rides/:rideID", h.rideHTTP.GetRide)
	internal.DELETE("/rides/:rideID", h.rideHTTP.DeleteRide)
}
