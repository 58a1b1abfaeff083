package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/middleware"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/services/location"
	httpHandler "github.com/piresc/rideorchestrator/services/location/handler/http"
)

// HTTPHandler combines all handlers for the location service
type HTTPHandler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(locationUC location.LocationUC) *HTTPHandler {
	return &HTTPHandler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers the driver routes behind auth and the lookup route behind internalAuth
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, auth, internalAuth echo.MiddlewareFunc) {
	drivers := e.Group("/drivers", auth, middleware.RequireRole(models.RoleDriver))
	drivers.PUT("/location", h.locationHTTP.UpdateDriverLocation)
	drivers.PUT("/availability", h.locationHTTP.UpdateDriverAvailability)

	internal := e.Group("/internal", internalAuth)
	internal.GET("/drivers/nearby", h.locationHTTP.FindNearbyDrivers)
}
