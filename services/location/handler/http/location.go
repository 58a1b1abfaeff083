package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/middleware"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateDriverLocation stores the calling driver's current position
func (h *LocationHandler) UpdateDriverLocation(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverLocationUpdate
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.UpdateDriverLocation(c.Request().Context(), requester.ID, req.Location); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// UpdateDriverAvailability toggles whether the calling driver receives offers
func (h *LocationHandler) UpdateDriverAvailability(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverAvailabilityUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.SetDriverAvailability(c.Request().Context(), requester.ID, req.Available); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated", req)
}

// FindNearbyDrivers lists available drivers near lat/lng
func (h *LocationHandler) FindNearbyDrivers(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	radius := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius")
		}
		radius = parsed
	}

	limit := 10
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid limit")
		}
		limit = parsed
	}

	drivers, err := h.locationUC.GetNearbyDrivers(c.Request().Context(), models.Location{Latitude: lat, Longitude: lng}, radius, limit)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", drivers)
}
