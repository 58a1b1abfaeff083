package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/rideorchestrator/internal/pkg/logger"
	"github.com/piresc/rideorchestrator/internal/pkg/middleware"
	"github.com/piresc/rideorchestrator/internal/pkg/models"
	"github.com/piresc/rideorchestrator/internal/utils"
	"github.com/piresc/rideorchestrator/services/rides"
)

// RideHandler handles HTTP requests for the ride lifecycle
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

// CreateRide requests a ride for the calling rider
func (h *RideHandler) CreateRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to bind request", logger.Err(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	req.RiderID = requester.ID

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride requested", ride)
}

// GetRide returns one ride. Without an authenticated caller the request came through the internal group.
func (h *RideHandler) GetRide(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}
	requester, _ := middleware.RequesterFromContext(c)

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID, requester)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

// GetRideHistory returns the status audit trail of a ride
func (h *RideHandler) GetRideHistory(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	history, err := h.rideUC.GetRideHistory(c.Request().Context(), rideID, requester)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride history retrieved", history)
}

// DeleteRide soft deletes a finished ride
func (h *RideHandler) DeleteRide(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	if err := h.rideUC.DeleteRide(c.Request().Context(), rideID); err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted", nil)
}

// AcceptRide claims the ride for the calling driver
func (h *RideHandler) AcceptRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.AcceptRide(c.Request().Context(), rideID, requester.ID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// DeclineRide refuses the calling driver's invitation
func (h *RideHandler) DeclineRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.DeclineRideRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.DeclineRide(c.Request().Context(), rideID, requester.ID, req.Reason)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride declined", ride)
}

// ConfirmDriver approves the driver that accepted the calling rider's ride
func (h *RideHandler) ConfirmDriver(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.ConfirmDriver(c.Request().Context(), rideID, requester.ID)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver confirmed", ride)
}

// RejectDriver sends the accepted driver away
func (h *RideHandler) RejectDriver(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.DeclineRideRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.RejectDriver(c.Request().Context(), rideID, requester.ID, req.Reason)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver rejected", ride)
}

// CancelRide cancels the calling rider's ride
func (h *RideHandler) CancelRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.CancelRideRequest
	if err := bindOptional(c, &req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), rideID, requester.ID, req.Reason)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride canceled", ride)
}

// StartRide begins the trip; the body carries the driver's position
func (h *RideHandler) StartRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.TripActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ride, err := h.rideUC.StartRide(c.Request().Context(), rideID, requester.ID, req.Location)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip started", ride)
}

// CompleteRide ends the trip and returns the fare breakdown
func (h *RideHandler) CompleteRide(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.TripActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	completion, err := h.rideUC.CompleteRide(c.Request().Context(), rideID, requester.ID, req.Location, req.DiscountAmount)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip completed", completion)
}

// RecordTripLocation stores the caller's position in the trip ledger
func (h *RideHandler) RecordTripLocation(c echo.Context) error {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.TripActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	event, err := h.rideUC.RecordTripLocation(c.Request().Context(), rideID, requester, req.Location)
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", event)
}

func parseRideID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

// bindOptional binds a body that callers may omit entirely
func bindOptional(c echo.Context, dst interface{}) error {
	if c.Request().ContentLength == 0 {
		return nil
	}
	return c.Bind(dst)
}
