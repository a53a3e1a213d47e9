package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Samples    service.SampleSink
	Logger     *slog.Logger
}

// TrackingHandler exposes the delivery tracking engine
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	samples    service.SampleSink
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		samples:    params.Samples,
		logger:     params.Logger,
	}
}

// StartTrackingRequest represents the request body for starting a delivery
type StartTrackingRequest struct {
	RouteID string `json:"route_id" validate:"required"`
}

// LocationRequest is a device GPS sample
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// TrackingResponse is the engine state with the live progress, if any
type TrackingResponse struct {
	State    entity.TrackingState     `json:"state"`
	Progress *entity.DeliveryProgress `json:"progress,omitempty"`
}

// MilestonesResponse is the milestone log of the active or last delivery
type MilestonesResponse struct {
	State      entity.TrackingState       `json:"state"`
	Milestones []entity.DeliveryMilestone `json:"milestones"`
}

// StartTracking fetches a route and starts tracking its delivery
func (h *TrackingHandler) StartTracking(c echo.Context) error {
	var req StartTrackingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	progress, err := h.trackingUC.TrackRoute(c.Request().Context(), req.RouteID)
	if err != nil {
		return fail(c, h.logger, "track route", err)
	}

	return response.Success(c, http.StatusCreated, TrackingResponse{
		State:    h.trackingUC.State(),
		Progress: progress,
	})
}

// StopTracking ends the live delivery session, if any
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	h.trackingUC.StopTracking(c.Request().Context())

	return response.Success(c, http.StatusOK, TrackingResponse{
		State: h.trackingUC.State(),
	})
}

// GetTracking returns the live progress
func (h *TrackingHandler) GetTracking(c echo.Context) error {
	progress, ok := h.trackingUC.CurrentDelivery()
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("no delivery is being tracked"))
	}

	return response.Success(c, http.StatusOK, TrackingResponse{
		State:    h.trackingUC.State(),
		Progress: progress,
	})
}

// GetMilestones returns the milestone log
func (h *TrackingHandler) GetMilestones(c echo.Context) error {
	return response.Success(c, http.StatusOK, MilestonesResponse{
		State:      h.trackingUC.State(),
		Milestones: h.trackingUC.Milestones(),
	})
}

// CompleteStop asks the route service to complete one stop. The progress
// advances when the service confirms it.
func (h *TrackingHandler) CompleteStop(c echo.Context) error {
	stopIndex, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return response.BadRequest(c, "INVALID_STOP_INDEX", "Stop index must be an integer")
	}

	if err := h.trackingUC.CompleteStop(c.Request().Context(), stopIndex); err != nil {
		return fail(c, h.logger, "complete stop", err)
	}

	return response.Success(c, http.StatusAccepted, map[string]int{"stop_index": stopIndex})
}

// CompleteDelivery asks the route service to complete the whole delivery
func (h *TrackingHandler) CompleteDelivery(c echo.Context) error {
	if err := h.trackingUC.CompleteDelivery(c.Request().Context()); err != nil {
		return fail(c, h.logger, "complete delivery", err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "requested"})
}

// SubmitLocation feeds a device GPS sample to the location sensor
func (h *TrackingHandler) SubmitLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "input validation failed", err.Error())
	}

	accepted, err := h.samples.Submit(entity.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude})
	if err != nil {
		return fail(c, h.logger, "submit location", err)
	}

	return response.Success(c, http.StatusAccepted, map[string]bool{"accepted": accepted})
}
