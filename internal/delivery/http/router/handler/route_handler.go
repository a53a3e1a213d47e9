package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"tracker/internal/delivery/http/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC   usecase.RouteUsecase
	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// RouteHandler serves route planning and delivery history
type RouteHandler struct {
	routeUC   usecase.RouteUsecase
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC:   params.RouteUC,
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// OptimizeRouteRequest represents the request body for route optimization
type OptimizeRouteRequest struct {
	Addresses     []string `json:"addresses" validate:"required,min=2,dive,required"`
	StartLocation *string  `json:"start_location,omitempty"`
}

// OptimizeRoute orders the given addresses into a delivery route
func (h *RouteHandler) OptimizeRoute(c echo.Context) error {
	var req OptimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	for i := range req.Addresses {
		req.Addresses[i] = strings.TrimSpace(req.Addresses[i])
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "At least two non-empty addresses are required", err.Error())
	}

	route, err := h.routeUC.OptimizeRoute(c.Request().Context(), &usecase.OptimizeRouteInput{
		Addresses:     req.Addresses,
		StartLocation: req.StartLocation,
	})
	if err != nil {
		return fail(c, h.logger, "optimize route", err)
	}

	return response.Success(c, http.StatusOK, route)
}

// GetRoute returns a previously optimized route
func (h *RouteHandler) GetRoute(c echo.Context) error {
	route, err := h.routeUC.GetRoute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, "get route", err)
	}

	return response.Success(c, http.StatusOK, route)
}

// GetDelivery returns the stored snapshot of a delivery
func (h *RouteHandler) GetDelivery(c echo.Context) error {
	snapshot, err := h.historyUC.GetDelivery(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, "get delivery", err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}
