package handler

import (
	"net/http"

	"tracker/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and the real-time channel state
type HealthHandler struct {
	channel service.RealtimeChannel
}

func NewHealthHandler(channel service.RouteOptimizationClient) *HealthHandler {
	return &HealthHandler{channel: channel}
}

// HealthCheck always answers 200; a dropped channel reconnects on its own
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":             "ok",
		"realtime_connected": h.channel.IsConnected(),
	})
}
