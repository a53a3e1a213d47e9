// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TrackingHandler *handler.TrackingHandler
	RouteHandler    *handler.RouteHandler
	HealthHandler   *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	trackingHandler *handler.TrackingHandler
	routeHandler    *handler.RouteHandler
	healthHandler   *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		trackingHandler: params.TrackingHandler,
		routeHandler:    params.RouteHandler,
		healthHandler:   params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	routesGroup := e.Group("/routes")
	{
		routesGroup.POST("/optimize", r.routeHandler.OptimizeRoute)
		routesGroup.GET("/:id", r.routeHandler.GetRoute)
	}

	trackingGroup := e.Group("/tracking")
	{
		trackingGroup.GET("", r.trackingHandler.GetTracking)
		trackingGroup.POST("/start", r.trackingHandler.StartTracking)
		trackingGroup.POST("/stop", r.trackingHandler.StopTracking)
		trackingGroup.GET("/milestones", r.trackingHandler.GetMilestones)
		trackingGroup.POST("/stops/:index/complete", r.trackingHandler.CompleteStop)
		trackingGroup.POST("/complete", r.trackingHandler.CompleteDelivery)
		trackingGroup.POST("/location", r.trackingHandler.SubmitLocation)
	}

	// Stored snapshots, available when Redis is configured
	e.GET("/deliveries/:id", r.routeHandler.GetDelivery)
}
