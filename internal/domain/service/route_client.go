package service

import (
	"context"

	"tracker/internal/domain/entity"
)

// RouteAPI is the request/response surface of the remote route
// optimization and tracking service.
type RouteAPI interface {
	// OptimizeRoute asks the optimizer to order at least two addresses
	OptimizeRoute(ctx context.Context, addresses []string, startLocation *string) (*entity.OptimizedRoute, error)

	// GetRoute fetches a previously optimized route
	GetRoute(ctx context.Context, routeID string) (*entity.OptimizedRoute, error)

	// StartDelivery transitions the route to in_progress and opens a delivery
	StartDelivery(ctx context.Context, routeID string) (*entity.DeliveryStart, error)

	// UpdateLocation pushes the courier's position; best-effort
	UpdateLocation(ctx context.Context, deliveryID string, location entity.Coordinate) error

	// CompleteStop marks one stop as delivered; repeated calls are not errors
	CompleteStop(ctx context.Context, deliveryID string, stopIndex int) error

	// CompleteDelivery marks the whole delivery as done; repeated calls are not errors
	CompleteDelivery(ctx context.Context, deliveryID string) error
}

// RealtimeChannel is the persistent event stream of the route service.
type RealtimeChannel interface {
	// Subscribe registers a typed handler table and returns a func that removes it
	Subscribe(handlers entity.EventHandlers) (unsubscribe func())

	// JoinDelivery scopes the event stream to one delivery session
	JoinDelivery(ctx context.Context, deliveryID string) error

	// LeaveDelivery stops receiving events for a delivery session
	LeaveDelivery(ctx context.Context, deliveryID string) error

	// IsConnected reports whether the underlying transport is currently up
	IsConnected() bool
}

// RouteOptimizationClient joins the HTTP API and the real-time channel.
type RouteOptimizationClient interface {
	RouteAPI
	RealtimeChannel
}
