package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// OptimizeRouteInput represents the input for optimizing a route
type OptimizeRouteInput struct {
	Addresses     []string `json:"addresses" validate:"required,min=2,dive,required"`
	StartLocation *string  `json:"start_location,omitempty"`
}

// RouteUsecase defines route planning use cases
type RouteUsecase interface {
	// OptimizeRoute orders at least two addresses into a delivery route
	OptimizeRoute(ctx context.Context, input *OptimizeRouteInput) (*entity.OptimizedRoute, error)

	// GetRoute fetches a previously optimized route
	GetRoute(ctx context.Context, routeID string) (*entity.OptimizedRoute, error)
}

// DeliverySnapshot is the stored record of a delivery
type DeliverySnapshot struct {
	Progress   *entity.DeliveryProgress   `json:"progress"`
	Milestones []entity.DeliveryMilestone `json:"milestones"`
}

// HistoryUsecase reads delivery snapshots kept outside the process
type HistoryUsecase interface {
	// GetDelivery returns the last stored snapshot of a delivery
	GetDelivery(ctx context.Context, deliveryID string) (*DeliverySnapshot, error)
}
