package impl

import (
	"context"
	"log/slog"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"
)

type routeService struct {
	client service.RouteAPI
	logger *slog.Logger
}

// NewRouteService creates a new route service instance
func NewRouteService(client service.RouteOptimizationClient, logger *slog.Logger) usecase.RouteUsecase {
	return &routeService{
		client: client,
		logger: logger,
	}
}

// OptimizeRoute orders the input addresses through the route service
func (s *routeService) OptimizeRoute(ctx context.Context, input *usecase.OptimizeRouteInput) (*entity.OptimizedRoute, error) {
	route, err := s.client.OptimizeRoute(ctx, input.Addresses, input.StartLocation)
	if err != nil {
		return nil, err
	}

	s.logger.Info("[Route] Route optimized",
		slog.String("route_id", route.RouteID),
		slog.Int("stops", len(route.Stops)),
		slog.Float64("total_distance_km", route.TotalDistanceKm),
	)

	return route, nil
}

// GetRoute fetches a previously optimized route
func (s *routeService) GetRoute(ctx context.Context, routeID string) (*entity.OptimizedRoute, error) {
	return s.client.GetRoute(ctx, routeID)
}

var errNoSnapshots = domainerrors.ErrNotFound.WithDetails("delivery snapshots are disabled")

type historyService struct {
	store service.SnapshotStore
}

// NewHistoryService creates a history service over the snapshot store. A nil
// store reports every delivery as not found.
func NewHistoryService(store service.SnapshotStore) usecase.HistoryUsecase {
	return &historyService{store: store}
}

// GetDelivery returns the last stored snapshot of a delivery
func (s *historyService) GetDelivery(ctx context.Context, deliveryID string) (*usecase.DeliverySnapshot, error) {
	if s.store == nil {
		return nil, errNoSnapshots
	}

	progress, err := s.store.LoadProgress(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.store.LoadMilestones(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	return &usecase.DeliverySnapshot{
		Progress:   progress,
		Milestones: milestones,
	}, nil
}
