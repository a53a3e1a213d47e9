package usecase

import (
	"context"

	"tracker/internal/domain/entity"
)

// ListenerID identifies a registered milestone listener
type ListenerID uint64

// MilestoneListener receives every milestone appended to the active delivery's
// log together with the progress snapshot taken right after the append
type MilestoneListener func(milestone entity.DeliveryMilestone, progress *entity.DeliveryProgress)

// TrackingUsecase defines the delivery tracking engine. It holds at most one
// live delivery session.
type TrackingUsecase interface {
	// StartTracking opens a delivery for route and begins tracking it.
	// Fails with ErrAlreadyTracking while a session is live and with
	// ErrTrackingStart when the route has no stops or the remote start fails
	StartTracking(ctx context.Context, route *entity.OptimizedRoute) (*entity.DeliveryProgress, error)

	// TrackRoute fetches the route by ID and starts tracking it
	TrackRoute(ctx context.Context, routeID string) (*entity.DeliveryProgress, error)

	// StopTracking ends the live session. Safe to call when idle
	StopTracking(ctx context.Context)

	// CompleteStop forwards a stop completion to the route service. Local
	// state advances only when the confirming event arrives
	CompleteStop(ctx context.Context, stopIndex int) error

	// CompleteDelivery forwards a delivery completion to the route service
	CompleteDelivery(ctx context.Context) error

	// CurrentDelivery returns a copy of the live progress, if any
	CurrentDelivery() (*entity.DeliveryProgress, bool)

	// Milestones returns a copy of the active delivery's milestone log
	Milestones() []entity.DeliveryMilestone

	// State returns the engine state
	State() entity.TrackingState

	// AddMilestoneListener registers fn for future milestones only
	AddMilestoneListener(fn MilestoneListener) ListenerID

	// RemoveMilestoneListener unregisters a listener; unknown IDs are ignored
	RemoveMilestoneListener(id ListenerID)
}
