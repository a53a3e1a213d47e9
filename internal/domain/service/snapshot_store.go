package service

import (
	"context"

	"tracker/internal/domain/entity"
)

// SnapshotStore keeps an out-of-process copy of the latest progress and the
// milestone list of the active delivery.
type SnapshotStore interface {
	SaveProgress(ctx context.Context, progress *entity.DeliveryProgress) error
	AppendMilestone(ctx context.Context, milestone entity.DeliveryMilestone) error
	LoadProgress(ctx context.Context, deliveryID string) (*entity.DeliveryProgress, error)
	LoadMilestones(ctx context.Context, deliveryID string) ([]entity.DeliveryMilestone, error)
	Close() error
}
