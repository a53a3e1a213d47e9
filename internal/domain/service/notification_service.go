package service

import (
	"context"

	"tracker/internal/domain/entity"
)

// NotificationService hands a user-facing notification to the OS/push surface.
// No acknowledgement is consumed beyond the returned error.
type NotificationService interface {
	Send(ctx context.Context, notification entity.Notification) error
}
