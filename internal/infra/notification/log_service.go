// Package notification hands tracking notifications to the push surface.
package notification

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

// logService writes notifications to the log when no push backend is configured
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only logs
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) Send(ctx context.Context, n entity.Notification) error {
	s.logger.Info("[Notification] "+n.Title,
		slog.String("kind", string(n.Kind)),
		slog.String("delivery_id", n.DeliveryID),
		slog.String("body", n.Body),
	)

	return nil
}

// NewNotificationService picks Firebase when configured, the log service otherwise
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	fb := cfg.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		logger.Info("Firebase not configured, notifications are logged only")

		return NewLogService(logger), nil
	}

	return NewFirebaseService(ctx, fb.CredentialsPath, fb.DeviceToken, fb.Topic)
}
