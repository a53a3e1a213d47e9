package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

const notificationTimeout = 10 * time.Second

// NotificationTrigger decides which milestones notify the customer and hands
// the notification to the push surface without blocking the caller.
// Notifications are sent one at a time in the order they were fired.
type NotificationTrigger struct {
	notifier service.NotificationService
	logger   *slog.Logger

	mu      sync.Mutex
	pending []entity.Notification
	sending bool
	wg      sync.WaitGroup
}

// NewNotificationTrigger creates a trigger. A nil notifier disables sending.
func NewNotificationTrigger(notifier service.NotificationService, logger *slog.Logger) *NotificationTrigger {
	return &NotificationTrigger{
		notifier: notifier,
		logger:   logger,
	}
}

// Decide maps a milestone to the notification it triggers, if any.
func (t *NotificationTrigger) Decide(milestone entity.DeliveryMilestone) (entity.Notification, bool) {
	n := entity.Notification{
		Kind:       milestone.Type,
		DeliveryID: milestone.DeliveryID,
	}

	switch p := milestone.Payload.(type) {
	case entity.StartedPayload:
		n.Title = "Delivery Started"
		n.Body = "Your order is now being prepared and will be out for delivery soon!"
	case entity.StopCompletedPayload:
		n.Title = "Stop Completed"
		n.Body = fmt.Sprintf("Delivery completed at stop %d of %d", p.StopIndex+1, p.TotalStops)
	case entity.DeliveryCompletedPayload:
		n.Title = "Delivery Completed"
		n.Body = "Your order has been successfully delivered!"
	default:
		return entity.Notification{}, false
	}

	return n, true
}

// Fire queues the notification for milestone. Failures are logged and never
// reach the caller.
func (t *NotificationTrigger) Fire(milestone entity.DeliveryMilestone) {
	n, ok := t.Decide(milestone)
	if !ok || t.notifier == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = append(t.pending, n)
	if t.sending {
		return
	}
	t.sending = true
	t.wg.Add(1)

	go t.run()
}

// run sends queued notifications until the queue is empty
func (t *NotificationTrigger) run() {
	defer t.wg.Done()

	for {
		t.mu.Lock()
		if len(t.pending) == 0 {
			t.sending = false
			t.mu.Unlock()

			return
		}
		n := t.pending[0]
		t.pending = t.pending[1:]
		t.mu.Unlock()

		t.send(n)
	}
}

func (t *NotificationTrigger) send(n entity.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()

	if err := t.notifier.Send(ctx, n); err != nil {
		t.logger.Warn("[Notification] Failed to send notification",
			slog.String("kind", string(n.Kind)),
			slog.String("delivery_id", n.DeliveryID),
			slog.Any("error", err),
		)
	}
}

// Wait blocks until every queued notification has been handed off.
func (t *NotificationTrigger) Wait() {
	t.wg.Wait()
}
