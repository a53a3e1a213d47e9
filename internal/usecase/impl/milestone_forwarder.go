package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
)

const (
	forwarderQueueSize = 256
	forwardTimeout     = 10 * time.Second
)

type forwardItem struct {
	milestone entity.DeliveryMilestone
	progress  *entity.DeliveryProgress
}

// MilestoneForwarder copies every milestone to the event publisher and the
// snapshot store on a single background worker, preserving log order. It is
// registered as a milestone listener and never blocks the engine; when the
// queue is full the milestone is dropped and logged.
type MilestoneForwarder struct {
	publisher service.EventPublisher
	store     service.SnapshotStore
	logger    *slog.Logger

	mu      sync.RWMutex
	started bool
	closed  bool
	queue   chan forwardItem
	done    chan struct{}
}

// NewMilestoneForwarder creates a forwarder. A nil store disables snapshots.
func NewMilestoneForwarder(publisher service.EventPublisher, store service.SnapshotStore, logger *slog.Logger) *MilestoneForwarder {
	return &MilestoneForwarder{
		publisher: publisher,
		store:     store,
		logger:    logger,
		queue:     make(chan forwardItem, forwarderQueueSize),
		done:      make(chan struct{}),
	}
}

// Start launches the worker
func (f *MilestoneForwarder) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.started || f.closed {
		return
	}
	f.started = true

	go f.run()
}

// Stop drains the queue and waits for the worker to exit
func (f *MilestoneForwarder) Stop(ctx context.Context) error {
	f.mu.Lock()
	if !f.closed {
		f.closed = true
		close(f.queue)
		if !f.started {
			close(f.done)
		}
	}
	f.mu.Unlock()

	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Handle is a usecase.MilestoneListener
func (f *MilestoneForwarder) Handle(milestone entity.DeliveryMilestone, progress *entity.DeliveryProgress) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return
	}

	select {
	case f.queue <- forwardItem{milestone: milestone, progress: progress}:
	default:
		f.logger.Warn("[Forwarder] Queue full, dropping milestone",
			slog.String("milestone_id", milestone.ID.String()),
			slog.String("type", string(milestone.Type)),
		)
	}
}

func (f *MilestoneForwarder) run() {
	defer close(f.done)

	for item := range f.queue {
		f.forward(item)
	}
}

func (f *MilestoneForwarder) forward(item forwardItem) {
	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()

	m := item.milestone
	if f.publisher != nil {
		event := &service.MilestoneEvent{
			MilestoneID: m.ID.String(),
			Type:        m.Type,
			DeliveryID:  m.DeliveryID,
			Timestamp:   m.Timestamp.UTC().Format(time.RFC3339Nano),
			Payload:     m.Payload,
			Progress:    item.progress,
		}
		if err := f.publisher.PublishMilestoneEvent(ctx, event); err != nil {
			f.logger.Warn("[Forwarder] Failed to publish milestone",
				slog.String("milestone_id", event.MilestoneID),
				slog.Any("error", err),
			)
		}
	}

	if f.store == nil {
		return
	}

	if err := f.store.AppendMilestone(ctx, m); err != nil {
		f.logger.Warn("[Forwarder] Failed to store milestone",
			slog.String("milestone_id", m.ID.String()),
			slog.Any("error", err),
		)
	}
	if item.progress != nil {
		if err := f.store.SaveProgress(ctx, item.progress); err != nil {
			f.logger.Warn("[Forwarder] Failed to store progress",
				slog.String("delivery_id", item.progress.DeliveryID),
				slog.Any("error", err),
			)
		}
	}
}
