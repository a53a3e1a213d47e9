package service

import (
	"context"
	"encoding/json"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MilestoneEvent is the wire form of a milestone published to a message queue
type MilestoneEvent struct {
	MilestoneID string                   `json:"milestone_id"`
	Type        entity.MilestoneType     `json:"type"`
	DeliveryID  string                   `json:"delivery_id"`
	Timestamp   string                   `json:"timestamp"` // RFC3339Nano
	Payload     entity.MilestonePayload  `json:"payload"`
	Progress    *entity.DeliveryProgress `json:"progress,omitempty"`
}

// UnmarshalJSON decodes the payload into the concrete type named by Type.
func (e *MilestoneEvent) UnmarshalJSON(data []byte) error {
	var raw struct {
		MilestoneID string                   `json:"milestone_id"`
		Type        entity.MilestoneType     `json:"type"`
		DeliveryID  string                   `json:"delivery_id"`
		Timestamp   string                   `json:"timestamp"`
		Payload     json.RawMessage          `json:"payload"`
		Progress    *entity.DeliveryProgress `json:"progress,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithStack(err)
	}

	payload, err := entity.DecodeMilestonePayload(raw.Type, raw.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	*e = MilestoneEvent{
		MilestoneID: raw.MilestoneID,
		Type:        raw.Type,
		DeliveryID:  raw.DeliveryID,
		Timestamp:   raw.Timestamp,
		Payload:     payload,
		Progress:    raw.Progress,
	}

	return nil
}

// Milestone converts the event back to the log entry it was published from
func (e *MilestoneEvent) Milestone() (entity.DeliveryMilestone, error) {
	id, err := uuid.Parse(e.MilestoneID)
	if err != nil {
		return entity.DeliveryMilestone{}, errors.Wrap(err, "invalid milestone id")
	}

	ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return entity.DeliveryMilestone{}, errors.Wrap(err, "invalid milestone timestamp")
	}

	if e.Payload == nil || e.Payload.MilestoneType() != e.Type {
		return entity.DeliveryMilestone{}, errors.Errorf("payload does not match milestone type %q", e.Type)
	}

	return entity.DeliveryMilestone{
		ID:         id,
		Type:       e.Type,
		DeliveryID: e.DeliveryID,
		Timestamp:  ts,
		Payload:    e.Payload,
	}, nil
}

// EventPublisher defines the interface for publishing milestones to a message queue
type EventPublisher interface {
	// PublishMilestoneEvent publishes one milestone for durable downstream consumers
	PublishMilestoneEvent(ctx context.Context, event *MilestoneEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
