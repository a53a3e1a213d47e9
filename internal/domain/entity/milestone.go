package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MilestoneType identifies the kind of a delivery milestone.
type MilestoneType string

const (
	MilestoneStarted           MilestoneType = "started"
	MilestoneStopCompleted     MilestoneType = "stop_completed"
	MilestoneDeliveryCompleted MilestoneType = "delivery_completed"
	MilestoneLocationUpdate    MilestoneType = "location_update"
)

// MilestonePayload is the typed payload of a milestone. Exactly one concrete
// payload type exists per MilestoneType.
type MilestonePayload interface {
	MilestoneType() MilestoneType
}

// StartedPayload accompanies a started milestone.
type StartedPayload struct {
	RouteID string `json:"route_id"`
}

// StopCompletedPayload accompanies a stop_completed milestone.
type StopCompletedPayload struct {
	StopIndex  int `json:"stop_index"`
	TotalStops int `json:"total_stops"`
}

// DeliveryCompletedPayload accompanies a delivery_completed milestone.
type DeliveryCompletedPayload struct {
	RouteID string `json:"route_id"`
}

// LocationPayload accompanies a location_update milestone.
type LocationPayload struct {
	Location Coordinate `json:"location"`
}

func (StartedPayload) MilestoneType() MilestoneType           { return MilestoneStarted }
func (StopCompletedPayload) MilestoneType() MilestoneType     { return MilestoneStopCompleted }
func (DeliveryCompletedPayload) MilestoneType() MilestoneType { return MilestoneDeliveryCompleted }
func (LocationPayload) MilestoneType() MilestoneType          { return MilestoneLocationUpdate }

// DeliveryMilestone is an immutable entry of a delivery's append-only log.
type DeliveryMilestone struct {
	ID         uuid.UUID        `json:"id"`
	Type       MilestoneType    `json:"type"`
	DeliveryID string           `json:"delivery_id"`
	Timestamp  time.Time        `json:"timestamp"`
	Payload    MilestonePayload `json:"payload"`
}

// NewMilestone builds a milestone whose Type is derived from the payload.
func NewMilestone(deliveryID string, timestamp time.Time, payload MilestonePayload) DeliveryMilestone {
	return DeliveryMilestone{
		ID:         uuid.New(),
		Type:       payload.MilestoneType(),
		DeliveryID: deliveryID,
		Timestamp:  timestamp,
		Payload:    payload,
	}
}

// UnmarshalJSON decodes the payload into the concrete type named by Type.
func (m *DeliveryMilestone) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         uuid.UUID       `json:"id"`
		Type       MilestoneType   `json:"type"`
		DeliveryID string          `json:"delivery_id"`
		Timestamp  time.Time       `json:"timestamp"`
		Payload    json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	payload, err := DecodeMilestonePayload(raw.Type, raw.Payload)
	if err != nil {
		return err
	}

	*m = DeliveryMilestone{
		ID:         raw.ID,
		Type:       raw.Type,
		DeliveryID: raw.DeliveryID,
		Timestamp:  raw.Timestamp,
		Payload:    payload,
	}

	return nil
}

// DecodeMilestonePayload decodes data into the payload type of t. Empty data
// yields the zero payload.
func DecodeMilestonePayload(t MilestoneType, data json.RawMessage) (MilestonePayload, error) {
	switch t {
	case MilestoneStarted:
		var p StartedPayload
		err := unmarshalOptional(data, &p)
		return p, err
	case MilestoneStopCompleted:
		var p StopCompletedPayload
		err := unmarshalOptional(data, &p)
		return p, err
	case MilestoneDeliveryCompleted:
		var p DeliveryCompletedPayload
		err := unmarshalOptional(data, &p)
		return p, err
	case MilestoneLocationUpdate:
		var p LocationPayload
		err := unmarshalOptional(data, &p)
		return p, err
	default:
		return nil, fmt.Errorf("unknown milestone type %q", t)
	}
}

func unmarshalOptional(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	return json.Unmarshal(data, v)
}
