package realtime

import (
	"encoding/json"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/errors"
)

// Event names on the wire.
const (
	wireLocationUpdate    = "location-update"
	wireStopCompleted     = "stop-completed"
	wireDeliveryCompleted = "delivery-completed"
	wireDeliveryJoined    = "joined_delivery"

	wireJoinDelivery  = "join_delivery"
	wireLeaveDelivery = "leave_delivery"
)

// envelope is the single frame format in both directions.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type deliveryRef struct {
	DeliveryID string `json:"delivery_id"`
}

type locationUpdateData struct {
	DeliveryID string `json:"delivery_id"`
	Location   struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Timestamp string `json:"timestamp"`
}

type stopCompletedData struct {
	DeliveryID string `json:"delivery_id"`
	StopIndex  *int   `json:"stop_index"`
	Timestamp  string `json:"timestamp"`
}

type deliveryCompletedData struct {
	DeliveryID string `json:"delivery_id"`
	RouteID    string `json:"route_id"`
	Timestamp  string `json:"timestamp"`
}

var errMissingDeliveryID = errors.New("missing delivery_id")

// decodedEvent is one inbound frame converted to its typed payload.
type decodedEvent struct {
	kind              entity.EventKind
	locationUpdate    entity.LocationUpdateEvent
	stopCompleted     entity.StopCompletedEvent
	deliveryCompleted entity.DeliveryCompletedEvent
	deliveryJoined    entity.DeliveryJoinedEvent
}

// decodeFrame parses a frame. ok is false for unknown event names.
func decodeFrame(frame []byte) (ev decodedEvent, ok bool, err error) {
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return ev, false, errors.Wrap(err, "decode envelope")
	}

	switch env.Event {
	case wireLocationUpdate:
		var d locationUpdateData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return ev, false, errors.Wrap(err, "decode location update")
		}
		if d.DeliveryID == "" {
			return ev, false, errMissingDeliveryID
		}
		coord, err := entity.NewCoordinate(d.Location.Latitude, d.Location.Longitude)
		if err != nil {
			return ev, false, err
		}
		ev.kind = entity.EventLocationUpdate
		ev.locationUpdate = entity.LocationUpdateEvent{
			DeliveryID: d.DeliveryID,
			Location:   coord,
			Timestamp:  parseTimestamp(d.Timestamp),
		}

	case wireStopCompleted:
		var d stopCompletedData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return ev, false, errors.Wrap(err, "decode stop completed")
		}
		if d.DeliveryID == "" {
			return ev, false, errMissingDeliveryID
		}
		if d.StopIndex == nil {
			return ev, false, errors.New("missing stop_index")
		}
		ev.kind = entity.EventStopCompleted
		ev.stopCompleted = entity.StopCompletedEvent{
			DeliveryID: d.DeliveryID,
			StopIndex:  *d.StopIndex,
			Timestamp:  parseTimestamp(d.Timestamp),
		}

	case wireDeliveryCompleted:
		var d deliveryCompletedData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return ev, false, errors.Wrap(err, "decode delivery completed")
		}
		if d.DeliveryID == "" {
			return ev, false, errMissingDeliveryID
		}
		ev.kind = entity.EventDeliveryCompleted
		ev.deliveryCompleted = entity.DeliveryCompletedEvent{
			DeliveryID: d.DeliveryID,
			RouteID:    d.RouteID,
			Timestamp:  parseTimestamp(d.Timestamp),
		}

	case wireDeliveryJoined:
		var d deliveryRef
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return ev, false, errors.Wrap(err, "decode joined delivery")
		}
		ev.kind = entity.EventDeliveryJoined
		ev.deliveryJoined = entity.DeliveryJoinedEvent{DeliveryID: d.DeliveryID}

	default:
		return ev, false, nil
	}

	return ev, true, nil
}

// parseTimestamp returns the zero time for empty or malformed values.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}

	return ts
}

func encodeDeliveryFrame(event, deliveryID string) ([]byte, error) {
	data, err := json.Marshal(deliveryRef{DeliveryID: deliveryID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	frame, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return frame, nil
}
