package entity

import (
	"time"
)

// EventKind identifies an inbound real-time event from the route service.
type EventKind string

const (
	EventLocationUpdate    EventKind = "location_update"
	EventStopCompleted     EventKind = "stop_completed"
	EventDeliveryCompleted EventKind = "delivery_completed"
	EventDeliveryJoined    EventKind = "delivery_joined"
)

// LocationUpdateEvent is the server-reported position of a delivery agent.
type LocationUpdateEvent struct {
	DeliveryID string
	Location   Coordinate
	Timestamp  time.Time
}

// StopCompletedEvent confirms completion of one stop.
type StopCompletedEvent struct {
	DeliveryID string
	StopIndex  int
	Timestamp  time.Time
}

// DeliveryCompletedEvent confirms completion of the whole delivery.
type DeliveryCompletedEvent struct {
	DeliveryID string
	RouteID    string
	Timestamp  time.Time
}

// DeliveryJoinedEvent confirms that the channel joined a delivery's stream.
type DeliveryJoinedEvent struct {
	DeliveryID string
}

// EventHandlers is a typed handler table for real-time events. Nil entries
// are skipped.
type EventHandlers struct {
	OnLocationUpdate    func(LocationUpdateEvent)
	OnStopCompleted     func(StopCompletedEvent)
	OnDeliveryCompleted func(DeliveryCompletedEvent)
	OnDeliveryJoined    func(DeliveryJoinedEvent)
}
