package entity

import (
	"fmt"
	"time"
)

// RouteStatus is the lifecycle status of an optimized route.
type RouteStatus string

const (
	RouteStatusPending    RouteStatus = "pending"
	RouteStatusInProgress RouteStatus = "in_progress"
	RouteStatusCompleted  RouteStatus = "completed"
	RouteStatusCancelled  RouteStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s RouteStatus) IsValid() bool {
	switch s {
	case RouteStatusPending, RouteStatusInProgress, RouteStatusCompleted, RouteStatusCancelled:
		return true
	default:
		return false
	}
}

// RouteStop is a single stop of an optimized route. StopIndex defines the
// delivery sequence.
type RouteStop struct {
	Address          string     `json:"address"`
	Coordinate       Coordinate `json:"coordinate"`
	StopIndex        int        `json:"stop_index"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	Completed        bool       `json:"completed"`
}

// OptimizedRoute is the remote optimizer's output. It is immutable once
// fetched except for Status and per-stop Completed flags.
type OptimizedRoute struct {
	RouteID              string      `json:"route_id"`
	Stops                []RouteStop `json:"stops"`
	TotalDistanceKm      float64     `json:"total_distance_km"`
	EstimatedTimeMinutes float64     `json:"estimated_time_minutes"`
	Status               RouteStatus `json:"status"`
}

// CheckStopSequence reports an error unless the stops are ordered with
// StopIndex equal to their position, starting at 0.
func (r *OptimizedRoute) CheckStopSequence() error {
	for i, stop := range r.Stops {
		if stop.StopIndex != i {
			return fmt.Errorf("stop at position %d has stop_index %d", i, stop.StopIndex)
		}
	}

	return nil
}

// DeliveryStart is the remote acknowledgement of a started delivery.
type DeliveryStart struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
}
