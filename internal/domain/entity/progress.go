package entity

import (
	"slices"
	"time"
)

// TrackingState is the state of the delivery tracking engine.
type TrackingState string

const (
	TrackingStateIdle      TrackingState = "idle"
	TrackingStateTracking  TrackingState = "tracking"
	TrackingStateCompleted TrackingState = "completed"
	TrackingStateStopped   TrackingState = "stopped"
)

// NextStop describes the upcoming stop of an active delivery.
type NextStop struct {
	Address          string     `json:"address"`
	Coordinate       Coordinate `json:"coordinate"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

// DeliveryProgress is the live snapshot of one active delivery.
type DeliveryProgress struct {
	DeliveryID           string     `json:"delivery_id"`
	RouteID              string     `json:"route_id"`
	CurrentStopIndex     int        `json:"current_stop_index"`
	TotalStops           int        `json:"total_stops"`
	ProgressPercent      int        `json:"progress_percent"`
	ETAMinutes           float64    `json:"eta_minutes"`
	DistanceRemainingKm  float64    `json:"distance_remaining_km"`
	CurrentLocation      Coordinate `json:"current_location"`
	NextStop             *NextStop  `json:"next_stop,omitempty"`
	CompletedStopIndices []int      `json:"completed_stop_indices"` // Sorted, no duplicates.
}

// IsStopCompleted reports whether stopIndex is in the completed set.
func (p *DeliveryProgress) IsStopCompleted(stopIndex int) bool {
	_, found := slices.BinarySearch(p.CompletedStopIndices, stopIndex)

	return found
}

// Clone returns a deep copy safe to hand to other goroutines.
func (p *DeliveryProgress) Clone() *DeliveryProgress {
	if p == nil {
		return nil
	}

	cp := *p
	cp.CompletedStopIndices = slices.Clone(p.CompletedStopIndices)
	if p.NextStop != nil {
		next := *p.NextStop
		if p.NextStop.EstimatedArrival != nil {
			arrival := *p.NextStop.EstimatedArrival
			next.EstimatedArrival = &arrival
		}
		cp.NextStop = &next
	}

	return &cp
}
