package routeclient

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
)

// Wire types mirror the JSON contract of the route service.

type optimizeRouteRequest struct {
	Addresses     []string `json:"addresses"`
	StartLocation *string  `json:"start_location,omitempty"`
}

type wireLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type wireRouteStop struct {
	Address          string  `json:"address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	StopIndex        int     `json:"stop_index"`
	EstimatedArrival *string `json:"estimated_arrival,omitempty"`
	Completed        bool    `json:"completed,omitempty"`
}

type wireOptimizedRoute struct {
	RouteID        string          `json:"route_id"`
	OptimizedRoute []wireRouteStop `json:"optimized_route"`
	TotalDistance  float64         `json:"total_distance"`
	EstimatedTime  float64         `json:"estimated_time"`
	Status         string          `json:"status"`
}

type startDeliveryResponse struct {
	DeliveryID string `json:"delivery_id"`
	Status     string `json:"status"`
}

type updateLocationRequest struct {
	DeliveryID string       `json:"delivery_id"`
	Location   wireLocation `json:"location"`
}

type completeStopRequest struct {
	StopIndex int `json:"stop_index"`
}

// toEntity validates a decoded route and converts it to the domain model.
// Stops are ordered by stop index, which must run 0..n-1 without gaps.
func (w *wireOptimizedRoute) toEntity() (*entity.OptimizedRoute, error) {
	if strings.TrimSpace(w.RouteID) == "" {
		return nil, invalidPayload("route_id is empty")
	}
	if len(w.OptimizedRoute) == 0 {
		return nil, invalidPayload("route has no stops")
	}
	if w.TotalDistance < 0 || w.EstimatedTime < 0 {
		return nil, invalidPayload("negative route totals")
	}

	status := entity.RouteStatus(w.Status)
	if status == "" {
		status = entity.RouteStatusPending
	}
	if !status.IsValid() {
		return nil, invalidPayload(fmt.Sprintf("unknown route status %q", w.Status))
	}

	stops := make([]entity.RouteStop, 0, len(w.OptimizedRoute))
	for _, s := range w.OptimizedRoute {
		if s.StopIndex < 0 {
			return nil, invalidPayload(fmt.Sprintf("negative stop index %d", s.StopIndex))
		}

		coord, err := entity.NewCoordinate(s.Latitude, s.Longitude)
		if err != nil {
			return nil, invalidPayload(fmt.Sprintf("stop %d: %v", s.StopIndex, err))
		}

		stop := entity.RouteStop{
			Address:    s.Address,
			Coordinate: coord,
			StopIndex:  s.StopIndex,
			Completed:  s.Completed,
		}
		if s.EstimatedArrival != nil && *s.EstimatedArrival != "" {
			arrival, err := time.Parse(time.RFC3339, *s.EstimatedArrival)
			if err != nil {
				return nil, invalidPayload(fmt.Sprintf("stop %d: bad estimated_arrival", s.StopIndex))
			}
			stop.EstimatedArrival = &arrival
		}

		stops = append(stops, stop)
	}

	slices.SortStableFunc(stops, func(a, b entity.RouteStop) int {
		return a.StopIndex - b.StopIndex
	})

	route := &entity.OptimizedRoute{
		RouteID:              w.RouteID,
		Stops:                stops,
		TotalDistanceKm:      w.TotalDistance,
		EstimatedTimeMinutes: w.EstimatedTime,
		Status:               status,
	}
	if err := route.CheckStopSequence(); err != nil {
		return nil, invalidPayload(err.Error())
	}

	return route, nil
}

func invalidPayload(details string) error {
	return domainerrors.ErrServiceUnavailable.WithDetails("invalid response: " + details)
}
