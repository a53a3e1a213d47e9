// Package geo provides the great-circle and ETA math used for delivery tracking.
package geo

import (
	"fmt"
	"math"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used by DistanceKm.
	EarthRadiusKm = 6371.0

	// DefaultAvgSpeedKmh is the assumed courier speed for ETA estimates.
	DefaultAvgSpeedKmh = 25.0
)

// DistanceKm returns the haversine great-circle distance between a and b in kilometers.
// NaN inputs propagate; callers validate coordinates at the boundary.
func DistanceKm(a, b entity.Coordinate) float64 {
	return haversineKm(a.Point(), b.Point())
}

// ETAMinutes converts a distance into minutes of travel at avgSpeedKmh.
func ETAMinutes(distanceKm, avgSpeedKmh float64) (float64, error) {
	if !(avgSpeedKmh > 0) || math.IsInf(avgSpeedKmh, 0) {
		return 0, domainerrors.ErrInvalidArgument.WithDetails(
			fmt.Sprintf("average speed must be > 0, got %v", avgSpeedKmh),
		)
	}

	return distanceKm / avgSpeedKmh * 60, nil
}

func haversineKm(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
