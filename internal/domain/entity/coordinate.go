// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	domainerrors "tracker/internal/domain/errors"

	"github.com/paulmach/orb"
)

// Coordinate is an immutable geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Latitude in [-90, 90].
	Longitude float64 `json:"longitude"` // Longitude in [-180, 180].
}

// NewCoordinate builds a Coordinate from external input, rejecting NaN,
// infinities and out-of-range values.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that the coordinate is finite and within Earth bounds.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return domainerrors.ErrInvalidCoordinate.WithDetails("non-finite value")
	}

	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return domainerrors.ErrInvalidCoordinate.WithDetails(
			fmt.Sprintf("(%f, %f) out of range", c.Latitude, c.Longitude),
		)
	}

	return nil
}

// Point converts the coordinate to an orb.Point ({lng, lat}).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
