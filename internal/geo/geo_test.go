package geo

import (
	"math"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	points := []entity.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 28.6139, Longitude: 77.2090},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 90, Longitude: 180},
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	b := entity.Coordinate{Latitude: 25.0478, Longitude: 121.5170}

	assert.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_DelhiFixture(t *testing.T) {
	connaughtPlace := entity.Coordinate{Latitude: 28.6139, Longitude: 77.2090}
	north := entity.Coordinate{Latitude: 28.7041, Longitude: 77.1025}

	// Haversine at R=6371 km yields 14.44 km for this pair. The 12.3 km figure
	// sometimes quoted for it is unreachable: the latitude delta alone spans
	// 10.0 km and the longitude delta 10.4 km at this latitude.
	assert.InDelta(t, 14.44, DistanceKm(connaughtPlace, north), 0.05)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	a := entity.Coordinate{Latitude: math.NaN(), Longitude: 0}
	b := entity.Coordinate{Latitude: 1, Longitude: 1}

	assert.True(t, math.IsNaN(DistanceKm(a, b)))
}

func TestETAMinutes(t *testing.T) {
	eta, err := ETAMinutes(12.5, 25)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, eta, 1e-9)

	eta, err = ETAMinutes(25, DefaultAvgSpeedKmh)
	require.NoError(t, err)
	assert.InDelta(t, 60.0, eta, 1e-9)

	eta, err = ETAMinutes(0, DefaultAvgSpeedKmh)
	require.NoError(t, err)
	assert.Zero(t, eta)
}

func TestETAMinutes_InvalidSpeed(t *testing.T) {
	for _, speed := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err := ETAMinutes(10, speed)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	}
}
