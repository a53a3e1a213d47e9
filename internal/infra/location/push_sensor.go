// Package location provides the device location sensor fed by the host platform.
package location

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/geo"
)

const (
	defaultMinInterval  = 30 * time.Second
	defaultMinDistanceM = 100.0
)

// PushSensor implements service.LocationSensor for samples pushed by the
// platform through Submit. A sample is forwarded when at least minInterval
// has passed since the last forwarded one or the device moved at least
// minDistanceM meters, whichever comes first.
type PushSensor struct {
	minInterval  time.Duration
	minDistanceM float64
	now          func() time.Time
	logger       *slog.Logger

	mu       sync.Mutex
	onSample func(entity.Coordinate)
	stopCtx  func() bool
	gen      uint64
	last     *entity.Coordinate
	lastAt   time.Time
}

// NewPushSensor creates a sensor with the given throttle thresholds.
func NewPushSensor(minInterval time.Duration, minDistanceM float64, logger *slog.Logger) *PushSensor {
	if minInterval <= 0 {
		minInterval = defaultMinInterval
	}
	if minDistanceM <= 0 {
		minDistanceM = defaultMinDistanceM
	}

	return &PushSensor{
		minInterval:  minInterval,
		minDistanceM: minDistanceM,
		now:          time.Now,
		logger:       logger,
	}
}

// NewLocationSensor creates the sensor from tracking configuration, injected by
// Fx as both the engine's sensor and the HTTP layer's sample sink
func NewLocationSensor(cfg *config.Config, logger *slog.Logger) (service.LocationSensor, service.SampleSink) {
	var sensor *PushSensor
	if cfg.Tracking == nil {
		sensor = NewPushSensor(0, 0, logger)
	} else {
		sensor = NewPushSensor(cfg.Tracking.GPSMinInterval, cfg.Tracking.GPSMinDistanceM, logger)
	}

	return sensor, sensor
}

// Start begins forwarding samples to onSample. The subscription ends on Stop
// or when ctx is done.
func (s *PushSensor) Start(ctx context.Context, onSample func(entity.Coordinate)) error {
	if onSample == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("sample callback is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCtx != nil {
		s.stopCtx()
	}

	s.gen++
	gen := s.gen
	s.onSample = onSample
	s.last = nil
	s.lastAt = time.Time{}
	s.stopCtx = context.AfterFunc(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.gen == gen {
			s.reset()
		}
	})

	s.logger.Debug("[Location] Sensor started",
		slog.Duration("min_interval", s.minInterval),
		slog.Float64("min_distance_m", s.minDistanceM),
	)

	return nil
}

// Stop unsubscribes the current callback. Safe to call when not started.
func (s *PushSensor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.onSample == nil {
		return
	}

	if s.stopCtx != nil {
		s.stopCtx()
	}
	s.reset()
}

func (s *PushSensor) reset() {
	s.stopCtx = nil
	s.onSample = nil
	s.last = nil

	s.logger.Debug("[Location] Sensor stopped")
}

// Submit offers a raw platform sample. It returns whether the sample was
// forwarded. Invalid coordinates are rejected with ErrInvalidCoordinate.
func (s *PushSensor) Submit(coord entity.Coordinate) (bool, error) {
	if err := coord.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	onSample := s.onSample
	if onSample == nil {
		s.mu.Unlock()

		return false, nil
	}

	now := s.now()
	if s.last != nil {
		movedM := geo.DistanceKm(*s.last, coord) * 1000
		if now.Sub(s.lastAt) < s.minInterval && movedM < s.minDistanceM {
			s.mu.Unlock()

			return false, nil
		}
	}

	s.last = &coord
	s.lastAt = now
	s.mu.Unlock()

	onSample(coord)

	return true, nil
}
