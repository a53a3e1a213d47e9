package service

import (
	"context"

	"tracker/internal/domain/entity"
)

// LocationSensor delivers periodic device GPS samples.
type LocationSensor interface {
	// Start begins delivering samples to onSample until Stop is called or ctx ends
	Start(ctx context.Context, onSample func(entity.Coordinate)) error

	// Stop unsubscribes; safe to call when not started
	Stop()
}

// SampleSink accepts GPS samples reported by the device.
type SampleSink interface {
	// Submit validates coord and reports whether it passed the throttle
	Submit(coord entity.Coordinate) (accepted bool, err error)
}
