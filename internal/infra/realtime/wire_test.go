package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		frame string
		check func(t *testing.T, ev decodedEvent)
	}{
		{
			name:  "location update",
			frame: `{"event":"location-update","data":{"delivery_id":"d-1","location":{"latitude":28.6,"longitude":77.2},"timestamp":"2024-03-01T09:00:00Z"}}`,
			check: func(t *testing.T, ev decodedEvent) {
				assert.Equal(t, entity.EventLocationUpdate, ev.kind)
				assert.Equal(t, "d-1", ev.locationUpdate.DeliveryID)
				assert.Equal(t, entity.Coordinate{Latitude: 28.6, Longitude: 77.2}, ev.locationUpdate.Location)
				assert.True(t, ts.Equal(ev.locationUpdate.Timestamp))
			},
		},
		{
			name:  "stop completed at index zero",
			frame: `{"event":"stop-completed","data":{"delivery_id":"d-1","stop_index":0}}`,
			check: func(t *testing.T, ev decodedEvent) {
				assert.Equal(t, entity.EventStopCompleted, ev.kind)
				assert.Equal(t, 0, ev.stopCompleted.StopIndex)
				assert.True(t, ev.stopCompleted.Timestamp.IsZero())
			},
		},
		{
			name:  "delivery completed",
			frame: `{"event":"delivery-completed","data":{"delivery_id":"d-1","route_id":"r-1","timestamp":"bogus"}}`,
			check: func(t *testing.T, ev decodedEvent) {
				assert.Equal(t, entity.EventDeliveryCompleted, ev.kind)
				assert.Equal(t, "r-1", ev.deliveryCompleted.RouteID)
				assert.True(t, ev.deliveryCompleted.Timestamp.IsZero())
			},
		},
		{
			name:  "joined delivery",
			frame: `{"event":"joined_delivery","data":{"delivery_id":"d-1"}}`,
			check: func(t *testing.T, ev decodedEvent) {
				assert.Equal(t, entity.EventDeliveryJoined, ev.kind)
				assert.Equal(t, "d-1", ev.deliveryJoined.DeliveryID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, err := decodeFrame([]byte(tt.frame))
			require.NoError(t, err)
			require.True(t, ok)
			tt.check(t, ev)
		})
	}
}

func TestDecodeFrame_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		frame   string
		wantErr error
	}{
		{name: "not json", frame: `{`},
		{name: "missing delivery id", frame: `{"event":"stop-completed","data":{"stop_index":1}}`, wantErr: errMissingDeliveryID},
		{name: "missing stop index", frame: `{"event":"stop-completed","data":{"delivery_id":"d-1"}}`},
		{
			name:    "invalid coordinate",
			frame:   `{"event":"location-update","data":{"delivery_id":"d-1","location":{"latitude":91,"longitude":0}}}`,
			wantErr: domainerrors.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := decodeFrame([]byte(tt.frame))
			require.Error(t, err)
			assert.False(t, ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeFrame_UnknownEventIsSkipped(t *testing.T) {
	_, ok, err := decodeFrame([]byte(`{"event":"driver-chat","data":{}}`))

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEncodeDeliveryFrame(t *testing.T) {
	frame, err := encodeDeliveryFrame(wireJoinDelivery, "d-1")
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(frame, &env))
	assert.Equal(t, "join_delivery", env.Event)
	assert.JSONEq(t, `{"delivery_id":"d-1"}`, string(env.Data))
}
