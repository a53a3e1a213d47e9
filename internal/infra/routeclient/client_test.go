package routeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeJSON = `{
	"route_id": "route-1",
	"optimized_route": [
		{"address": "B St", "latitude": 28.7041, "longitude": 77.1025, "stop_index": 1},
		{"address": "A St", "latitude": 28.6139, "longitude": 77.2090, "stop_index": 0, "estimated_arrival": "2026-10-17T10:00:00Z"}
	],
	"total_distance": 14.4,
	"estimated_time": 35,
	"status": "pending"
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := New(srv.URL, 2*time.Second, logger)
	require.NoError(t, err)

	return client, &hits
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:5001", time.Second, slog.Default())
	assert.Error(t, err)
}

func TestClient_OptimizeRoute_TooFewAddresses(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.OptimizeRoute(context.Background(), []string{"only one"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Zero(t, atomic.LoadInt32(hits), "no request may be issued")

	_, err = client.OptimizeRoute(context.Background(), []string{"a", "  "}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Zero(t, atomic.LoadInt32(hits))
}

func TestClient_OptimizeRoute_Success(t *testing.T) {
	start := "Depot"
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/optimize-route", r.URL.Path)

		var body optimizeRouteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"A St", "B St"}, body.Addresses)
		require.NotNil(t, body.StartLocation)
		assert.Equal(t, "Depot", *body.StartLocation)

		_, _ = io.WriteString(w, routeJSON)
	})

	route, err := client.OptimizeRoute(context.Background(), []string{"A St", "B St"}, &start)

	require.NoError(t, err)
	assert.Equal(t, "route-1", route.RouteID)
	assert.Equal(t, entity.RouteStatusPending, route.Status)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, 0, route.Stops[0].StopIndex)
	assert.Equal(t, "A St", route.Stops[0].Address)
	require.NotNil(t, route.Stops[0].EstimatedArrival)
	assert.Nil(t, route.Stops[1].EstimatedArrival)
	assert.Equal(t, 14.4, route.TotalDistanceKm)
}

func TestClient_OptimizeRoute_ServerError(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.OptimizeRoute(context.Background(), []string{"a", "b"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits), "optimize is not retried")
}

func TestClient_GetRoute_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/missing", r.URL.Path)
		http.NotFound(w, r)
	})

	_, err := client.GetRoute(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClient_GetRoute_RetriesTransientFailures(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = io.WriteString(w, routeJSON)
	})

	route, err := client.GetRoute(context.Background(), "route-1")

	require.NoError(t, err)
	assert.Equal(t, "route-1", route.RouteID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GetRoute_InvalidPayload(t *testing.T) {
	stop := func(index int) string {
		return fmt.Sprintf(`{"address":"x","latitude":28.6,"longitude":77.2,"stop_index":%d}`, index)
	}

	tests := []struct {
		name  string
		stops string
	}{
		{name: "coordinate out of range", stops: `{"address":"x","latitude":123,"longitude":0,"stop_index":0}`},
		{name: "negative stop index", stops: stop(-1)},
		{name: "indices start at one", stops: stop(1) + "," + stop(2) + "," + stop(3)},
		{name: "duplicate index", stops: stop(0) + "," + stop(1) + "," + stop(1)},
		{name: "gap in indices", stops: stop(0) + "," + stop(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"route_id":"r","optimized_route":[`+tt.stops+`]}`)
			})

			_, err := client.GetRoute(context.Background(), "r")

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
		})
	}
}

func TestClient_GetRoute_EmptyStops(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"route_id":"r","optimized_route":[]}`)
	})

	_, err := client.GetRoute(context.Background(), "r")

	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestClient_StartDelivery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/route-1/start", r.URL.Path)
		_, _ = io.WriteString(w, `{"delivery_id":"del-1","status":"in_progress"}`)
	})

	start, err := client.StartDelivery(context.Background(), "route-1")

	require.NoError(t, err)
	assert.Equal(t, "del-1", start.DeliveryID)
	assert.Equal(t, "in_progress", start.Status)
}

func TestClient_UpdateLocation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/track/update", r.URL.Path)

		var body updateLocationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "del-1", body.DeliveryID)
		assert.Equal(t, 28.6, body.Location.Latitude)
		assert.Equal(t, 77.2, body.Location.Longitude)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.UpdateLocation(context.Background(), "del-1", entity.Coordinate{Latitude: 28.6, Longitude: 77.2})
	assert.NoError(t, err)
}

func TestClient_CompleteStop_ConflictIsSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delivery/del-1/complete-stop", r.URL.Path)

		var body completeStopRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2, body.StopIndex)

		http.Error(w, "already completed", http.StatusConflict)
	})

	assert.NoError(t, client.CompleteStop(context.Background(), "del-1", 2))
}

func TestClient_CompleteDelivery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delivery/del-1/complete", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.CompleteDelivery(context.Background(), "del-1"))
}

func TestClient_CompleteDelivery_BadGateway(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.CompleteDelivery(context.Background(), "del-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)

	var he *httpStatusError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadGateway, he.Code)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client, err := New(srv.URL, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = client.StartDelivery(context.Background(), "route-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}
