package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	mockSvc "tracker/internal/mocks/service"
	mockUsecase "tracker/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type trackingHandlerFixtures struct {
	echo       *echo.Echo
	trackingUC *mockUsecase.MockTrackingUsecase
	samples    *mockSvc.MockSampleSink
}

func createTestTrackingHandler(t *testing.T) trackingHandlerFixtures {
	trackingUC := mockUsecase.NewMockTrackingUsecase(t)
	samples := mockSvc.NewMockSampleSink(t)

	h := NewTrackingHandler(TrackingHandlerParams{
		TrackingUC: trackingUC,
		Samples:    samples,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.GET("/tracking", h.GetTracking)
	e.POST("/tracking/start", h.StartTracking)
	e.POST("/tracking/stop", h.StopTracking)
	e.GET("/tracking/milestones", h.GetMilestones)
	e.POST("/tracking/stops/:index/complete", h.CompleteStop)
	e.POST("/tracking/complete", h.CompleteDelivery)
	e.POST("/tracking/location", h.SubmitLocation)

	return trackingHandlerFixtures{echo: e, trackingUC: trackingUC, samples: samples}
}

func TestTrackingHandler_StartTracking(t *testing.T) {
	fx := createTestTrackingHandler(t)

	progress := &entity.DeliveryProgress{DeliveryID: "d1", RouteID: "r1", TotalStops: 3, CompletedStopIndices: []int{}}
	fx.trackingUC.EXPECT().TrackRoute(mock.Anything, "r1").Return(progress, nil).Once()
	fx.trackingUC.EXPECT().State().Return(entity.TrackingStateTracking).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/start", `{"route_id":"r1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var got TrackingResponse
	decodeData(t, rec, &got)
	assert.Equal(t, entity.TrackingStateTracking, got.State)
	assert.Equal(t, "d1", got.Progress.DeliveryID)
}

func TestTrackingHandler_StartTracking_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "missing route", body: `{}`, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "malformed body", body: `{"route_id":`, wantCode: http.StatusBadRequest, wantErr: "INVALID_INPUT"},
		{name: "already tracking", body: `{"route_id":"r1"}`, err: domainerrors.ErrAlreadyTracking, wantCode: http.StatusConflict, wantErr: "ALREADY_TRACKING"},
		{name: "unknown route", body: `{"route_id":"r1"}`, err: domainerrors.ErrNotFound, wantCode: http.StatusNotFound, wantErr: "NOT_FOUND"},
		{name: "start failed", body: `{"route_id":"r1"}`, err: domainerrors.ErrTrackingStart.WithDetails("status 500"), wantCode: http.StatusBadGateway, wantErr: "TRACKING_START_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTrackingHandler(t)
			if tt.err != nil {
				fx.trackingUC.EXPECT().TrackRoute(mock.Anything, "r1").Return(nil, tt.err).Once()
			}

			rec := doRequest(fx.echo, http.MethodPost, "/tracking/start", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec).Code)
		})
	}
}

func TestTrackingHandler_StartTracking_HidesServerErrorDetails(t *testing.T) {
	fx := createTestTrackingHandler(t)
	fx.trackingUC.EXPECT().TrackRoute(mock.Anything, "r1").
		Return(nil, domainerrors.ErrTrackingStart.WithDetails("dial tcp 10.0.0.1:5001")).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/start", `{"route_id":"r1"}`)

	assert.Nil(t, decodeError(t, rec).Details)
}

func TestTrackingHandler_GetTracking(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.trackingUC.EXPECT().CurrentDelivery().Return(&entity.DeliveryProgress{DeliveryID: "d1", ProgressPercent: 33}, true).Once()
	fx.trackingUC.EXPECT().State().Return(entity.TrackingStateTracking).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/tracking", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got TrackingResponse
	decodeData(t, rec, &got)
	assert.Equal(t, 33, got.Progress.ProgressPercent)
}

func TestTrackingHandler_GetTracking_Idle(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.trackingUC.EXPECT().CurrentDelivery().Return(nil, false).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/tracking", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
}

func TestTrackingHandler_StopTracking(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.trackingUC.EXPECT().StopTracking(mock.Anything).Return().Once()
	fx.trackingUC.EXPECT().State().Return(entity.TrackingStateStopped).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/stop", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got TrackingResponse
	decodeData(t, rec, &got)
	assert.Equal(t, entity.TrackingStateStopped, got.State)
	assert.Nil(t, got.Progress)
}

func TestTrackingHandler_GetMilestones(t *testing.T) {
	fx := createTestTrackingHandler(t)

	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	milestones := []entity.DeliveryMilestone{
		entity.NewMilestone("d1", ts, entity.StartedPayload{RouteID: "r1"}),
		entity.NewMilestone("d1", ts, entity.StopCompletedPayload{StopIndex: 0, TotalStops: 2}),
	}
	fx.trackingUC.EXPECT().Milestones().Return(milestones).Once()
	fx.trackingUC.EXPECT().State().Return(entity.TrackingStateTracking).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/tracking/milestones", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got MilestonesResponse
	decodeData(t, rec, &got)
	assert.Equal(t, milestones, got.Milestones)
}

func TestTrackingHandler_CompleteStop(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.trackingUC.EXPECT().CompleteStop(mock.Anything, 2).Return(nil).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/stops/2/complete", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTrackingHandler_CompleteStop_Errors(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		fx := createTestTrackingHandler(t)

		rec := doRequest(fx.echo, http.MethodPost, "/tracking/stops/two/complete", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_STOP_INDEX", decodeError(t, rec).Code)
	})

	t.Run("not tracking", func(t *testing.T) {
		fx := createTestTrackingHandler(t)
		fx.trackingUC.EXPECT().CompleteStop(mock.Anything, 0).Return(domainerrors.ErrNotTracking).Once()

		rec := doRequest(fx.echo, http.MethodPost, "/tracking/stops/0/complete", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "NOT_TRACKING", decodeError(t, rec).Code)
	})

	t.Run("out of range", func(t *testing.T) {
		fx := createTestTrackingHandler(t)
		fx.trackingUC.EXPECT().CompleteStop(mock.Anything, 9).
			Return(domainerrors.ErrValidation.WithDetails("stop index out of range")).Once()

		rec := doRequest(fx.echo, http.MethodPost, "/tracking/stops/9/complete", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", info.Code)
		assert.Equal(t, "stop index out of range", info.Details)
	})
}

func TestTrackingHandler_CompleteDelivery(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.trackingUC.EXPECT().CompleteDelivery(mock.Anything).Return(domainerrors.ErrServiceUnavailable).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/complete", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, rec).Code)
}

func TestTrackingHandler_SubmitLocation(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.samples.EXPECT().Submit(entity.Coordinate{Latitude: 28.6139, Longitude: 77.209}).Return(true, nil).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/location", `{"latitude":28.6139,"longitude":77.209}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	var got map[string]bool
	decodeData(t, rec, &got)
	assert.True(t, got["accepted"])
}

func TestTrackingHandler_SubmitLocation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing longitude", body: `{"latitude":28.6}`},
		{name: "latitude out of range", body: `{"latitude":91,"longitude":77.2}`},
		{name: "longitude out of range", body: `{"latitude":28.6,"longitude":-181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTrackingHandler(t)

			rec := doRequest(fx.echo, http.MethodPost, "/tracking/location", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestTrackingHandler_SubmitLocation_ZeroCoordinate(t *testing.T) {
	fx := createTestTrackingHandler(t)

	fx.samples.EXPECT().Submit(entity.Coordinate{}).Return(false, nil).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/tracking/location", `{"latitude":0,"longitude":0}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
