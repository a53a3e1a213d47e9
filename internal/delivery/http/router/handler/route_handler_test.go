package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	mockSvc "tracker/internal/mocks/service"
	mockUsecase "tracker/internal/mocks/usecase"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routeHandlerFixtures struct {
	echo      *echo.Echo
	routeUC   *mockUsecase.MockRouteUsecase
	historyUC *mockUsecase.MockHistoryUsecase
}

func createTestRouteHandler(t *testing.T) routeHandlerFixtures {
	routeUC := mockUsecase.NewMockRouteUsecase(t)
	historyUC := mockUsecase.NewMockHistoryUsecase(t)

	h := NewRouteHandler(RouteHandlerParams{
		RouteUC:   routeUC,
		HistoryUC: historyUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho()
	e.POST("/routes/optimize", h.OptimizeRoute)
	e.GET("/routes/:id", h.GetRoute)
	e.GET("/deliveries/:id", h.GetDelivery)

	return routeHandlerFixtures{echo: e, routeUC: routeUC, historyUC: historyUC}
}

func TestRouteHandler_OptimizeRoute(t *testing.T) {
	fx := createTestRouteHandler(t)

	route := &entity.OptimizedRoute{
		RouteID: "r1",
		Stops: []entity.RouteStop{
			{Address: "India Gate", StopIndex: 0},
			{Address: "Red Fort", StopIndex: 1},
		},
		TotalDistanceKm: 14.44,
		Status:          entity.RouteStatusPending,
	}
	fx.routeUC.EXPECT().
		OptimizeRoute(mock.Anything, mock.MatchedBy(func(in *usecase.OptimizeRouteInput) bool {
			return len(in.Addresses) == 2 && in.Addresses[0] == "India Gate" &&
				in.StartLocation != nil && *in.StartLocation == "Connaught Place"
		})).
		Return(route, nil).Once()

	rec := doRequest(fx.echo, http.MethodPost, "/routes/optimize",
		`{"addresses":["  India Gate ","Red Fort"],"start_location":"Connaught Place"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.OptimizedRoute
	decodeData(t, rec, &got)
	assert.Equal(t, "r1", got.RouteID)
	assert.Len(t, got.Stops, 2)
}

func TestRouteHandler_OptimizeRoute_NeedsTwoAddresses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "one address", body: `{"addresses":["India Gate"]}`},
		{name: "blank address", body: `{"addresses":["India Gate","   "]}`},
		{name: "no addresses", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouteHandler(t)

			rec := doRequest(fx.echo, http.MethodPost, "/routes/optimize", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
		})
	}
}

func TestRouteHandler_GetRoute(t *testing.T) {
	fx := createTestRouteHandler(t)

	fx.routeUC.EXPECT().GetRoute(mock.Anything, "missing").
		Return(nil, domainerrors.ErrNotFound.WithDetails("route missing")).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/routes/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route missing", decodeError(t, rec).Details)
}

func TestRouteHandler_GetDelivery(t *testing.T) {
	fx := createTestRouteHandler(t)

	snapshot := &usecase.DeliverySnapshot{
		Progress:   &entity.DeliveryProgress{DeliveryID: "d1", ProgressPercent: 100},
		Milestones: []entity.DeliveryMilestone{},
	}
	fx.historyUC.EXPECT().GetDelivery(mock.Anything, "d1").Return(snapshot, nil).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/deliveries/d1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var got usecase.DeliverySnapshot
	decodeData(t, rec, &got)
	assert.Equal(t, 100, got.Progress.ProgressPercent)
}

func TestRouteHandler_UnhandledErrorIsGeneric(t *testing.T) {
	fx := createTestRouteHandler(t)

	fx.historyUC.EXPECT().GetDelivery(mock.Anything, "d1").Return(nil, io.ErrUnexpectedEOF).Once()

	rec := doRequest(fx.echo, http.MethodGet, "/deliveries/d1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", info.Code)
	assert.NotContains(t, info.Message, "unexpected EOF")
}

func TestHealthHandler(t *testing.T) {
	client := mockSvc.NewMockRouteOptimizationClient(t)
	client.EXPECT().IsConnected().Return(false).Once()

	e := newTestEcho()
	e.GET("/health", NewHealthHandler(client).HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","realtime_connected":false}`, rec.Body.String())
}
