package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	mockSvc "tracker/internal/mocks/service"
	"tracker/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteService_OptimizeRoute(t *testing.T) {
	client := mockSvc.NewMockRouteOptimizationClient(t)
	svc := NewRouteService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	start := "Connaught Place, New Delhi"
	addresses := []string{"India Gate, New Delhi", "Red Fort, Delhi"}
	route := testRoute()

	client.EXPECT().OptimizeRoute(ctx, addresses, &start).Return(route, nil).Once()

	got, err := svc.OptimizeRoute(ctx, &usecase.OptimizeRouteInput{Addresses: addresses, StartLocation: &start})

	require.NoError(t, err)
	assert.Equal(t, route, got)
}

func TestRouteService_OptimizeRoute_Error(t *testing.T) {
	client := mockSvc.NewMockRouteOptimizationClient(t)
	svc := NewRouteService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	addresses := []string{"a", "b"}

	client.EXPECT().OptimizeRoute(ctx, addresses, (*string)(nil)).
		Return(nil, domainerrors.ErrServiceUnavailable).Once()

	_, err := svc.OptimizeRoute(ctx, &usecase.OptimizeRouteInput{Addresses: addresses})

	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestRouteService_GetRoute(t *testing.T) {
	client := mockSvc.NewMockRouteOptimizationClient(t)
	svc := NewRouteService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()
	client.EXPECT().GetRoute(ctx, testRouteID).Return(testRoute(), nil).Once()

	got, err := svc.GetRoute(ctx, testRouteID)

	require.NoError(t, err)
	assert.Equal(t, testRouteID, got.RouteID)
}

func TestHistoryService_GetDelivery(t *testing.T) {
	store := mockSvc.NewMockSnapshotStore(t)
	svc := NewHistoryService(store)

	ctx := context.Background()
	progress := &entity.DeliveryProgress{DeliveryID: "d1", ProgressPercent: 100}
	milestones := []entity.DeliveryMilestone{
		entity.NewMilestone("d1", testClock, entity.StartedPayload{RouteID: "r1"}),
	}

	store.EXPECT().LoadProgress(ctx, "d1").Return(progress, nil).Once()
	store.EXPECT().LoadMilestones(ctx, "d1").Return(milestones, nil).Once()

	snapshot, err := svc.GetDelivery(ctx, "d1")

	require.NoError(t, err)
	assert.Equal(t, progress, snapshot.Progress)
	assert.Equal(t, milestones, snapshot.Milestones)
}

func TestHistoryService_GetDelivery_NotFound(t *testing.T) {
	store := mockSvc.NewMockSnapshotStore(t)
	svc := NewHistoryService(store)

	ctx := context.Background()
	store.EXPECT().LoadProgress(ctx, "missing").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := svc.GetDelivery(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestHistoryService_WithoutStore(t *testing.T) {
	svc := NewHistoryService(nil)

	_, err := svc.GetDelivery(context.Background(), "d1")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
