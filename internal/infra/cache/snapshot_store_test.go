package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestStore(t *testing.T) (service.SnapshotStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisSnapshotStore(client, time.Hour)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestSnapshotStore_ProgressRoundTrip(t *testing.T) {
	store, mr := createTestStore(t)
	ctx := context.Background()

	progress := &entity.DeliveryProgress{
		DeliveryID:           "d1",
		RouteID:              "r1",
		CurrentStopIndex:     1,
		TotalStops:           3,
		ProgressPercent:      33,
		ETAMinutes:           12.5,
		DistanceRemainingKm:  5.2,
		CurrentLocation:      entity.Coordinate{Latitude: 28.6, Longitude: 77.2},
		NextStop:             &entity.NextStop{Address: "B", Coordinate: entity.Coordinate{Latitude: 28.7, Longitude: 77.1}},
		CompletedStopIndices: []int{0},
	}

	require.NoError(t, store.SaveProgress(ctx, progress))

	got, err := store.LoadProgress(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, progress, got)
	assert.Equal(t, time.Hour, mr.TTL(progressKeyPrefix+"d1"))
}

func TestSnapshotStore_LoadProgressMiss(t *testing.T) {
	store, _ := createTestStore(t)

	_, err := store.LoadProgress(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSnapshotStore_MilestonesKeepOrder(t *testing.T) {
	store, mr := createTestStore(t)
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	first := entity.NewMilestone("d1", ts, entity.StartedPayload{RouteID: "r1"})
	second := entity.NewMilestone("d1", ts.Add(time.Minute), entity.StopCompletedPayload{StopIndex: 0, TotalStops: 3})

	require.NoError(t, store.AppendMilestone(ctx, first))
	require.NoError(t, store.AppendMilestone(ctx, second))

	got, err := store.LoadMilestones(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, entity.StartedPayload{RouteID: "r1"}, got[0].Payload)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, entity.StopCompletedPayload{StopIndex: 0, TotalStops: 3}, got[1].Payload)
	assert.Equal(t, time.Hour, mr.TTL(milestoneKeyPrefix+"d1"))

	none, err := store.LoadMilestones(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSnapshotStore_AppendMilestoneIsIdempotent(t *testing.T) {
	store, mr := createTestStore(t)
	ctx := context.Background()

	m := entity.NewMilestone("d1", time.Now().UTC(), entity.StartedPayload{RouteID: "r1"})

	require.NoError(t, store.AppendMilestone(ctx, m))
	require.NoError(t, store.AppendMilestone(ctx, m))

	got, err := store.LoadMilestones(ctx, "d1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, time.Hour, mr.TTL(milestoneIDKeyPrefix+"d1"))
}

func TestNewSnapshotStore(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("not configured", func(t *testing.T) {
		store, err := NewSnapshotStore(SnapshotStoreParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.Nil(t, store)
	})

	t.Run("configured", func(t *testing.T) {
		mr := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)

		store, err := NewSnapshotStore(SnapshotStoreParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}},
			Logger: logger,
		})
		require.NoError(t, err)
		require.NotNil(t, store)

		lc.RequireStart().RequireStop()
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := NewSnapshotStore(SnapshotStoreParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Redis: &config.RedisConfig{Addr: addr}},
			Logger: logger,
		})
		assert.ErrorContains(t, err, "failed to ping redis")
	})
}
