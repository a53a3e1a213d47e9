// Package cache keeps delivery snapshots in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultTTL = 24 * time.Hour

	progressKeyPrefix    = "tracker:progress:"
	milestoneKeyPrefix   = "tracker:milestones:"
	milestoneIDKeyPrefix = "tracker:milestone-ids:"
)

// redisSnapshotStore implements service.SnapshotStore. Progress is a JSON
// string per delivery; milestones are a JSON list appended in log order. A
// set of seen milestone IDs makes appends idempotent, so the in-process
// forwarder and the push worker may both write the same delivery.
type redisSnapshotStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisSnapshotStore wraps an existing client. Keys expire after ttl.
func NewRedisSnapshotStore(client redis.UniversalClient, ttl time.Duration) service.SnapshotStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisSnapshotStore{client: client, ttl: ttl}
}

func (s *redisSnapshotStore) SaveProgress(ctx context.Context, progress *entity.DeliveryProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(s.client.Set(ctx, progressKeyPrefix+progress.DeliveryID, data, s.ttl).Err())
}

func (s *redisSnapshotStore) AppendMilestone(ctx context.Context, milestone entity.DeliveryMilestone) error {
	data, err := json.Marshal(milestone)
	if err != nil {
		return errors.WithStack(err)
	}

	idKey := milestoneIDKeyPrefix + milestone.DeliveryID
	added, err := s.client.SAdd(ctx, idKey, milestone.ID.String()).Result()
	if err != nil {
		return errors.WithStack(err)
	}
	if added == 0 {
		return nil
	}

	key := milestoneKeyPrefix + milestone.DeliveryID
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, s.ttl)
		pipe.Expire(ctx, idKey, s.ttl)

		return nil
	})
	if err != nil {
		// let a retry append it
		s.client.SRem(ctx, idKey, milestone.ID.String())

		return errors.WithStack(err)
	}

	return nil
}

func (s *redisSnapshotStore) LoadProgress(ctx context.Context, deliveryID string) (*entity.DeliveryProgress, error) {
	data, err := s.client.Get(ctx, progressKeyPrefix+deliveryID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerrors.ErrNotFound.WithDetails("no snapshot for delivery " + deliveryID)
		}

		return nil, errors.WithStack(err)
	}

	var progress entity.DeliveryProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, errors.Wrap(err, "decode progress snapshot")
	}

	return &progress, nil
}

func (s *redisSnapshotStore) LoadMilestones(ctx context.Context, deliveryID string) ([]entity.DeliveryMilestone, error) {
	raw, err := s.client.LRange(ctx, milestoneKeyPrefix+deliveryID, 0, -1).Result()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	milestones := make([]entity.DeliveryMilestone, 0, len(raw))
	for _, item := range raw {
		var m entity.DeliveryMilestone
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, errors.Wrap(err, "decode milestone")
		}
		milestones = append(milestones, m)
	}

	return milestones, nil
}

func (s *redisSnapshotStore) Close() error {
	return errors.WithStack(s.client.Close())
}

// SnapshotStoreParams holds dependencies for the snapshot store, injected by Fx
type SnapshotStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotStore connects to Redis when configured. It returns a nil store
// otherwise; snapshots are optional.
func NewSnapshotStore(params SnapshotStoreParams) (service.SnapshotStore, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, delivery snapshots disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(params.Ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to ping redis")
	}

	params.Logger.Info("Redis snapshot store initialized", slog.String("addr", cfg.Addr))

	store := NewRedisSnapshotStore(client, cfg.TTL)
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing snapshot store")

			return store.Close()
		},
	})

	return store, nil
}
