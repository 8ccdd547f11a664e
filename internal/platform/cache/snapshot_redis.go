// Package cache provides snapshot store implementations for the marketdata feature.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"finance_backend/internal/feature/marketdata/domain/entity"
	"finance_backend/internal/feature/marketdata/usecase"
)

// snapshotTTL bounds how long a stale snapshot lingers in Redis. Freshness is
// decided by the usecase on UTC calendar day; the TTL is only housekeeping.
const snapshotTTL = 48 * time.Hour

// SnapshotRedis implements usecase.SnapshotStore on a single Redis key.
type SnapshotRedis struct {
	client *redis.Client
	key    string
}

var _ usecase.SnapshotStore = (*SnapshotRedis)(nil)

// NewSnapshotRedis creates a Redis-backed snapshot store. If key is empty it
// uses "finance:snapshot".
func NewSnapshotRedis(client *redis.Client, key string) *SnapshotRedis {
	if key == "" {
		key = "finance:snapshot"
	}
	return &SnapshotRedis{client: client, key: key}
}

// Load returns the cached snapshot, or (nil, nil) when the slot is empty.
// A corrupted entry is deleted and treated as an empty slot.
func (s *SnapshotRedis) Load(ctx context.Context) (*entity.Snapshot, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		// Delete corrupted cache entry
		_ = s.client.Del(ctx, s.key).Err()
		return nil, nil
	}
	return &snap, nil
}

// Save overwrites the snapshot slot.
func (s *SnapshotRedis) Save(ctx context.Context, snap *entity.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, b, snapshotTTL).Err()
}
