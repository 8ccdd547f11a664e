package di

import (
	"os"

	"github.com/redis/go-redis/v9"

	"finance_backend/internal/feature/marketdata/usecase"
	"finance_backend/internal/platform/cache"
)

// NewSnapshotStore creates a SnapshotStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to a local JSON file.
func NewSnapshotStore(rdb *redis.Client) usecase.SnapshotStore {
	if rdb != nil {
		return cache.NewSnapshotRedis(rdb, "finance:snapshot")
	}
	return cache.NewSnapshotFile(os.Getenv("SNAPSHOT_CACHE_PATH"))
}
