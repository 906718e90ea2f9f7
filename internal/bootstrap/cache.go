package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/cache"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/config"
	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/handler"
)

// InitializeCache builds the read-through cache. With REDIS_ADDR set the
// shared Redis store is used and registered as a readiness dependency;
// otherwise each process keeps its own LRU.
func InitializeCache(ctx context.Context, cfg *config.Config) (*cache.Layer, map[string]handler.Pinger, error) {
	checks := make(map[string]handler.Pinger)

	if cfg.RedisAddr != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRedis, err)
		}
		checks[ReadinessCheckRedis] = store
		slog.Info(LogMsgCacheRedis, "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		return cache.NewLayer(store, cfg.CacheTTL), checks, nil
	}

	slog.Info(LogMsgCacheMemory, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	return cache.NewLayer(cache.NewMemoryStore(cfg.CacheSize, cfg.CacheTTL), cfg.CacheTTL), checks, nil
}
