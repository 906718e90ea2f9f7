// Package cache is a read-through cache for inventory reads. Entries are
// JSON encoded and invalidated by key pattern after a write commits.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/logger"
)

// Store is a byte-oriented key/value cache.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePattern removes every key matching a glob pattern such as "inventory:item:*".
	DeletePattern(ctx context.Context, pattern string) error
	Close() error
}

// Layer wraps a Store with JSON encoding and error swallowing. A nil *Layer
// disables caching.
type Layer struct {
	store Store
	ttl   time.Duration
}

// NewLayer creates a Layer with a default entry TTL.
func NewLayer(store Store, ttl time.Duration) *Layer {
	return &Layer{store: store, ttl: ttl}
}

// GetOrLoad returns the cached value for key or calls load and caches its result.
// Cache failures fall through to load.
func GetOrLoad[T any](ctx context.Context, l *Layer, key string, load func(context.Context) (T, error)) (T, error) {
	if l == nil {
		return load(ctx)
	}
	log := logger.FromContext(ctx)

	raw, ok, err := l.store.Get(ctx, key)
	if err != nil {
		log.Warn(LogMsgCacheReadFailed, "key", key, "error", err)
	}
	if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		log.Warn(LogMsgCacheDecodeFailed, "key", key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err := l.store.Set(ctx, key, data, l.ttl); err != nil {
		log.Warn(LogMsgCacheWriteFailed, "key", key, "error", err)
	}
	return v, nil
}

// Invalidate deletes every pattern. Failures are logged only.
func (l *Layer) Invalidate(ctx context.Context, patterns ...string) {
	if l == nil {
		return
	}
	for _, p := range patterns {
		if err := l.store.DeletePattern(ctx, p); err != nil {
			logger.FromContext(ctx).Warn(LogMsgCacheInvalidateFailed, "pattern", p, "error", err)
		}
	}
}

// Close releases the underlying store.
func (l *Layer) Close() error {
	if l == nil {
		return nil
	}
	return l.store.Close()
}
