package cache

import "time"

// Defaults
const (
	DefaultTTL          = 5 * time.Minute
	DefaultMemorySize   = 1024
	RedisScanBatchSize  = 200
	RedisDialTimeout    = 5 * time.Second
	RedisOperationLimit = 2 * time.Second
)

// Log messages
const (
	LogMsgCacheReadFailed       = "Cache read failed"
	LogMsgCacheDecodeFailed     = "Cache entry could not be decoded, reloading"
	LogMsgCacheWriteFailed      = "Cache write failed"
	LogMsgCacheInvalidateFailed = "Cache invalidation failed"
)
