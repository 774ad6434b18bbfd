package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// Cache key prefixes
	cacheKeyActivePrefix = "notifyhub:active:"

	// Active banners are polled aggressively by the embedding SDKs, so
	// the TTL is kept short to bound staleness after a missed invalidation.
	CacheTTLActiveNotifications = 30 * time.Second
)

// ActiveNotificationsKey returns the cache key for a tenant's currently
// active notifications.
func ActiveNotificationsKey(tenantID uint) string {
	return fmt.Sprintf("%s%d", cacheKeyActivePrefix, tenantID)
}

// CacheGet retrieves a value from Redis cache and unmarshals it into dest.
// Returns redis.Nil-wrapped errors on miss; callers treat any error as a miss.
func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return fmt.Errorf("cache disabled")
	}
	ctx := context.Background()
	data, err := Redis.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// CacheSet stores a value in Redis cache with TTL
func CacheSet(key string, value interface{}, ttl time.Duration) error {
	if Redis == nil {
		return nil
	}
	ctx := context.Background()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(ctx, key, data, ttl).Err()
}

// CacheDelete removes keys from Redis cache
func CacheDelete(keys ...string) error {
	if Redis == nil || len(keys) == 0 {
		return nil
	}
	ctx := context.Background()
	return Redis.Del(ctx, keys...).Err()
}

// InvalidateActiveNotifications clears the cached active-banner list for
// a tenant. Called after every notification mutation.
func InvalidateActiveNotifications(tenantID uint) {
	CacheDelete(ActiveNotificationsKey(tenantID))
}
