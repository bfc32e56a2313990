package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/google/uuid"
)

const (
	badgesCacheKey = "badges:all"

	DefaultBikeCacheTTL  = 15 * time.Minute
	DefaultBadgeCacheTTL = time.Hour
	DefaultUserCacheTTL  = time.Hour
)

func userCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s:known", userID.String())
}

func bikeCacheKey(bikeID uuid.UUID) string {
	return fmt.Sprintf("bike:%s", bikeID.String())
}

// cacheGet decodes the cached value into dst. Misses and decode failures both
// report false.
func cacheGet(cache ports.CachePort, key string, dst interface{}) bool {
	data, err := cache.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func cacheSet(cache ports.CachePort, logger ports.LoggerPort, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal value for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		return
	}
	if err := cache.Set(key, data, ttl); err != nil {
		logger.Warn("Failed to write cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}

func cacheDelete(cache ports.CachePort, logger ports.LoggerPort, key string) {
	if err := cache.Delete(key); err != nil {
		logger.Warn("Failed to invalidate cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}
