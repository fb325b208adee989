package cache

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const redisRouteKeyPrefix = "routes:"

// RedisRouteCache stores planned courier routes in Redis as JSON with a TTL.
type RedisRouteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRouteCache(rdb *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{rdb: rdb, ttl: ttl}
}

// NewRedisRouteCacheFromURL parses a redis:// URL and checks the server is reachable.
func NewRedisRouteCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisRouteCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis route cache: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis route cache: ping: %w", err)
	}

	return NewRedisRouteCache(rdb, ttl), nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (_ domain.CourierRoutes, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.redis.Get")(&err)

	raw, err := c.rdb.Get(ctx, redisRouteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache key=%s: %w", key, err)
	}

	var routes domain.CourierRoutes
	if err := json.Unmarshal(raw, &routes); err != nil {
		return nil, false, fmt.Errorf("get route cache: decode key=%s: %w", key, err)
	}

	return routes, true, nil
}

// Put stores routes under key. A zero TTL keeps the entry until evicted.
func (c *RedisRouteCache) Put(ctx context.Context, key string, routes domain.CourierRoutes) error {
	raw, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	if err := c.rdb.Set(ctx, redisRouteKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%s: %w", key, err)
	}

	return nil
}

func (c *RedisRouteCache) Close() error {
	return c.rdb.Close()
}
