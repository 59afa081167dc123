package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const roleCachePrefix = "role:"

// RedisRoleCache stores user roles in Redis with a fixed TTL.
type RedisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) *RedisRoleCache {
	return &RedisRoleCache{client: client, ttl: ttl}
}

func (c *RedisRoleCache) GetRole(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, roleCachePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

func (c *RedisRoleCache) SetRole(ctx context.Context, email, role string) error {
	return c.client.Set(ctx, roleCachePrefix+email, role, c.ttl).Err()
}

func (c *RedisRoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, roleCachePrefix+email).Err()
}
