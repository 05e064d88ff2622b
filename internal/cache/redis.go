package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airportdesk/config"
	"github.com/redis/go-redis/v9"
)

// RedisCache remembers which booking events have already produced a notification.
type RedisCache struct {
	client    *redis.Client
	dedupeTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, dedupeTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		dedupeTTL: dedupeTTL,
	}
}

// ClaimEvent returns true the first time eventID is seen within the dedupe TTL.
func (c *RedisCache) ClaimEvent(ctx context.Context, eventID string) (bool, error) {
	ok, err := c.client.SetNX(ctx, eventKey(eventID), "sent", c.dedupeTTL).Result()
	if err != nil {
		return false, fmt.Errorf("claim event %s: %w", eventID, err)
	}
	return ok, nil
}

// ReleaseEvent forgets eventID so a redelivery can retry the notification.
func (c *RedisCache) ReleaseEvent(ctx context.Context, eventID string) error {
	return c.client.Del(ctx, eventKey(eventID)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func eventKey(eventID string) string {
	return "notify:event:" + eventID
}
