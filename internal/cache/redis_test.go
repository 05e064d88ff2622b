package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airportdesk/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Hour)
	defer c.Close()

	assert.NotNil(t, c)
	assert.Equal(t, time.Hour, c.dedupeTTL)
}

func TestEventKey(t *testing.T) {
	assert.Equal(t, "notify:event:abc", eventKey("abc"))
}

func TestRedisCache_ClaimEvent_Unreachable(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "127.0.0.1:1"}, time.Minute)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ok, err := c.ClaimEvent(ctx, "abc")
	assert.Error(t, err)
	assert.False(t, ok)
}
