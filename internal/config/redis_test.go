package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClientUnreachable(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	assert.Nil(t, NewRedisClient(), "an unreachable server degrades to a nil client")
}

func TestNewRedisClientBadURL(t *testing.T) {
	t.Setenv("REDIS_URL", "not-a-redis-url")
	assert.Nil(t, NewRedisClient())
}
