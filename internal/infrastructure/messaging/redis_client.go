package messaging

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis creates a Redis client from environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
//   - CLAIM_EVENTS_STREAM (optional; defaults to claims.status-changed)
func ConnectRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
