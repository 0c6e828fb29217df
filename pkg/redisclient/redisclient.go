package redisclient

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to Redis and returns nil when the server is unreachable or no
// address is configured. Callers treat a nil client as "caching and rate
// limiting disabled" rather than an error.
func New(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Redis] unreachable at %s, continuing without cache/rate limit: %v", addr, err)
		return nil
	}

	return client
}
