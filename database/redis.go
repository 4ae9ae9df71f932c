package database

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client for rate-limit counters, or nil when
// redis is unreachable. Callers must treat a nil client as "no limiting".
func ConnectRedis(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️ Invalid REDIS_URL, rate limiting disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable, rate limiting disabled: %v", err)
		return nil
	}

	log.Println("✅ Connected to redis")
	return client
}
