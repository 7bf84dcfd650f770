package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// Cache is a best-effort string cache over Redis. A nil client disables
// caching; Redis failures are logged and treated as misses so a cache outage
// never surfaces to callers.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(key string) (string, bool) {
	if c.client == nil {
		return "", false
	}

	val, err := c.client.Get(Ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("redis get failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

func (c *Cache) Set(key, value string, ttl time.Duration) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(Ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("redis set failed", "key", key, "error", err)
	}
}
