package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefix for cached replies.
const replyKeyPrefix = "reply:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client.
func NewRedisCache(addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) GetReply(ctx context.Context, key string) (string, bool, error) {
	reply, err := c.client.Get(ctx, replyKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil // cache miss
	}
	if err != nil {
		return "", false, err
	}
	return reply, true, nil
}

func (c *RedisCache) SetReply(ctx context.Context, key string, reply string, ttl time.Duration) error {
	return c.client.Set(ctx, replyKeyPrefix+key, reply, ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
