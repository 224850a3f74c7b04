package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"notehub/internal/config"
)

// NewRedis initializes a Redis client and validates connectivity via PING.
// Pool defaults are conservative; usage metering issues short point commands
// so a small pool is sufficient.
func NewRedis(c config.RedisConfig) (*redis.Client, error) {
	if c.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     20,
		PoolTimeout:  4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
