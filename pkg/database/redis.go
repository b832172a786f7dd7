package database

import (
	"context"
	"time"

	"movie-storefront/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// InitRedis membuat koneksi Redis untuk draft store.
// Returns nil on connection failure; callers degrade gracefully
// by disabling booking drafts.
func InitRedis(config utils.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
