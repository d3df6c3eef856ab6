package redis

import (
	"context"
	"fmt"

	"admin-srv/config"
	"admin-srv/pkg/redis"
)

// Connect creates a Redis client and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	client, err := redis.NewRedis(ctx, redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}
	return client, nil
}

// Disconnect closes the Redis client.
func Disconnect(client redis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
