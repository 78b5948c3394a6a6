package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/HSouheill/client_desk/logger"
)

// ConnectRedis establishes connection to Redis. It returns nil when Redis is
// not configured or unreachable; sessions then fall back to process memory.
func ConnectRedis(cfg RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		logger.Log.Info().Msg("REDIS_ADDR not set, session revocation kept in memory")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Log.Warn().Err(err).Msg("Redis connection failed, session revocation kept in memory")
		_ = client.Close()
		return nil
	}

	logger.Log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return client
}
