package redis

import (
	"context"
	"fmt"
	"time"

	"jobpulse/internal/storage/mirror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// KV backs the local mirror with Redis. Keys are namespaced so several
// clients can share one instance.
type KV struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func New(addr, password string, db int, logger *zap.Logger) (*KV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	// check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("successfully connected to Redis")

	return &KV{
		client: client,
		prefix: "jobpulse:mirror:",
		logger: logger,
	}, nil
}

func (k *KV) Close() error {
	return k.client.Close()
}

func (k *KV) Ping(ctx context.Context) error {
	return k.client.Ping(ctx).Err()
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := k.client.Get(ctx, k.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, mirror.ErrNotFound
	}
	if err != nil {
		k.logger.Error("failed to get key",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get key: %w", err)
	}

	return data, nil
}

// Set stores without expiry: the mirror is durable state, not a cache.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, k.prefix+key, value, 0).Err(); err != nil {
		k.logger.Error("failed to set key",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("set key: %w", err)
	}

	return nil
}

func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.client.Del(ctx, k.prefix+key).Err(); err != nil {
		k.logger.Error("failed to delete key",
			zap.String("key", key),
			zap.Error(err),
		)
		return fmt.Errorf("delete key: %w", err)
	}

	return nil
}
