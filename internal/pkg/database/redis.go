package database

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/deliveryeta/internal/pkg/models"
)

const connectTimeout = 5 * time.Second

// RedisClient wraps the go-redis client used by the lookup cache
// and the rate limiter.
type RedisClient struct {
	client *redis.Client
}

func redisOptions(cfg models.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: connectTimeout,
	}
}

// NewRedisClient connects and pings. The client is closed again if the
// ping fails.
func NewRedisClient(cfg models.RedisConfig) (*RedisClient, error) {
	rc := &RedisClient{client: redis.NewClient(redisOptions(cfg))}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		_ = rc.Close()
		return nil, err
	}
	return rc, nil
}

// GetClient is nil-safe so callers can pass an absent cache straight through
func (r *RedisClient) GetClient() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns the stored string. Check a missing key with IsNotFound.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
