package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     port,
		PoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "geocode:abc", "value", time.Hour))
	assert.True(t, mr.Exists("geocode:abc"))
	assert.Equal(t, time.Hour, mr.TTL("geocode:abc"))

	got, err := client.Get(ctx, "geocode:abc")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, client.Delete(ctx, "geocode:abc"))
	_, err = client.Get(ctx, "geocode:abc")
	assert.True(t, IsNotFound(err))
}

func TestRedisClient_Expiry(t *testing.T) {
	client, mr := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := client.Get(ctx, "k")
	assert.True(t, IsNotFound(err))
}

func TestRedisClient_Ping(t *testing.T) {
	client, mr := newTestRedis(t)
	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GetClient())
}

func TestRedisClient_NilGetClient(t *testing.T) {
	var client *RedisClient
	assert.Nil(t, client.GetClient())
}
