package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/piresc/deliveryeta/internal/pkg/database"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/services/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (delivery.GeoCacheRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port, PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewGeoCacheRepo(client, time.Hour, nil), mr
}

func TestGeoCacheRepo_Address(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()
	coord := models.Coordinate{Latitude: 19.076, Longitude: 72.8777}

	_, err := repo.GetAddress(ctx, coord)
	assert.ErrorIs(t, err, delivery.ErrCacheMiss)

	address := &models.Address{
		FormattedAddress: "Bandra West, Mumbai",
		Components:       models.AddressComponents{City: "Mumbai", Country: "India"},
		PlaceID:          "place-1",
	}
	require.NoError(t, repo.SetAddress(ctx, coord, address))

	key := geocodeKey(coord)
	assert.Len(t, key, len("geocode:")+9)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Hour, mr.TTL(key))

	got, err := repo.GetAddress(ctx, coord)
	require.NoError(t, err)
	assert.Equal(t, address, got)

	// a point a few centimetres away shares the cell
	got, err = repo.GetAddress(ctx, models.Coordinate{Latitude: 19.0760001, Longitude: 72.8777001})
	require.NoError(t, err)
	assert.Equal(t, "place-1", got.PlaceID)
}

func TestGeoCacheRepo_Places(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	places := []models.Place{
		{Name: "Pizza Place", Address: "Linking Rd", Location: models.Coordinate{Latitude: 19.06, Longitude: 72.83}, PlaceID: "p1"},
	}
	require.NoError(t, repo.SetPlaces(ctx, "  Pizza   Bandra ", places))
	assert.True(t, mr.Exists("search:pizza bandra"))

	got, err := repo.GetPlaces(ctx, "pizza bandra")
	require.NoError(t, err)
	assert.Equal(t, places, got)

	_, err = repo.GetPlaces(ctx, "sushi")
	assert.ErrorIs(t, err, delivery.ErrCacheMiss)
}

func TestGeoCacheRepo_EmptyPlacesNotCached(t *testing.T) {
	repo, mr := setupRepo(t)

	require.NoError(t, repo.SetPlaces(context.Background(), "nothing", nil))
	assert.False(t, mr.Exists("search:nothing"))
}

func TestGeoCacheRepo_CorruptEntry(t *testing.T) {
	repo, mr := setupRepo(t)
	require.NoError(t, mr.Set("search:broken", "{not json"))

	_, err := repo.GetPlaces(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, delivery.ErrCacheMiss)
	assert.False(t, mr.Exists("search:broken"))
}

func TestGeoCacheRepo_NilClient(t *testing.T) {
	repo := NewGeoCacheRepo(nil, 0, nil)
	ctx := context.Background()
	coord := models.Coordinate{Latitude: 1, Longitude: 2}

	assert.NoError(t, repo.SetAddress(ctx, coord, &models.Address{PlaceID: "x"}))
	_, err := repo.GetAddress(ctx, coord)
	assert.ErrorIs(t, err, delivery.ErrCacheMiss)

	assert.NoError(t, repo.SetPlaces(ctx, "q", []models.Place{{Name: "x"}}))
	_, err = repo.GetPlaces(ctx, "q")
	assert.ErrorIs(t, err, delivery.ErrCacheMiss)
}
