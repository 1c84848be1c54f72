package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/constants"
	"github.com/piresc/deliveryeta/internal/pkg/database"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/internal/utils"
	"github.com/piresc/deliveryeta/services/delivery"
)

const (
	// DefaultCacheTTL is used when no TTL is configured
	DefaultCacheTTL = 24 * time.Hour

	kindGeocode = "geocode"
	kindSearch  = "search"
)

type geoCacheRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
	metrics     *metrics.Metrics
}

// NewGeoCacheRepo creates a Redis backed lookup cache. A nil client yields a
// cache that always misses and silently drops writes.
func NewGeoCacheRepo(redisClient *database.RedisClient, ttl time.Duration, m *metrics.Metrics) delivery.GeoCacheRepo {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &geoCacheRepo{
		redisClient: redisClient,
		ttl:         ttl,
		metrics:     m,
	}
}

func geocodeKey(coord models.Coordinate) string {
	return fmt.Sprintf(constants.KeyGeocode, utils.EncodeCoordinate(coord, constants.GeocodeHashPrecision))
}

func searchKey(query string) string {
	return fmt.Sprintf(constants.KeySearch, utils.NormalizeQuery(query))
}

// GetAddress returns the cached address for the geohash cell containing coord
func (r *geoCacheRepo) GetAddress(ctx context.Context, coord models.Coordinate) (*models.Address, error) {
	var address models.Address
	if err := r.get(ctx, kindGeocode, geocodeKey(coord), &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// SetAddress caches address for the geohash cell containing coord
func (r *geoCacheRepo) SetAddress(ctx context.Context, coord models.Coordinate, address *models.Address) error {
	if address == nil {
		return nil
	}
	return r.set(ctx, geocodeKey(coord), address)
}

// GetPlaces returns cached search results for query
func (r *geoCacheRepo) GetPlaces(ctx context.Context, query string) ([]models.Place, error) {
	var places []models.Place
	if err := r.get(ctx, kindSearch, searchKey(query), &places); err != nil {
		return nil, err
	}
	return places, nil
}

// SetPlaces caches search results for query
func (r *geoCacheRepo) SetPlaces(ctx context.Context, query string, places []models.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.set(ctx, searchKey(query), places)
}

func (r *geoCacheRepo) get(ctx context.Context, kind, key string, out interface{}) error {
	if r.redisClient == nil {
		return delivery.ErrCacheMiss
	}

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if database.IsNotFound(err) {
			r.metrics.RecordCacheLookup(kind, false)
			return delivery.ErrCacheMiss
		}
		return fmt.Errorf("failed to read %s cache: %w", kind, err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		// drop the entry so the next lookup repopulates it
		_ = r.redisClient.Delete(ctx, key)
		return fmt.Errorf("failed to decode %s cache entry: %w", kind, err)
	}

	r.metrics.RecordCacheLookup(kind, true)
	return nil
}

func (r *geoCacheRepo) set(ctx context.Context, key string, value interface{}) error {
	if r.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
