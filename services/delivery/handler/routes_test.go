package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/services/delivery/estimator"
	"github.com/piresc/deliveryeta/services/delivery/gateway"
	"github.com/piresc/deliveryeta/services/delivery/repository"
	"github.com/piresc/deliveryeta/services/delivery/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *models.Config, redisClient *redis.Client) *echo.Echo {
	t.Helper()
	mapsGW := gateway.NewMapsGW(cfg.Maps, nil)
	est := estimator.New(cfg, mapsGW, nil, nil)
	uc := usecase.NewDeliveryUC(cfg, est, mapsGW, repository.NewGeoCacheRepo(nil, 0, nil), nil)

	e := echo.New()
	NewHandler(uc, cfg, redisClient).RegisterRoutes(e)
	return e
}

func geometricConfig() *models.Config {
	return &models.Config{
		Maps:       models.MapsConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 1},
		Restaurant: models.RestaurantConfig{Latitude: 19.076, Longitude: 72.8777},
		Delivery:   models.DeliveryConfig{PreparationMinutes: 15, BufferMinutes: 5, AverageSpeedKmh: 25},
	}
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_GeometricOnly(t *testing.T) {
	e := newTestServer(t, geometricConfig(), nil)

	rec := get(e, "/api/location/distance?userLat=19.076&userLng=72.8777&restaurantLat=19.076&restaurantLng=72.8777")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 0.0, body["distance"])
	assert.Equal(t, 0.0, body["duration"])
	assert.Equal(t, "geometric", body["method"])

	rec = get(e, "/api/location/estimate?userLat=19.1136&userLng=72.8697")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	estimate := body["estimate"].(map[string]interface{})
	assert.Equal(t, 4.3, estimate["distance"])
	assert.Equal(t, 30.0, estimate["totalTime"])
	assert.Equal(t, "30-40 mins", estimate["formattedTime"])
}

func TestRoutes_AntipodalDistance(t *testing.T) {
	e := newTestServer(t, geometricConfig(), nil)

	rec := get(e, "/api/location/distance?userLat=-88.5&userLng=0&restaurantLat=88.5&restaurantLng=-180")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "geometric", body["method"])
	assert.InDelta(t, math.Pi*6371.0, body["distance"].(float64), 0.1)
	assert.Greater(t, body["duration"].(float64), 0.0)
}

func TestRoutes_ProviderFailureFallsBack(t *testing.T) {
	var calls atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
	}))
	t.Cleanup(provider.Close)

	cfg := geometricConfig()
	cfg.Maps.APIKey = "test-key"
	cfg.Maps.BaseURL = provider.URL
	e := newTestServer(t, cfg, nil)

	rec := get(e, "/api/location/distance?userLat=19.1136&userLng=72.8697&restaurantLat=19.076&restaurantLng=72.8777")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "geometric", body["method"])
	assert.Equal(t, 4.3, body["distance"])
	assert.Equal(t, 10.0, body["duration"])

	rec = get(e, "/api/location/estimate?userLat=19.1136&userLng=72.8697")
	require.Equal(t, http.StatusOK, rec.Code)
	body = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	estimate := body["estimate"].(map[string]interface{})
	assert.Equal(t, 4.3, estimate["distance"])
	assert.Equal(t, "30-40 mins", estimate["formattedTime"])

	assert.Equal(t, int32(2), calls.Load())
}

func TestRoutes_LookupsWithoutKey(t *testing.T) {
	e := newTestServer(t, geometricConfig(), nil)

	rec := get(e, "/api/location/reverse-geocode?lat=19.076&lng=72.8777")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Maps API key not configured"}`, rec.Body.String())

	rec = get(e, "/api/location/search?query=pizza")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Maps API key not configured","results":[]}`, rec.Body.String())
}

func TestRoutes_MissingParameters(t *testing.T) {
	e := newTestServer(t, geometricConfig(), nil)

	rec := get(e, "/api/location/distance?userLat=19.076")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Missing coordinates"}`, rec.Body.String())
}

func TestRoutes_RateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := geometricConfig()
	cfg.RateLimit.PerMinute = 2
	e := newTestServer(t, cfg, client)

	target := "/api/location/estimate?userLat=19.1136&userLng=72.8697"
	assert.Equal(t, http.StatusOK, get(e, target).Code)
	assert.Equal(t, http.StatusOK, get(e, target).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(e, target).Code)
}
