package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_MAPS_API_KEY", "MAPS_BASE_URL", "RESTAURANT_LAT", "RESTAURANT_LNG",
		"DELIVERY_PREPARATION_MINUTES", "DELIVERY_BUFFER_MINUTES", "DELIVERY_AVERAGE_SPEED_KMH",
		"SERVER_PORT", "REDIS_HOST", "GEOCODE_CACHE_TTL_MINUTES",
	} {
		t.Setenv(key, "")
	}

	cfg := loadConfigFromEnv()

	assert.Equal(t, 9990, cfg.Server.Port)
	assert.Empty(t, cfg.Maps.APIKey)
	assert.False(t, cfg.Maps.Configured())
	assert.Equal(t, DefaultMapsBaseURL, cfg.Maps.BaseURL)
	assert.Equal(t, 5, cfg.Maps.TimeoutSeconds)
	assert.Equal(t, DefaultRestaurantLat, cfg.Restaurant.Latitude)
	assert.Equal(t, DefaultRestaurantLng, cfg.Restaurant.Longitude)
	assert.Equal(t, 15, cfg.Delivery.PreparationMinutes)
	assert.Equal(t, 5, cfg.Delivery.BufferMinutes)
	assert.Equal(t, 25.0, cfg.Delivery.AverageSpeedKmh)
	assert.Equal(t, 5, cfg.Circuit.FailureThreshold)
	assert.Equal(t, 30, cfg.Circuit.OpenSeconds)
	assert.Empty(t, cfg.Redis.Host)
	assert.Equal(t, 1440, cfg.Redis.CacheTTL)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "  test-key ")
	t.Setenv("MAPS_BASE_URL", "http://localhost:8080/maps/")
	t.Setenv("RESTAURANT_LAT", "12.9716")
	t.Setenv("RESTAURANT_LNG", "77.5946")
	t.Setenv("DELIVERY_AVERAGE_SPEED_KMH", "-3")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "test-key", cfg.Maps.APIKey)
	assert.True(t, cfg.Maps.Configured())
	assert.Equal(t, "http://localhost:8080/maps", cfg.Maps.BaseURL)
	assert.Equal(t, 12.9716, cfg.Restaurant.Latitude)
	assert.Equal(t, 77.5946, cfg.Restaurant.Longitude)
	assert.Equal(t, 25.0, cfg.Delivery.AverageSpeedKmh)
	assert.Equal(t, 9990, cfg.Server.Port)
}

func TestInitConfig_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DELIVERY_BUFFER_MINUTES=7\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("DELIVERY_BUFFER_MINUTES", "")
	// godotenv does not override variables that are already present
	require.NoError(t, os.Unsetenv("DELIVERY_BUFFER_MINUTES"))

	cfg := InitConfig(path)
	assert.Equal(t, 7, cfg.Delivery.BufferMinutes)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "x")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_FLOAT", "1.5")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 1.5, GetEnvAsFloat("TEST_FLOAT", 0))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}
