package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/deliveryeta/internal/pkg/models"
)

const (
	DefaultMapsBaseURL = "https://maps.googleapis.com/maps/api"

	// Restaurant origin used when RESTAURANT_LAT/RESTAURANT_LNG are unset
	DefaultRestaurantLat = 19.076
	DefaultRestaurantLng = 72.8777
)

// InitConfig builds the configuration from the environment. In the local
// environment configPath is loaded first; variables already set win.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Printf("config file %s not loaded: %v", configPath, err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	configs.App.Name = GetEnv("APP_NAME", "delivery-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Maps provider config
	configs.Maps.APIKey = strings.TrimSpace(GetEnv("GOOGLE_MAPS_API_KEY", ""))
	configs.Maps.BaseURL = strings.TrimRight(GetEnv("MAPS_BASE_URL", DefaultMapsBaseURL), "/")
	configs.Maps.TimeoutSeconds = GetEnvAsInt("MAPS_TIMEOUT_SECONDS", 5)
	configs.Maps.Language = GetEnv("MAPS_LANGUAGE", "")
	configs.Maps.Region = GetEnv("MAPS_REGION", "")

	// Restaurant origin
	configs.Restaurant.Latitude = GetEnvAsFloat("RESTAURANT_LAT", DefaultRestaurantLat)
	configs.Restaurant.Longitude = GetEnvAsFloat("RESTAURANT_LNG", DefaultRestaurantLng)

	// Delivery estimate config
	configs.Delivery.PreparationMinutes = GetEnvAsInt("DELIVERY_PREPARATION_MINUTES", 15)
	configs.Delivery.BufferMinutes = GetEnvAsInt("DELIVERY_BUFFER_MINUTES", 5)
	configs.Delivery.AverageSpeedKmh = GetEnvAsFloat("DELIVERY_AVERAGE_SPEED_KMH", 25)
	if configs.Delivery.AverageSpeedKmh <= 0 {
		log.Printf("Warning: DELIVERY_AVERAGE_SPEED_KMH must be positive, using default: %v", 25.0)
		configs.Delivery.AverageSpeedKmh = 25
	}

	// Circuit breaker config
	configs.Circuit.FailureThreshold = GetEnvAsInt("CIRCUIT_FAILURE_THRESHOLD", 5)
	configs.Circuit.OpenSeconds = GetEnvAsInt("CIRCUIT_OPEN_SECONDS", 30)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)
	configs.Redis.CacheTTL = GetEnvAsInt("GEOCODE_CACHE_TTL_MINUTES", 1440)

	// Rate limiter config
	configs.RateLimit.PerMinute = GetEnvAsInt("RATE_LIMIT_PER_MINUTE", 0)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// GetEnv returns the variable, or defaultValue when it is unset or empty
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// parseEnv converts a variable with parse. Unparseable values are logged
// and replaced by defaultValue.
func parseEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("Warning: invalid value %q for %s, using default: %v", raw, key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	return parseEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	return parseEnv(key, defaultValue, strconv.ParseBool)
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	return parseEnv(key, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}
