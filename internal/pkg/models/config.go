package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	Maps       MapsConfig
	Restaurant RestaurantConfig
	Delivery   DeliveryConfig
	Circuit    CircuitConfig
	RateLimit  RateLimitConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables the lookup cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	CacheTTL int // in minutes
}

// MapsConfig contains mapping provider configuration.
// An empty APIKey puts the service in geometric-only mode.
type MapsConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
	Language       string
	Region         string
}

// Configured reports whether a provider credential is present
func (m MapsConfig) Configured() bool {
	return m.APIKey != ""
}

// RestaurantConfig is the default delivery origin
type RestaurantConfig struct {
	Latitude  float64
	Longitude float64
}

// Coordinate returns the restaurant origin as a Coordinate
func (r RestaurantConfig) Coordinate() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// DeliveryConfig contains the constants used to derive a delivery estimate
type DeliveryConfig struct {
	PreparationMinutes int
	BufferMinutes      int
	AverageSpeedKmh    float64
}

// CircuitConfig tunes the breaker guarding the routing provider
type CircuitConfig struct {
	FailureThreshold int
	OpenSeconds      int
}

// RateLimitConfig limits requests per client IP. Requires Redis; a zero
// PerMinute disables the limiter.
type RateLimitConfig struct {
	PerMinute int
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled    bool
	LicenseKey string
	AppName    string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
