package health

import (
	"context"
	"errors"

	"github.com/piresc/deliveryeta/internal/pkg/circuitbreaker"
	"github.com/piresc/deliveryeta/internal/pkg/database"
)

// ErrMapsNotConfigured is reported when no provider credential is set
var ErrMapsNotConfigured = errors.New("maps API key not configured")

// RedisHealthChecker pings the lookup cache. A nil client is healthy.
type RedisHealthChecker struct {
	client *database.RedisClient
}

func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// MapsHealthChecker reports whether routed estimates are currently possible.
// It never calls the provider; the breaker state stands in for it.
type MapsHealthChecker struct {
	configured bool
	breaker    *circuitbreaker.CircuitBreaker
}

func NewMapsHealthChecker(configured bool, breaker *circuitbreaker.CircuitBreaker) *MapsHealthChecker {
	return &MapsHealthChecker{configured: configured, breaker: breaker}
}

func (m *MapsHealthChecker) CheckHealth(context.Context) error {
	switch {
	case !m.configured:
		return ErrMapsNotConfigured
	case m.breaker != nil && !m.breaker.Allow():
		return circuitbreaker.ErrCircuitBreakerOpen
	}
	return nil
}

// Details exposes the breaker counters in the detailed health report
func (m *MapsHealthChecker) Details() interface{} {
	if m.breaker == nil {
		return nil
	}
	return m.breaker.Stats()
}
