package estimator

import (
	"context"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/circuitbreaker"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/services/delivery"
)

// DistanceEstimator produces a distance and travel duration between two coordinates
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error)
}

// New builds the estimation chain for the given configuration. Without a
// provider credential only the geometric calculation is used.
func New(cfg *models.Config, mapsGW delivery.MapsGW, breaker *circuitbreaker.CircuitBreaker, m *metrics.Metrics) DistanceEstimator {
	geometric := NewGeometricEstimator(cfg.Delivery.AverageSpeedKmh)

	if !cfg.Maps.Configured() || mapsGW == nil {
		return geometric
	}

	timeout := time.Duration(cfg.Maps.TimeoutSeconds) * time.Second
	return &FallbackEstimator{
		Primary:  NewRoutedEstimator(mapsGW, breaker, timeout),
		Fallback: geometric,
		metrics:  m,
	}
}
