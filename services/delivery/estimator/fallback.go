package estimator

import (
	"context"
	"errors"

	"github.com/piresc/deliveryeta/internal/pkg/circuitbreaker"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/services/delivery"
)

// Fallback reasons reported to metrics
const (
	ReasonCircuitOpen    = "circuit_open"
	ReasonTimeout        = "timeout"
	ReasonProviderStatus = "provider_status"
	ReasonNotConfigured  = "not_configured"
	ReasonError          = "error"
)

// FallbackEstimator tries Primary and recovers any of its errors with Fallback.
// A nil Primary goes straight to Fallback.
type FallbackEstimator struct {
	Primary  DistanceEstimator
	Fallback DistanceEstimator

	metrics *metrics.Metrics
}

func (f *FallbackEstimator) EstimateDistance(ctx context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error) {
	if f.Primary != nil {
		result, err := f.Primary.EstimateDistance(ctx, origin, destination)
		if err == nil {
			return result, nil
		}

		reason := fallbackReason(err)
		logger.Warn("Routed estimate failed, falling back to geometric",
			logger.String("reason", reason),
			logger.Err(err))
		f.metrics.RecordFallback(reason)
	}

	return f.Fallback.EstimateDistance(ctx, origin, destination)
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen), errors.Is(err, circuitbreaker.ErrTooManyRequests):
		return ReasonCircuitOpen
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, delivery.ErrProviderStatus):
		return ReasonProviderStatus
	case errors.Is(err, delivery.ErrProviderNotConfigured):
		return ReasonNotConfigured
	default:
		return ReasonError
	}
}
