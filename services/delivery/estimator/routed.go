package estimator

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/circuitbreaker"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/internal/utils"
	"github.com/piresc/deliveryeta/services/delivery"
)

// RoutedEstimator asks the routing provider for the driving distance and duration
type RoutedEstimator struct {
	mapsGW  delivery.MapsGW
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
}

// NewRoutedEstimator creates a routed estimator. A nil breaker calls the
// provider unguarded; a zero timeout relies on the caller's context only.
func NewRoutedEstimator(mapsGW delivery.MapsGW, breaker *circuitbreaker.CircuitBreaker, timeout time.Duration) *RoutedEstimator {
	return &RoutedEstimator{
		mapsGW:  mapsGW,
		breaker: breaker,
		timeout: timeout,
	}
}

func (r *RoutedEstimator) EstimateDistance(ctx context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var leg *models.RouteLeg
	call := func(ctx context.Context) error {
		l, err := r.mapsGW.DistanceMatrix(ctx, origin, destination)
		if err != nil {
			return err
		}
		if l == nil || l.DistanceMeters < 0 || l.DurationSeconds < 0 {
			return fmt.Errorf("%w: invalid route element", delivery.ErrProviderStatus)
		}
		leg = l
		return nil
	}

	var err error
	if r.breaker != nil {
		err = r.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}

	return &models.DistanceResult{
		DistanceKm:   utils.RoundTo(leg.DistanceMeters/1000, 1),
		DurationMin:  int(math.Round(leg.DurationSeconds / 60)),
		Method:       models.MethodRouted,
		DistanceText: leg.DistanceText,
		DurationText: leg.DurationText,
	}, nil
}
