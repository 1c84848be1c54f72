package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	nrpkg "github.com/piresc/deliveryeta/internal/pkg/newrelic"
	"github.com/piresc/deliveryeta/services/delivery"
	"github.com/piresc/deliveryeta/services/delivery/estimator"
)

// DeliveryUC implements the delivery.DeliveryUC interface
type DeliveryUC struct {
	cfg       *models.Config
	estimator estimator.DistanceEstimator
	mapsGW    delivery.MapsGW
	cacheRepo delivery.GeoCacheRepo
	metrics   *metrics.Metrics
}

// NewDeliveryUC creates a new delivery use case
func NewDeliveryUC(
	cfg *models.Config,
	est estimator.DistanceEstimator,
	mapsGW delivery.MapsGW,
	cacheRepo delivery.GeoCacheRepo,
	m *metrics.Metrics,
) delivery.DeliveryUC {
	return &DeliveryUC{
		cfg:       cfg,
		estimator: est,
		mapsGW:    mapsGW,
		cacheRepo: cacheRepo,
		metrics:   m,
	}
}

func validateCoordinate(c models.Coordinate) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", delivery.ErrInvalidCoordinates, err)
	}
	return nil
}

// CalculateDistance returns the distance and travel time between origin and destination
func (uc *DeliveryUC) CalculateDistance(ctx context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DeliveryUC.CalculateDistance", func(ctx context.Context) (*models.DistanceResult, error) {
		if err := validateCoordinate(origin); err != nil {
			return nil, err
		}
		if err := validateCoordinate(destination); err != nil {
			return nil, err
		}

		result, err := uc.estimator.EstimateDistance(ctx, origin, destination)
		if err != nil {
			return nil, fmt.Errorf("failed to estimate distance: %w", err)
		}

		uc.metrics.RecordEstimate(string(result.Method))
		return result, nil
	})
}

// EstimateDelivery returns the delivery estimate from the configured restaurant to destination
func (uc *DeliveryUC) EstimateDelivery(ctx context.Context, destination models.Coordinate) (*models.DeliveryEstimate, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DeliveryUC.EstimateDelivery", func(ctx context.Context) (*models.DeliveryEstimate, error) {
		result, err := uc.CalculateDistance(ctx, uc.cfg.Restaurant.Coordinate(), destination)
		if err != nil {
			return nil, err
		}

		estimate := estimator.FormatEstimate(result, uc.cfg.Delivery.PreparationMinutes, uc.cfg.Delivery.BufferMinutes)
		return &estimate, nil
	})
}

// ReverseGeocode resolves coord to an address, reading through the lookup cache
func (uc *DeliveryUC) ReverseGeocode(ctx context.Context, coord models.Coordinate) (*models.Address, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DeliveryUC.ReverseGeocode", func(ctx context.Context) (*models.Address, error) {
		if err := validateCoordinate(coord); err != nil {
			return nil, err
		}

		cached, err := uc.cacheRepo.GetAddress(ctx, coord)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, delivery.ErrCacheMiss) {
			logger.WarnCtx(ctx, "Failed to read geocode cache", logger.Err(err))
		}

		address, err := uc.mapsGW.ReverseGeocode(ctx, coord)
		if err != nil {
			return nil, err
		}

		if err := uc.cacheRepo.SetAddress(ctx, coord, address); err != nil {
			logger.WarnCtx(ctx, "Failed to write geocode cache", logger.Err(err))
		}
		return address, nil
	})
}

// SearchPlaces runs a free-text place search, reading through the lookup cache
func (uc *DeliveryUC) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "DeliveryUC.SearchPlaces", func(ctx context.Context) ([]models.Place, error) {
		query = strings.TrimSpace(query)
		if query == "" {
			return nil, delivery.ErrMissingQuery
		}

		cached, err := uc.cacheRepo.GetPlaces(ctx, query)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, delivery.ErrCacheMiss) {
			logger.WarnCtx(ctx, "Failed to read search cache", logger.Err(err))
		}

		places, err := uc.mapsGW.SearchPlaces(ctx, query)
		if err != nil {
			return nil, err
		}
		if len(places) > delivery.MaxSearchResults {
			places = places[:delivery.MaxSearchResults]
		}

		if err := uc.cacheRepo.SetPlaces(ctx, query, places); err != nil {
			logger.WarnCtx(ctx, "Failed to write search cache", logger.Err(err))
		}
		return places, nil
	})
}
