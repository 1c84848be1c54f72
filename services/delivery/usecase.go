package delivery

import (
	"context"

	"github.com/piresc/deliveryeta/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/deliveryeta/services/delivery DeliveryUC

// DeliveryUC defines the interface for delivery distance and lookup business logic
type DeliveryUC interface {
	// CalculateDistance returns the distance and travel time between two points.
	// It never fails for valid coordinates: provider problems fall back to the
	// geometric calculation.
	CalculateDistance(ctx context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error)

	// EstimateDelivery returns the delivery-time estimate from the configured
	// restaurant to destination
	EstimateDelivery(ctx context.Context, destination models.Coordinate) (*models.DeliveryEstimate, error)

	// ReverseGeocode resolves a coordinate to an address. No fallback.
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (*models.Address, error)

	// SearchPlaces runs a free-text place search. No fallback.
	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
}
