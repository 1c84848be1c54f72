package delivery

import (
	"context"

	"github.com/piresc/deliveryeta/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/deliveryeta/services/delivery MapsGW

// MapsGW defines the interface for the external mapping provider
type MapsGW interface {
	// DistanceMatrix returns the single routed leg between origin and destination
	DistanceMatrix(ctx context.Context, origin, destination models.Coordinate) (*models.RouteLeg, error)

	// ReverseGeocode returns the first address for a coordinate
	ReverseGeocode(ctx context.Context, coord models.Coordinate) (*models.Address, error)

	// SearchPlaces returns at most MaxSearchResults places matching query
	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
}

// MaxSearchResults caps the number of places returned by a search
const MaxSearchResults = 5
