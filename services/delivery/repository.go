package delivery

import (
	"context"

	"github.com/piresc/deliveryeta/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/deliveryeta/services/delivery GeoCacheRepo

// GeoCacheRepo caches reverse-geocode and search results.
// Get methods return ErrCacheMiss when nothing is stored.
type GeoCacheRepo interface {
	GetAddress(ctx context.Context, coord models.Coordinate) (*models.Address, error)
	SetAddress(ctx context.Context, coord models.Coordinate, address *models.Address) error

	GetPlaces(ctx context.Context, query string) ([]models.Place, error)
	SetPlaces(ctx context.Context, query string, places []models.Place) error
}
