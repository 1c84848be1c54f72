package estimator

import (
	"context"
	"math"

	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/internal/utils"
)

// DefaultAverageSpeedKmh is the assumed courier speed for the geometric estimate
const DefaultAverageSpeedKmh = 25.0

// GeometricEstimator estimates distance with the haversine formula and
// duration from a constant average speed. It never makes a network call.
type GeometricEstimator struct {
	speedKmh float64
}

func NewGeometricEstimator(speedKmh float64) *GeometricEstimator {
	if speedKmh <= 0 {
		speedKmh = DefaultAverageSpeedKmh
	}
	return &GeometricEstimator{speedKmh: speedKmh}
}

func (g *GeometricEstimator) EstimateDistance(_ context.Context, origin, destination models.Coordinate) (*models.DistanceResult, error) {
	km := utils.CalculateDistance(utils.GeoPointFromCoordinate(origin), utils.GeoPointFromCoordinate(destination))
	minutes := utils.EstimateDurationMinutes(km, g.speedKmh)

	return &models.DistanceResult{
		DistanceKm:  utils.RoundTo(km, 1),
		DurationMin: int(math.Round(minutes)),
		Method:      models.MethodGeometric,
	}, nil
}
