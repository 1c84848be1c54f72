package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/deliveryeta/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// GeoPointFromCoordinate converts a Coordinate model to a GeoPoint
func GeoPointFromCoordinate(c models.Coordinate) GeoPoint {
	return GeoPoint{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
	}
}

// CalculateDistance calculates the great-circle distance between two points in
// kilometers using the Haversine formula. Inputs are not validated.
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// rounding can push a just outside [0, 1] for antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// EstimateDurationMinutes returns the travel time in minutes for a distance
// covered at a constant average speed.
func EstimateDurationMinutes(distanceKm, speedKmh float64) float64 {
	return distanceKm / speedKmh * 60
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}
