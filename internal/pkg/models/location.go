package models

import (
	"errors"
	"math"
)

// ErrCoordinateOutOfRange is returned by Coordinate.Validate
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Validate checks that both components are finite and inside the WGS84 bounds
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return ErrCoordinateOutOfRange
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrCoordinateOutOfRange
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrCoordinateOutOfRange
	}
	return nil
}

// AddressComponents is the structured part of a reverse-geocoded address
type AddressComponents struct {
	Street     string `json:"street"`
	Area       string `json:"area"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// Address is the result of a reverse geocode lookup
type Address struct {
	FormattedAddress string            `json:"address"`
	Components       AddressComponents `json:"components"`
	PlaceID          string            `json:"placeId"`
}

// Place is a single place search hit
type Place struct {
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Location Coordinate `json:"location"`
	PlaceID  string     `json:"placeId"`
}
