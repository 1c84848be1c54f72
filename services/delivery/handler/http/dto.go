package http

import "github.com/piresc/deliveryeta/internal/pkg/models"

// DistanceResponse is returned by GET /api/location/distance
type DistanceResponse struct {
	Success bool `json:"success"`
	models.DistanceResult
}

// ReverseGeocodeResponse is returned by GET /api/location/reverse-geocode
type ReverseGeocodeResponse struct {
	Success bool `json:"success"`
	models.Address
}

// SearchResponse is returned by GET /api/location/search. Results is always
// present, even on failure.
type SearchResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Results []models.Place `json:"results"`
}

// EstimateResponse is returned by GET /api/location/estimate
type EstimateResponse struct {
	Success  bool                    `json:"success"`
	Estimate models.DeliveryEstimate `json:"estimate"`
}
