package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/internal/utils"
	"github.com/piresc/deliveryeta/services/delivery"
)

// Response messages
const (
	MsgMissingCoordinates = "Missing coordinates"
	MsgInvalidCoordinates = "Invalid coordinates"
	MsgMissingQuery       = "Search query is required"
	MsgNotConfigured      = "Maps API key not configured"
	MsgNoAddress          = "No address found"
	MsgNoPlaces           = "No places found"
	MsgProviderFailed     = "Failed to reach maps provider"
	MsgDistanceFailed     = "Failed to calculate distance"
	MsgEstimateFailed     = "Failed to estimate delivery time"
)

var errMissingCoordinates = errors.New("missing coordinates")

// DeliveryHandler handles HTTP requests for distance, estimate and lookup operations
type DeliveryHandler struct {
	deliveryUC delivery.DeliveryUC
}

// NewDeliveryHandler creates a new delivery HTTP handler
func NewDeliveryHandler(deliveryUC delivery.DeliveryUC) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: deliveryUC,
	}
}

// parseCoordinate reads a coordinate from two query parameters
func parseCoordinate(c echo.Context, latParam, lngParam string) (models.Coordinate, error) {
	latStr := strings.TrimSpace(c.QueryParam(latParam))
	lngStr := strings.TrimSpace(c.QueryParam(lngParam))
	if latStr == "" || lngStr == "" {
		return models.Coordinate{}, errMissingCoordinates
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinate{}, delivery.ErrInvalidCoordinates
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.Coordinate{}, delivery.ErrInvalidCoordinates
	}

	coord := models.Coordinate{Latitude: lat, Longitude: lng}
	if err := coord.Validate(); err != nil {
		return models.Coordinate{}, delivery.ErrInvalidCoordinates
	}
	return coord, nil
}

func coordinateError(c echo.Context, err error) error {
	if errors.Is(err, errMissingCoordinates) {
		return utils.BadRequestResponse(c, MsgMissingCoordinates)
	}
	return utils.BadRequestResponse(c, MsgInvalidCoordinates)
}

// lookupStatus maps a lookup failure to an HTTP status and message
func lookupStatus(err error, notFoundMsg string) (int, string) {
	switch {
	case errors.Is(err, delivery.ErrInvalidCoordinates):
		return http.StatusBadRequest, MsgInvalidCoordinates
	case errors.Is(err, delivery.ErrMissingQuery):
		return http.StatusBadRequest, MsgMissingQuery
	case errors.Is(err, delivery.ErrProviderNotConfigured):
		return http.StatusServiceUnavailable, MsgNotConfigured
	case errors.Is(err, delivery.ErrNoResults), errors.Is(err, delivery.ErrProviderStatus):
		return http.StatusNotFound, notFoundMsg
	default:
		return http.StatusBadGateway, MsgProviderFailed
	}
}

// GetDistance returns the distance between a user and a restaurant
func (h *DeliveryHandler) GetDistance(c echo.Context) error {
	user, err := parseCoordinate(c, "userLat", "userLng")
	if err != nil {
		return coordinateError(c, err)
	}
	restaurant, err := parseCoordinate(c, "restaurantLat", "restaurantLng")
	if err != nil {
		return coordinateError(c, err)
	}

	ctx := c.Request().Context()
	result, err := h.deliveryUC.CalculateDistance(ctx, restaurant, user)
	if err != nil {
		if errors.Is(err, delivery.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, MsgInvalidCoordinates)
		}
		logger.ErrorCtx(ctx, "Failed to calculate distance", logger.Err(err))
		return utils.InternalServerErrorResponse(c, MsgDistanceFailed)
	}

	return c.JSON(http.StatusOK, DistanceResponse{
		Success:        true,
		DistanceResult: *result,
	})
}

// GetEstimate returns the delivery-time estimate from the configured restaurant to the user
func (h *DeliveryHandler) GetEstimate(c echo.Context) error {
	user, err := parseCoordinate(c, "userLat", "userLng")
	if err != nil {
		return coordinateError(c, err)
	}

	ctx := c.Request().Context()
	estimate, err := h.deliveryUC.EstimateDelivery(ctx, user)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to estimate delivery time", logger.Err(err))
		return utils.InternalServerErrorResponse(c, MsgEstimateFailed)
	}

	return c.JSON(http.StatusOK, EstimateResponse{
		Success:  true,
		Estimate: *estimate,
	})
}

// ReverseGeocode resolves lat/lng to an address
func (h *DeliveryHandler) ReverseGeocode(c echo.Context) error {
	coord, err := parseCoordinate(c, "lat", "lng")
	if err != nil {
		return coordinateError(c, err)
	}

	ctx := c.Request().Context()
	address, err := h.deliveryUC.ReverseGeocode(ctx, coord)
	if err != nil {
		status, msg := lookupStatus(err, MsgNoAddress)
		logger.WarnCtx(ctx, "Reverse geocode failed",
			logger.Int("status_code", status),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, status, msg)
	}

	return c.JSON(http.StatusOK, ReverseGeocodeResponse{
		Success: true,
		Address: *address,
	})
}

// SearchPlaces runs a free-text place search
func (h *DeliveryHandler) SearchPlaces(c echo.Context) error {
	query := utils.SanitizeString(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, SearchResponse{
			Message: MsgMissingQuery,
			Results: []models.Place{},
		})
	}

	ctx := c.Request().Context()
	places, err := h.deliveryUC.SearchPlaces(ctx, query)
	if err != nil {
		status, msg := lookupStatus(err, MsgNoPlaces)
		logger.WarnCtx(ctx, "Place search failed",
			logger.String("query", utils.Truncate(query, 64)),
			logger.Int("status_code", status),
			logger.Err(err))
		return c.JSON(status, SearchResponse{
			Message: msg,
			Results: []models.Place{},
		})
	}

	if places == nil {
		places = []models.Place{}
	}
	return c.JSON(http.StatusOK, SearchResponse{
		Success: true,
		Results: places,
	})
}
