package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	httpclient "github.com/piresc/deliveryeta/internal/pkg/http"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	"github.com/piresc/deliveryeta/services/delivery"
)

const (
	distanceMatrixPath = "/distancematrix/json"
	geocodePath        = "/geocode/json"
	textSearchPath     = "/place/textsearch/json"
)

// Operation labels used for metrics and logs
const (
	OpDistanceMatrix = "distance_matrix"
	OpReverseGeocode = "reverse_geocode"
	OpSearchPlaces   = "search_places"
)

type mapsGW struct {
	client   *httpclient.Client
	apiKey   string
	language string
	region   string
	metrics  *metrics.Metrics
}

// NewMapsGW creates a Google Maps gateway. With an empty API key every call
// fails with delivery.ErrProviderNotConfigured without touching the network.
func NewMapsGW(cfg models.MapsConfig, m *metrics.Metrics) delivery.MapsGW {
	return &mapsGW{
		client:   httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		region:   cfg.Region,
		metrics:  m,
	}
}

func formatCoordinate(c models.Coordinate) string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func (g *mapsGW) baseQuery() url.Values {
	q := url.Values{}
	q.Set("key", g.apiKey)
	if g.language != "" {
		q.Set("language", g.language)
	}
	if g.region != "" {
		q.Set("region", g.region)
	}
	return q
}

func (g *mapsGW) get(ctx context.Context, op, path string, q url.Values, out interface{}) error {
	start := time.Now()
	err := g.client.GetJSON(ctx, path, q, out)
	g.metrics.RecordProviderRequest(op, err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("maps %s request failed: %w", op, err)
	}
	return nil
}

func statusError(op, status, message string) error {
	logger.Warn("Maps provider returned non-OK status",
		logger.String("operation", op),
		logger.String("status", status),
		logger.String("error_message", message))
	return fmt.Errorf("%w: %s", delivery.ErrProviderStatus, status)
}

// DistanceMatrix returns the single routed leg between origin and destination
func (g *mapsGW) DistanceMatrix(ctx context.Context, origin, destination models.Coordinate) (*models.RouteLeg, error) {
	if g.apiKey == "" {
		return nil, delivery.ErrProviderNotConfigured
	}

	q := g.baseQuery()
	q.Set("origins", formatCoordinate(origin))
	q.Set("destinations", formatCoordinate(destination))
	q.Set("mode", "driving")
	q.Set("units", "metric")

	var resp distanceMatrixResponse
	if err := g.get(ctx, OpDistanceMatrix, distanceMatrixPath, q, &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		return nil, statusError(OpDistanceMatrix, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Rows) != 1 || len(resp.Rows[0].Elements) != 1 {
		return nil, fmt.Errorf("%w: expected a single matrix element", delivery.ErrProviderStatus)
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != statusOK {
		return nil, statusError(OpDistanceMatrix, el.Status, "")
	}

	return &models.RouteLeg{
		DistanceMeters:  el.Distance.Value,
		DurationSeconds: el.Duration.Value,
		DistanceText:    el.Distance.Text,
		DurationText:    el.Duration.Text,
	}, nil
}

// ReverseGeocode returns the first address the provider reports for coord
func (g *mapsGW) ReverseGeocode(ctx context.Context, coord models.Coordinate) (*models.Address, error) {
	if g.apiKey == "" {
		return nil, delivery.ErrProviderNotConfigured
	}

	q := g.baseQuery()
	q.Set("latlng", formatCoordinate(coord))

	var resp geocodeResponse
	if err := g.get(ctx, OpReverseGeocode, geocodePath, q, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.Status == statusZeroResults:
		return nil, delivery.ErrNoResults
	case resp.Status != statusOK:
		return nil, statusError(OpReverseGeocode, resp.Status, resp.ErrorMessage)
	case len(resp.Results) == 0:
		return nil, delivery.ErrNoResults
	}

	first := resp.Results[0]
	return &models.Address{
		FormattedAddress: first.FormattedAddress,
		Components:       parseComponents(first.AddressComponents),
		PlaceID:          first.PlaceID,
	}, nil
}

// SearchPlaces returns at most delivery.MaxSearchResults places for query
func (g *mapsGW) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	if g.apiKey == "" {
		return nil, delivery.ErrProviderNotConfigured
	}

	q := g.baseQuery()
	q.Set("query", query)

	var resp placesResponse
	if err := g.get(ctx, OpSearchPlaces, textSearchPath, q, &resp); err != nil {
		return nil, err
	}

	switch {
	case resp.Status == statusZeroResults:
		return nil, delivery.ErrNoResults
	case resp.Status != statusOK:
		return nil, statusError(OpSearchPlaces, resp.Status, resp.ErrorMessage)
	case len(resp.Results) == 0:
		return nil, delivery.ErrNoResults
	}

	n := len(resp.Results)
	if n > delivery.MaxSearchResults {
		n = delivery.MaxSearchResults
	}

	places := make([]models.Place, 0, n)
	for _, r := range resp.Results[:n] {
		places = append(places, models.Place{
			Name:    r.Name,
			Address: r.FormattedAddress,
			Location: models.Coordinate{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			PlaceID: r.PlaceID,
		})
	}
	return places, nil
}

// parseComponents maps provider address components onto the fixed set of fields we expose
func parseComponents(components []addressComponent) models.AddressComponents {
	byType := make(map[string]string)
	for _, c := range components {
		for _, t := range c.Types {
			if _, ok := byType[t]; !ok {
				byType[t] = c.LongName
			}
		}
	}

	first := func(types ...string) string {
		for _, t := range types {
			if v := byType[t]; v != "" {
				return v
			}
		}
		return ""
	}

	street := strings.TrimSpace(byType["street_number"] + " " + byType["route"])

	return models.AddressComponents{
		Street:     street,
		Area:       first("sublocality_level_1", "sublocality", "neighborhood"),
		City:       first("locality", "postal_town", "administrative_area_level_2"),
		State:      byType["administrative_area_level_1"],
		Country:    byType["country"],
		PostalCode: byType["postal_code"],
	}
}
