package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/middleware"
	"github.com/piresc/deliveryeta/internal/pkg/models"
	nrpkg "github.com/piresc/deliveryeta/internal/pkg/newrelic"
	"github.com/piresc/deliveryeta/services/delivery"
	httpHandler "github.com/piresc/deliveryeta/services/delivery/handler/http"
)

// Handler wires the delivery HTTP handlers onto echo
type Handler struct {
	deliveryHTTP *httpHandler.DeliveryHandler
	cfg          *models.Config
	redisClient  *redis.Client
}

// NewHandler creates the delivery handler set. redisClient may be nil, which
// disables rate limiting.
func NewHandler(deliveryUC delivery.DeliveryUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		deliveryHTTP: httpHandler.NewDeliveryHandler(deliveryUC),
		cfg:          cfg,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	var mws []echo.MiddlewareFunc
	if h.redisClient != nil && h.cfg.RateLimit.PerMinute > 0 {
		mws = append(mws, middleware.IPRateLimiter(h.cfg.RateLimit.PerMinute, time.Minute, h.redisClient))
	}

	api := e.Group("/api/location", mws...)

	api.GET("/distance", nrpkg.TraceHandler("delivery.distance", h.deliveryHTTP.GetDistance))
	api.GET("/estimate", nrpkg.TraceHandler("delivery.estimate", h.deliveryHTTP.GetEstimate))
	api.GET("/reverse-geocode", nrpkg.TraceHandler("delivery.reverse-geocode", h.deliveryHTTP.ReverseGeocode))
	api.GET("/search", nrpkg.TraceHandler("delivery.search", h.deliveryHTTP.SearchPlaces))
}
