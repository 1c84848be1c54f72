package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/deliveryeta/internal/pkg/circuitbreaker"
	"github.com/piresc/deliveryeta/internal/pkg/config"
	"github.com/piresc/deliveryeta/internal/pkg/database"
	"github.com/piresc/deliveryeta/internal/pkg/health"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/metrics"
	"github.com/piresc/deliveryeta/internal/pkg/middleware"
	nrpkg "github.com/piresc/deliveryeta/internal/pkg/newrelic"
	"github.com/piresc/deliveryeta/internal/pkg/retry"
	"github.com/piresc/deliveryeta/internal/pkg/server"
	"github.com/piresc/deliveryeta/internal/utils"
	"github.com/piresc/deliveryeta/services/delivery/estimator"
	"github.com/piresc/deliveryeta/services/delivery/gateway"
	"github.com/piresc/deliveryeta/services/delivery/handler"
	"github.com/piresc/deliveryeta/services/delivery/repository"
	"github.com/piresc/deliveryeta/services/delivery/usecase"
	"go.uber.org/zap"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config/delivery.env")
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	// APM first so the logger can forward to it
	nrApp := nrpkg.InitNewRelic(configs.NewRelic, 10*time.Second)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.Bool("maps_configured", configs.Maps.Configured()),
		zap.String("maps_api_key", utils.MaskSecret(configs.Maps.APIKey)),
	)
	if !configs.Maps.Configured() {
		zapLogger.Warn("GOOGLE_MAPS_API_KEY not set, distance estimates will use the geometric calculation only")
	}

	m := metrics.New(metrics.DefaultConfig(appName))

	// Redis is optional: it backs the lookup cache and the rate limiter
	var redisClient *database.RedisClient
	if configs.Redis.Host != "" {
		retrier := retry.NewWithDefaults(zapLogger)
		err := retrier.Execute(context.Background(), func(ctx context.Context) error {
			client, err := database.NewRedisClient(configs.Redis)
			if err != nil {
				return err
			}
			redisClient = client
			return nil
		})
		if err != nil {
			zapLogger.Warn("Redis unavailable, continuing without lookup cache", zap.Error(err))
			redisClient = nil
		}
	}

	// Circuit breaker guarding the routing provider
	breakerConfig := circuitbreaker.FromCircuitConfig("maps-distance-matrix", configs.Circuit)
	breakerConfig.OnStateChange = func(name string, from, to circuitbreaker.State) {
		m.SetCircuitBreakerState(name, int(to))
		if to == circuitbreaker.StateOpen {
			m.RecordCircuitBreakerTrip(name)
		}
	}
	breaker := circuitbreaker.New(breakerConfig, zapLogger)

	// Initialize gateway
	mapsGW := gateway.NewMapsGW(configs.Maps, m)

	// Initialize estimator chain
	distanceEstimator := estimator.New(configs, mapsGW, breaker, m)

	// Initialize repository
	cacheRepo := repository.NewGeoCacheRepo(redisClient, time.Duration(configs.Redis.CacheTTL)*time.Minute, m)

	// Initialize UseCase
	deliveryUC := usecase.NewDeliveryUC(configs, distanceEstimator, mapsGW, cacheRepo, m)

	// Initialize handlers
	deliveryHandler := handler.NewHandler(deliveryUC, configs, redisClient.GetClient())

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = utils.JSONErrorHandler
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.MetricsMiddleware(m))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	if redisClient != nil {
		healthService.AddOptionalChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	healthService.AddOptionalChecker("maps", health.NewMapsHealthChecker(configs.Maps.Configured(), breaker))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	health.RegisterPingEndpoint(e, appName, configs.App.Version)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Register service routes
	deliveryHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Cleanups run in reverse registration order
	srv.OnShutdown(func(context.Context) error {
		return zapLogger.Close()
	})
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
