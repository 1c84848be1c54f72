package newrelic

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/models"
)

// InitNewRelic starts the APM agent and waits up to connectTimeout for it
// to connect. It returns nil when APM is disabled or fails to start; the
// service runs without it.
func InitNewRelic(cfg models.NewRelicConfig, connectTimeout time.Duration) *newrelic.Application {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it", logger.Err(err))
		return nil
	}

	if connectTimeout > 0 {
		if err := app.WaitForConnection(connectTimeout); err != nil {
			logger.Warn("New Relic connection timeout", logger.Err(err))
		} else {
			logger.Info("New Relic connection established", logger.String("app_name", cfg.AppName))
		}
	}
	return app
}
