package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	detailedTimeout  = 5 * time.Second
	readinessTimeout = 3 * time.Second
)

// BuildInfo is the body of GET /ping
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info := BuildInfo{
		Version:     version,
		GitCommit:   envOr("GIT_COMMIT", "unknown"),
		BuildTime:   envOr("BUILD_TIME", "unknown"),
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

func RegisterPingEndpoint(e *echo.Echo, serviceName, version string) {
	e.GET("/ping", NewPingHandler(serviceName, version))
}

// RegisterEnhancedHealthEndpoints mounts /health, /health/detailed,
// /health/ready and /health/live.
func RegisterEnhancedHealthEndpoints(e *echo.Echo, serviceName, version string, hs *HealthService) {
	check := func(c echo.Context, timeout time.Duration) HealthResponse {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()
		resp := hs.CheckAllHealth(ctx)
		resp.Service = serviceName
		return resp
	}

	g := e.Group("/health")

	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	g.GET("/detailed", func(c echo.Context) error {
		resp := check(c, detailedTimeout)
		resp.Version = version
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})

	g.GET("/ready", func(c echo.Context) error {
		resp := check(c, readinessTimeout)
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready", "service": serviceName})
	})

	g.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "alive", "service": serviceName})
	})
}
