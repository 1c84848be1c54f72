package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentChecks = 8

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker checks a single dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// detailer is implemented by checkers that report extra state
type detailer interface {
	Details() interface{}
}

// HealthResponse is the body of /health/detailed
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

type DependencyInfo struct {
	Status   string      `json:"status"`
	Critical bool        `json:"critical"`
	Error    string      `json:"error,omitempty"`
	Details  interface{} `json:"details,omitempty"`
}

type dependency struct {
	name     string
	checker  HealthChecker
	critical bool
}

// HealthService aggregates dependency checks. A failing critical
// dependency makes the service unhealthy, a failing optional one degrades it.
type HealthService struct {
	mu     sync.RWMutex
	deps   map[string]dependency
	logger *logger.ZapLogger
}

func NewHealthService(l *logger.ZapLogger) *HealthService {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &HealthService{deps: make(map[string]dependency), logger: l}
}

// AddChecker registers a dependency the service cannot run without
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.register(dependency{name: name, checker: checker, critical: true})
}

func (h *HealthService) AddOptionalChecker(name string, checker HealthChecker) {
	h.register(dependency{name: name, checker: checker})
}

func (h *HealthService) register(d dependency) {
	h.mu.Lock()
	h.deps[d.name] = d
	h.mu.Unlock()
}

func (h *HealthService) snapshot() []dependency {
	h.mu.RLock()
	defer h.mu.RUnlock()

	deps := make([]dependency, 0, len(h.deps))
	for _, d := range h.deps {
		deps = append(deps, d)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].name < deps[j].name })
	return deps
}

// CheckAllHealth runs every registered check concurrently
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	deps := h.snapshot()
	results := make([]error, len(deps))

	// Failures are kept per slot instead of returned to the group: one
	// unhealthy dependency must not cancel or hide the others.
	var g errgroup.Group
	g.SetLimit(maxConcurrentChecks)
	for i, d := range deps {
		i, d := i, d
		g.Go(func() error {
			results[i] = d.checker.CheckHealth(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(deps)),
	}
	for i, d := range deps {
		info := DependencyInfo{Status: StatusHealthy, Critical: d.critical}
		if dt, ok := d.checker.(detailer); ok {
			info.Details = dt.Details()
		}

		if err := results[i]; err != nil {
			h.logger.Warn("Health check failed",
				logger.String("dependency", d.name),
				logger.Bool("critical", d.critical),
				logger.Err(err))
			info.Status = StatusUnhealthy
			info.Error = err.Error()
			resp.Status = worse(resp.Status, d.critical)
		}
		resp.Dependencies[d.name] = info
	}
	return resp
}

func worse(current string, critical bool) string {
	if critical {
		return StatusUnhealthy
	}
	if current == StatusHealthy {
		return StatusDegraded
	}
	return current
}
