package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/piresc/deliveryeta/internal/pkg/models"
)

// State is the position of the breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

var stateNames = map[State]string{
	StateClosed:   "CLOSED",
	StateOpen:     "OPEN",
	StateHalfOpen: "HALF_OPEN",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config tunes a CircuitBreaker. Zero MaxRequests and SuccessThreshold
// are treated as 1.
type Config struct {
	Name             string
	MaxRequests      uint32        // probes admitted while half-open
	Interval         time.Duration // closed-state counter reset period, 0 never resets
	Timeout          time.Duration // how long the breaker stays open
	FailureThreshold uint32        // consecutive failures that trip the breaker
	SuccessThreshold uint32        // consecutive half-open successes that close it
	OnStateChange    func(name string, from State, to State)
	IsFailure        func(err error) bool
}

func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      1,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
		IsFailure:        IsProviderFailure,
	}
}

// FromCircuitConfig overlays the non-zero service settings on DefaultConfig
func FromCircuitConfig(name string, cfg models.CircuitConfig) Config {
	c := DefaultConfig(name)
	if cfg.FailureThreshold > 0 {
		c.FailureThreshold = uint32(cfg.FailureThreshold)
	}
	if cfg.OpenSeconds > 0 {
		c.Timeout = time.Duration(cfg.OpenSeconds) * time.Second
	}
	return c
}

// IsProviderFailure counts every error except caller cancellation
func IsProviderFailure(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// Counts are reset on every state change
type Counts struct {
	Requests             uint32
	TotalSuccesses       uint32
	TotalFailures        uint32
	ConsecutiveSuccesses uint32
	ConsecutiveFailures  uint32
}

// CircuitBreaker stops calling a failing dependency for Config.Timeout
// once it has failed FailureThreshold times in a row.
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu     sync.Mutex
	state  State
	counts Counts
	expiry time.Time // end of the open period, or of the closed-state interval
}

func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if config.IsFailure == nil {
		config.IsFailure = IsProviderFailure
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if config.SuccessThreshold == 0 {
		config.SuccessThreshold = 1
	}
	if l == nil {
		l = logger.NewNopLogger()
	}

	cb := &CircuitBreaker{config: config, logger: l, now: time.Now}
	if config.Interval > 0 {
		cb.expiry = cb.now().Add(config.Interval)
	}
	return cb
}

// Execute runs fn unless the breaker rejects the call. Errors returned by
// fn are passed through unchanged.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.admit(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.record(err)
	return err
}

// Allow reports whether Execute would currently run fn. It does not count
// as a request.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		return cb.now().After(cb.expiry)
	case StateHalfOpen:
		return cb.counts.Requests < cb.config.MaxRequests
	}
	return true
}

func (cb *CircuitBreaker) admit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.refresh(cb.now())

	switch cb.state {
	case StateOpen:
		return ErrCircuitBreakerOpen
	case StateHalfOpen:
		if cb.counts.Requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}
	cb.counts.Requests++
	return nil
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := cb.now()
	switch {
	case err == nil:
		cb.counts.TotalSuccesses++
		cb.counts.ConsecutiveSuccesses++
		cb.counts.ConsecutiveFailures = 0
		if cb.state == StateHalfOpen && cb.counts.ConsecutiveSuccesses >= cb.config.SuccessThreshold {
			cb.transition(StateClosed, now)
		}
	case cb.config.IsFailure(err):
		cb.counts.TotalFailures++
		cb.counts.ConsecutiveFailures++
		cb.counts.ConsecutiveSuccesses = 0
		if cb.state == StateHalfOpen || cb.counts.ConsecutiveFailures >= cb.config.FailureThreshold {
			cb.transition(StateOpen, now)
		}
	}
}

// refresh applies the time-based transitions. Caller holds mu.
func (cb *CircuitBreaker) refresh(now time.Time) {
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && now.After(cb.expiry) {
			cb.counts = Counts{}
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if now.After(cb.expiry) {
			cb.transition(StateHalfOpen, now)
		}
	}
}

// transition moves to a new state and starts its period. Caller holds mu.
func (cb *CircuitBreaker) transition(to State, now time.Time) {
	from := cb.state
	if from == to {
		return
	}

	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", from.String()),
		logger.String("to", to.String()),
		logger.Int("consecutive_failures", int(cb.counts.ConsecutiveFailures)))

	cb.state = to
	cb.counts = Counts{}
	switch to {
	case StateOpen:
		cb.expiry = now.Add(cb.config.Timeout)
	case StateClosed:
		cb.expiry = time.Time{}
		if cb.config.Interval > 0 {
			cb.expiry = now.Add(cb.config.Interval)
		}
	default:
		cb.expiry = time.Time{}
	}

	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.counts
}

// Stats is the breaker snapshot reported by the health endpoint
type Stats struct {
	Name                string `json:"name"`
	State               string `json:"state"`
	TotalRequests       uint32 `json:"total_requests"`
	TotalFailures       uint32 `json:"total_failures"`
	ConsecutiveFailures uint32 `json:"consecutive_failures"`
}

func (cb *CircuitBreaker) Stats() Stats {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return Stats{
		Name:                cb.config.Name,
		State:               cb.state.String(),
		TotalRequests:       cb.counts.Requests,
		TotalFailures:       cb.counts.TotalFailures,
		ConsecutiveFailures: cb.counts.ConsecutiveFailures,
	}
}
