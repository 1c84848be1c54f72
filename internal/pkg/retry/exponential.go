package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/logger"
)

// RetryableFunc is one attempt of a retried operation
type RetryableFunc func(ctx context.Context) error

// Config tunes the exponential backoff
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // wait after the first failure
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool             // adds up to 10% to each wait
	Retryable  func(error) bool // nil retries every error
}

// DefaultConfig is used for startup dependencies such as Redis
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier re-runs an operation with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

func New(config Config, l *logger.ZapLogger) *Retrier {
	if config.Retryable == nil {
		config.Retryable = func(error) bool { return true }
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{config: config, logger: l}
}

func NewWithDefaults(l *logger.ZapLogger) *Retrier {
	return New(DefaultConfig(), l)
}

// Execute calls fn until it succeeds, returns a non-retryable error, the
// attempts run out or ctx is done.
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	attempts := r.config.MaxRetries + 1

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			if attempt > 1 {
				r.logger.Info("Operation succeeded after retry", logger.Int("attempts", attempt))
			}
			return nil
		}

		if !r.config.Retryable(err) {
			return err
		}
		if attempt >= attempts {
			break
		}

		wait := r.backoff(attempt)
		r.logger.Warn("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt),
			logger.Duration("backoff", wait))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	r.logger.Error("Operation failed, giving up",
		logger.Err(err),
		logger.Int("attempts", attempts))
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}

// backoff returns the wait after the given 1-based attempt
func (r *Retrier) backoff(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt-1))
	d = math.Min(d, float64(r.config.MaxDelay))
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}
