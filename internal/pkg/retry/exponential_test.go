package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 2 * time.Millisecond
	cfg.Jitter = false
	return cfg
}

func TestRetrier_SucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(), nil)

	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_GivesUp(t *testing.T) {
	r := New(fastConfig(), nil)
	boom := errors.New("boom")

	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
}

func TestRetrier_NonRetryable(t *testing.T) {
	cfg := fastConfig()
	permanent := errors.New("permanent")
	cfg.Retryable = func(err error) bool { return !errors.Is(err, permanent) }
	r := New(cfg, nil)

	calls := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := New(fastConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jitter = false
	r := New(cfg, nil)

	assert.Equal(t, 100*time.Millisecond, r.backoff(1))
	assert.Equal(t, 200*time.Millisecond, r.backoff(2))
	assert.Equal(t, 400*time.Millisecond, r.backoff(3))
	assert.Equal(t, 5*time.Second, r.backoff(10))
}

func TestBackoff_Jitter(t *testing.T) {
	r := New(DefaultConfig(), nil)

	for i := 0; i < 20; i++ {
		d := r.backoff(1)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 110*time.Millisecond)
	}
}
