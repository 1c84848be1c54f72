package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/deliveryeta/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_Run(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), "127.0.0.1", port, time.Second)

	var order []string
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "redis")
		return nil
	})
	gs.OnShutdown(func(context.Context) error {
		order = append(order, "logger")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + gs.addr + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"logger", "redis"}, order)
}

func TestShutdownManager_ContinuesOnError(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	called := 0
	boom := errors.New("boom")
	sm.Register(func(context.Context) error { called++; return nil })
	sm.Register(func(context.Context) error { called++; return boom })

	err := sm.Shutdown(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, called)
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "", 9990, 0)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
	assert.Equal(t, ":9990", gs.addr)
}
