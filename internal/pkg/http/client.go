package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/piresc/deliveryeta/internal/pkg/logger"
	nrpkg "github.com/piresc/deliveryeta/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response body is decoded
const maxBodySize = 4 << 20

// Client is a small JSON-over-HTTP client for third-party APIs
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HTTPError is returned when the remote answers with a 4xx or 5xx status
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Message)
}

// GetJSON performs a GET on BaseURL+path with the given query and decodes the
// JSON body into result. Transport errors never include the query string,
// which may carry credentials.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, result interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := nrpkg.DoExternal(ctx, req, path, c.HTTPClient.Do)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		logger.Debug("HTTP request failed",
			logger.String("path", path),
			logger.Duration("latency", time.Since(start)),
			logger.Err(err))
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		logger.String("path", path),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
