package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// TraceHandler names the transaction started by nrecho and reports any error
// the handler returns. Without a transaction it only calls h.
func TraceHandler(name string, h echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := nrecho.FromContext(c)
		if txn == nil {
			return h(c)
		}

		txn.SetName(name)
		err := h(c)
		if err != nil {
			txn.NoticeError(err)
		}
		return err
	}
}

// TraceUseCaseWithReturn runs fn inside a segment named after the use case
func TraceUseCaseWithReturn[T any](ctx context.Context, name string, fn func(context.Context) (T, error)) (T, error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn(ctx)
}
