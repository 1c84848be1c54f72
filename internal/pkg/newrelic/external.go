package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// DoExternal runs do inside an external segment when ctx carries a
// transaction. procedure names the upstream operation, e.g. the API path.
func DoExternal(ctx context.Context, req *http.Request, procedure string, do func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return do(req)
	}

	seg := newrelic.StartExternalSegment(txn, req)
	seg.Procedure = procedure
	defer seg.End()

	resp, err := do(req)
	if resp != nil {
		seg.Response = resp
	}
	return resp, err
}
