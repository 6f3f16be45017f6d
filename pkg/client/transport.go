package client

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// RetryRoundTripper retries idempotent requests that failed with a network error. Requests that may change
// the state of the service are sent once.
type RetryRoundTripper struct {
	Base http.RoundTripper
	// NewBackoff creates a new backoff policy for each request.
	NewBackoff func() backoff.BackOff
}

func (rt *RetryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return rt.Base.RoundTrip(req)
	}

	roundTrip := func() (*http.Response, error) {
		resp, err := rt.Base.RoundTrip(req)
		if err != nil {
			var opErr *net.OpError
			if errors.As(err, &opErr) {
				slog.Debug("Retrying block storage service request due to network error.",
					"url", req.URL.String(), "error", err)
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return resp, nil
	}
	boff := backoff.WithContext(rt.NewBackoff(), req.Context())
	return backoff.RetryWithData(roundTrip, boff)
}

// CloseIdleConnections lets http.Client.CloseIdleConnections reach the base transport.
func (rt *RetryRoundTripper) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if tr, ok := rt.Base.(closeIdler); ok {
		tr.CloseIdleConnections()
	}
}
