// Package transport holds the HTTP round tripper shared by the outbound
// clients.
package transport

import (
	"net/http"
	"net/url"
	"time"

	"personal-brand-crew/internal/application/port/output"
)

// secretParams are query parameters never written to the log.
var secretParams = []string{"api_key", "key", "token"}

type loggingTransport struct {
	base   http.RoundTripper
	logger output.LoggerPort
}

// NewLoggingTransport logs method, redacted URL, status and latency of every
// request. A nil base uses http.DefaultTransport.
func NewLoggingTransport(base http.RoundTripper, logger output.LoggerPort) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{base: base, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := RedactURL(req.URL)

	t.logger.Debug("HTTP Request", "method", req.Method, "url", target)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.logger.Warn("HTTP Request failed",
			"method", req.Method,
			"url", target,
			"error", err,
			"durationMs", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	t.logger.Info("HTTP Response",
		"method", req.Method,
		"url", target,
		"statusCode", resp.StatusCode,
		"durationMs", time.Since(start).Milliseconds(),
	)
	return resp, nil
}

// RedactURL renders u with secret query parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
