package transport

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"personal-brand-crew/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://serpapi.com/search?q=brand&api_key=secret&num=4")
	require.NoError(t, err)

	got := RedactURL(u)
	assert.NotContains(t, got, "secret")
	assert.Contains(t, got, "api_key=REDACTED")
	assert.Contains(t, got, "q=brand")
	assert.Equal(t, "secret", u.Query().Get("api_key"), "original URL must stay untouched")
}

func TestRedactURL_NoSecrets(t *testing.T) {
	u, err := url.Parse("https://api.openai.com/v1/chat/completions")
	require.NoError(t, err)

	assert.Equal(t, "https://api.openai.com/v1/chat/completions", RedactURL(u))
	assert.Equal(t, "", RedactURL(nil))
}

func TestLoggingTransport_LogsResponse(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	rt := NewLoggingTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     make(http.Header),
		}, nil
	}), logger.NewFromZap(zap.New(core)))

	req, err := http.NewRequest(http.MethodGet, "https://serpapi.com/search?api_key=secret", nil)
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	entries := logs.FilterMessage("HTTP Response").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 200, entries[0].ContextMap()["statusCode"])
	assert.NotContains(t, entries[0].ContextMap()["url"], "secret")
}

func TestLoggingTransport_PropagatesError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	boom := errors.New("connection refused")
	rt := NewLoggingTransport(roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	}), logger.NewFromZap(zap.New(core)))

	req, err := http.NewRequest(http.MethodGet, "https://serpapi.com/search", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, logs.FilterMessage("HTTP Request failed").Len())
}
