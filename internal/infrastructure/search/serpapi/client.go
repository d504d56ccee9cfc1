// Package serpapi queries SerpApi's Google search and Google Trends engines
// and renders the answers as plain text for agents.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"personal-brand-crew/internal/application/port/output"
	"personal-brand-crew/internal/infrastructure/logger"
	"personal-brand-crew/internal/infrastructure/transport"
)

const (
	DefaultBaseURL     = "https://serpapi.com/search"
	DefaultResultCount = 4
	DefaultTimeout     = 30 * time.Second

	// APIKeyEnv names the credential in error messages.
	APIKeyEnv = "SERPAPI_API_KEY"

	maxBodySize = 2 << 20
)

var (
	_ output.SearchPort = (*Client)(nil)
	_ output.TrendsPort = (*Client)(nil)
)

type Config struct {
	APIKey      string
	BaseURL     string
	ResultCount int
	Timeout     time.Duration
	Logger      output.LoggerPort

	// HTTPClient replaces the default client; its transport is used as is.
	HTTPClient *http.Client
}

func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:      apiKey,
		BaseURL:     DefaultBaseURL,
		ResultCount: DefaultResultCount,
		Timeout:     DefaultTimeout,
	}
}

type Client struct {
	apiKey      string
	baseURL     string
	resultCount int
	http        *http.Client
	logger      output.LoggerPort
}

func NewClient(cfg Config) *Client {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ResultCount <= 0 {
		cfg.ResultCount = DefaultResultCount
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingTransport(nil, log),
		}
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		resultCount: cfg.ResultCount,
		http:        httpClient,
		logger:      log,
	}
}

// precheck validates a call before anything goes on the wire.
func (c *Client) precheck(query string) error {
	if c.apiKey == "" {
		return &ConfigurationError{Key: APIKeyEnv}
	}
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// get issues one GET and decodes the JSON body into v. No retries. op names
// the call in a NetworkError.
func (c *Client) get(ctx context.Context, op string, params url.Values, v any) error {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("serpapi: create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = transport.RedactURL(req.URL)
		}
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &NetworkError{Op: op + ": read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{StatusCode: resp.StatusCode, Message: providerMessage(body)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &MalformedResponseError{Body: truncate(string(body), 200), Err: err}
	}
	return nil
}

func providerMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return truncate(strings.TrimSpace(string(body)), 200)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
