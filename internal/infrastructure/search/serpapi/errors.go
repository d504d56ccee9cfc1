package serpapi

import (
	"errors"
	"fmt"
)

var ErrEmptyQuery = errors.New("serpapi: query is empty")

// ConfigurationError reports a missing credential. It is returned before any
// request is attempted.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("serpapi: configuration error: %s is not set", e.Key)
}

// NetworkError wraps a transport failure: refused connection, DNS failure,
// timeout or an interrupted body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("serpapi: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a body that could not be decoded.
type MalformedResponseError struct {
	Body string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("serpapi: malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ProviderError reports a non-2xx answer from the provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("serpapi: provider returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("serpapi: provider returned HTTP %d: %s", e.StatusCode, e.Message)
}
