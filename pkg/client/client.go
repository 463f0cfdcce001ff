// Package client provides the New Relic API client construction.
// It handles authentication and connection options for NerdGraph access.
package client

import (
	"fmt"
	"time"

	"github.com/newrelic/newrelic-client-go/v2/newrelic"
)

// ClientConfig holds configuration options for the New Relic client.
type ClientConfig struct {
	APIKey     string
	Region     string
	Timeout    time.Duration
	RetryCount int
	LogLevel   string
	UserAgent  string
}

// DefaultConfig returns a ClientConfig with sensible defaults.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Region:     "US",
		Timeout:    30 * time.Second,
		RetryCount: 3,
		LogLevel:   "warn",
		UserAgent:  "nrql-chart-fetcher",
	}
}

// ClientError represents an error specifically related to New Relic client operations.
type ClientError struct {
	Msg string
	Err error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("new relic client error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("new relic client error: %s", e.Msg)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// newrelicNewFunc is the constructor used to build clients. Tests override it
// to avoid touching the real client initialization.
var newrelicNewFunc = newrelic.New

// ClientFactory defines an interface for creating New Relic clients.
// This allows for dependency injection and better testing.
type ClientFactory interface {
	CreateClient(config ClientConfig) (*newrelic.NewRelic, error)
}

// DefaultClientFactory is the concrete implementation that uses the actual newrelic.New function.
type DefaultClientFactory struct{}

// CreateClient implements the ClientFactory interface using the actual newrelic.New function.
func (f *DefaultClientFactory) CreateClient(config ClientConfig) (*newrelic.NewRelic, error) {
	if config.APIKey == "" {
		return nil, &ClientError{Msg: "New Relic API key cannot be empty"}
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigPersonalAPIKey(config.APIKey),
		newrelic.ConfigRegion(config.Region),
		newrelic.ConfigUserAgent(config.UserAgent),
		newrelic.ConfigHTTPTimeout(config.Timeout),
	}
	if config.LogLevel != "" {
		opts = append(opts, newrelic.ConfigLogLevel(config.LogLevel))
	}

	client, err := newrelicNewFunc(opts...)
	if err != nil {
		return nil, &ClientError{Msg: "failed to initialize New Relic client", Err: err}
	}
	return client, nil
}

// GetClient initializes and returns a New Relic client using the provided
// configuration and a ClientFactory.
func GetClient(config ClientConfig, factory ClientFactory) (*newrelic.NewRelic, error) {
	if factory == nil {
		return nil, &ClientError{Msg: "client factory cannot be nil"}
	}
	return factory.CreateClient(config)
}
