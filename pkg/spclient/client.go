// Package spclient provides the main entry point for creating Statuspage API clients
package spclient

import (
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/client"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// New creates a new Statuspage API client.
func New(config *statuspage.Config) (statuspage.Client, error) {
	if config == nil {
		return nil, statuspage.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, statuspage.ErrAPIKeyRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a new client for the public API using only an API key.
func NewWithAPIKey(apiKey string) (statuspage.Client, error) {
	return New(&statuspage.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a new client with an API key and a custom API root.
func NewWithBaseURL(baseURL, apiKey string) (statuspage.Client, error) {
	return New(&statuspage.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}
