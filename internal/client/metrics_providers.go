package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// MetricsProvidersClient implements statuspage.MetricsProvidersClient.
type MetricsProvidersClient struct {
	httpClient *http.Client
}

// NewMetricsProvidersClient creates a new metrics providers client.
func NewMetricsProvidersClient(httpClient *http.Client) *MetricsProvidersClient {
	return &MetricsProvidersClient{
		httpClient: httpClient,
	}
}

// List implements statuspage.MetricsProvidersClient.List.
func (c *MetricsProvidersClient) List(ctx context.Context, pageID string) ([]statuspage.MetricProvider, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathMetricsProviders), nil)
	if err != nil {
		return nil, fmt.Errorf("listing metrics providers: %w", err)
	}

	var providers []statuspage.MetricProvider

	err = json.Unmarshal(resp.Body, &providers)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics providers list: %w", err)
	}

	return providers, nil
}

// Create implements statuspage.MetricsProvidersClient.Create.
func (c *MetricsProvidersClient) Create(ctx context.Context, pageID string, request *statuspage.MetricsProviderCreateRequest) (*statuspage.MetricProvider, error) {
	body := envelope(constants.EnvelopeMetricsProvider, request)

	resp, err := c.httpClient.Post(ctx, pagePath(pageID, constants.PathMetricsProviders), body)
	if err != nil {
		return nil, fmt.Errorf("creating metrics provider: %w", err)
	}

	var provider statuspage.MetricProvider

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics provider response: %w", err)
	}

	return &provider, nil
}

// Get implements statuspage.MetricsProvidersClient.Get.
func (c *MetricsProvidersClient) Get(ctx context.Context, pageID, metricsProviderID string) (*statuspage.MetricProvider, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathMetricsProviders, metricsProviderID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting metrics provider: %w", err)
	}

	var provider statuspage.MetricProvider

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics provider: %w", err)
	}

	return &provider, nil
}

// Update implements statuspage.MetricsProvidersClient.Update.
func (c *MetricsProvidersClient) Update(
	ctx context.Context,
	pageID, metricsProviderID string,
	request *statuspage.MetricsProviderUpdateRequest,
	replace bool,
) (*statuspage.MetricProvider, error) {
	path := pagePath(pageID, constants.PathMetricsProviders, metricsProviderID)
	body := envelope(constants.EnvelopeMetricsProvider, request)

	resp, err := sendUpdate(ctx, c.httpClient, path, body, replace)
	if err != nil {
		return nil, fmt.Errorf("updating metrics provider: %w", err)
	}

	var provider statuspage.MetricProvider

	err = json.Unmarshal(resp.Body, &provider)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics provider response: %w", err)
	}

	return &provider, nil
}

// Delete implements statuspage.MetricsProvidersClient.Delete.
func (c *MetricsProvidersClient) Delete(ctx context.Context, pageID, metricsProviderID string) error {
	_, err := c.httpClient.Delete(ctx, pagePath(pageID, constants.PathMetricsProviders, metricsProviderID))
	if err != nil {
		return fmt.Errorf("deleting metrics provider: %w", err)
	}

	return nil
}
