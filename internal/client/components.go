package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// ComponentsClient implements statuspage.ComponentsClient.
type ComponentsClient struct {
	httpClient *http.Client
}

// NewComponentsClient creates a new components client.
func NewComponentsClient(httpClient *http.Client) *ComponentsClient {
	return &ComponentsClient{
		httpClient: httpClient,
	}
}

// List implements statuspage.ComponentsClient.List.
func (c *ComponentsClient) List(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Component, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathComponents), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
	}

	var components []statuspage.Component

	err = json.Unmarshal(resp.Body, &components)
	if err != nil {
		return nil, fmt.Errorf("parsing components list: %w", err)
	}

	return components, nil
}

// Get implements statuspage.ComponentsClient.Get.
func (c *ComponentsClient) Get(ctx context.Context, pageID, componentID string) (*statuspage.Component, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathComponents, componentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting component: %w", err)
	}

	var component statuspage.Component

	err = json.Unmarshal(resp.Body, &component)
	if err != nil {
		return nil, fmt.Errorf("parsing component: %w", err)
	}

	return &component, nil
}

// Create implements statuspage.ComponentsClient.Create.
func (c *ComponentsClient) Create(ctx context.Context, pageID string, request *statuspage.ComponentCreateRequest) (*statuspage.Component, error) {
	body := envelope(constants.EnvelopeComponent, request)

	resp, err := c.httpClient.Post(ctx, pagePath(pageID, constants.PathComponents), body)
	if err != nil {
		return nil, fmt.Errorf("creating component: %w", err)
	}

	var component statuspage.Component

	err = json.Unmarshal(resp.Body, &component)
	if err != nil {
		return nil, fmt.Errorf("parsing component response: %w", err)
	}

	return &component, nil
}

// Update implements statuspage.ComponentsClient.Update.
func (c *ComponentsClient) Update(ctx context.Context, pageID, componentID string, request *statuspage.ComponentUpdateRequest, replace bool) (*statuspage.Component, error) {
	body := envelope(constants.EnvelopeComponent, request)

	resp, err := sendUpdate(ctx, c.httpClient, pagePath(pageID, constants.PathComponents, componentID), body, replace)
	if err != nil {
		return nil, fmt.Errorf("updating component: %w", err)
	}

	var component statuspage.Component

	err = json.Unmarshal(resp.Body, &component)
	if err != nil {
		return nil, fmt.Errorf("parsing component response: %w", err)
	}

	return &component, nil
}

// Delete implements statuspage.ComponentsClient.Delete.
func (c *ComponentsClient) Delete(ctx context.Context, pageID, componentID string) error {
	_, err := c.httpClient.Delete(ctx, pagePath(pageID, constants.PathComponents, componentID))
	if err != nil {
		return fmt.Errorf("deleting component: %w", err)
	}

	return nil
}

// GetUptime implements statuspage.ComponentsClient.GetUptime.
func (c *ComponentsClient) GetUptime(ctx context.Context, pageID, componentID string, opts *statuspage.UptimeOptions) (*statuspage.ComponentUptime, error) {
	path := pagePath(pageID, constants.PathComponents, componentID, constants.PathUptime)

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting component uptime: %w", err)
	}

	var uptime statuspage.ComponentUptime

	err = json.Unmarshal(resp.Body, &uptime)
	if err != nil {
		return nil, fmt.Errorf("parsing component uptime: %w", err)
	}

	return &uptime, nil
}
