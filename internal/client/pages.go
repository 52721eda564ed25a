package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// PagesClient implements statuspage.PagesClient.
type PagesClient struct {
	httpClient *http.Client
}

// NewPagesClient creates a new pages client.
func NewPagesClient(httpClient *http.Client) *PagesClient {
	return &PagesClient{
		httpClient: httpClient,
	}
}

// List implements statuspage.PagesClient.List.
func (c *PagesClient) List(ctx context.Context) ([]statuspage.Page, error) {
	resp, err := c.httpClient.Get(ctx, constants.PathPages, nil)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	var pages []statuspage.Page

	err = json.Unmarshal(resp.Body, &pages)
	if err != nil {
		return nil, fmt.Errorf("parsing pages list: %w", err)
	}

	return pages, nil
}

// Get implements statuspage.PagesClient.Get.
func (c *PagesClient) Get(ctx context.Context, pageID string) (*statuspage.Page, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	var page statuspage.Page

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	return &page, nil
}

// Update implements statuspage.PagesClient.Update.
func (c *PagesClient) Update(ctx context.Context, pageID string, request *statuspage.PageUpdateRequest, replace bool) (*statuspage.Page, error) {
	body := envelope(constants.EnvelopePage, request)

	resp, err := sendUpdate(ctx, c.httpClient, pagePath(pageID), body, replace)
	if err != nil {
		return nil, fmt.Errorf("updating page: %w", err)
	}

	var page statuspage.Page

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing page response: %w", err)
	}

	return &page, nil
}
