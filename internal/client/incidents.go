package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// IncidentsClient implements statuspage.IncidentsClient.
type IncidentsClient struct {
	httpClient *http.Client
}

// NewIncidentsClient creates a new incidents client.
func NewIncidentsClient(httpClient *http.Client) *IncidentsClient {
	return &IncidentsClient{
		httpClient: httpClient,
	}
}

// Create implements statuspage.IncidentsClient.Create.
func (c *IncidentsClient) Create(ctx context.Context, pageID string, request *statuspage.IncidentCreateRequest) (*statuspage.Incident, error) {
	body := envelope(constants.EnvelopeIncident, request)

	resp, err := c.httpClient.Post(ctx, pagePath(pageID, constants.PathIncidents), body)
	if err != nil {
		return nil, fmt.Errorf("creating incident: %w", err)
	}

	var incident statuspage.Incident

	err = json.Unmarshal(resp.Body, &incident)
	if err != nil {
		return nil, fmt.Errorf("parsing incident response: %w", err)
	}

	return &incident, nil
}

// List implements statuspage.IncidentsClient.List.
func (c *IncidentsClient) List(ctx context.Context, pageID string, opts *statuspage.IncidentListOptions) ([]statuspage.Incident, error) {
	return c.list(ctx, pagePath(pageID, constants.PathIncidents), opts.ToValues(), "incidents")
}

// ListActiveMaintenance implements statuspage.IncidentsClient.ListActiveMaintenance.
func (c *IncidentsClient) ListActiveMaintenance(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Incident, error) {
	path := pagePath(pageID, constants.PathIncidents, constants.PathActiveMaintenance)

	return c.list(ctx, path, opts.ToValues(), "active maintenances")
}

// ListUpcoming implements statuspage.IncidentsClient.ListUpcoming.
func (c *IncidentsClient) ListUpcoming(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Incident, error) {
	path := pagePath(pageID, constants.PathIncidents, constants.PathUpcoming)

	return c.list(ctx, path, opts.ToValues(), "upcoming incidents")
}

// ListScheduled implements statuspage.IncidentsClient.ListScheduled.
func (c *IncidentsClient) ListScheduled(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Incident, error) {
	path := pagePath(pageID, constants.PathIncidents, constants.PathScheduled)

	return c.list(ctx, path, opts.ToValues(), "scheduled incidents")
}

// ListUnresolved implements statuspage.IncidentsClient.ListUnresolved.
func (c *IncidentsClient) ListUnresolved(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Incident, error) {
	path := pagePath(pageID, constants.PathIncidents, constants.PathUnresolved)

	return c.list(ctx, path, opts.ToValues(), "unresolved incidents")
}

// Get implements statuspage.IncidentsClient.Get.
func (c *IncidentsClient) Get(ctx context.Context, pageID, incidentID string) (*statuspage.Incident, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathIncidents, incidentID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting incident: %w", err)
	}

	var incident statuspage.Incident

	err = json.Unmarshal(resp.Body, &incident)
	if err != nil {
		return nil, fmt.Errorf("parsing incident: %w", err)
	}

	return &incident, nil
}

// Update implements statuspage.IncidentsClient.Update.
func (c *IncidentsClient) Update(ctx context.Context, pageID, incidentID string, request *statuspage.IncidentCreateRequest, replace bool) (*statuspage.Incident, error) {
	body := envelope(constants.EnvelopeIncident, request)

	resp, err := sendUpdate(ctx, c.httpClient, pagePath(pageID, constants.PathIncidents, incidentID), body, replace)
	if err != nil {
		return nil, fmt.Errorf("updating incident: %w", err)
	}

	var incident statuspage.Incident

	err = json.Unmarshal(resp.Body, &incident)
	if err != nil {
		return nil, fmt.Errorf("parsing incident response: %w", err)
	}

	return &incident, nil
}

// Delete implements statuspage.IncidentsClient.Delete.
func (c *IncidentsClient) Delete(ctx context.Context, pageID, incidentID string) error {
	_, err := c.httpClient.Delete(ctx, pagePath(pageID, constants.PathIncidents, incidentID))
	if err != nil {
		return fmt.Errorf("deleting incident: %w", err)
	}

	return nil
}

func (c *IncidentsClient) list(ctx context.Context, path string, query url.Values, what string) ([]statuspage.Incident, error) {
	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", what, err)
	}

	var incidents []statuspage.Incident

	err = json.Unmarshal(resp.Body, &incidents)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", what, err)
	}

	return incidents, nil
}
