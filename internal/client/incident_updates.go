package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// IncidentUpdatesClient implements statuspage.IncidentUpdatesClient.
type IncidentUpdatesClient struct {
	httpClient *http.Client
}

// NewIncidentUpdatesClient creates a new incident updates client.
func NewIncidentUpdatesClient(httpClient *http.Client) *IncidentUpdatesClient {
	return &IncidentUpdatesClient{
		httpClient: httpClient,
	}
}

// Create implements statuspage.IncidentUpdatesClient.Create.
func (c *IncidentUpdatesClient) Create(
	ctx context.Context,
	pageID, incidentID, incidentUpdateID string,
	request *statuspage.IncidentUpdateRequest,
	replace bool,
) (*statuspage.IncidentUpdate, error) {
	path := pagePath(pageID, constants.PathIncidents, incidentID, constants.PathIncidentUpdates, incidentUpdateID)
	body := envelope(constants.EnvelopeIncidentUpdate, request)

	resp, err := sendUpdate(ctx, c.httpClient, path, body, replace)
	if err != nil {
		return nil, fmt.Errorf("writing incident update: %w", err)
	}

	var update statuspage.IncidentUpdate

	err = json.Unmarshal(resp.Body, &update)
	if err != nil {
		return nil, fmt.Errorf("parsing incident update response: %w", err)
	}

	return &update, nil
}
