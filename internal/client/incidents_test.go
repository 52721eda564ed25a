package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

func TestIncidentsClient_Create(t *testing.T) {
	t.Parallel()

	scheduledFor := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pages/p1/incidents", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		payload := decodeEnvelope(t, r, "incident")
		assert.Equal(t, "Database maintenance", payload["name"])
		assert.Equal(t, "scheduled", payload["status"])
		assert.Equal(t, "2024-05-01T10:00:00Z", payload["scheduled_for"])
		assert.Equal(t, map[string]interface{}{"c1": "under_maintenance"}, payload["components"])
		assert.Equal(t, []interface{}{"c1"}, payload["component_ids"])
		assert.Equal(t, map[string]interface{}{"jira": map[string]interface{}{"issue_id": "OPS-1"}}, payload["metadata"])

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":            "i1",
			"name":          "Database maintenance",
			"status":        "scheduled",
			"impact":        "maintenance",
			"scheduled_for": "2024-05-01T10:00:00Z",
			"metadata":      map[string]interface{}{"jira": map[string]interface{}{"issue_id": "OPS-1"}},
		})
	})

	incident, err := client.Incidents().Create(context.Background(), "p1", &statuspage.IncidentCreateRequest{
		Name:         "Database maintenance",
		Status:       statuspage.IncidentStatusScheduled,
		ScheduledFor: &scheduledFor,
		Components:   map[string]statuspage.ComponentStatus{"c1": statuspage.ComponentStatusUnderMaintenance},
		ComponentIDs: []string{"c1"},
		Metadata:     map[string]any{"jira": map[string]any{"issue_id": "OPS-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "i1", incident.ID)
	assert.Equal(t, statuspage.IncidentImpactMaintenance, incident.Impact)
	require.NotNil(t, incident.ScheduledFor)
	assert.True(t, scheduledFor.Equal(*incident.ScheduledFor))
	assert.Contains(t, incident.Metadata, "jira")
}

func TestIncidentsClient_List(t *testing.T) {
	t.Parallel()

	response := []statuspage.Incident{{ID: "i1"}, {ID: "i2"}}

	RunGetTests(t, []TestGetOperation{
		{
			Name:          "no filters",
			ExpectedPath:  "/pages/p1/incidents",
			ExpectedQuery: "",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				incidents, err := c.Incidents().List(ctx, "p1", nil)
				if err == nil {
					assert.Len(t, incidents, 2)
				}

				return err
			},
		},
		{
			Name:          "search with limit",
			ExpectedPath:  "/pages/p1/incidents",
			ExpectedQuery: "limit=5&q=database",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().List(ctx, "p1", &statuspage.IncidentListOptions{Q: "database", Limit: 5})

				return err
			},
		},
		{
			Name:          "zero values are omitted",
			ExpectedPath:  "/pages/p1/incidents",
			ExpectedQuery: "per_page=10",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().List(ctx, "p1", &statuspage.IncidentListOptions{Page: 0, PerPage: 10})

				return err
			},
		},
		{
			Name:          "active maintenance",
			ExpectedPath:  "/pages/p1/incidents/active_maintenance",
			ExpectedQuery: "page=2",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().ListActiveMaintenance(ctx, "p1", &statuspage.ListOptions{Page: 2})

				return err
			},
		},
		{
			Name:          "upcoming",
			ExpectedPath:  "/pages/p1/incidents/upcoming",
			ExpectedQuery: "",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().ListUpcoming(ctx, "p1", nil)

				return err
			},
		},
		{
			Name:          "scheduled",
			ExpectedPath:  "/pages/p1/incidents/scheduled",
			ExpectedQuery: "per_page=100",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().ListScheduled(ctx, "p1", &statuspage.ListOptions{PerPage: 100})

				return err
			},
		},
		{
			Name:          "unresolved",
			ExpectedPath:  "/pages/p1/incidents/unresolved",
			ExpectedQuery: "",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Incidents().ListUnresolved(ctx, "p1", &statuspage.ListOptions{})

				return err
			},
		},
	})
}

func TestIncidentsClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pages/p1/incidents/i1", r.URL.Path)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":     "i1",
			"status": "monitoring",
			"incident_updates": []map[string]interface{}{
				{
					"id":     "u1",
					"body":   "A fix has been deployed",
					"status": "monitoring",
					"affected_components": []map[string]interface{}{
						{"code": "c1", "name": "API", "old_status": "major_outage", "new_status": "operational"},
					},
				},
				{"id": "u0", "body": "Investigating", "status": "investigating", "affected_components": nil},
			},
		})
	})

	incident, err := client.Incidents().Get(context.Background(), "p1", "i1")
	require.NoError(t, err)
	assert.Equal(t, statuspage.IncidentStatusMonitoring, incident.Status)
	require.Len(t, incident.Updates, 2)
	require.Len(t, incident.Updates[0].AffectedComponents, 1)
	assert.Equal(t, statuspage.ComponentStatusOperational, incident.Updates[0].AffectedComponents[0].NewStatus)
	assert.Nil(t, incident.Updates[1].AffectedComponents)
}

func TestIncidentsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	calls := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	incident, err := client.Incidents().Get(context.Background(), "p1", "missing")
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.Equal(t, 1, calls)

	var apiErr *statuspage.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, statuspage.ErrorKindNotFound, apiErr.Kind)
	assert.Equal(t, "not found", apiErr.Message)
	assert.True(t, errors.Is(err, statuspage.ErrNotFound))
}

func TestIncidentsClient_Update(t *testing.T) {
	t.Parallel()

	RunUpdateTests(t, []TestUpdateOperation{
		{
			Name:         "update incident",
			ExpectedPath: "/pages/p1/incidents/i1",
			Envelope:     "incident",
			Response:     statuspage.Incident{ID: "i1", Status: statuspage.IncidentStatusResolved},
			Call: func(ctx context.Context, c *Client, replace bool) error {
				incident, err := c.Incidents().Update(ctx, "p1", "i1", &statuspage.IncidentCreateRequest{
					Status: statuspage.IncidentStatusResolved,
					Body:   "All systems go",
				}, replace)
				if err == nil {
					assert.Equal(t, statuspage.IncidentStatusResolved, incident.Status)
				}

				return err
			},
		},
	})
}

func TestIncidentsClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "delete incident",
			ExpectedPath: "/pages/p1/incidents/i1",
			Call: func(ctx context.Context, c *Client) error {
				return c.Incidents().Delete(ctx, "p1", "i1")
			},
		},
	})
}
