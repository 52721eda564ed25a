package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

func TestComponentsClient_List(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation{
		{
			Name:          "without options",
			ExpectedPath:  "/pages/p1/components",
			ExpectedQuery: "",
			Response:      []statuspage.Component{{ID: "c1"}},
			Call: func(ctx context.Context, c *Client) error {
				components, err := c.Components().List(ctx, "p1", nil)
				if err == nil {
					assert.Len(t, components, 1)
				}

				return err
			},
		},
		{
			Name:          "empty options send no parameters",
			ExpectedPath:  "/pages/p1/components",
			ExpectedQuery: "",
			Response:      []statuspage.Component{},
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Components().List(ctx, "p1", &statuspage.ListOptions{})

				return err
			},
		},
		{
			Name:          "page only",
			ExpectedPath:  "/pages/p1/components",
			ExpectedQuery: "page=2",
			Response:      []statuspage.Component{},
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Components().List(ctx, "p1", statuspage.NewListOptions().WithPage(2))

				return err
			},
		},
		{
			Name:          "page and per_page",
			ExpectedPath:  "/pages/p1/components",
			ExpectedQuery: "page=3&per_page=50",
			Response:      []statuspage.Component{},
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Components().List(ctx, "p1", &statuspage.ListOptions{Page: 3, PerPage: 50})

				return err
			},
		},
	})
}

func TestComponentsClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pages/p1/components/c1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":          "c1",
			"page_id":     "p1",
			"group_id":    nil,
			"name":        "API",
			"status":      "degraded_performance",
			"start_date":  "2024-01-31",
			"description": nil,
		})
	})

	component, err := client.Components().Get(context.Background(), "p1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "API", component.Name)
	assert.Equal(t, statuspage.ComponentStatusDegradedPerformance, component.Status)
	assert.Nil(t, component.GroupID)
	assert.Nil(t, component.Description)
	require.NotNil(t, component.StartDate)
	assert.Equal(t, "2024-01-31", *component.StartDate)
}

func TestComponentsClient_Create(t *testing.T) {
	t.Parallel()

	calls := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		assert.Equal(t, "/pages/p1/components", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))

		payload := decodeEnvelope(t, r, "component")
		assert.Equal(t, "API", payload["name"])
		assert.Equal(t, "operational", payload["status"])
		assert.NotContains(t, payload, "group_id")

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"id":      "c1",
			"page_id": "p1",
			"name":    "API",
			"status":  "operational",
		})
	})

	component, err := client.Components().Create(context.Background(), "p1", &statuspage.ComponentCreateRequest{
		Name:   "API",
		Status: statuspage.ComponentStatusOperational,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", component.ID)
	assert.Equal(t, "API", component.Name)
	assert.Equal(t, 1, calls)
}

func TestComponentsClient_Create_Unprocessable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": []string{"Name can't be blank", "Status is invalid"},
		})
	})

	component, err := client.Components().Create(context.Background(), "p1", &statuspage.ComponentCreateRequest{})
	require.Error(t, err)
	assert.Nil(t, component)

	var apiErr *statuspage.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, statuspage.ErrorKindUnprocessableEntity, apiErr.Kind)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "Name can't be blank; Status is invalid", apiErr.Message)
}

func TestComponentsClient_Update(t *testing.T) {
	t.Parallel()

	RunUpdateTests(t, []TestUpdateOperation{
		{
			Name:         "update component",
			ExpectedPath: "/pages/p1/components/c1",
			Envelope:     "component",
			Response:     statuspage.Component{ID: "c1", Status: statuspage.ComponentStatusMajorOutage},
			Call: func(ctx context.Context, c *Client, replace bool) error {
				component, err := c.Components().Update(ctx, "p1", "c1", &statuspage.ComponentUpdateRequest{
					Status: statuspage.Status(statuspage.ComponentStatusMajorOutage),
				}, replace)
				if err == nil {
					assert.Equal(t, statuspage.ComponentStatusMajorOutage, component.Status)
				}

				return err
			},
		},
	})
}

func TestComponentsClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "delete component",
			ExpectedPath: "/pages/p1/components/c1",
			Call: func(ctx context.Context, c *Client) error {
				return c.Components().Delete(ctx, "p1", "c1")
			},
		},
	})
}

func TestComponentsClient_GetUptime(t *testing.T) {
	t.Parallel()

	response := statuspage.ComponentUptime{
		ID:               "c1",
		Name:             "API",
		RangeStart:       "2024-01-01",
		RangeEnd:         "2024-01-31",
		UptimePercentage: 99.95,
		PartialOutage:    60,
		RelatedEvents:    []statuspage.RelatedEvent{{ID: "i1"}},
	}

	RunGetTests(t, []TestGetOperation{
		{
			Name:          "default range",
			ExpectedPath:  "/pages/p1/components/c1/uptime",
			ExpectedQuery: "",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				uptime, err := c.Components().GetUptime(ctx, "p1", "c1", nil)
				if err == nil {
					assert.InDelta(t, 99.95, uptime.UptimePercentage, 0.0001)
					assert.Equal(t, []statuspage.RelatedEvent{{ID: "i1"}}, uptime.RelatedEvents)
				}

				return err
			},
		},
		{
			Name:          "explicit range",
			ExpectedPath:  "/pages/p1/components/c1/uptime",
			ExpectedQuery: "end=2024-01-31&start=2024-01-01",
			Response:      response,
			Call: func(ctx context.Context, c *Client) error {
				_, err := c.Components().GetUptime(ctx, "p1", "c1", &statuspage.UptimeOptions{
					Start: "2024-01-01",
					End:   "2024-01-31",
				})

				return err
			},
		},
	})
}
