package statuspage_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIncident_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": "i1",
		"page_id": "p1",
		"name": "API latency",
		"status": "investigating",
		"impact": "minor",
		"impact_override": null,
		"created_at": "2024-03-01T12:00:00.000Z",
		"resolved_at": null,
		"metadata": {"jira": {"issue_id": "OPS-7"}},
		"components": [{"id": "c1", "name": "API", "status": "degraded_performance", "start_date": null}],
		"incident_updates": [{"id": "u1", "body": "Looking into it", "status": "investigating", "display_at": "2024-03-01T12:00:00Z"}]
	}`

	var incident statuspage.Incident

	require.NoError(t, json.Unmarshal([]byte(raw), &incident))
	assert.Equal(t, statuspage.IncidentStatusInvestigating, incident.Status)
	assert.Equal(t, statuspage.IncidentImpactMinor, incident.Impact)
	assert.Nil(t, incident.ImpactOverride)
	assert.Nil(t, incident.ResolvedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), incident.CreatedAt.UTC())
	require.Len(t, incident.Components, 1)
	assert.Equal(t, statuspage.ComponentStatusDegradedPerformance, incident.Components[0].Status)
	require.Len(t, incident.Updates, 1)
	require.NotNil(t, incident.Updates[0].DisplayAt)

	jira, ok := incident.Metadata["jira"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "OPS-7", jira["issue_id"])
}

func TestRequests_OmitUnsetFields(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(&statuspage.ComponentUpdateRequest{
		Description: statuspage.String(""),
		Showcase:    statuspage.Bool(false),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"","showcase":false}`, string(body))

	body, err = json.Marshal(&statuspage.IncidentCreateRequest{Name: "Outage"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Outage"}`, string(body))

	body, err = json.Marshal(&statuspage.MetricUpdateRequest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(body))
}

func TestMetricData_YAML(t *testing.T) {
	t.Parallel()

	raw := `
m1:
  - timestamp: 1700000000
    value: 1.5
m2:
  - timestamp: 1700000060
    value: 2
`

	var data statuspage.MetricData

	require.NoError(t, yaml.Unmarshal([]byte(raw), &data))
	assert.Equal(t, statuspage.MetricData{
		"m1": {{Timestamp: 1700000000, Value: 1.5}},
		"m2": {{Timestamp: 1700000060, Value: 2}},
	}, data)
}

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", *statuspage.String("x"))
	assert.True(t, *statuspage.Bool(true))
	assert.Equal(t, 3, *statuspage.Int(3))
	assert.InDelta(t, 1.25, *statuspage.Float64(1.25), 0)
	assert.Equal(t, statuspage.ComponentStatusPartialOutage, *statuspage.Status(statuspage.ComponentStatusPartialOutage))
}
