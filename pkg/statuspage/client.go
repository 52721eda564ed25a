package statuspage

import (
	"context"
	"net/http"
)

// PagesClient defines operations for pages.
type PagesClient interface {
	List(ctx context.Context) ([]Page, error)
	Get(ctx context.Context, pageID string) (*Page, error)
	Update(ctx context.Context, pageID string, page *PageUpdateRequest, replace bool) (*Page, error)
}

// ComponentsClient defines operations for components.
type ComponentsClient interface {
	List(ctx context.Context, pageID string, opts *ListOptions) ([]Component, error)
	Get(ctx context.Context, pageID, componentID string) (*Component, error)
	Create(ctx context.Context, pageID string, component *ComponentCreateRequest) (*Component, error)
	Update(ctx context.Context, pageID, componentID string, component *ComponentUpdateRequest, replace bool) (*Component, error)
	Delete(ctx context.Context, pageID, componentID string) error
	GetUptime(ctx context.Context, pageID, componentID string, opts *UptimeOptions) (*ComponentUptime, error)
}

// IncidentsClient defines operations for incidents and scheduled maintenances.
type IncidentsClient interface {
	Create(ctx context.Context, pageID string, incident *IncidentCreateRequest) (*Incident, error)
	List(ctx context.Context, pageID string, opts *IncidentListOptions) ([]Incident, error)
	ListActiveMaintenance(ctx context.Context, pageID string, opts *ListOptions) ([]Incident, error)
	ListUpcoming(ctx context.Context, pageID string, opts *ListOptions) ([]Incident, error)
	ListScheduled(ctx context.Context, pageID string, opts *ListOptions) ([]Incident, error)
	ListUnresolved(ctx context.Context, pageID string, opts *ListOptions) ([]Incident, error)
	Get(ctx context.Context, pageID, incidentID string) (*Incident, error)
	Update(ctx context.Context, pageID, incidentID string, incident *IncidentCreateRequest, replace bool) (*Incident, error)
	Delete(ctx context.Context, pageID, incidentID string) error
}

// IncidentUpdatesClient defines operations for incident updates. Statuspage
// has no endpoint that mints a new update id, so Create writes to an id the
// caller already knows.
type IncidentUpdatesClient interface {
	Create(ctx context.Context, pageID, incidentID, incidentUpdateID string, update *IncidentUpdateRequest, replace bool) (*IncidentUpdate, error)
}

// MetricsClient defines operations for metrics and their data.
type MetricsClient interface {
	AddDataPoints(ctx context.Context, pageID string, data MetricData) (MetricData, error)
	AddDataPoint(ctx context.Context, pageID, metricID string, point MetricPoint) (*MetricPoint, error)
	List(ctx context.Context, pageID string, opts *ListOptions) ([]Metric, error)
	Get(ctx context.Context, pageID, metricID string) (*Metric, error)
	Update(ctx context.Context, pageID, metricID string, metric *MetricUpdateRequest, replace bool) (*Metric, error)
	Delete(ctx context.Context, pageID, metricID string) error
	Reset(ctx context.Context, pageID, metricID string) error
	ListForProvider(ctx context.Context, pageID, metricsProviderID string) ([]Metric, error)
	CreateForProvider(ctx context.Context, pageID, metricsProviderID string, metric *MetricCreateRequest) (*Metric, error)
}

// MetricsProvidersClient defines operations for metrics providers.
type MetricsProvidersClient interface {
	List(ctx context.Context, pageID string) ([]MetricProvider, error)
	Create(ctx context.Context, pageID string, provider *MetricsProviderCreateRequest) (*MetricProvider, error)
	Get(ctx context.Context, pageID, metricsProviderID string) (*MetricProvider, error)
	Update(ctx context.Context, pageID, metricsProviderID string, provider *MetricsProviderUpdateRequest, replace bool) (*MetricProvider, error)
	Delete(ctx context.Context, pageID, metricsProviderID string) error
}

// Client provides access to every resource client.
type Client interface {
	Pages() PagesClient
	Components() ComponentsClient
	Incidents() IncidentsClient
	IncidentUpdates() IncidentUpdatesClient
	Metrics() MetricsClient
	MetricsProviders() MetricsProvidersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// APIKey is sent verbatim as the Authorization header. Statuspage expects
// "OAuth <key>"; the client adds no scheme of its own, so include it in
// APIKey when the account requires it.
//
// Per-request deadlines and cancellation come from the context passed to
// each method. Requests are never retried.
type Config struct {
	// APIKey: credential placed in the Authorization header. Required.
	APIKey string
	// BaseURL: API root. Defaults to https://api.statuspage.io/v1/.
	BaseURL string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: logs every request and response at debug level when a Logger is set.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// HTTPClient: optional underlying HTTP client, for custom transports or timeouts.
	HTTPClient *http.Client
	// Interceptors: optional request/response hooks run around every call.
	Interceptors *InterceptorChain
}
