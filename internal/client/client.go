package client

import (
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// Client implements the statuspage.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     statuspage.Logger

	// Resource clients
	pages            statuspage.PagesClient
	components       statuspage.ComponentsClient
	incidents        statuspage.IncidentsClient
	incidentUpdates  statuspage.IncidentUpdatesClient
	metrics          statuspage.MetricsClient
	metricsProviders statuspage.MetricsProvidersClient
}

func createHTTPClientOptions(config *statuspage.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new Statuspage API client.
func New(config *statuspage.Config) (*Client, error) {
	if config == nil {
		return nil, statuspage.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, statuspage.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.pages = NewPagesClient(c.httpClient)
	c.components = NewComponentsClient(c.httpClient)
	c.incidents = NewIncidentsClient(c.httpClient)
	c.incidentUpdates = NewIncidentUpdatesClient(c.httpClient)
	c.metrics = NewMetricsClient(c.httpClient)
	c.metricsProviders = NewMetricsProvidersClient(c.httpClient)
}

// BaseURL returns the normalized API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pages implements statuspage.Client.Pages.
func (c *Client) Pages() statuspage.PagesClient {
	return c.pages
}

// Components implements statuspage.Client.Components.
func (c *Client) Components() statuspage.ComponentsClient {
	return c.components
}

// Incidents implements statuspage.Client.Incidents.
func (c *Client) Incidents() statuspage.IncidentsClient {
	return c.incidents
}

// IncidentUpdates implements statuspage.Client.IncidentUpdates.
func (c *Client) IncidentUpdates() statuspage.IncidentUpdatesClient {
	return c.incidentUpdates
}

// Metrics implements statuspage.Client.Metrics.
func (c *Client) Metrics() statuspage.MetricsClient {
	return c.metrics
}

// MetricsProviders implements statuspage.Client.MetricsProviders.
func (c *Client) MetricsProviders() statuspage.MetricsProvidersClient {
	return c.metricsProviders
}

// loggerAdapter adapts statuspage.Logger to http.Logger.
type loggerAdapter struct {
	logger statuspage.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
