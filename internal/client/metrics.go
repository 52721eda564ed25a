package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/internal/http"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
)

// MetricsClient implements statuspage.MetricsClient.
type MetricsClient struct {
	httpClient *http.Client
}

// NewMetricsClient creates a new metrics client.
func NewMetricsClient(httpClient *http.Client) *MetricsClient {
	return &MetricsClient{
		httpClient: httpClient,
	}
}

// AddDataPoints implements statuspage.MetricsClient.AddDataPoints. All metrics
// in data are submitted in a single request.
func (c *MetricsClient) AddDataPoints(ctx context.Context, pageID string, data statuspage.MetricData) (statuspage.MetricData, error) {
	body := envelope(constants.EnvelopeData, data)

	resp, err := c.httpClient.Post(ctx, pagePath(pageID, constants.PathMetrics, constants.PathData), body)
	if err != nil {
		return nil, fmt.Errorf("adding metric data points: %w", err)
	}

	var result statuspage.MetricData

	err = json.Unmarshal(unwrapData(resp.Body), &result)
	if err != nil {
		return nil, fmt.Errorf("parsing metric data response: %w", err)
	}

	return result, nil
}

// AddDataPoint implements statuspage.MetricsClient.AddDataPoint.
func (c *MetricsClient) AddDataPoint(ctx context.Context, pageID, metricID string, point statuspage.MetricPoint) (*statuspage.MetricPoint, error) {
	body := envelope(constants.EnvelopeData, point)

	resp, err := c.httpClient.Post(ctx, pagePath(pageID, constants.PathMetrics, metricID, constants.PathData), body)
	if err != nil {
		return nil, fmt.Errorf("adding metric data point: %w", err)
	}

	var result statuspage.MetricPoint

	err = json.Unmarshal(unwrapData(resp.Body), &result)
	if err != nil {
		return nil, fmt.Errorf("parsing metric data response: %w", err)
	}

	return &result, nil
}

// List implements statuspage.MetricsClient.List.
func (c *MetricsClient) List(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Metric, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathMetrics), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}

	var metrics []statuspage.Metric

	err = json.Unmarshal(resp.Body, &metrics)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics list: %w", err)
	}

	return metrics, nil
}

// Get implements statuspage.MetricsClient.Get.
func (c *MetricsClient) Get(ctx context.Context, pageID, metricID string) (*statuspage.Metric, error) {
	resp, err := c.httpClient.Get(ctx, pagePath(pageID, constants.PathMetrics, metricID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting metric: %w", err)
	}

	var metric statuspage.Metric

	err = json.Unmarshal(resp.Body, &metric)
	if err != nil {
		return nil, fmt.Errorf("parsing metric: %w", err)
	}

	return &metric, nil
}

// Update implements statuspage.MetricsClient.Update.
func (c *MetricsClient) Update(ctx context.Context, pageID, metricID string, request *statuspage.MetricUpdateRequest, replace bool) (*statuspage.Metric, error) {
	body := envelope(constants.EnvelopeMetric, request)

	resp, err := sendUpdate(ctx, c.httpClient, pagePath(pageID, constants.PathMetrics, metricID), body, replace)
	if err != nil {
		return nil, fmt.Errorf("updating metric: %w", err)
	}

	var metric statuspage.Metric

	err = json.Unmarshal(resp.Body, &metric)
	if err != nil {
		return nil, fmt.Errorf("parsing metric response: %w", err)
	}

	return &metric, nil
}

// Delete implements statuspage.MetricsClient.Delete.
func (c *MetricsClient) Delete(ctx context.Context, pageID, metricID string) error {
	_, err := c.httpClient.Delete(ctx, pagePath(pageID, constants.PathMetrics, metricID))
	if err != nil {
		return fmt.Errorf("deleting metric: %w", err)
	}

	return nil
}

// Reset implements statuspage.MetricsClient.Reset. It deletes every data
// point of the metric and keeps the metric itself.
func (c *MetricsClient) Reset(ctx context.Context, pageID, metricID string) error {
	_, err := c.httpClient.Delete(ctx, pagePath(pageID, constants.PathMetrics, metricID, constants.PathData))
	if err != nil {
		return fmt.Errorf("resetting metric data: %w", err)
	}

	return nil
}

// ListForProvider implements statuspage.MetricsClient.ListForProvider.
func (c *MetricsClient) ListForProvider(ctx context.Context, pageID, metricsProviderID string) ([]statuspage.Metric, error) {
	path := pagePath(pageID, constants.PathMetricsProviders, metricsProviderID, constants.PathMetrics)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing metrics for provider: %w", err)
	}

	var metrics []statuspage.Metric

	err = json.Unmarshal(resp.Body, &metrics)
	if err != nil {
		return nil, fmt.Errorf("parsing metrics list: %w", err)
	}

	return metrics, nil
}

// CreateForProvider implements statuspage.MetricsClient.CreateForProvider.
func (c *MetricsClient) CreateForProvider(
	ctx context.Context,
	pageID, metricsProviderID string,
	request *statuspage.MetricCreateRequest,
) (*statuspage.Metric, error) {
	path := pagePath(pageID, constants.PathMetricsProviders, metricsProviderID, constants.PathMetrics)
	body := envelope(constants.EnvelopeMetric, request)

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating metric for provider: %w", err)
	}

	var metric statuspage.Metric

	err = json.Unmarshal(resp.Body, &metric)
	if err != nil {
		return nil, fmt.Errorf("parsing metric response: %w", err)
	}

	return &metric, nil
}
