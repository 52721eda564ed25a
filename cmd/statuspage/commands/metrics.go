package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewMetricsCommand creates the metrics command group.
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "metrics",
		Aliases: []string{"metric"},
		Short:   "Manage system metrics",
		Long:    "List and edit page metrics and submit their data points",
	}

	cmd.AddCommand(newMetricsListCommand())
	cmd.AddCommand(newMetricsGetCommand())
	cmd.AddCommand(newMetricsUpdateCommand())
	cmd.AddCommand(newMetricsDeleteCommand())
	cmd.AddCommand(newMetricsResetCommand())
	cmd.AddCommand(newMetricsAddPointCommand())
	cmd.AddCommand(newMetricsAddPointsCommand())
	cmd.AddCommand(newMetricsListForProviderCommand())
	cmd.AddCommand(newMetricsCreateForProviderCommand())

	return cmd
}

func renderMetrics(cmd *cobra.Command, metrics []statuspage.Metric) error {
	return renderOutput(cmd.OutOrStdout(), metrics, func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Identifier", "Provider", "Display", "Suffix")

		for _, metric := range metrics {
			_ = table.Append(
				metric.ID,
				metric.Name,
				valueOrNA(metric.MetricIdentifier),
				valueOrNA(metric.MetricsProviderID),
				strconv.FormatBool(metric.Display),
				valueOrNA(metric.Suffix),
			)
		}
	})
}

func newMetricsListCommand() *cobra.Command {
	opts := &statuspage.ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List metrics",
		Long:  "List the metrics of the configured page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			metrics, err := client.Metrics().List(cmd.Context(), pageID, opts)
			if err != nil {
				return fmt.Errorf("failed to list metrics: %w", err)
			}

			return renderMetrics(cmd, metrics)
		},
	}

	addListFlags(cmd, opts)

	return cmd
}

func newMetricsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get METRIC_ID",
		Short: "Get metric details",
		Long:  "Display detailed information about a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			metric, err := client.Metrics().Get(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get metric: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), metric, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", metric.ID)
				_ = table.Append("Name", metric.Name)
				_ = table.Append("Identifier", valueOrNA(metric.MetricIdentifier))
				_ = table.Append("Provider", valueOrNA(metric.MetricsProviderID))
				_ = table.Append("Display", strconv.FormatBool(metric.Display))
				_ = table.Append("Suffix", valueOrNA(metric.Suffix))
				_ = table.Append("Decimal Places", strconv.Itoa(metric.DecimalPlaces))
				_ = table.Append("Tooltip", valueOrNA(metric.TooltipDescription))
				_ = table.Append("Backfilled", strconv.FormatBool(metric.Backfilled))
				_ = table.Append("Most Recent Data", formatTimePtr(metric.MostRecentDataAt))
				_ = table.Append("Created", formatTime(metric.CreatedAt))
				_ = table.Append("Updated", formatTime(metric.UpdatedAt))
			})
		},
	}
}

func newMetricsUpdateCommand() *cobra.Command {
	var (
		name, identifier string
		replace          bool
	)

	cmd := &cobra.Command{
		Use:   "update METRIC_ID",
		Short: "Update a metric",
		Long:  "Rename a metric or change its provider identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req := &statuspage.MetricUpdateRequest{
				Name:             stringFlag(cmd, "name", name),
				MetricIdentifier: stringFlag(cmd, "metric-identifier", identifier),
			}

			if *req == (statuspage.MetricUpdateRequest{}) {
				return constants.ErrNoFieldsToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			metric, err := client.Metrics().Update(cmd.Context(), pageID, args[0], req, replace)
			if err != nil {
				return fmt.Errorf("failed to update metric: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated metric '%s'\n", metric.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "metric name")
	cmd.Flags().StringVar(&identifier, "metric-identifier", "", "identifier of the metric at its provider")
	addReplaceFlag(cmd, &replace)

	return cmd
}

func newMetricsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete METRIC_ID",
		Short: "Delete a metric",
		Long:  "Delete a metric and all of its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete metric '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Metrics().Delete(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete metric: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted metric '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newMetricsResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset METRIC_ID",
		Short: "Reset metric data",
		Long:  "Delete all data points of a metric while keeping the metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really reset data for metric '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Metrics().Reset(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to reset metric: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully reset data for metric '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newMetricsAddPointCommand() *cobra.Command {
	var (
		timestamp int64
		value     float64
	)

	cmd := &cobra.Command{
		Use:   "add-point METRIC_ID",
		Short: "Add a single data point",
		Long:  "Submit one data point for a metric. The timestamp defaults to now.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("timestamp") {
				timestamp = time.Now().Unix()
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			point, err := client.Metrics().AddDataPoint(cmd.Context(), pageID, args[0],
				statuspage.MetricPoint{Timestamp: timestamp, Value: value})
			if err != nil {
				return fmt.Errorf("failed to add data point: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), point, func(table *tablewriter.Table) {
				table.Header("Metric", "Timestamp", "Value")
				_ = table.Append(args[0], formatUnix(point.Timestamp), strconv.FormatFloat(point.Value, 'f', -1, 64))
			})
		},
	}

	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "Unix timestamp in seconds")
	cmd.Flags().Float64Var(&value, "value", 0, "data point value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newMetricsAddPointsCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add-points",
		Short: "Add data points for several metrics",
		Long: `Submit data points for one or more metrics in a single request. The file maps
metric ids to lists of points:

  m1:
    - timestamp: 1700000000
      value: 1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			data, err := loadMetricData(file)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.Metrics().AddDataPoints(cmd.Context(), pageID, data)
			if err != nil {
				return fmt.Errorf("failed to add data points: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), result, func(table *tablewriter.Table) {
				table.Header("Metric", "Timestamp", "Value")

				for _, metricID := range sortedKeys(result) {
					for _, point := range result[metricID] {
						_ = table.Append(metricID, formatUnix(point.Timestamp), strconv.FormatFloat(point.Value, 'f', -1, 64))
					}
				}
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML file with the data points (required)")

	return cmd
}

// loadMetricData reads a metric-id to points mapping from a JSON or YAML file.
func loadMetricData(path string) (statuspage.MetricData, error) {
	if path == "" {
		return nil, constants.ErrDataFileRequired
	}

	var unmarshal func([]byte, interface{}) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedDataFile, path)
	}

	// path is supplied by the user on the command line
	// #nosec G304
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data statuspage.MetricData

	err = unmarshal(raw, &data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidDataFile, err)
	}

	if len(data) == 0 {
		return nil, constants.ErrInvalidDataFile
	}

	return data, nil
}

func formatUnix(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format(timeLayout)
}

func newMetricsListForProviderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-for-provider PROVIDER_ID",
		Short: "List metrics of a provider",
		Long:  "List the metrics fed by a metrics provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			metrics, err := client.Metrics().ListForProvider(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to list metrics for provider: %w", err)
			}

			return renderMetrics(cmd, metrics)
		},
	}
}

func newMetricsCreateForProviderCommand() *cobra.Command {
	req := &statuspage.MetricCreateRequest{}

	cmd := &cobra.Command{
		Use:   "create-for-provider PROVIDER_ID",
		Short: "Create a metric for a provider",
		Long:  "Add a metric fed by an existing metrics provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			metric, err := client.Metrics().CreateForProvider(cmd.Context(), pageID, args[0], req)
			if err != nil {
				return fmt.Errorf("failed to create metric: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created metric '%s' (%s)\n", metric.Name, metric.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "metric name (required)")
	cmd.Flags().StringVar(&req.MetricIdentifier, "metric-identifier", "", "identifier of the metric at its provider (required)")
	cmd.Flags().StringVar(&req.Transform, "transform", "average", "aggregation: average, count, max, min or sum")
	cmd.Flags().StringVar(&req.Suffix, "suffix", "", "unit suffix shown after values")
	cmd.Flags().Float64Var(&req.YAxisMin, "y-axis-min", 0, "lower bound of the y axis")
	cmd.Flags().Float64Var(&req.YAxisMax, "y-axis-max", 0, "upper bound of the y axis")
	cmd.Flags().BoolVar(&req.YAxisHidden, "y-axis-hidden", false, "hide the y axis")
	cmd.Flags().BoolVar(&req.Display, "display", true, "show the metric on the page")
	cmd.Flags().IntVar(&req.DecimalPlaces, "decimal-places", 0, "decimal places shown")
	cmd.Flags().StringVar(&req.TooltipDescription, "tooltip", "", "tooltip text")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("metric-identifier")

	return cmd
}
