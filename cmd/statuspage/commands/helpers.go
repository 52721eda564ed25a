package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const timeLayout = "2006-01-02 15:04:05"

// renderOutput writes data in the configured output format. renderTable
// fills the table for the default format.
func renderOutput(out io.Writer, data interface{}, renderTable func(table *tablewriter.Table)) error {
	output := viper.GetString(keyOutput)

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	case constants.FormatTable, "":
		table := tablewriter.NewWriter(out)
		renderTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, output)
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func stringOrNA(value *string) string {
	if value == nil {
		return constants.NotAvailable
	}

	return valueOrNA(*value)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(timeLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return formatTime(*t)
}

func truncate(value string, length int) string {
	if len(value) <= length {
		return value
	}

	return value[:length-3] + "..."
}

// confirm asks a yes/no question on the command's streams. Anything but
// "y" or "yes" declines.
func confirm(cmd *cobra.Command, question string) bool {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", question)

	response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))

	return response == "y" || response == "yes"
}

func parseComponentStatus(value string) (statuspage.ComponentStatus, error) {
	status := statuspage.ComponentStatus(value)

	switch status {
	case statuspage.ComponentStatusOperational,
		statuspage.ComponentStatusUnderMaintenance,
		statuspage.ComponentStatusDegradedPerformance,
		statuspage.ComponentStatusPartialOutage,
		statuspage.ComponentStatusMajorOutage:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidStatus, value)
	}
}

func parseIncidentStatus(value string) (statuspage.IncidentStatus, error) {
	status := statuspage.IncidentStatus(value)

	switch status {
	case statuspage.IncidentStatusInvestigating,
		statuspage.IncidentStatusIdentified,
		statuspage.IncidentStatusMonitoring,
		statuspage.IncidentStatusResolved,
		statuspage.IncidentStatusScheduled,
		statuspage.IncidentStatusInProgress,
		statuspage.IncidentStatusVerifying,
		statuspage.IncidentStatusCompleted:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidStatus, value)
	}
}

// parseTimeFlag parses an RFC 3339 flag value, returning nil when unset.
func parseTimeFlag(cmd *cobra.Command, name, value string) (*time.Time, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", name, err)
	}

	return &parsed, nil
}

// boolFlag returns a pointer to value only when the flag was given.
func boolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return statuspage.Bool(value)
}

// stringFlag returns a pointer to value only when the flag was given.
func stringFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return statuspage.String(value)
}

func addListFlags(cmd *cobra.Command, opts *statuspage.ListOptions) {
	cmd.Flags().IntVar(&opts.Page, "page-number", 0, "page of results to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
}

func addReplaceFlag(cmd *cobra.Command, replace *bool) {
	cmd.Flags().BoolVar(replace, "replace", false, "send a full replacement (PUT) instead of a partial update (PATCH)")
}

// sortedKeys returns map keys in a stable order for table output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
