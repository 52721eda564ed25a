package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewIncidentsCommand creates the incidents command group.
func NewIncidentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incidents",
		Aliases: []string{"incident", "inc"},
		Short:   "Manage incidents and scheduled maintenance",
		Long:    "List, create, update and delete incidents, including scheduled maintenance windows",
	}

	cmd.AddCommand(newIncidentsListCommand())
	cmd.AddCommand(newIncidentsFilterCommand("active-maintenance", "List active maintenance",
		func(c statuspage.IncidentsClient) incidentLister { return c.ListActiveMaintenance }))
	cmd.AddCommand(newIncidentsFilterCommand("upcoming", "List upcoming maintenance",
		func(c statuspage.IncidentsClient) incidentLister { return c.ListUpcoming }))
	cmd.AddCommand(newIncidentsFilterCommand("scheduled", "List scheduled maintenance",
		func(c statuspage.IncidentsClient) incidentLister { return c.ListScheduled }))
	cmd.AddCommand(newIncidentsFilterCommand("unresolved", "List unresolved incidents",
		func(c statuspage.IncidentsClient) incidentLister { return c.ListUnresolved }))
	cmd.AddCommand(newIncidentsGetCommand())
	cmd.AddCommand(newIncidentsCreateCommand())
	cmd.AddCommand(newIncidentsUpdateCommand())
	cmd.AddCommand(newIncidentsDeleteCommand())

	return cmd
}

type incidentLister func(ctx context.Context, pageID string, opts *statuspage.ListOptions) ([]statuspage.Incident, error)

func renderIncidents(cmd *cobra.Command, incidents []statuspage.Incident) error {
	return renderOutput(cmd.OutOrStdout(), incidents, func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Status", "Impact", "Created")

		for _, incident := range incidents {
			_ = table.Append(
				incident.ID,
				truncate(incident.Name, constants.DescriptionDisplayLength),
				string(incident.Status),
				string(incident.Impact),
				formatTime(incident.CreatedAt),
			)
		}
	})
}

func newIncidentsListCommand() *cobra.Command {
	opts := &statuspage.IncidentListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incidents",
		Long:  "List incidents of the configured page, optionally filtered by a search query",
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

			incidents, err := client.Incidents().List(cmd.Context(), pageID, opts)
			if err != nil {
				return fmt.Errorf("failed to list incidents: %w", err)
			}

			return renderIncidents(cmd, incidents)
		},
	}

	cmd.Flags().StringVarP(&opts.Q, "query", "q", "", "search incidents by name, status or update text")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of incidents to return")
	cmd.Flags().IntVar(&opts.Page, "page-number", 0, "page of results to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")

	return cmd
}

func newIncidentsFilterCommand(use, short string, lister func(statuspage.IncidentsClient) incidentLister) *cobra.Command {
	opts := &statuspage.ListOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + " for the configured page",
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

			incidents, err := lister(client.Incidents())(cmd.Context(), pageID, opts)
			if err != nil {
				return fmt.Errorf("failed to list %s incidents: %w", use, err)
			}

			return renderIncidents(cmd, incidents)
		},
	}

	addListFlags(cmd, opts)

	return cmd
}

func newIncidentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INCIDENT_ID",
		Short: "Get incident details",
		Long:  "Display an incident together with its updates",
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

			incident, err := client.Incidents().Get(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get incident: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), incident, func(table *tablewriter.Table) {
				renderIncidentTable(table, incident)
			})
		},
	}
}

func renderIncidentTable(table *tablewriter.Table, incident *statuspage.Incident) {
	table.Header("Property", "Value")
	_ = table.Append("ID", incident.ID)
	_ = table.Append("Name", incident.Name)
	_ = table.Append("Status", string(incident.Status))
	_ = table.Append("Impact", string(incident.Impact))
	_ = table.Append("Shortlink", valueOrNA(incident.Shortlink))

	names := make([]string, 0, len(incident.Components))
	for _, component := range incident.Components {
		names = append(names, component.Name)
	}

	_ = table.Append("Components", valueOrNA(strings.Join(names, ", ")))
	_ = table.Append("Scheduled For", formatTimePtr(incident.ScheduledFor))
	_ = table.Append("Scheduled Until", formatTimePtr(incident.ScheduledUntil))
	_ = table.Append("Created", formatTime(incident.CreatedAt))
	_ = table.Append("Resolved", formatTimePtr(incident.ResolvedAt))

	for _, update := range incident.Updates {
		_ = table.Append("Update "+update.ID, fmt.Sprintf("[%s] %s", update.Status,
			truncate(update.Body, constants.DescriptionDisplayLength)))
	}
}

// incidentFlags holds the flags shared by incident create and update.
type incidentFlags struct {
	name, status, impactOverride, body, metadata string
	scheduledFor, scheduledUntil                 string
	components                                   map[string]string
	componentIDs                                 []string
	deliverNotifications                         bool
	scheduledRemindPrior                         bool
	scheduledAutoInProgress                      bool
	scheduledAutoCompleted                       bool
}

var incidentFlagNames = []string{
	"name", "status", "impact-override", "body", "metadata", "scheduled-for", "scheduled-until",
	"component", "component-ids", "deliver-notifications", "scheduled-remind-prior",
	"scheduled-auto-in-progress", "scheduled-auto-completed",
}

func (f *incidentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "incident name")
	cmd.Flags().StringVar(&f.status, "status", "", "incident status")
	cmd.Flags().StringVar(&f.impactOverride, "impact-override", "", "override the computed impact")
	cmd.Flags().StringVar(&f.body, "body", "", "message for the incident update")
	cmd.Flags().StringVar(&f.metadata, "metadata", "", "incident metadata as a JSON object")
	cmd.Flags().StringVar(&f.scheduledFor, "scheduled-for", "", "maintenance start (RFC 3339)")
	cmd.Flags().StringVar(&f.scheduledUntil, "scheduled-until", "", "maintenance end (RFC 3339)")
	cmd.Flags().StringToStringVar(&f.components, "component", nil, "component status changes as ID=STATUS")
	cmd.Flags().StringSliceVar(&f.componentIDs, "component-ids", nil, "affected component ids (comma-separated)")
	cmd.Flags().BoolVar(&f.deliverNotifications, "deliver-notifications", false, "notify subscribers")
	cmd.Flags().BoolVar(&f.scheduledRemindPrior, "scheduled-remind-prior", false, "remind subscribers before maintenance")
	cmd.Flags().BoolVar(&f.scheduledAutoInProgress, "scheduled-auto-in-progress", false, "start maintenance automatically")
	cmd.Flags().BoolVar(&f.scheduledAutoCompleted, "scheduled-auto-completed", false, "complete maintenance automatically")
}

func (f *incidentFlags) build(cmd *cobra.Command) (*statuspage.IncidentCreateRequest, error) {
	req := &statuspage.IncidentCreateRequest{
		Name:                    f.name,
		ImpactOverride:          statuspage.IncidentImpact(f.impactOverride),
		Body:                    f.body,
		ComponentIDs:            f.componentIDs,
		DeliverNotifications:    boolFlag(cmd, "deliver-notifications", f.deliverNotifications),
		ScheduledRemindPrior:    boolFlag(cmd, "scheduled-remind-prior", f.scheduledRemindPrior),
		ScheduledAutoInProgress: boolFlag(cmd, "scheduled-auto-in-progress", f.scheduledAutoInProgress),
		ScheduledAutoCompleted:  boolFlag(cmd, "scheduled-auto-completed", f.scheduledAutoCompleted),
	}

	var err error

	if f.status != "" {
		req.Status, err = parseIncidentStatus(f.status)
		if err != nil {
			return nil, err
		}
	}

	if len(f.components) > 0 {
		req.Components = make(map[string]statuspage.ComponentStatus, len(f.components))

		for id, value := range f.components {
			req.Components[id], err = parseComponentStatus(value)
			if err != nil {
				return nil, fmt.Errorf("component %s: %w", id, err)
			}
		}
	}

	if f.metadata != "" {
		err = json.Unmarshal([]byte(f.metadata), &req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("invalid --metadata: %w", err)
		}
	}

	req.ScheduledFor, err = parseTimeFlag(cmd, "scheduled-for", f.scheduledFor)
	if err != nil {
		return nil, err
	}

	req.ScheduledUntil, err = parseTimeFlag(cmd, "scheduled-until", f.scheduledUntil)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func anyFlagChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}

	return false
}

func newIncidentsCreateCommand() *cobra.Command {
	flags := &incidentFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an incident",
		Long: `Create an incident or, with --status scheduled and --scheduled-for/--scheduled-until,
a scheduled maintenance window.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req, err := flags.build(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			incident, err := client.Incidents().Create(cmd.Context(), pageID, req)
			if err != nil {
				return fmt.Errorf("failed to create incident: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created incident '%s' (%s)\n", incident.Name, incident.ID)

			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newIncidentsUpdateCommand() *cobra.Command {
	var replace bool

	flags := &incidentFlags{}

	cmd := &cobra.Command{
		Use:   "update INCIDENT_ID",
		Short: "Update an incident",
		Long:  "Update an incident. Only the flags given are sent; --body posts a new incident update.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !anyFlagChanged(cmd, incidentFlagNames) {
				return constants.ErrNoFieldsToUpdate
			}

			req, err := flags.build(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			incident, err := client.Incidents().Update(cmd.Context(), pageID, args[0], req, replace)
			if err != nil {
				return fmt.Errorf("failed to update incident: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated incident '%s' (%s)\n", incident.Name, incident.Status)

			return nil
		},
	}

	flags.register(cmd)
	addReplaceFlag(cmd, &replace)

	return cmd
}

func newIncidentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INCIDENT_ID",
		Short: "Delete an incident",
		Long:  "Delete an incident and all of its updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete incident '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Incidents().Delete(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete incident: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted incident '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
