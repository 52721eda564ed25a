package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewComponentsCommand creates the components command group.
func NewComponentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"component", "comp"},
		Short:   "Manage page components",
		Long:    "List, create, update and delete the components of a status page",
	}

	cmd.AddCommand(newComponentsListCommand())
	cmd.AddCommand(newComponentsGetCommand())
	cmd.AddCommand(newComponentsCreateCommand())
	cmd.AddCommand(newComponentsUpdateCommand())
	cmd.AddCommand(newComponentsDeleteCommand())
	cmd.AddCommand(newComponentsUptimeCommand())

	return cmd
}

func newComponentsListCommand() *cobra.Command {
	opts := &statuspage.ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components",
		Long:  "List the components of the configured page",
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

			components, err := client.Components().List(cmd.Context(), pageID, opts)
			if err != nil {
				return fmt.Errorf("failed to list components: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), components, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Status", "Group", "Position")

				for _, component := range components {
					_ = table.Append(
						component.ID,
						component.Name,
						string(component.Status),
						stringOrNA(component.GroupID),
						strconv.Itoa(component.Position),
					)
				}
			})
		},
	}

	addListFlags(cmd, opts)

	return cmd
}

func newComponentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMPONENT_ID",
		Short: "Get component details",
		Long:  "Display detailed information about a component",
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

			component, err := client.Components().Get(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get component: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), component, func(table *tablewriter.Table) {
				renderComponentTable(table, component)
			})
		},
	}
}

func renderComponentTable(table *tablewriter.Table, component *statuspage.Component) {
	table.Header("Property", "Value")
	_ = table.Append("ID", component.ID)
	_ = table.Append("Name", component.Name)
	_ = table.Append("Description", stringOrNA(component.Description))
	_ = table.Append("Status", string(component.Status))
	_ = table.Append("Group", strconv.FormatBool(component.Group))
	_ = table.Append("Group ID", stringOrNA(component.GroupID))
	_ = table.Append("Position", strconv.Itoa(component.Position))
	_ = table.Append("Showcase", strconv.FormatBool(component.Showcase))
	_ = table.Append("Only Show If Degraded", strconv.FormatBool(component.OnlyShowIfDegraded))
	_ = table.Append("Automation Email", valueOrNA(component.AutomationEmail))
	_ = table.Append("Start Date", stringOrNA(component.StartDate))
	_ = table.Append("Created", formatTime(component.CreatedAt))
	_ = table.Append("Updated", formatTime(component.UpdatedAt))
}

func newComponentsCreateCommand() *cobra.Command {
	var (
		name, description, status, groupID, startDate string
		showcase, onlyShowIfDegraded                  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a component",
		Long:  "Create a new component on the configured page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req := &statuspage.ComponentCreateRequest{
				Name:               name,
				Description:        description,
				GroupID:            groupID,
				StartDate:          startDate,
				Showcase:           boolFlag(cmd, "showcase", showcase),
				OnlyShowIfDegraded: boolFlag(cmd, "only-show-if-degraded", onlyShowIfDegraded),
			}

			if status != "" {
				req.Status, err = parseComponentStatus(status)
				if err != nil {
					return err
				}
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			component, err := client.Components().Create(cmd.Context(), pageID, req)
			if err != nil {
				return fmt.Errorf("failed to create component: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created component '%s' (%s)\n", component.Name, component.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "component name (required)")
	cmd.Flags().StringVar(&description, "description", "", "component description")
	cmd.Flags().StringVar(&status, "status", "", "initial status")
	cmd.Flags().StringVar(&groupID, "group-id", "", "id of the group to add the component to")
	cmd.Flags().StringVar(&startDate, "start-date", "", "date the component started (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&showcase, "showcase", false, "show the component on the page")
	cmd.Flags().BoolVar(&onlyShowIfDegraded, "only-show-if-degraded", false, "show the component only when it is not operational")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newComponentsUpdateCommand() *cobra.Command {
	var (
		name, description, status, groupID, startDate string
		showcase, onlyShowIfDegraded, replace         bool
	)

	cmd := &cobra.Command{
		Use:   "update COMPONENT_ID",
		Short: "Update a component",
		Long:  "Update an existing component. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req := &statuspage.ComponentUpdateRequest{
				Name:               stringFlag(cmd, "name", name),
				Description:        stringFlag(cmd, "description", description),
				GroupID:            stringFlag(cmd, "group-id", groupID),
				StartDate:          stringFlag(cmd, "start-date", startDate),
				Showcase:           boolFlag(cmd, "showcase", showcase),
				OnlyShowIfDegraded: boolFlag(cmd, "only-show-if-degraded", onlyShowIfDegraded),
			}

			if cmd.Flags().Changed("status") {
				parsed, err := parseComponentStatus(status)
				if err != nil {
					return err
				}

				req.Status = statuspage.Status(parsed)
			}

			if *req == (statuspage.ComponentUpdateRequest{}) {
				return constants.ErrNoFieldsToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			component, err := client.Components().Update(cmd.Context(), pageID, args[0], req, replace)
			if err != nil {
				return fmt.Errorf("failed to update component: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated component '%s' (%s)\n", component.Name, component.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "component name")
	cmd.Flags().StringVar(&description, "description", "", "component description")
	cmd.Flags().StringVar(&status, "status", "", "component status")
	cmd.Flags().StringVar(&groupID, "group-id", "", "id of the group the component belongs to")
	cmd.Flags().StringVar(&startDate, "start-date", "", "date the component started (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&showcase, "showcase", false, "show the component on the page")
	cmd.Flags().BoolVar(&onlyShowIfDegraded, "only-show-if-degraded", false, "show the component only when it is not operational")
	addReplaceFlag(cmd, &replace)

	return cmd
}

func newComponentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete COMPONENT_ID",
		Short: "Delete a component",
		Long:  "Delete a component from the configured page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete component '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Components().Delete(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete component: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted component '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newComponentsUptimeCommand() *cobra.Command {
	opts := &statuspage.UptimeOptions{}

	cmd := &cobra.Command{
		Use:   "uptime COMPONENT_ID",
		Short: "Show component uptime",
		Long:  "Show uptime statistics for a component over an optional date range",
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

			uptime, err := client.Components().GetUptime(cmd.Context(), pageID, args[0], opts)
			if err != nil {
				return fmt.Errorf("failed to get component uptime: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), uptime, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", uptime.ID)
				_ = table.Append("Name", uptime.Name)
				_ = table.Append("Range Start", valueOrNA(uptime.RangeStart))
				_ = table.Append("Range End", valueOrNA(uptime.RangeEnd))
				_ = table.Append("Uptime", fmt.Sprintf(constants.PercentageFormat, uptime.UptimePercentage))
				_ = table.Append("Major Outage", strconv.Itoa(uptime.MajorOutage))
				_ = table.Append("Partial Outage", strconv.Itoa(uptime.PartialOutage))
				_ = table.Append("Related Events", strconv.Itoa(len(uptime.RelatedEvents)))
			})
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.End, "end", "", "end date (YYYY-MM-DD)")

	return cmd
}
