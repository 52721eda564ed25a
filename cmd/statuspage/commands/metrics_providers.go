package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMetricsProvidersCommand creates the metrics-providers command group.
func NewMetricsProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "metrics-providers",
		Aliases: []string{"metrics-provider", "providers"},
		Short:   "Manage metrics providers",
		Long:    "List, create, update and delete the integrations that feed page metrics",
	}

	cmd.AddCommand(newMetricsProvidersListCommand())
	cmd.AddCommand(newMetricsProvidersGetCommand())
	cmd.AddCommand(newMetricsProvidersCreateCommand())
	cmd.AddCommand(newMetricsProvidersUpdateCommand())
	cmd.AddCommand(newMetricsProvidersDeleteCommand())

	return cmd
}

func newMetricsProvidersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List metrics providers",
		Long:  "List the metrics providers of the configured page",
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

			providers, err := client.MetricsProviders().List(cmd.Context(), pageID)
			if err != nil {
				return fmt.Errorf("failed to list metrics providers: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), providers, func(table *tablewriter.Table) {
				table.Header("ID", "Type", "Disabled", "Base URI", "Last Revalidated")

				for _, provider := range providers {
					_ = table.Append(
						provider.ID,
						provider.Type,
						strconv.FormatBool(provider.Disabled),
						valueOrNA(provider.MetricBaseURI),
						formatTimePtr(provider.LastRevalidatedAt),
					)
				}
			})
		},
	}
}

func newMetricsProvidersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROVIDER_ID",
		Short: "Get metrics provider details",
		Long:  "Display detailed information about a metrics provider",
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

			provider, err := client.MetricsProviders().Get(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to get metrics provider: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), provider, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", provider.ID)
				_ = table.Append("Type", provider.Type)
				_ = table.Append("Disabled", strconv.FormatBool(provider.Disabled))
				_ = table.Append("Base URI", valueOrNA(provider.MetricBaseURI))
				_ = table.Append("Last Revalidated", formatTimePtr(provider.LastRevalidatedAt))
				_ = table.Append("Created", formatTime(provider.CreatedAt))
				_ = table.Append("Updated", formatTime(provider.UpdatedAt))
			})
		},
	}
}

func newMetricsProvidersCreateCommand() *cobra.Command {
	req := &statuspage.MetricsProviderCreateRequest{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a metrics provider",
		Long: `Connect a metrics provider such as Pingdom, NewRelic, Librato, Datadog or Self.
Credentials depend on the provider type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			provider, err := client.MetricsProviders().Create(cmd.Context(), pageID, req)
			if err != nil {
				return fmt.Errorf("failed to create metrics provider: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s metrics provider (%s)\n", provider.Type, provider.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Type, "type", "", "provider type (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email (Pingdom, Librato)")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password (Pingdom)")
	cmd.Flags().StringVar(&req.APIKey, "provider-api-key", "", "provider API key (Datadog, NewRelic)")
	cmd.Flags().StringVar(&req.APIToken, "api-token", "", "provider API token (Librato)")
	cmd.Flags().StringVar(&req.ApplicationKey, "application-key", "", "application key (Pingdom, Datadog)")
	cmd.Flags().StringVar(&req.MetricBaseURI, "metric-base-uri", "", "base URI for metric lookups (Datadog)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newMetricsProvidersUpdateCommand() *cobra.Command {
	var (
		providerType, metricBaseURI string
		replace                     bool
	)

	cmd := &cobra.Command{
		Use:   "update PROVIDER_ID",
		Short: "Update a metrics provider",
		Long:  "Change the type or base URI of a metrics provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req := &statuspage.MetricsProviderUpdateRequest{
				Type:          stringFlag(cmd, "type", providerType),
				MetricBaseURI: stringFlag(cmd, "metric-base-uri", metricBaseURI),
			}

			if *req == (statuspage.MetricsProviderUpdateRequest{}) {
				return constants.ErrNoFieldsToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			provider, err := client.MetricsProviders().Update(cmd.Context(), pageID, args[0], req, replace)
			if err != nil {
				return fmt.Errorf("failed to update metrics provider: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated metrics provider '%s'\n", provider.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&providerType, "type", "", "provider type")
	cmd.Flags().StringVar(&metricBaseURI, "metric-base-uri", "", "base URI for metric lookups")
	addReplaceFlag(cmd, &replace)

	return cmd
}

func newMetricsProvidersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROVIDER_ID",
		Short: "Delete a metrics provider",
		Long:  "Delete a metrics provider and disconnect its metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			if !force && !confirm(cmd, fmt.Sprintf("Really delete metrics provider '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.MetricsProviders().Delete(cmd.Context(), pageID, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete metrics provider: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted metrics provider '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
