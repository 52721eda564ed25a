package commands

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPagesCommand creates the pages command group.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"page"},
		Short:   "Manage status pages",
		Long:    "List, view and update the status pages the API key can access",
	}

	cmd.AddCommand(newPagesListCommand())
	cmd.AddCommand(newPagesGetCommand())
	cmd.AddCommand(newPagesUpdateCommand())

	return cmd
}

func newPagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pages",
		Long:  "List all status pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			pages, err := client.Pages().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), pages, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Subdomain", "Domain", "Time Zone")

				for _, page := range pages {
					_ = table.Append(page.ID, page.Name, page.Subdomain, valueOrNA(page.Domain), valueOrNA(page.TimeZone))
				}
			})
		},
	}
}

// pageIDFromArgs uses an explicit argument before the configured page.
func pageIDFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	return requirePageID()
}

func newPagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [PAGE_ID]",
		Short: "Get page details",
		Long:  "Display a status page, defaulting to the configured page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := pageIDFromArgs(args)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			page, err := client.Pages().Get(cmd.Context(), pageID)
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), page, func(table *tablewriter.Table) {
				renderPageTable(table, page)
			})
		},
	}
}

func renderPageTable(table *tablewriter.Table, page *statuspage.Page) {
	table.Header("Property", "Value")
	_ = table.Append("ID", page.ID)
	_ = table.Append("Name", page.Name)
	_ = table.Append("Headline", valueOrNA(page.Headline))
	_ = table.Append("Description", stringOrNA(page.PageDescription))
	_ = table.Append("URL", valueOrNA(page.URL))
	_ = table.Append("Subdomain", page.Subdomain)
	_ = table.Append("Domain", valueOrNA(page.Domain))
	_ = table.Append("Time Zone", valueOrNA(page.TimeZone))
	_ = table.Append("Branding", valueOrNA(page.Branding))
	_ = table.Append("Hidden From Search", strconv.FormatBool(page.HiddenFromSearch))
	_ = table.Append("Page Subscribers", strconv.FormatBool(page.AllowPageSubscribers))
	_ = table.Append("Incident Subscribers", strconv.FormatBool(page.AllowIncidentSubscribers))
	_ = table.Append("Created", formatTime(page.CreatedAt))
	_ = table.Append("Updated", formatTimePtr(page.UpdatedAt))
}

func newPagesUpdateCommand() *cobra.Command {
	var (
		name, domain, subdomain, pageURL, branding, timeZone string
		notificationsFromEmail, notificationsFooter         string
		hiddenFromSearch, viewersMustBeTeamMembers          bool
		allowPageSubscribers, allowIncidentSubscribers      bool
		allowEmailSubscribers, allowSMSSubscribers          bool
		allowRSSAtomFeeds, allowWebhookSubscribers          bool
		replace                                             bool
	)

	cmd := &cobra.Command{
		Use:   "update [PAGE_ID]",
		Short: "Update a page",
		Long:  "Update page settings. Only the flags given are sent.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := pageIDFromArgs(args)
			if err != nil {
				return err
			}

			req := &statuspage.PageUpdateRequest{
				Name:                     stringFlag(cmd, "name", name),
				Domain:                   stringFlag(cmd, "domain", domain),
				Subdomain:                stringFlag(cmd, "subdomain", subdomain),
				URL:                      stringFlag(cmd, "url", pageURL),
				Branding:                 stringFlag(cmd, "branding", branding),
				TimeZone:                 stringFlag(cmd, "time-zone", timeZone),
				NotificationsFromEmail:   stringFlag(cmd, "notifications-from-email", notificationsFromEmail),
				NotificationsEmailFooter: stringFlag(cmd, "notifications-email-footer", notificationsFooter),
				HiddenFromSearch:         boolFlag(cmd, "hidden-from-search", hiddenFromSearch),
				ViewersMustBeTeamMembers: boolFlag(cmd, "viewers-must-be-team-members", viewersMustBeTeamMembers),
				AllowPageSubscribers:     boolFlag(cmd, "allow-page-subscribers", allowPageSubscribers),
				AllowIncidentSubscribers: boolFlag(cmd, "allow-incident-subscribers", allowIncidentSubscribers),
				AllowEmailSubscribers:    boolFlag(cmd, "allow-email-subscribers", allowEmailSubscribers),
				AllowSMSSubscribers:      boolFlag(cmd, "allow-sms-subscribers", allowSMSSubscribers),
				AllowRSSAtomFeeds:        boolFlag(cmd, "allow-rss-atom-feeds", allowRSSAtomFeeds),
				AllowWebhookSubscribers:  boolFlag(cmd, "allow-webhook-subscribers", allowWebhookSubscribers),
			}

			if *req == (statuspage.PageUpdateRequest{}) {
				return constants.ErrNoFieldsToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			page, err := client.Pages().Update(cmd.Context(), pageID, req, replace)
			if err != nil {
				return fmt.Errorf("failed to update page: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated page '%s'\n", page.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "page name")
	cmd.Flags().StringVar(&domain, "domain", "", "custom domain")
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "statuspage.io subdomain")
	cmd.Flags().StringVar(&pageURL, "url", "", "company website URL")
	cmd.Flags().StringVar(&branding, "branding", "", "branding level (basic or premium)")
	cmd.Flags().StringVar(&timeZone, "time-zone", "", "page time zone")
	cmd.Flags().StringVar(&notificationsFromEmail, "notifications-from-email", "", "sender address for notifications")
	cmd.Flags().StringVar(&notificationsFooter, "notifications-email-footer", "", "footer for notification emails")
	cmd.Flags().BoolVar(&hiddenFromSearch, "hidden-from-search", false, "hide the page from search engines")
	cmd.Flags().BoolVar(&viewersMustBeTeamMembers, "viewers-must-be-team-members", false, "restrict the page to team members")
	cmd.Flags().BoolVar(&allowPageSubscribers, "allow-page-subscribers", false, "allow page subscriptions")
	cmd.Flags().BoolVar(&allowIncidentSubscribers, "allow-incident-subscribers", false, "allow incident subscriptions")
	cmd.Flags().BoolVar(&allowEmailSubscribers, "allow-email-subscribers", false, "allow email subscriptions")
	cmd.Flags().BoolVar(&allowSMSSubscribers, "allow-sms-subscribers", false, "allow SMS subscriptions")
	cmd.Flags().BoolVar(&allowRSSAtomFeeds, "allow-rss-atom-feeds", false, "publish RSS and Atom feeds")
	cmd.Flags().BoolVar(&allowWebhookSubscribers, "allow-webhook-subscribers", false, "allow webhook subscriptions")
	addReplaceFlag(cmd, &replace)

	return cmd
}
