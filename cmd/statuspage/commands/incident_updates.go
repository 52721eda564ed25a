package commands

import (
	"fmt"

	"github.com/fivetwenty-io/statuspage-client/internal/constants"
	"github.com/fivetwenty-io/statuspage-client/pkg/statuspage"
	"github.com/spf13/cobra"
)

// NewIncidentUpdatesCommand creates the incident-updates command group.
func NewIncidentUpdatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "incident-updates",
		Aliases: []string{"incident-update"},
		Short:   "Manage incident updates",
		Long:    "Edit the updates previously posted to an incident",
	}

	cmd.AddCommand(newIncidentUpdatesUpdateCommand())

	return cmd
}

func newIncidentUpdatesUpdateCommand() *cobra.Command {
	var (
		body, displayAt                          string
		deliverNotifications, wantsTwitterUpdate bool
		replace                                  bool
	)

	cmd := &cobra.Command{
		Use:   "update INCIDENT_ID UPDATE_ID",
		Short: "Update an incident update",
		Long:  "Change the text, display time or notification settings of an incident update",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageID, err := requirePageID()
			if err != nil {
				return err
			}

			req := &statuspage.IncidentUpdateRequest{
				Body:                 stringFlag(cmd, "body", body),
				DeliverNotifications: boolFlag(cmd, "deliver-notifications", deliverNotifications),
				WantsTwitterUpdate:   boolFlag(cmd, "wants-twitter-update", wantsTwitterUpdate),
			}

			req.DisplayAt, err = parseTimeFlag(cmd, "display-at", displayAt)
			if err != nil {
				return err
			}

			if *req == (statuspage.IncidentUpdateRequest{}) {
				return constants.ErrNoFieldsToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			update, err := client.IncidentUpdates().Create(cmd.Context(), pageID, args[0], args[1], req, replace)
			if err != nil {
				return fmt.Errorf("failed to update incident update: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated incident update '%s'\n", update.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "update text")
	cmd.Flags().StringVar(&displayAt, "display-at", "", "time the update is shown as posted (RFC 3339)")
	cmd.Flags().BoolVar(&deliverNotifications, "deliver-notifications", false, "notify subscribers")
	cmd.Flags().BoolVar(&wantsTwitterUpdate, "wants-twitter-update", false, "post the update to Twitter")
	addReplaceFlag(cmd, &replace)

	return cmd
}
